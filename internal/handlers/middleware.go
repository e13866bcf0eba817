package handlers

import (
	"errors"
	"net/http"
	"strings"

	"transport_fleet/internal/service"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by the middleware chain.
const (
	ctxRequestID = "requestId"
	ctxUserID    = "userId"
	ctxUserEmail = "userEmail"
)

const (
	errMissingAuthHeader = "falta la cabecera Authorization"
	errBadAuthHeader     = "formato de cabecera Authorization inválido"
	errTokenInvalidOrExp = "Token inválido o expirado. Por favor, inicie sesión nuevamente."
)

// authMiddleware gates every protected route: extract the bearer token,
// verify it, attach the decoded identity to the request context.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   errMissingAuthHeader,
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   errBadAuthHeader,
		})
		return
	}

	identity, err := h.services.Auth.ParseToken(parts[1])
	if err != nil {
		if h.log != nil && errors.Is(err, service.ErrTokenExpired) {
			h.log.Infow("auth_token_expired", "path", c.Request.URL.Path)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   errTokenInvalidOrExp,
		})
		return
	}

	c.Set(ctxUserID, identity.UserID)
	c.Set(ctxUserEmail, identity.Email)
	c.Next()
}
