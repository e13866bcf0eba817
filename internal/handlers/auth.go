package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"transport_fleet/internal/service"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Alphabetic (including accented letters), single spaces between words.
var reAlphaName = regexp.MustCompile(`^\p{L}+(?: \p{L}+)*$`)

// Password policy: at least one lowercase letter and one digit; length is a
// separate rule so each failure reports on its own.
var (
	reLowercase = regexp.MustCompile(`[a-z]`)
	reDigit     = regexp.MustCompile(`[0-9]`)
)

const (
	msgNombreInvalido   = "Nombre inválido"
	msgEmailInvalido    = "Email inválido"
	msgPasswordInvalida = "Contraseña inválida"
)

type registroRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registroRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombre,
			validation.Required.Error(msgNombreInvalido),
			validation.RuneLength(1, 100).Error(msgNombreInvalido),
			validation.Match(reAlphaName).Error(msgNombreInvalido),
		),
		validation.Field(&r.Email,
			validation.Required.Error(msgEmailInvalido),
			is.Email.Error(msgEmailInvalido),
		),
		validation.Field(&r.Password,
			validation.Required.Error(msgPasswordInvalida),
			validation.RuneLength(8, 72).Error(msgPasswordInvalida),
			validation.Match(reLowercase).Error(msgPasswordInvalida),
			validation.Match(reDigit).Error(msgPasswordInvalida),
		),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error(msgEmailInvalido),
			is.Email.Error(msgEmailInvalido),
		),
		validation.Field(&r.Password,
			validation.Required.Error(msgPasswordInvalida),
		),
	)
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registroRequest  true  "Account data"
// @Success      201   {object}  map[string]interface{}  "success, data{id,nombre,email}"
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /auth/registro [post]
func (h *Handler) registro(c *gin.Context) {
	var req registroRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	u, err := h.services.Auth.Register(c.Request.Context(), req.Nombre, req.Email, req.Password)
	if err != nil {
		h.respondServiceError(c, "auth_registro_failed", err, "email", req.Email)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":     u.ID,
			"nombre": u.Nombre,
			"email":  u.Email,
		},
	})
}

// @Summary      Log in and obtain a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "success, token, email, nombre"
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	token, u, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) && h.log != nil {
			h.log.Infow("auth_login_rejected", "email", req.Email)
		}
		h.respondServiceError(c, "auth_login_failed", err, "email", req.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"email":   u.Email,
		"nombre":  u.Nombre,
	})
}
