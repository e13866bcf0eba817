package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"transport_fleet/internal/service"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	errMalformedBody = "cuerpo de la petición inválido"
	errInternal      = "error interno del servidor"
	errInvalidID     = "ID inválido"
)

// fieldError is one entry of the accumulated validation failure list.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondValidation turns an ozzo validation.Errors map into the API's
// {success:false, errors:[{field,message}]} body. Any other error becomes a
// single-entry generic 400.
func respondValidation(c *gin.Context, err error) {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]fieldError, 0, len(ve))
	for _, f := range fields {
		out = append(out, fieldError{Field: f, Message: ve[f].Error()})
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": out})
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Unknown errors are store failures: logged with detail, reported generically.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrDriverNotFound),
		errors.Is(err, service.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicatePatente),
		errors.Is(err, service.ErrDuplicateDNI),
		errors.Is(err, service.ErrTripDates),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errInternal})
	}
}

// bindJSON binds the body into dst, answering 400 on malformed JSON.
// Returns false if the request was already handled.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errMalformedBody})
		return false
	}
	return true
}

// idParam parses the :id path segment, answering the validation-list shape
// used for a bad id. Returns (0, false) if the request was handled.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  []fieldError{{Field: "id", Message: errInvalidID}},
		})
		return 0, false
	}
	return id, true
}
