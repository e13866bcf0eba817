package handlers

import (
	"net/http"

	"transport_fleet/internal/models"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	msgApellidoInvalido = "Apellido inválido"
	msgDNIInvalido      = "DNI inválido"
	msgLicenciaInvalida = "Licencia inválida"
	msgFechaVencInvalid = "Fecha de vencimiento inválida"
)

type driverRequest struct {
	Nombre                   string `json:"nombre"`
	Apellido                 string `json:"apellido"`
	DNI                      string `json:"dni"`
	Licencia                 string `json:"licencia"`
	FechaVencimientoLicencia string `json:"fecha_vencimiento_licencia"`
}

func (r driverRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombre,
			validation.Required.Error(msgNombreInvalido),
			validation.RuneLength(1, 50).Error(msgNombreInvalido),
			validation.Match(reAlphaName).Error(msgNombreInvalido),
		),
		validation.Field(&r.Apellido,
			validation.Required.Error(msgApellidoInvalido),
			validation.RuneLength(1, 50).Error(msgApellidoInvalido),
			validation.Match(reAlphaName).Error(msgApellidoInvalido),
		),
		validation.Field(&r.DNI,
			validation.Required.Error(msgDNIInvalido),
			validation.RuneLength(1, 20).Error(msgDNIInvalido),
		),
		validation.Field(&r.Licencia,
			validation.Required.Error(msgLicenciaInvalida),
			validation.RuneLength(1, 20).Error(msgLicenciaInvalida),
		),
		validation.Field(&r.FechaVencimientoLicencia,
			validation.Required.Error(msgFechaVencInvalid),
			validation.By(dateRule(msgFechaVencInvalid)),
		),
	)
}

func (r driverRequest) toModel(id int) (models.Driver, error) {
	venc, err := parseDate(r.FechaVencimientoLicencia)
	if err != nil {
		return models.Driver{}, err
	}
	return models.Driver{
		ID:                       id,
		Nombre:                   r.Nombre,
		Apellido:                 r.Apellido,
		DNI:                      r.DNI,
		Licencia:                 r.Licencia,
		FechaVencimientoLicencia: venc,
	}, nil
}

// @Summary      List drivers
// @Tags         conductores
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, conductores"
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /conductores [get]
// @Security     BearerAuth
func (h *Handler) listDrivers(c *gin.Context) {
	drivers, err := h.services.Drivers.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "drivers_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conductores": drivers})
}

// @Summary      Get one driver
// @Tags         conductores
// @Produce      json
// @Param        id   path      int  true  "Driver ID"
// @Success      200  {object}  map[string]interface{}  "success, conductor"
// @Failure      404  {object}  map[string]interface{}
// @Router       /conductores/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, err := h.services.Drivers.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "drivers_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conductor": d})
}

// @Summary      Create a driver
// @Tags         conductores
// @Accept       json
// @Produce      json
// @Param        body  body      driverRequest  true  "Driver data"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /conductores [post]
// @Security     BearerAuth
func (h *Handler) createDriver(c *gin.Context) {
	var req driverRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	m, err := req.toModel(0)
	if err != nil {
		respondValidation(c, validation.Errors{"fecha_vencimiento_licencia": err})
		return
	}
	d, err := h.services.Drivers.Create(c.Request.Context(), m)
	if err != nil {
		h.respondServiceError(c, "drivers_create_failed", err, "dni", req.DNI)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": d})
}

// @Summary      Update a driver
// @Tags         conductores
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Driver ID"
// @Param        body  body      driverRequest  true  "Driver data"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /conductores/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req driverRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	m, err := req.toModel(id)
	if err != nil {
		respondValidation(c, validation.Errors{"fecha_vencimiento_licencia": err})
		return
	}
	d, err := h.services.Drivers.Update(c.Request.Context(), m)
	if err != nil {
		h.respondServiceError(c, "drivers_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": d})
}

// @Summary      Delete a driver
// @Tags         conductores
// @Produce      json
// @Param        id   path      int  true  "Driver ID"
// @Success      200  {object}  map[string]interface{}  "success, data:id"
// @Failure      404  {object}  map[string]interface{}
// @Router       /conductores/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Drivers.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "drivers_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": id})
}
