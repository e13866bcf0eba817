package handlers

import (
	"net/http"

	"transport_fleet/internal/models"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	msgMarcaInvalida     = "Marca inválida"
	msgModeloInvalido    = "Modelo inválido"
	msgPatenteInvalida   = "Patente inválida"
	msgAnioInvalido      = "Año inválido"
	msgCapacidadInvalida = "Capacidad de carga inválida"
)

type vehicleRequest struct {
	Marca          string  `json:"marca"`
	Modelo         string  `json:"modelo"`
	Patente        string  `json:"patente"`
	Anio           int     `json:"año"`
	CapacidadCarga float64 `json:"capacidad_carga"`
}

func (r vehicleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Marca,
			validation.Required.Error(msgMarcaInvalida),
			validation.RuneLength(1, 50).Error(msgMarcaInvalida),
			validation.Match(reAlphaName).Error(msgMarcaInvalida),
		),
		validation.Field(&r.Modelo,
			validation.Required.Error(msgModeloInvalido),
			validation.RuneLength(1, 50).Error(msgModeloInvalido),
		),
		validation.Field(&r.Patente,
			validation.Required.Error(msgPatenteInvalida),
			validation.RuneLength(1, 10).Error(msgPatenteInvalida),
		),
		validation.Field(&r.Anio,
			validation.Required.Error(msgAnioInvalido),
			validation.Min(1900).Error(msgAnioInvalido),
			validation.Max(2100).Error(msgAnioInvalido),
		),
		validation.Field(&r.CapacidadCarga,
			validation.Min(0.0).Error(msgCapacidadInvalida),
		),
	)
}

func (r vehicleRequest) toModel(id int) models.Vehicle {
	return models.Vehicle{
		ID:             id,
		Marca:          r.Marca,
		Modelo:         r.Modelo,
		Patente:        r.Patente,
		Anio:           r.Anio,
		CapacidadCarga: r.CapacidadCarga,
	}
}

// @Summary      List vehicles
// @Tags         vehiculos
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, vehiculos"
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /vehiculos [get]
// @Security     BearerAuth
func (h *Handler) listVehicles(c *gin.Context) {
	vehicles, err := h.services.Vehicles.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "vehicles_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehiculos": vehicles})
}

// @Summary      Get one vehicle
// @Tags         vehiculos
// @Produce      json
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  map[string]interface{}  "success, vehiculo"
// @Failure      404  {object}  map[string]interface{}
// @Router       /vehiculos/{id} [get]
// @Security     BearerAuth
func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, err := h.services.Vehicles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "vehicles_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehiculo": v})
}

// @Summary      Create a vehicle
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Param        body  body      vehicleRequest  true  "Vehicle data"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /vehiculos [post]
// @Security     BearerAuth
func (h *Handler) createVehicle(c *gin.Context) {
	var req vehicleRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	v, err := h.services.Vehicles.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		h.respondServiceError(c, "vehicles_create_failed", err, "patente", req.Patente)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": v})
}

// @Summary      Update a vehicle
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Vehicle ID"
// @Param        body  body      vehicleRequest  true  "Vehicle data"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /vehiculos/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req vehicleRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	v, err := h.services.Vehicles.Update(c.Request.Context(), req.toModel(id))
	if err != nil {
		h.respondServiceError(c, "vehicles_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": v})
}

// @Summary      Delete a vehicle
// @Tags         vehiculos
// @Produce      json
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  map[string]interface{}  "success, data:id"
// @Failure      404  {object}  map[string]interface{}
// @Router       /vehiculos/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Vehicles.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "vehicles_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": id})
}
