package handlers

import (
	"errors"
	"net/http"

	"transport_fleet/internal/models"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	msgVehiculoIDInvalido  = "ID de vehículo inválido"
	msgConductorIDInvalido = "ID de conductor inválido"
	msgFechaSalidaInvalida = "Fecha de salida inválida"
	msgFechaLlegadaInvalid = "Fecha de llegada inválida"
	msgOrigenInvalido      = "Origen inválido"
	msgDestinoInvalido     = "Destino inválido"
	msgKilometrosInvalidos = "Kilómetros inválidos"
	msgObservacionesLargas = "Observaciones inválidas"
)

type tripRequest struct {
	VehiculoID    int     `json:"vehiculo_id"`
	ConductorID   int     `json:"conductor_id"`
	FechaSalida   string  `json:"fecha_salida"`
	FechaLlegada  string  `json:"fecha_llegada"`
	Origen        string  `json:"origen"`
	Destino       string  `json:"destino"`
	Kilometros    float64 `json:"kilometros"`
	Observaciones *string `json:"observaciones"`
}

func (r tripRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VehiculoID,
			validation.Required.Error(msgVehiculoIDInvalido),
			validation.Min(1).Error(msgVehiculoIDInvalido),
		),
		validation.Field(&r.ConductorID,
			validation.Required.Error(msgConductorIDInvalido),
			validation.Min(1).Error(msgConductorIDInvalido),
		),
		validation.Field(&r.FechaSalida,
			validation.Required.Error(msgFechaSalidaInvalida),
			validation.By(dateRule(msgFechaSalidaInvalida)),
		),
		validation.Field(&r.FechaLlegada,
			validation.Required.Error(msgFechaLlegadaInvalid),
			validation.By(dateRule(msgFechaLlegadaInvalid)),
		),
		validation.Field(&r.Origen,
			validation.Required.Error(msgOrigenInvalido),
			validation.RuneLength(1, 100).Error(msgOrigenInvalido),
		),
		validation.Field(&r.Destino,
			validation.Required.Error(msgDestinoInvalido),
			validation.RuneLength(1, 100).Error(msgDestinoInvalido),
		),
		validation.Field(&r.Kilometros,
			validation.Min(0.0).Error(msgKilometrosInvalidos),
		),
		validation.Field(&r.Observaciones,
			validation.By(func(value interface{}) error {
				s, _ := value.(*string)
				if s != nil && len([]rune(*s)) > 1000 {
					return errors.New(msgObservacionesLargas)
				}
				return nil
			}),
		),
	)
}

func (r tripRequest) toModel(id int) (models.Trip, error) {
	salida, err := parseDate(r.FechaSalida)
	if err != nil {
		return models.Trip{}, err
	}
	llegada, err := parseDate(r.FechaLlegada)
	if err != nil {
		return models.Trip{}, err
	}
	return models.Trip{
		ID:            id,
		VehiculoID:    r.VehiculoID,
		ConductorID:   r.ConductorID,
		FechaSalida:   salida,
		FechaLlegada:  llegada,
		Origen:        r.Origen,
		Destino:       r.Destino,
		Kilometros:    r.Kilometros,
		Observaciones: r.Observaciones,
	}, nil
}

// @Summary      List trips
// @Description  Includes display columns of the joined vehicle and driver.
// @Tags         viajes
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, viajes"
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /viajes [get]
// @Security     BearerAuth
func (h *Handler) listTrips(c *gin.Context) {
	trips, err := h.services.Trips.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "trips_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "viajes": trips})
}

// @Summary      Get one trip
// @Tags         viajes
// @Produce      json
// @Param        id   path      int  true  "Trip ID"
// @Success      200  {object}  map[string]interface{}  "success, viaje"
// @Failure      404  {object}  map[string]interface{}
// @Router       /viajes/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTrip(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.services.Trips.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "trips_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "viaje": t})
}

// @Summary      Create a trip
// @Description  The referenced vehicle and driver must exist; arrival must be after departure.
// @Tags         viajes
// @Accept       json
// @Produce      json
// @Param        body  body      tripRequest  true  "Trip data"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /viajes [post]
// @Security     BearerAuth
func (h *Handler) createTrip(c *gin.Context) {
	var req tripRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	m, err := req.toModel(0)
	if err != nil {
		respondValidation(c, err)
		return
	}
	t, err := h.services.Trips.Create(c.Request.Context(), m)
	if err != nil {
		h.respondServiceError(c, "trips_create_failed", err,
			"vehiculo_id", req.VehiculoID, "conductor_id", req.ConductorID)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": t})
}

// @Summary      Update a trip
// @Tags         viajes
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Trip ID"
// @Param        body  body      tripRequest  true  "Trip data"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /viajes/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTrip(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req tripRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	m, err := req.toModel(id)
	if err != nil {
		respondValidation(c, err)
		return
	}
	t, err := h.services.Trips.Update(c.Request.Context(), m)
	if err != nil {
		h.respondServiceError(c, "trips_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": t})
}

// @Summary      Delete a trip
// @Tags         viajes
// @Produce      json
// @Param        id   path      int  true  "Trip ID"
// @Success      200  {object}  map[string]interface{}  "success, data:id"
// @Failure      404  {object}  map[string]interface{}
// @Router       /viajes/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTrip(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Trips.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "trips_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": id})
}

// @Summary      Trip history of a vehicle
// @Tags         viajes
// @Produce      json
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  map[string]interface{}  "success, vehiculo, viajes"
// @Failure      404  {object}  map[string]interface{}
// @Router       /viajes/vehiculo/{id} [get]
// @Security     BearerAuth
func (h *Handler) tripsByVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, trips, err := h.services.Trips.HistoryByVehicle(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "trips_by_vehicle_failed", err, "vehiculo_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehiculo": v, "viajes": trips})
}

// @Summary      Trip history of a driver
// @Tags         viajes
// @Produce      json
// @Param        id   path      int  true  "Driver ID"
// @Success      200  {object}  map[string]interface{}  "success, conductor, viajes"
// @Failure      404  {object}  map[string]interface{}
// @Router       /viajes/conductor/{id} [get]
// @Security     BearerAuth
func (h *Handler) tripsByDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, trips, err := h.services.Trips.HistoryByDriver(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "trips_by_driver_failed", err, "conductor_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conductor": d, "viajes": trips})
}

// @Summary      Total kilometers of a vehicle
// @Tags         viajes
// @Produce      json
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  map[string]interface{}  "success, vehiculo, total_kilometros"
// @Failure      404  {object}  map[string]interface{}
// @Router       /viajes/vehiculo/{id}/kilometros [get]
// @Security     BearerAuth
func (h *Handler) kilometrosByVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	totals, err := h.services.Trips.KilometrosByVehicle(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "km_by_vehicle_failed", err, "vehiculo_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"vehiculo":         totals.Vehiculo,
		"total_kilometros": totals.TotalKilometros,
	})
}

// @Summary      Total kilometers of a driver
// @Tags         viajes
// @Produce      json
// @Param        id   path      int  true  "Driver ID"
// @Success      200  {object}  map[string]interface{}  "success, conductor, total_kilometros"
// @Failure      404  {object}  map[string]interface{}
// @Router       /viajes/conductor/{id}/kilometros [get]
// @Security     BearerAuth
func (h *Handler) kilometrosByDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	totals, err := h.services.Trips.KilometrosByDriver(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "km_by_driver_failed", err, "conductor_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"conductor":        totals.Conductor,
		"total_kilometros": totals.TotalKilometros,
	})
}
