package service

import "errors"

// Domain errors surfaced to the HTTP layer. Handlers map these onto the
// response taxonomy and the messages reach the client verbatim, hence the
// Spanish; anything else is treated as a store failure (500).
var (
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	ErrDuplicateEmail     = errors.New("El email ya está registrado")
	ErrTokenExpired       = errors.New("token expirado")
	ErrTokenInvalid       = errors.New("token inválido")

	ErrVehicleNotFound  = errors.New("Vehículo no encontrado")
	ErrDriverNotFound   = errors.New("Conductor no encontrado")
	ErrTripNotFound     = errors.New("Viaje no encontrado")
	ErrDuplicatePatente = errors.New("La patente ya está registrada")
	ErrDuplicateDNI     = errors.New("El DNI ya está registrado")
	ErrTripDates        = errors.New("La fecha de llegada debe ser posterior a la fecha de salida")
)
