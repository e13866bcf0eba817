package models

import "time"

// Driver is a fleet driver (table `conductores`). DNI is unique.
type Driver struct {
	ID                       int       `json:"id"`
	Nombre                   string    `json:"nombre"`
	Apellido                 string    `json:"apellido"`
	DNI                      string    `json:"dni"`
	Licencia                 string    `json:"licencia"`
	FechaVencimientoLicencia time.Time `json:"fecha_vencimiento_licencia"`
}
