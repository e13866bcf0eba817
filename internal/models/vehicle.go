package models

// Vehicle is a fleet vehicle (table `vehiculos`). Patente is unique.
type Vehicle struct {
	ID             int     `json:"id"`
	Marca          string  `json:"marca"`
	Modelo         string  `json:"modelo"`
	Patente        string  `json:"patente"`
	Anio           int     `json:"año"`
	CapacidadCarga float64 `json:"capacidad_carga"` // tonnes
}
