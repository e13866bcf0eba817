package models

import "time"

// Trip is a single journey of one vehicle with one driver (table `viajes`).
type Trip struct {
	ID            int       `json:"id"`
	VehiculoID    int       `json:"vehiculo_id"`
	ConductorID   int       `json:"conductor_id"`
	FechaSalida   time.Time `json:"fecha_salida"`
	FechaLlegada  time.Time `json:"fecha_llegada"`
	Origen        string    `json:"origen"`
	Destino       string    `json:"destino"`
	Kilometros    float64   `json:"kilometros"`
	Observaciones *string   `json:"observaciones,omitempty"`
}

// TripDetail is a trip joined with the display columns of its vehicle and driver,
// matching the list/detail responses of the API.
type TripDetail struct {
	Trip
	Marca             string `json:"marca"`
	Modelo            string `json:"modelo"`
	Patente           string `json:"patente"`
	ConductorNombre   string `json:"conductor_nombre"`
	ConductorApellido string `json:"conductor_apellido"`
	ConductorDNI      string `json:"dni"`
}

// FleetSummary is the snapshot pushed over the websocket feed.
type FleetSummary struct {
	Vehiculos     int          `json:"vehiculos"`
	Conductores   int          `json:"conductores"`
	Viajes        int          `json:"viajes"`
	UltimosViajes []TripDetail `json:"ultimos_viajes,omitempty"`
	GeneradoEn    time.Time    `json:"generado_en"`
}
