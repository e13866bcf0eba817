package service

import (
	"context"
	"time"

	"transport_fleet/internal/logger"
	"transport_fleet/internal/models"
	"transport_fleet/internal/repository"
)

// Every store access goes through a bounded timeout so a stuck connection
// fails one request instead of blocking it forever.
const storeTimeout = 5 * time.Second

func storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// Identity is the request-scoped result of verifying a token.
type Identity struct {
	UserID int
	Email  string
}

type Authorization interface {
	Register(ctx context.Context, nombre, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ParseToken(accessToken string) (*Identity, error)
}

type Vehicles interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, id int) (*models.Vehicle, error)
	Create(ctx context.Context, v models.Vehicle) (*models.Vehicle, error)
	Update(ctx context.Context, v models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id int) error
}

type Drivers interface {
	List(ctx context.Context) ([]models.Driver, error)
	Get(ctx context.Context, id int) (*models.Driver, error)
	Create(ctx context.Context, d models.Driver) (*models.Driver, error)
	Update(ctx context.Context, d models.Driver) (*models.Driver, error)
	Delete(ctx context.Context, id int) error
}

// VehicleTotals / DriverTotals pair the entity with its accumulated distance.
type VehicleTotals struct {
	Vehiculo        models.Vehicle
	TotalKilometros float64
}

type DriverTotals struct {
	Conductor       models.Driver
	TotalKilometros float64
}

type Trips interface {
	List(ctx context.Context) ([]models.TripDetail, error)
	Get(ctx context.Context, id int) (*models.TripDetail, error)
	Create(ctx context.Context, t models.Trip) (*models.Trip, error)
	Update(ctx context.Context, t models.Trip) (*models.Trip, error)
	Delete(ctx context.Context, id int) error
	HistoryByVehicle(ctx context.Context, vehicleID int) (*models.Vehicle, []models.TripDetail, error)
	HistoryByDriver(ctx context.Context, driverID int) (*models.Driver, []models.TripDetail, error)
	KilometrosByVehicle(ctx context.Context, vehicleID int) (*VehicleTotals, error)
	KilometrosByDriver(ctx context.Context, driverID int) (*DriverTotals, error)
}

// Fleet exposes the aggregate snapshot consumed by the websocket feed.
type Fleet interface {
	Summary(ctx context.Context) (models.FleetSummary, error)
}

// Licenses runs the background loop that flags licenses close to expiry.
// Stop via context cancellation in main() for graceful shutdown.
type Licenses interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services. Fields are named (not embedded) because
// the CRUD interfaces share method names.
type Service struct {
	Auth     Authorization
	Vehicles Vehicles
	Drivers  Drivers
	Trips    Trips
	Fleet    Fleet
	Licenses Licenses
}

// NewService wires the repository layer into concrete services. The JWT
// signing secret comes from configuration, loaded once at startup.
func NewService(repos *repository.Repository, jwtSecret []byte, log *logger.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repos.Users, jwtSecret),
		Vehicles: NewVehicleService(repos.Vehicles),
		Drivers:  NewDriverService(repos.Drivers),
		Trips:    NewTripService(repos.Trips, repos.Vehicles, repos.Drivers),
		Fleet:    NewFleetService(repos.Vehicles, repos.Drivers, repos.Trips),
		Licenses: NewLicenseWatcher(repos.Drivers, log),
	}
}
