package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"transport_fleet/internal/models"
)

// Duplicate-key sentinels. The UNIQUE constraints in the store are the
// authoritative guard against check-then-insert races; repositories translate
// the driver's constraint-violation error into these.
var (
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicatePatente = errors.New("patente already registered")
	ErrDuplicateDNI     = errors.New("dni already registered")
)

// SQLite TIMESTAMP storage layout.
const timeLayout = "2006-01-02 15:04:05"

type Users interface {
	Create(ctx context.Context, nombre, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Vehicles interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	GetByID(ctx context.Context, id int) (*models.Vehicle, error)
	PatenteInUse(ctx context.Context, patente string, excludeID int) (bool, error)
	Create(ctx context.Context, v models.Vehicle) (int, error)
	Update(ctx context.Context, v models.Vehicle) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type Drivers interface {
	List(ctx context.Context) ([]models.Driver, error)
	GetByID(ctx context.Context, id int) (*models.Driver, error)
	DNIInUse(ctx context.Context, dni string, excludeID int) (bool, error)
	Create(ctx context.Context, d models.Driver) (int, error)
	Update(ctx context.Context, d models.Driver) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	LicensesExpiringBefore(ctx context.Context, deadline time.Time) ([]models.Driver, error)
}

type Trips interface {
	List(ctx context.Context) ([]models.TripDetail, error)
	GetByID(ctx context.Context, id int) (*models.TripDetail, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, t models.Trip) (int, error)
	Update(ctx context.Context, t models.Trip) error
	Delete(ctx context.Context, id int) error
	ListByVehicle(ctx context.Context, vehicleID int) ([]models.TripDetail, error)
	ListByDriver(ctx context.Context, driverID int) ([]models.TripDetail, error)
	TotalKilometrosByVehicle(ctx context.Context, vehicleID int) (float64, error)
	TotalKilometrosByDriver(ctx context.Context, driverID int) (float64, error)
	Count(ctx context.Context) (int, error)
	Latest(ctx context.Context, limit int) ([]models.TripDetail, error)
}

type Repository struct {
	Users    Users
	Vehicles Vehicles
	Drivers  Drivers
	Trips    Trips
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Vehicles: NewVehicleRepository(db),
		Drivers:  NewDriverRepository(db),
		Trips:    NewTripRepository(db),
	}
}

// isUniqueViolation reports whether err is a SQLite UNIQUE violation on the
// given table.column. modernc.org/sqlite exposes this only via the message.
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}
