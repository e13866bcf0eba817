package service

import (
	"context"
	"time"

	"transport_fleet/internal/models"
)

// Fn-field fakes for the repository interfaces. Methods without a configured
// Fn return zero values, so each test wires only what it exercises.

type fakeVehicles struct {
	ListFn         func(ctx context.Context) ([]models.Vehicle, error)
	GetByIDFn      func(ctx context.Context, id int) (*models.Vehicle, error)
	PatenteInUseFn func(ctx context.Context, patente string, excludeID int) (bool, error)
	CreateFn       func(ctx context.Context, v models.Vehicle) (int, error)
	UpdateFn       func(ctx context.Context, v models.Vehicle) error
	DeleteFn       func(ctx context.Context, id int) error
	CountFn        func(ctx context.Context) (int, error)

	createCalls []models.Vehicle
	deleteCalls []int
}

func (f *fakeVehicles) List(ctx context.Context) ([]models.Vehicle, error) {
	if f.ListFn == nil {
		return nil, nil
	}
	return f.ListFn(ctx)
}

func (f *fakeVehicles) GetByID(ctx context.Context, id int) (*models.Vehicle, error) {
	if f.GetByIDFn == nil {
		return nil, nil
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeVehicles) PatenteInUse(ctx context.Context, patente string, excludeID int) (bool, error) {
	if f.PatenteInUseFn == nil {
		return false, nil
	}
	return f.PatenteInUseFn(ctx, patente, excludeID)
}

func (f *fakeVehicles) Create(ctx context.Context, v models.Vehicle) (int, error) {
	f.createCalls = append(f.createCalls, v)
	if f.CreateFn == nil {
		return 0, nil
	}
	return f.CreateFn(ctx, v)
}

func (f *fakeVehicles) Update(ctx context.Context, v models.Vehicle) error {
	if f.UpdateFn == nil {
		return nil
	}
	return f.UpdateFn(ctx, v)
}

func (f *fakeVehicles) Delete(ctx context.Context, id int) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.DeleteFn == nil {
		return nil
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeVehicles) Count(ctx context.Context) (int, error) {
	if f.CountFn == nil {
		return 0, nil
	}
	return f.CountFn(ctx)
}

type fakeDrivers struct {
	ListFn     func(ctx context.Context) ([]models.Driver, error)
	GetByIDFn  func(ctx context.Context, id int) (*models.Driver, error)
	DNIInUseFn func(ctx context.Context, dni string, excludeID int) (bool, error)
	CreateFn   func(ctx context.Context, d models.Driver) (int, error)
	UpdateFn   func(ctx context.Context, d models.Driver) error
	DeleteFn   func(ctx context.Context, id int) error
	CountFn    func(ctx context.Context) (int, error)
	ExpiringFn func(ctx context.Context, deadline time.Time) ([]models.Driver, error)

	expiringCalls []time.Time
}

func (f *fakeDrivers) List(ctx context.Context) ([]models.Driver, error) {
	if f.ListFn == nil {
		return nil, nil
	}
	return f.ListFn(ctx)
}

func (f *fakeDrivers) GetByID(ctx context.Context, id int) (*models.Driver, error) {
	if f.GetByIDFn == nil {
		return nil, nil
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeDrivers) DNIInUse(ctx context.Context, dni string, excludeID int) (bool, error) {
	if f.DNIInUseFn == nil {
		return false, nil
	}
	return f.DNIInUseFn(ctx, dni, excludeID)
}

func (f *fakeDrivers) Create(ctx context.Context, d models.Driver) (int, error) {
	if f.CreateFn == nil {
		return 0, nil
	}
	return f.CreateFn(ctx, d)
}

func (f *fakeDrivers) Update(ctx context.Context, d models.Driver) error {
	if f.UpdateFn == nil {
		return nil
	}
	return f.UpdateFn(ctx, d)
}

func (f *fakeDrivers) Delete(ctx context.Context, id int) error {
	if f.DeleteFn == nil {
		return nil
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeDrivers) Count(ctx context.Context) (int, error) {
	if f.CountFn == nil {
		return 0, nil
	}
	return f.CountFn(ctx)
}

func (f *fakeDrivers) LicensesExpiringBefore(ctx context.Context, deadline time.Time) ([]models.Driver, error) {
	f.expiringCalls = append(f.expiringCalls, deadline)
	if f.ExpiringFn == nil {
		return nil, nil
	}
	return f.ExpiringFn(ctx, deadline)
}

type fakeTrips struct {
	ListFn           func(ctx context.Context) ([]models.TripDetail, error)
	GetByIDFn        func(ctx context.Context, id int) (*models.TripDetail, error)
	ExistsFn         func(ctx context.Context, id int) (bool, error)
	CreateFn         func(ctx context.Context, t models.Trip) (int, error)
	UpdateFn         func(ctx context.Context, t models.Trip) error
	DeleteFn         func(ctx context.Context, id int) error
	ListByVehicleFn  func(ctx context.Context, vehicleID int) ([]models.TripDetail, error)
	ListByDriverFn   func(ctx context.Context, driverID int) ([]models.TripDetail, error)
	TotalByVehicleFn func(ctx context.Context, vehicleID int) (float64, error)
	TotalByDriverFn  func(ctx context.Context, driverID int) (float64, error)
	CountFn          func(ctx context.Context) (int, error)
	LatestFn         func(ctx context.Context, limit int) ([]models.TripDetail, error)

	createCalls []models.Trip
	updateCalls []models.Trip
	deleteCalls []int
}

func (f *fakeTrips) List(ctx context.Context) ([]models.TripDetail, error) {
	if f.ListFn == nil {
		return nil, nil
	}
	return f.ListFn(ctx)
}

func (f *fakeTrips) GetByID(ctx context.Context, id int) (*models.TripDetail, error) {
	if f.GetByIDFn == nil {
		return nil, nil
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeTrips) Exists(ctx context.Context, id int) (bool, error) {
	if f.ExistsFn == nil {
		return false, nil
	}
	return f.ExistsFn(ctx, id)
}

func (f *fakeTrips) Create(ctx context.Context, t models.Trip) (int, error) {
	f.createCalls = append(f.createCalls, t)
	if f.CreateFn == nil {
		return 0, nil
	}
	return f.CreateFn(ctx, t)
}

func (f *fakeTrips) Update(ctx context.Context, t models.Trip) error {
	f.updateCalls = append(f.updateCalls, t)
	if f.UpdateFn == nil {
		return nil
	}
	return f.UpdateFn(ctx, t)
}

func (f *fakeTrips) Delete(ctx context.Context, id int) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.DeleteFn == nil {
		return nil
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeTrips) ListByVehicle(ctx context.Context, vehicleID int) ([]models.TripDetail, error) {
	if f.ListByVehicleFn == nil {
		return nil, nil
	}
	return f.ListByVehicleFn(ctx, vehicleID)
}

func (f *fakeTrips) ListByDriver(ctx context.Context, driverID int) ([]models.TripDetail, error) {
	if f.ListByDriverFn == nil {
		return nil, nil
	}
	return f.ListByDriverFn(ctx, driverID)
}

func (f *fakeTrips) TotalKilometrosByVehicle(ctx context.Context, vehicleID int) (float64, error) {
	if f.TotalByVehicleFn == nil {
		return 0, nil
	}
	return f.TotalByVehicleFn(ctx, vehicleID)
}

func (f *fakeTrips) TotalKilometrosByDriver(ctx context.Context, driverID int) (float64, error) {
	if f.TotalByDriverFn == nil {
		return 0, nil
	}
	return f.TotalByDriverFn(ctx, driverID)
}

func (f *fakeTrips) Count(ctx context.Context) (int, error) {
	if f.CountFn == nil {
		return 0, nil
	}
	return f.CountFn(ctx)
}

func (f *fakeTrips) Latest(ctx context.Context, limit int) ([]models.TripDetail, error) {
	if f.LatestFn == nil {
		return nil, nil
	}
	return f.LatestFn(ctx, limit)
}
