package service

import (
	"context"

	"transport_fleet/internal/models"
	"transport_fleet/internal/repository"
)

// TripService orchestrates trip CRUD. Creation and update validate the date
// order and that the referenced vehicle and driver exist.
type TripService struct {
	trips    repository.Trips
	vehicles repository.Vehicles
	drivers  repository.Drivers
}

func NewTripService(trips repository.Trips, vehicles repository.Vehicles, drivers repository.Drivers) *TripService {
	return &TripService{trips: trips, vehicles: vehicles, drivers: drivers}
}

func (s *TripService) List(ctx context.Context) ([]models.TripDetail, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()
	return s.trips.List(ctx)
}

func (s *TripService) Get(ctx context.Context, id int) (*models.TripDetail, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}
	return t, nil
}

// checkReferences verifies the vehicle and driver a trip points at.
func (s *TripService) checkReferences(ctx context.Context, t models.Trip) error {
	v, err := s.vehicles.GetByID(ctx, t.VehiculoID)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrVehicleNotFound
	}

	d, err := s.drivers.GetByID(ctx, t.ConductorID)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrDriverNotFound
	}
	return nil
}

func (s *TripService) Create(ctx context.Context, t models.Trip) (*models.Trip, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	if !t.FechaLlegada.After(t.FechaSalida) {
		return nil, ErrTripDates
	}
	if err := s.checkReferences(ctx, t); err != nil {
		return nil, err
	}

	id, err := s.trips.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

func (s *TripService) Update(ctx context.Context, t models.Trip) (*models.Trip, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	exists, err := s.trips.Exists(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTripNotFound
	}

	if !t.FechaLlegada.After(t.FechaSalida) {
		return nil, ErrTripDates
	}
	if err := s.checkReferences(ctx, t); err != nil {
		return nil, err
	}

	if err := s.trips.Update(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TripService) Delete(ctx context.Context, id int) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	exists, err := s.trips.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTripNotFound
	}
	return s.trips.Delete(ctx, id)
}

func (s *TripService) HistoryByVehicle(ctx context.Context, vehicleID int) (*models.Vehicle, []models.TripDetail, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, nil, err
	}
	if v == nil {
		return nil, nil, ErrVehicleNotFound
	}

	trips, err := s.trips.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, nil, err
	}
	return v, trips, nil
}

func (s *TripService) HistoryByDriver(ctx context.Context, driverID int) (*models.Driver, []models.TripDetail, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	d, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, ErrDriverNotFound
	}

	trips, err := s.trips.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, nil, err
	}
	return d, trips, nil
}

func (s *TripService) KilometrosByVehicle(ctx context.Context, vehicleID int) (*VehicleTotals, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}

	total, err := s.trips.TotalKilometrosByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return &VehicleTotals{Vehiculo: *v, TotalKilometros: total}, nil
}

func (s *TripService) KilometrosByDriver(ctx context.Context, driverID int) (*DriverTotals, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	d, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDriverNotFound
	}

	total, err := s.trips.TotalKilometrosByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return &DriverTotals{Conductor: *d, TotalKilometros: total}, nil
}
