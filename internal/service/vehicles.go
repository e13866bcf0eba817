package service

import (
	"context"
	"errors"

	"transport_fleet/internal/models"
	"transport_fleet/internal/repository"
)

// VehicleService orchestrates vehicle CRUD with plate uniqueness.
type VehicleService struct {
	vehicles repository.Vehicles
}

func NewVehicleService(vehicles repository.Vehicles) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()
	return s.vehicles.List(ctx)
}

func (s *VehicleService) Get(ctx context.Context, id int) (*models.Vehicle, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}

func (s *VehicleService) Create(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	taken, err := s.vehicles.PatenteInUse(ctx, v.Patente, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicatePatente
	}

	id, err := s.vehicles.Create(ctx, v)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePatente) {
			return nil, ErrDuplicatePatente
		}
		return nil, err
	}
	v.ID = id
	return &v, nil
}

func (s *VehicleService) Update(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	existing, err := s.vehicles.GetByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrVehicleNotFound
	}

	taken, err := s.vehicles.PatenteInUse(ctx, v.Patente, v.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicatePatente
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicatePatente) {
			return nil, ErrDuplicatePatente
		}
		return nil, err
	}
	return &v, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	existing, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrVehicleNotFound
	}
	return s.vehicles.Delete(ctx, id)
}
