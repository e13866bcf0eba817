package service

import (
	"context"
	"errors"

	"transport_fleet/internal/models"
	"transport_fleet/internal/repository"
)

// DriverService orchestrates driver CRUD with DNI uniqueness.
type DriverService struct {
	drivers repository.Drivers
}

func NewDriverService(drivers repository.Drivers) *DriverService {
	return &DriverService{drivers: drivers}
}

func (s *DriverService) List(ctx context.Context) ([]models.Driver, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()
	return s.drivers.List(ctx)
}

func (s *DriverService) Get(ctx context.Context, id int) (*models.Driver, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	d, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDriverNotFound
	}
	return d, nil
}

func (s *DriverService) Create(ctx context.Context, d models.Driver) (*models.Driver, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	taken, err := s.drivers.DNIInUse(ctx, d.DNI, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateDNI
	}

	id, err := s.drivers.Create(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDNI) {
			return nil, ErrDuplicateDNI
		}
		return nil, err
	}
	d.ID = id
	return &d, nil
}

func (s *DriverService) Update(ctx context.Context, d models.Driver) (*models.Driver, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	existing, err := s.drivers.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrDriverNotFound
	}

	taken, err := s.drivers.DNIInUse(ctx, d.DNI, d.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateDNI
	}

	if err := s.drivers.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicateDNI) {
			return nil, ErrDuplicateDNI
		}
		return nil, err
	}
	return &d, nil
}

func (s *DriverService) Delete(ctx context.Context, id int) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	existing, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrDriverNotFound
	}
	return s.drivers.Delete(ctx, id)
}
