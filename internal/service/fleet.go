package service

import (
	"context"
	"time"

	"transport_fleet/internal/models"
	"transport_fleet/internal/repository"
)

// Number of recent trips included in a summary frame.
const summaryTripLimit = 5

// FleetService builds the aggregate snapshot served over the websocket feed.
type FleetService struct {
	vehicles repository.Vehicles
	drivers  repository.Drivers
	trips    repository.Trips
}

func NewFleetService(vehicles repository.Vehicles, drivers repository.Drivers, trips repository.Trips) *FleetService {
	return &FleetService{vehicles: vehicles, drivers: drivers, trips: trips}
}

func (s *FleetService) Summary(ctx context.Context) (models.FleetSummary, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var (
		sum models.FleetSummary
		err error
	)
	if sum.Vehiculos, err = s.vehicles.Count(ctx); err != nil {
		return models.FleetSummary{}, err
	}
	if sum.Conductores, err = s.drivers.Count(ctx); err != nil {
		return models.FleetSummary{}, err
	}
	if sum.Viajes, err = s.trips.Count(ctx); err != nil {
		return models.FleetSummary{}, err
	}
	if sum.UltimosViajes, err = s.trips.Latest(ctx, summaryTripLimit); err != nil {
		return models.FleetSummary{}, err
	}
	sum.GeneradoEn = time.Now().UTC()
	return sum, nil
}
