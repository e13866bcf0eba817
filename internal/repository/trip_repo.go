package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transport_fleet/internal/models"
)

type TripRepository struct {
	db *sql.DB
}

func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

var _ Trips = (*TripRepository)(nil)

const tripDetailColumns = `v.id, v.vehiculo_id, v.conductor_id, v.fecha_salida, v.fecha_llegada,
       v.origen, v.destino, v.kilometros, v.observaciones,
       ve.marca, ve.modelo, ve.patente,
       c.nombre, c.apellido, c.dni`

const tripDetailJoins = `
  FROM viajes v
  JOIN vehiculos ve ON v.vehiculo_id = ve.id
  JOIN conductores c ON v.conductor_id = c.id`

const (
	selectTripsSQL = `SELECT ` + tripDetailColumns + tripDetailJoins + `
  ORDER BY v.fecha_salida DESC`
	selectTripByIDSQL = `SELECT ` + tripDetailColumns + tripDetailJoins + `
  WHERE v.id = ?`
	selectTripsByVehicleSQL = `SELECT ` + tripDetailColumns + tripDetailJoins + `
  WHERE v.vehiculo_id = ?
  ORDER BY v.fecha_salida DESC`
	selectTripsByDriverSQL = `SELECT ` + tripDetailColumns + tripDetailJoins + `
  WHERE v.conductor_id = ?
  ORDER BY v.fecha_salida DESC`
	selectLatestTripsSQL = `SELECT ` + tripDetailColumns + tripDetailJoins + `
  ORDER BY v.fecha_salida DESC LIMIT ?`

	tripExistsSQL = `SELECT id FROM viajes WHERE id = ?`
	insertTripSQL = `INSERT INTO viajes (vehiculo_id, conductor_id, fecha_salida, fecha_llegada, origen, destino, kilometros, observaciones) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	updateTripSQL = `UPDATE viajes SET vehiculo_id = ?, conductor_id = ?, fecha_salida = ?, fecha_llegada = ?, origen = ?, destino = ?, kilometros = ?, observaciones = ? WHERE id = ?`
	deleteTripSQL = `DELETE FROM viajes WHERE id = ?`
	countTripsSQL = `SELECT COUNT(*) FROM viajes`

	totalKmByVehicleSQL = `SELECT COALESCE(SUM(kilometros), 0) FROM viajes WHERE vehiculo_id = ?`
	totalKmByDriverSQL  = `SELECT COALESCE(SUM(kilometros), 0) FROM viajes WHERE conductor_id = ?`
)

func scanTripDetail(row interface{ Scan(...any) error }) (models.TripDetail, error) {
	var (
		t   models.TripDetail
		obs sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.VehiculoID, &t.ConductorID, &t.FechaSalida, &t.FechaLlegada,
		&t.Origen, &t.Destino, &t.Kilometros, &obs,
		&t.Marca, &t.Modelo, &t.Patente,
		&t.ConductorNombre, &t.ConductorApellido, &t.ConductorDNI,
	)
	if err != nil {
		return t, err
	}
	t.FechaSalida = t.FechaSalida.UTC()
	t.FechaLlegada = t.FechaLlegada.UTC()
	if obs.Valid {
		t.Observaciones = &obs.String
	}
	return t, nil
}

func (r *TripRepository) List(ctx context.Context) ([]models.TripDetail, error) {
	return r.queryTrips(ctx, selectTripsSQL)
}

// GetByID fetches a trip with its joined vehicle/driver columns.
// Returns (nil, nil) if not found.
func (r *TripRepository) GetByID(ctx context.Context, id int) (*models.TripDetail, error) {
	t, err := scanTripDetail(r.db.QueryRowContext(ctx, selectTripByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select viaje %d: %w", id, err)
	}
	return &t, nil
}

func (r *TripRepository) Exists(ctx context.Context, id int) (bool, error) {
	var got int
	err := r.db.QueryRowContext(ctx, tripExistsSQL, id).Scan(&got)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check viaje %d: %w", id, err)
	}
	return true, nil
}

func (r *TripRepository) Create(ctx context.Context, t models.Trip) (int, error) {
	res, err := r.db.ExecContext(ctx, insertTripSQL,
		t.VehiculoID, t.ConductorID,
		t.FechaSalida.UTC().Format(timeLayout), t.FechaLlegada.UTC().Format(timeLayout),
		t.Origen, t.Destino, t.Kilometros, t.Observaciones)
	if err != nil {
		return 0, fmt.Errorf("insert viaje: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for viaje: %w", err)
	}
	return int(lastID), nil
}

func (r *TripRepository) Update(ctx context.Context, t models.Trip) error {
	_, err := r.db.ExecContext(ctx, updateTripSQL,
		t.VehiculoID, t.ConductorID,
		t.FechaSalida.UTC().Format(timeLayout), t.FechaLlegada.UTC().Format(timeLayout),
		t.Origen, t.Destino, t.Kilometros, t.Observaciones, t.ID)
	if err != nil {
		return fmt.Errorf("update viaje %d: %w", t.ID, err)
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteTripSQL, id); err != nil {
		return fmt.Errorf("delete viaje %d: %w", id, err)
	}
	return nil
}

func (r *TripRepository) ListByVehicle(ctx context.Context, vehicleID int) ([]models.TripDetail, error) {
	return r.queryTrips(ctx, selectTripsByVehicleSQL, vehicleID)
}

func (r *TripRepository) ListByDriver(ctx context.Context, driverID int) ([]models.TripDetail, error) {
	return r.queryTrips(ctx, selectTripsByDriverSQL, driverID)
}

func (r *TripRepository) TotalKilometrosByVehicle(ctx context.Context, vehicleID int) (float64, error) {
	var total float64
	if err := r.db.QueryRowContext(ctx, totalKmByVehicleSQL, vehicleID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum kilometros for vehiculo %d: %w", vehicleID, err)
	}
	return total, nil
}

func (r *TripRepository) TotalKilometrosByDriver(ctx context.Context, driverID int) (float64, error) {
	var total float64
	if err := r.db.QueryRowContext(ctx, totalKmByDriverSQL, driverID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum kilometros for conductor %d: %w", driverID, err)
	}
	return total, nil
}

func (r *TripRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countTripsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count viajes: %w", err)
	}
	return n, nil
}

func (r *TripRepository) Latest(ctx context.Context, limit int) ([]models.TripDetail, error) {
	return r.queryTrips(ctx, selectLatestTripsSQL, limit)
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]models.TripDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select viajes: %w", err)
	}
	defer rows.Close()

	out := make([]models.TripDetail, 0, 32)
	for rows.Next() {
		t, err := scanTripDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan viaje: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
