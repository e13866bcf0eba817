package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transport_fleet/internal/models"
)

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

var _ Vehicles = (*VehicleRepository)(nil)

const (
	selectVehiclesSQL    = `SELECT id, marca, modelo, patente, anio, capacidad_carga FROM vehiculos ORDER BY id`
	selectVehicleByIDSQL = `SELECT id, marca, modelo, patente, anio, capacidad_carga FROM vehiculos WHERE id = ?`
	selectVehiclePatente = `SELECT id FROM vehiculos WHERE patente = ? AND id != ?`
	insertVehicleSQL     = `INSERT INTO vehiculos (marca, modelo, patente, anio, capacidad_carga) VALUES (?, ?, ?, ?, ?)`
	updateVehicleSQL     = `UPDATE vehiculos SET marca = ?, modelo = ?, patente = ?, anio = ?, capacidad_carga = ? WHERE id = ?`
	deleteVehicleSQL     = `DELETE FROM vehiculos WHERE id = ?`
	countVehiclesSQL     = `SELECT COUNT(*) FROM vehiculos`
)

func (r *VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, selectVehiclesSQL)
	if err != nil {
		return nil, fmt.Errorf("select vehiculos: %w", err)
	}
	defer rows.Close()

	out := make([]models.Vehicle, 0, 16)
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Marca, &v.Modelo, &v.Patente, &v.Anio, &v.CapacidadCarga); err != nil {
			return nil, fmt.Errorf("scan vehiculo: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a vehicle. Returns (nil, nil) if not found.
func (r *VehicleRepository) GetByID(ctx context.Context, id int) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.db.QueryRowContext(ctx, selectVehicleByIDSQL, id).
		Scan(&v.ID, &v.Marca, &v.Modelo, &v.Patente, &v.Anio, &v.CapacidadCarga)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select vehiculo %d: %w", id, err)
	}
	return &v, nil
}

// PatenteInUse reports whether another vehicle (id != excludeID) already holds
// the plate. Pass excludeID 0 on create.
func (r *VehicleRepository) PatenteInUse(ctx context.Context, patente string, excludeID int) (bool, error) {
	var id int
	err := r.db.QueryRowContext(ctx, selectVehiclePatente, patente, excludeID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check patente %q: %w", patente, err)
	}
	return true, nil
}

func (r *VehicleRepository) Create(ctx context.Context, v models.Vehicle) (int, error) {
	res, err := r.db.ExecContext(ctx, insertVehicleSQL, v.Marca, v.Modelo, v.Patente, v.Anio, v.CapacidadCarga)
	if err != nil {
		if isUniqueViolation(err, "vehiculos.patente") {
			return 0, ErrDuplicatePatente
		}
		return 0, fmt.Errorf("insert vehiculo %q: %w", v.Patente, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for vehiculo %q: %w", v.Patente, err)
	}
	return int(lastID), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v models.Vehicle) error {
	_, err := r.db.ExecContext(ctx, updateVehicleSQL, v.Marca, v.Modelo, v.Patente, v.Anio, v.CapacidadCarga, v.ID)
	if err != nil {
		if isUniqueViolation(err, "vehiculos.patente") {
			return ErrDuplicatePatente
		}
		return fmt.Errorf("update vehiculo %d: %w", v.ID, err)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteVehicleSQL, id); err != nil {
		return fmt.Errorf("delete vehiculo %d: %w", id, err)
	}
	return nil
}

func (r *VehicleRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countVehiclesSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count vehiculos: %w", err)
	}
	return n, nil
}
