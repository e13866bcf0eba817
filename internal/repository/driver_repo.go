package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"transport_fleet/internal/models"
)

type DriverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

var _ Drivers = (*DriverRepository)(nil)

const (
	selectDriversSQL    = `SELECT id, nombre, apellido, dni, licencia, fecha_vencimiento_licencia FROM conductores ORDER BY id`
	selectDriverByIDSQL = `SELECT id, nombre, apellido, dni, licencia, fecha_vencimiento_licencia FROM conductores WHERE id = ?`
	selectDriverDNI     = `SELECT id FROM conductores WHERE dni = ? AND id != ?`
	insertDriverSQL     = `INSERT INTO conductores (nombre, apellido, dni, licencia, fecha_vencimiento_licencia) VALUES (?, ?, ?, ?, ?)`
	updateDriverSQL     = `UPDATE conductores SET nombre = ?, apellido = ?, dni = ?, licencia = ?, fecha_vencimiento_licencia = ? WHERE id = ?`
	deleteDriverSQL     = `DELETE FROM conductores WHERE id = ?`
	countDriversSQL     = `SELECT COUNT(*) FROM conductores`
	selectExpiringSQL   = `SELECT id, nombre, apellido, dni, licencia, fecha_vencimiento_licencia FROM conductores WHERE fecha_vencimiento_licencia <= ? ORDER BY fecha_vencimiento_licencia`
)

func scanDriver(row interface{ Scan(...any) error }) (models.Driver, error) {
	var d models.Driver
	err := row.Scan(&d.ID, &d.Nombre, &d.Apellido, &d.DNI, &d.Licencia, &d.FechaVencimientoLicencia)
	if err == nil {
		d.FechaVencimientoLicencia = d.FechaVencimientoLicencia.UTC()
	}
	return d, err
}

func (r *DriverRepository) List(ctx context.Context) ([]models.Driver, error) {
	return r.queryDrivers(ctx, selectDriversSQL)
}

// GetByID fetches a driver. Returns (nil, nil) if not found.
func (r *DriverRepository) GetByID(ctx context.Context, id int) (*models.Driver, error) {
	d, err := scanDriver(r.db.QueryRowContext(ctx, selectDriverByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select conductor %d: %w", id, err)
	}
	return &d, nil
}

// DNIInUse reports whether another driver (id != excludeID) already holds the
// DNI. Pass excludeID 0 on create.
func (r *DriverRepository) DNIInUse(ctx context.Context, dni string, excludeID int) (bool, error) {
	var id int
	err := r.db.QueryRowContext(ctx, selectDriverDNI, dni, excludeID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check dni %q: %w", dni, err)
	}
	return true, nil
}

func (r *DriverRepository) Create(ctx context.Context, d models.Driver) (int, error) {
	res, err := r.db.ExecContext(ctx, insertDriverSQL,
		d.Nombre, d.Apellido, d.DNI, d.Licencia, d.FechaVencimientoLicencia.UTC().Format(timeLayout))
	if err != nil {
		if isUniqueViolation(err, "conductores.dni") {
			return 0, ErrDuplicateDNI
		}
		return 0, fmt.Errorf("insert conductor %q: %w", d.DNI, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for conductor %q: %w", d.DNI, err)
	}
	return int(lastID), nil
}

func (r *DriverRepository) Update(ctx context.Context, d models.Driver) error {
	_, err := r.db.ExecContext(ctx, updateDriverSQL,
		d.Nombre, d.Apellido, d.DNI, d.Licencia, d.FechaVencimientoLicencia.UTC().Format(timeLayout), d.ID)
	if err != nil {
		if isUniqueViolation(err, "conductores.dni") {
			return ErrDuplicateDNI
		}
		return fmt.Errorf("update conductor %d: %w", d.ID, err)
	}
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteDriverSQL, id); err != nil {
		return fmt.Errorf("delete conductor %d: %w", id, err)
	}
	return nil
}

func (r *DriverRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countDriversSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count conductores: %w", err)
	}
	return n, nil
}

// LicensesExpiringBefore lists drivers whose license expires at or before the
// deadline, soonest first.
func (r *DriverRepository) LicensesExpiringBefore(ctx context.Context, deadline time.Time) ([]models.Driver, error) {
	return r.queryDrivers(ctx, selectExpiringSQL, deadline.UTC().Format(timeLayout))
}

func (r *DriverRepository) queryDrivers(ctx context.Context, query string, args ...any) ([]models.Driver, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select conductores: %w", err)
	}
	defer rows.Close()

	out := make([]models.Driver, 0, 16)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conductor: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
