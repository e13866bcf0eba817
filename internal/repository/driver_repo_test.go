package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"transport_fleet/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDriverRepo(t *testing.T) (*DriverRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewDriverRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

var driverCols = []string{"id", "nombre", "apellido", "dni", "licencia", "fecha_vencimiento_licencia"}

func TestDriverRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := newMockDriverRepo(t)
	defer cleanup()

	vence := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectDriverByIDSQL)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(driverCols).
			AddRow(2, "Juan", "Pérez", "30111222", "C1-998", vence))

	d, err := repo.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == nil || d.DNI != "30111222" || !d.FechaVencimientoLicencia.Equal(vence) {
		t.Fatalf("unexpected driver: %+v", d)
	}
}

func TestDriverRepository_Create_DuplicateDNI(t *testing.T) {
	repo, mock, cleanup := newMockDriverRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertDriverSQL)).
		WithArgs("Juan", "Pérez", "30111222", "C1-998", "2027-01-15 00:00:00").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: conductores.dni (2067)"))

	_, err := repo.Create(context.Background(), models.Driver{
		Nombre:                   "Juan",
		Apellido:                 "Pérez",
		DNI:                      "30111222",
		Licencia:                 "C1-998",
		FechaVencimientoLicencia: time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrDuplicateDNI) {
		t.Fatalf("expected ErrDuplicateDNI, got: %v", err)
	}
}

func TestDriverRepository_DNIInUse(t *testing.T) {
	repo, mock, cleanup := newMockDriverRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectDriverDNI)).
		WithArgs("30111222", 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	taken, err := repo.DNIInUse(context.Background(), "30111222", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Fatalf("expected taken=false when only the excluded id holds the dni")
	}
}

func TestDriverRepository_LicensesExpiringBefore(t *testing.T) {
	repo, mock, cleanup := newMockDriverRepo(t)
	defer cleanup()

	deadline := time.Date(2026, 9, 27, 12, 0, 0, 0, time.UTC)
	vence := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectExpiringSQL)).
		WithArgs("2026-09-27 12:00:00").
		WillReturnRows(sqlmock.NewRows(driverCols).
			AddRow(2, "Juan", "Pérez", "30111222", "C1-998", vence))

	got, err := repo.LicensesExpiringBefore(context.Background(), deadline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected drivers: %+v", got)
	}
}
