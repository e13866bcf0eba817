package handlers

import (
	"context"
	"net/http"

	"transport_fleet/internal/models"
	"transport_fleet/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginUser    *models.User
	loginErr     error
	parseIdent   *service.Identity
	parseErr     error

	lastRegisterNombre string
	lastRegisterEmail  string
	lastLoginEmail     string
	lastLoginPassword  string
	lastParseToken     string
}

func (m *mockAuth) Register(ctx context.Context, nombre, email, password string) (*models.User, error) {
	m.lastRegisterNombre = nombre
	m.lastRegisterEmail = email
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (*service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

type mockVehicles struct {
	list      []models.Vehicle
	single    *models.Vehicle
	created   *models.Vehicle
	updated   *models.Vehicle
	err       error
	deleteErr error

	lastCreated models.Vehicle
	lastUpdated models.Vehicle
	lastGetID   int
	deleteCalls []int
}

func (m *mockVehicles) List(ctx context.Context) ([]models.Vehicle, error) {
	return m.list, m.err
}
func (m *mockVehicles) Get(ctx context.Context, id int) (*models.Vehicle, error) {
	m.lastGetID = id
	return m.single, m.err
}
func (m *mockVehicles) Create(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	m.lastCreated = v
	return m.created, m.err
}
func (m *mockVehicles) Update(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	m.lastUpdated = v
	return m.updated, m.err
}
func (m *mockVehicles) Delete(ctx context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.deleteErr
}

type mockDrivers struct {
	list    []models.Driver
	single  *models.Driver
	created *models.Driver
	updated *models.Driver
	err     error

	lastCreated models.Driver
	deleteCalls []int
}

func (m *mockDrivers) List(ctx context.Context) ([]models.Driver, error) {
	return m.list, m.err
}
func (m *mockDrivers) Get(ctx context.Context, id int) (*models.Driver, error) {
	return m.single, m.err
}
func (m *mockDrivers) Create(ctx context.Context, d models.Driver) (*models.Driver, error) {
	m.lastCreated = d
	return m.created, m.err
}
func (m *mockDrivers) Update(ctx context.Context, d models.Driver) (*models.Driver, error) {
	return m.updated, m.err
}
func (m *mockDrivers) Delete(ctx context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.err
}

type mockTrips struct {
	list      []models.TripDetail
	single    *models.TripDetail
	created   *models.Trip
	updated   *models.Trip
	vehicle   *models.Vehicle
	driver    *models.Driver
	vTotals   *service.VehicleTotals
	dTotals   *service.DriverTotals
	err       error
	deleteErr error

	lastCreated models.Trip
	createCalls int
	deleteCalls []int
}

func (m *mockTrips) List(ctx context.Context) ([]models.TripDetail, error) {
	return m.list, m.err
}
func (m *mockTrips) Get(ctx context.Context, id int) (*models.TripDetail, error) {
	return m.single, m.err
}
func (m *mockTrips) Create(ctx context.Context, t models.Trip) (*models.Trip, error) {
	m.createCalls++
	m.lastCreated = t
	return m.created, m.err
}
func (m *mockTrips) Update(ctx context.Context, t models.Trip) (*models.Trip, error) {
	return m.updated, m.err
}
func (m *mockTrips) Delete(ctx context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.deleteErr
}
func (m *mockTrips) HistoryByVehicle(ctx context.Context, vehicleID int) (*models.Vehicle, []models.TripDetail, error) {
	return m.vehicle, m.list, m.err
}
func (m *mockTrips) HistoryByDriver(ctx context.Context, driverID int) (*models.Driver, []models.TripDetail, error) {
	return m.driver, m.list, m.err
}
func (m *mockTrips) KilometrosByVehicle(ctx context.Context, vehicleID int) (*service.VehicleTotals, error) {
	return m.vTotals, m.err
}
func (m *mockTrips) KilometrosByDriver(ctx context.Context, driverID int) (*service.DriverTotals, error) {
	return m.dTotals, m.err
}

type mockFleet struct {
	summary models.FleetSummary
	err     error
}

func (m *mockFleet) Summary(ctx context.Context) (models.FleetSummary, error) {
	return m.summary, m.err
}

// ---- Shared Test Helpers ----

// authOK is a ParseToken mock that admits any bearer token.
func authOK() *mockAuth {
	return &mockAuth{parseIdent: &service.Identity{UserID: 1, Email: "ana@x.com"}}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
