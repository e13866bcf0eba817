package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"transport_fleet/internal/models"
	"transport_fleet/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-signing-secret")

// mockUsersRepo is a lightweight in-test mock for repository.Users.
type mockUsersRepo struct {
	CreateFn     func(nombre, email, hash string) (int, error)
	GetByEmailFn func(email string) (*models.User, error)

	createCalls []struct {
		nombre string
		email  string
		hash   string
	}
	getCalls []string
}

func (m *mockUsersRepo) Create(ctx context.Context, nombre, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		nombre string
		email  string
		hash   string
	}{nombre: nombre, email: email, hash: hash})
	return m.CreateFn(nombre, email, hash)
}

func (m *mockUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

// --- Register tests ---

func TestAuthService_Register_HashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(nombre, email, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	u, err := svc.Register(context.Background(), "Ana", "ana@x.com", "clave123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID != 42 || u.Nombre != "Ana" || u.Email != "ana@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.hash == "clave123" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(call.hash), []byte("clave123")); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(call.hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if cost != bcryptCost {
		t.Errorf("expected cost %d, got %d", bcryptCost, cost)
	}
}

func TestAuthService_Register_EmailAlreadyTaken(t *testing.T) {
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
		CreateFn: func(nombre, email, hash string) (int, error) {
			t.Fatal("Create should not be called when the email exists")
			return 0, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, err := svc.Register(context.Background(), "Ana", "ana@x.com", "clave123")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got: %v", err)
	}
}

func TestAuthService_Register_ConstraintRace(t *testing.T) {
	// GetByEmail sees nothing, the insert still hits the UNIQUE constraint.
	mock := &mockUsersRepo{
		CreateFn: func(nombre, email, hash string) (int, error) {
			return 0, repository.ErrDuplicateEmail
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, err := svc.Register(context.Background(), "Ana", "ana@x.com", "clave123")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got: %v", err)
	}
}

func TestAuthService_Register_RepoError(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(nombre, email, hash string) (int, error) {
			return 0, errors.New("db down")
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, err := svc.Register(context.Background(), "Ana", "ana@x.com", "clave123")
	if err == nil || errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected plain repo error, got: %v", err)
	}
}

// --- Login tests ---

func TestAuthService_Login_SuccessRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	user := &models.User{ID: 7, Nombre: "Ana", Email: "ana@x.com", PasswordHash: string(hash)}

	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email != "ana@x.com" {
				t.Fatalf("expected email 'ana@x.com', got %q", email)
			}
			return user, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	token, u, err := svc.Login(context.Background(), "ana@x.com", "clave123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if u.ID != 7 || u.Nombre != "Ana" {
		t.Fatalf("unexpected user: %+v", u)
	}

	// The issued token must parse back to the same identity.
	ident, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if ident.UserID != 7 || ident.Email != "ana@x.com" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, _, err := svc.Login(context.Background(), "ghost@x.com", "clave123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correcta1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, _, err = svc.Login(context.Background(), "ana@x.com", "incorrecta1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, _, err := svc.Login(context.Background(), "ana@x.com", "clave123")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected plain repo error, got: %v", err)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := NewAuthService(&mockUsersRepo{}, testSecret)
	_, err := svc.ParseToken("not-a-jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	svc := NewAuthService(&mockUsersRepo{}, testSecret)

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 5,
		Email:  "ana@x.com",
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = svc.ParseToken(badToken)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	mock := &mockUsersRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(mock, testSecret)
	svc.ttl = -time.Minute // issue already-expired tokens

	token, _, err := svc.Login(context.Background(), "ana@x.com", "clave123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	_, err = svc.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := NewAuthService(&mockUsersRepo{}, testSecret)

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 12,
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = svc.ParseToken(tokenStr)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got: %v", err)
	}
}
