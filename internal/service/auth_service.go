package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transport_fleet/internal/models"
	"transport_fleet/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL   = 4 * time.Hour
	bcryptCost = 12
)

// AuthService handles registration, login and token verification.
type AuthService struct {
	users  repository.Users
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repository.Users, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: tokenTTL}
}

// Claims carried inside every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

// Register hashes the password and creates the user. The email pre-check gives
// the friendly error on the common path; the UNIQUE constraint (mapped by the
// repository) closes the check-then-insert race.
func (s *AuthService) Register(ctx context.Context, nombre, email, password string) (*models.User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, nombre, email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &models.User{ID: id, Nombre: nombre, Email: email}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials; the distinction is only
// visible in server logs.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ParseToken verifies signature and expiry, returning the identity carried in
// the claims. Expiry and every other failure are reported as distinct errors.
func (s *AuthService) ParseToken(accessToken string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: u.ID,
		Email:  u.Email,
	})
	return token.SignedString(s.secret)
}
