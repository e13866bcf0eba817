package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transport_fleet/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO usuarios (nombre, email, password_hash) VALUES (?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, nombre, email, password_hash FROM usuarios WHERE email = ?`
)

// Create inserts a new user and returns its ID. A UNIQUE violation on the
// email column comes back as ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, nombre, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, nombre, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err, "usuarios.email") {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert usuario %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for usuario %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select usuario %q: %w", email, err)
	}
	return &u, nil
}
