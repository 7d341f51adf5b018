package store

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
)

// ErrDuplicateUser is returned when a username is already taken.
var ErrDuplicateUser = errors.New("user already exists")

// ErrUserNotFound is returned when no record exists for a username.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for credential storage.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PostgresUserRepository is the PostgreSQL implementation of UserRepository.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new instance of PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser inserts a new user record. The users table has a primary key on
// username, so a second registration for the same name maps to ErrDuplicateUser
// and leaves the original record untouched.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (username, password_hash)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUser
		}
		log.Printf("Error inserting user into database: %v", err)
		return err
	}
	return nil
}

// FindByUsername fetches a single user record by its username.
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT username, password_hash, created_at
        FROM users
        WHERE username = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(&user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Printf("Error fetching user %q: %v", username, err)
		return nil, err
	}
	return &user, nil
}
