package store

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
)

// AlertRepository defines the interface for the append-only alert log.
// There are deliberately no update or delete operations.
type AlertRepository interface {
	Append(ctx context.Context, alert *domain.Alert) error
	List(ctx context.Context) ([]domain.Alert, error)
}

// PostgresAlertRepository is the PostgreSQL implementation of AlertRepository.
type PostgresAlertRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAlertRepository creates a new instance of PostgresAlertRepository.
func NewPostgresAlertRepository(db *pgxpool.Pool) *PostgresAlertRepository {
	return &PostgresAlertRepository{db: db}
}

// Append inserts a new alert record.
func (r *PostgresAlertRepository) Append(ctx context.Context, alert *domain.Alert) error {
	query := `
        INSERT INTO alerts (id, username, phone, latitude, longitude, location, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.Username,
		alert.Phone,
		alert.Latitude,
		alert.Longitude,
		alert.Location,
		alert.CreatedAt,
	)
	if err != nil {
		log.Printf("Error inserting alert into database: %v", err)
		return err
	}
	return nil
}

// List returns every logged alert in insertion order.
func (r *PostgresAlertRepository) List(ctx context.Context) ([]domain.Alert, error) {
	query := `
        SELECT id, username, phone, latitude, longitude, location, created_at
        FROM alerts
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error listing alerts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(&a.ID, &a.Username, &a.Phone, &a.Latitude, &a.Longitude, &a.Location, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
