package repository

import (
	"context"

	"groupenroll-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BrokerRepository handles database operations for broker accounts
type BrokerRepository struct {
	db *pgxpool.Pool
}

// NewBrokerRepository creates a new broker repository
func NewBrokerRepository(db *pgxpool.Pool) *BrokerRepository {
	return &BrokerRepository{db: db}
}

// Create creates a new broker account
func (r *BrokerRepository) Create(ctx context.Context, broker *models.Broker) error {
	query := `
		INSERT INTO brokers (email, password_hash, name, agency_name, license_no)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		broker.Email,
		broker.PasswordHash,
		broker.Name,
		broker.AgencyName,
		broker.LicenseNo,
	).Scan(&broker.ID, &broker.CreatedAt, &broker.UpdatedAt)

	return err
}

// GetByID retrieves a broker by ID
func (r *BrokerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Broker, error) {
	broker := &models.Broker{}
	query := `
		SELECT id, email, password_hash, name, agency_name, license_no, created_at, updated_at
		FROM brokers
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&broker.ID,
		&broker.Email,
		&broker.PasswordHash,
		&broker.Name,
		&broker.AgencyName,
		&broker.LicenseNo,
		&broker.CreatedAt,
		&broker.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return broker, nil
}

// GetByEmail retrieves a broker by email
func (r *BrokerRepository) GetByEmail(ctx context.Context, email string) (*models.Broker, error) {
	broker := &models.Broker{}
	query := `
		SELECT id, email, password_hash, name, agency_name, license_no, created_at, updated_at
		FROM brokers
		WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&broker.ID,
		&broker.Email,
		&broker.PasswordHash,
		&broker.Name,
		&broker.AgencyName,
		&broker.LicenseNo,
		&broker.CreatedAt,
		&broker.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return broker, nil
}
