package repository

import (
	"context"
	"fmt"

	"groupenroll-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (
			broker_id, status, name, tax_id, employee_count, owners,
			selected_carrier, selected_plan_id, has_prior_coverage,
			prior_carrier, renewal_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		company.BrokerID,
		company.Status,
		company.Name,
		company.TaxID,
		company.EmployeeCount,
		company.Owners,
		company.SelectedCarrier,
		company.SelectedPlanID,
		company.HasPriorCoverage,
		company.PriorCarrier,
		company.RenewalDate,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)

	return err
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, broker_id, status, name, tax_id, employee_count, owners,
			selected_carrier, selected_plan_id, has_prior_coverage,
			prior_carrier, renewal_date,
			created_at, updated_at, submitted_at
		FROM companies
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.BrokerID,
		&company.Status,
		&company.Name,
		&company.TaxID,
		&company.EmployeeCount,
		&company.Owners,
		&company.SelectedCarrier,
		&company.SelectedPlanID,
		&company.HasPriorCoverage,
		&company.PriorCarrier,
		&company.RenewalDate,
		&company.CreatedAt,
		&company.UpdatedAt,
		&company.SubmittedAt,
	)

	if err != nil {
		return nil, err
	}

	return company, nil
}

// Update updates a company
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies SET
			status = $2,
			name = $3,
			tax_id = $4,
			employee_count = $5,
			owners = $6,
			selected_carrier = $7,
			selected_plan_id = $8,
			has_prior_coverage = $9,
			prior_carrier = $10,
			renewal_date = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		company.ID,
		company.Status,
		company.Name,
		company.TaxID,
		company.EmployeeCount,
		company.Owners,
		company.SelectedCarrier,
		company.SelectedPlanID,
		company.HasPriorCoverage,
		company.PriorCarrier,
		company.RenewalDate,
	).Scan(&company.UpdatedAt)

	return err
}

// MarkSubmitted sets the submitted status and timestamp
func (r *CompanyRepository) MarkSubmitted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE companies SET
			status = $2,
			submitted_at = NOW(),
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.StatusSubmitted)
	return err
}

// ListByBrokerID retrieves all companies for a broker
func (r *CompanyRepository) ListByBrokerID(ctx context.Context, brokerID uuid.UUID, status *models.EnrollmentStatus, limit, offset int) ([]*models.Company, error) {
	query := `
		SELECT id, broker_id, status, name, tax_id, employee_count, owners,
			selected_carrier, selected_plan_id, has_prior_coverage,
			prior_carrier, renewal_date,
			created_at, updated_at, submitted_at
		FROM companies
		WHERE broker_id = $1`

	args := []interface{}{brokerID}
	argIndex := 2

	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *status)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// ListUpcomingRenewals retrieves companies whose renewal date falls within
// the next N days
func (r *CompanyRepository) ListUpcomingRenewals(ctx context.Context, days int) ([]*models.Company, error) {
	query := `
		SELECT id, broker_id, status, name, tax_id, employee_count, owners,
			selected_carrier, selected_plan_id, has_prior_coverage,
			prior_carrier, renewal_date,
			created_at, updated_at, submitted_at
		FROM companies
		WHERE renewal_date IS NOT NULL
			AND renewal_date >= CURRENT_DATE
			AND renewal_date <= CURRENT_DATE + $1 * INTERVAL '1 day'
		ORDER BY renewal_date ASC`

	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// Delete deletes a company
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM companies WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func scanCompanies(rows pgx.Rows) ([]*models.Company, error) {
	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		err := rows.Scan(
			&company.ID,
			&company.BrokerID,
			&company.Status,
			&company.Name,
			&company.TaxID,
			&company.EmployeeCount,
			&company.Owners,
			&company.SelectedCarrier,
			&company.SelectedPlanID,
			&company.HasPriorCoverage,
			&company.PriorCarrier,
			&company.RenewalDate,
			&company.CreatedAt,
			&company.UpdatedAt,
			&company.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}
