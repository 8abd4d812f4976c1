package repository

import (
	"context"

	"groupenroll-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for uploaded documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			company_id, document_type, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.CompanyID,
		doc.DocumentType,
		doc.Filename,
		doc.MimeType,
		doc.Size,
		doc.StoragePath,
	).Scan(&doc.ID, &doc.CreatedAt)

	return err
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, company_id, document_type, filename, mime_type, size, storage_path, created_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.CompanyID,
		&doc.DocumentType,
		&doc.Filename,
		&doc.MimeType,
		&doc.Size,
		&doc.StoragePath,
		&doc.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListByCompanyID retrieves all documents for a company
func (r *DocumentRepository) ListByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*models.Document, error) {
	query := `
		SELECT id, company_id, document_type, filename, mime_type, size, storage_path, created_at
		FROM documents
		WHERE company_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.CompanyID,
			&doc.DocumentType,
			&doc.Filename,
			&doc.MimeType,
			&doc.Size,
			&doc.StoragePath,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// ListTypesByCompanyID retrieves the distinct uploaded document types for a
// company, the input the requirement engine consumes
func (r *DocumentRepository) ListTypesByCompanyID(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	query := `
		SELECT DISTINCT document_type
		FROM documents
		WHERE company_id = $1`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// Delete deletes a document record
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
