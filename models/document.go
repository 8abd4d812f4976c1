package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded supporting document
type Document struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	DocumentType string    `json:"document_type"` // matches a catalog requirement type
	Filename     string    `json:"filename"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	StoragePath  string    `json:"storage_path"`
	CreatedAt    time.Time `json:"created_at"`
}
