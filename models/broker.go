package models

import (
	"time"

	"github.com/google/uuid"
)

// Broker represents a broker account
type Broker struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	AgencyName   *string   `json:"agency_name,omitempty"`
	LicenseNo    *string   `json:"license_no,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
