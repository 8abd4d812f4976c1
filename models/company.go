package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus represents where a company sits in the enrollment flow
type EnrollmentStatus string

const (
	StatusDraft      EnrollmentStatus = "draft"
	StatusInProgress EnrollmentStatus = "in_progress"
	StatusSubmitted  EnrollmentStatus = "submitted"
	StatusApproved   EnrollmentStatus = "approved"
	StatusDeclined   EnrollmentStatus = "declined"
)

// Owner represents a company owner/officer captured during enrollment
type Owner struct {
	Name             string  `json:"name"`
	Title            string  `json:"title"`
	OwnershipPercent float64 `json:"ownership_percent"`
	Email            string  `json:"email,omitempty"`
}

// Owners represents the list of owners stored as JSONB on the company row
type Owners []Owner

// Value implements driver.Valuer for JSONB
func (o Owners) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// Scan implements sql.Scanner for JSONB
func (o *Owners) Scan(value interface{}) error {
	if value == nil {
		*o = make(Owners, 0)
		return nil
	}

	// Handle different types that pgx might return for JSONB
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*o = make(Owners, 0)
		return nil
	}

	if len(bytes) == 0 {
		*o = make(Owners, 0)
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Company represents an employer group enrolling for coverage
type Company struct {
	ID       uuid.UUID        `json:"id"`
	BrokerID uuid.UUID        `json:"broker_id"`
	Status   EnrollmentStatus `json:"status"`

	// Step 1: Company profile
	Name          string  `json:"name"`
	TaxID         *string `json:"tax_id,omitempty"`
	EmployeeCount *int    `json:"employee_count"`
	Owners        Owners  `json:"owners"`

	// Step 2: Coverage
	SelectedCarrier  *string `json:"selected_carrier"`
	SelectedPlanID   *string `json:"selected_plan_id,omitempty"`
	HasPriorCoverage *bool   `json:"has_prior_coverage"`
	PriorCarrier     *string `json:"prior_carrier,omitempty"`

	// Renewal management
	RenewalDate *time.Time `json:"renewal_date,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}
