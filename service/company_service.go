package service

import (
	"context"
	"errors"

	"groupenroll-backend/models"
	"groupenroll-backend/repository"

	"github.com/google/uuid"
)

// ErrEnrollmentIncomplete is returned when a submission is attempted before
// every required document group is satisfied
var ErrEnrollmentIncomplete = errors.New("enrollment has missing document groups")

// CompanyService handles business logic for company enrollments
type CompanyService struct {
	companyRepo        *repository.CompanyRepository
	requirementService *RequirementService
}

// CompanyServiceOption is a functional option for CompanyService
type CompanyServiceOption func(*CompanyService)

// CompanyWithRepository sets the company repository
func CompanyWithRepository(repo *repository.CompanyRepository) CompanyServiceOption {
	return func(s *CompanyService) {
		s.companyRepo = repo
	}
}

// CompanyWithRequirementService sets the requirement service used to gate
// submissions
func CompanyWithRequirementService(svc *RequirementService) CompanyServiceOption {
	return func(s *CompanyService) {
		s.requirementService = svc
	}
}

// NewCompanyService creates a new company service
func NewCompanyService(opts ...CompanyServiceOption) *CompanyService {
	s := &CompanyService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCompanyRequest represents a request to create a company
type CreateCompanyRequest struct {
	BrokerID uuid.UUID
	Name     string
	Status   models.EnrollmentStatus
}

// CreateCompanyResult represents the result of creating a company
type CreateCompanyResult struct {
	Company *models.Company
}

// CreateCompany creates a new company with default values
func (s *CompanyService) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*CreateCompanyResult, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}

	company := &models.Company{
		BrokerID: req.BrokerID,
		Name:     req.Name,
		Status:   req.Status,
		Owners:   models.Owners{},
	}

	if company.Status == "" {
		company.Status = models.StatusDraft
	}

	err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	return &CreateCompanyResult{Company: company}, nil
}

// GetCompanyRequest represents a request to get a company
type GetCompanyRequest struct {
	ID uuid.UUID
}

// GetCompanyResult represents the result of getting a company
type GetCompanyResult struct {
	Company *models.Company
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, req GetCompanyRequest) (*GetCompanyResult, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}

	company, err := s.companyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &GetCompanyResult{Company: company}, nil
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	Company *models.Company
}

// UpdateCompanyResult represents the result of updating a company
type UpdateCompanyResult struct {
	Company *models.Company
}

// UpdateCompany updates a company. The enrollment wizard autosaves through
// this path, so partial records are expected and allowed.
func (s *CompanyService) UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (*UpdateCompanyResult, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}

	err := s.companyRepo.Update(ctx, req.Company)
	if err != nil {
		return nil, err
	}

	return &UpdateCompanyResult{Company: req.Company}, nil
}

// ListCompaniesRequest represents a request to list companies
type ListCompaniesRequest struct {
	BrokerID uuid.UUID
	Status   *models.EnrollmentStatus
	Limit    int
	Offset   int
}

// ListCompaniesResult represents the result of listing companies
type ListCompaniesResult struct {
	Companies []*models.Company
}

// ListCompanies lists companies for a broker
func (s *CompanyService) ListCompanies(ctx context.Context, req ListCompaniesRequest) (*ListCompaniesResult, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}

	companies, err := s.companyRepo.ListByBrokerID(ctx, req.BrokerID, req.Status, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	return &ListCompaniesResult{Companies: companies}, nil
}

// ListRenewalsRequest represents a request to list upcoming renewals
type ListRenewalsRequest struct {
	Days int
}

// ListRenewalsResult represents the result of listing upcoming renewals
type ListRenewalsResult struct {
	Companies []*models.Company
}

// ListRenewals lists companies whose renewal date falls within the window
func (s *CompanyService) ListRenewals(ctx context.Context, req ListRenewalsRequest) (*ListRenewalsResult, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}

	companies, err := s.companyRepo.ListUpcomingRenewals(ctx, req.Days)
	if err != nil {
		return nil, err
	}

	return &ListRenewalsResult{Companies: companies}, nil
}

// SubmitEnrollmentRequest represents a request to submit an enrollment
type SubmitEnrollmentRequest struct {
	CompanyID uuid.UUID
}

// SubmitEnrollmentResult carries the submitted company and, when the
// submission is blocked, the unsatisfied document groups
type SubmitEnrollmentResult struct {
	Company       *models.Company
	MissingGroups []string
}

// SubmitEnrollment marks a company as submitted, but only once every
// resolved document group is satisfied. On an incomplete enrollment it
// returns ErrEnrollmentIncomplete along with the missing group labels.
func (s *CompanyService) SubmitEnrollment(ctx context.Context, req SubmitEnrollmentRequest) (*SubmitEnrollmentResult, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}
	if s.requirementService == nil {
		return nil, errors.New("requirement service not set")
	}

	resolved, err := s.requirementService.ResolveForCompany(ctx, ResolveForCompanyRequest{CompanyID: req.CompanyID})
	if err != nil {
		return nil, err
	}

	if !resolved.Status.IsComplete {
		result := &SubmitEnrollmentResult{}
		for _, g := range resolved.Status.MissingGroups {
			result.MissingGroups = append(result.MissingGroups, g.Label)
		}
		return result, ErrEnrollmentIncomplete
	}

	if err := s.companyRepo.MarkSubmitted(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	return &SubmitEnrollmentResult{Company: company}, nil
}
