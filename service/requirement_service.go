package service

import (
	"context"
	"errors"

	"groupenroll-backend/models"
	"groupenroll-backend/repository"
	"groupenroll-backend/requirements"

	"github.com/google/uuid"
)

// RequirementService bridges persisted enrollment records and the pure
// requirement-resolution engine
type RequirementService struct {
	companyRepo  *repository.CompanyRepository
	documentRepo *repository.DocumentRepository
	resolver     *requirements.Resolver
}

// RequirementServiceOption is a functional option for RequirementService
type RequirementServiceOption func(*RequirementService)

// WithCompanyRepository sets the company repository
func WithCompanyRepository(repo *repository.CompanyRepository) RequirementServiceOption {
	return func(s *RequirementService) {
		s.companyRepo = repo
	}
}

// WithDocumentRepository sets the document repository
func WithDocumentRepository(repo *repository.DocumentRepository) RequirementServiceOption {
	return func(s *RequirementService) {
		s.documentRepo = repo
	}
}

// WithResolver sets the requirement resolver
func WithResolver(resolver *requirements.Resolver) RequirementServiceOption {
	return func(s *RequirementService) {
		s.resolver = resolver
	}
}

// NewRequirementService creates a new requirement service
func NewRequirementService(opts ...RequirementServiceOption) *RequirementService {
	s := &RequirementService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveForCompanyRequest represents a request to resolve requirements
type ResolveForCompanyRequest struct {
	CompanyID uuid.UUID
}

// ResolveForCompanyResult carries the resolved groups and their status
type ResolveForCompanyResult struct {
	Groups []requirements.RequirementGroup
	Status requirements.ValidationStatus
}

// ResolveForCompany loads the company and its uploaded document types,
// builds the applicant context and runs resolution plus the satisfaction
// check. The result is derived on every call, never persisted.
func (s *RequirementService) ResolveForCompany(ctx context.Context, req ResolveForCompanyRequest) (*ResolveForCompanyResult, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}
	if s.resolver == nil {
		return nil, errors.New("resolver not set")
	}

	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	uploadedTypes, err := s.documentRepo.ListTypesByCompanyID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	applicant := applicantContext(company, uploadedTypes)
	groups := s.resolver.Resolve(applicant)
	status := requirements.Status(groups, applicant.UploadedSet())

	return &ResolveForCompanyResult{
		Groups: groups,
		Status: status,
	}, nil
}

// applicantContext maps a company row and its uploads onto the engine's
// read-only input snapshot
func applicantContext(company *models.Company, uploadedTypes []string) requirements.ApplicantContext {
	applicant := requirements.ApplicantContext{
		HasPriorCoverage:      company.HasPriorCoverage,
		EmployeeCount:         company.EmployeeCount,
		UploadedDocumentTypes: uploadedTypes,
	}
	if company.SelectedCarrier != nil {
		applicant.SelectedCarrier = *company.SelectedCarrier
	}
	return applicant
}
