package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"groupenroll-backend/models"
	"groupenroll-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyHandler handles HTTP requests for company enrollments
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompanyRequest represents the request body for creating a company
type CreateCompanyRequest struct {
	BrokerID string `json:"broker_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Status   string `json:"status"`
}

// CreateCompany handles POST /api/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	brokerID, err := uuid.Parse(req.BrokerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_BROKER_ID",
				"message": "Invalid broker_id format",
			},
		})
		return
	}

	var status models.EnrollmentStatus
	if req.Status != "" {
		status = models.EnrollmentStatus(req.Status)
	} else {
		status = models.StatusDraft
	}

	serviceReq := service.CreateCompanyRequest{
		BrokerID: brokerID,
		Name:     req.Name,
		Status:   status,
	}

	result, err := h.companyService.CreateCompany(c.Request.Context(), serviceReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Company,
	})
}

// GetCompany handles GET /api/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid company ID format",
			},
		})
		return
	}

	result, err := h.companyService.GetCompany(c.Request.Context(), service.GetCompanyRequest{ID: id})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Company not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Company,
	})
}

// UpdateCompanyRequest represents the request body for updating a company.
// Fields are pointers so the enrollment wizard can autosave one step at a
// time without clobbering the others.
type UpdateCompanyRequest struct {
	Status           *string        `json:"status"`
	Name             *string        `json:"name"`
	TaxID            *string        `json:"tax_id"`
	EmployeeCount    *int           `json:"employee_count"`
	Owners           *models.Owners `json:"owners"`
	SelectedCarrier  *string        `json:"selected_carrier"`
	SelectedPlanID   *string        `json:"selected_plan_id"`
	HasPriorCoverage *bool          `json:"has_prior_coverage"`
	PriorCarrier     *string        `json:"prior_carrier"`
	RenewalDate      *time.Time     `json:"renewal_date"`
}

// UpdateCompany handles PUT /api/companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid company ID format",
			},
		})
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	getResult, err := h.companyService.GetCompany(c.Request.Context(), service.GetCompanyRequest{ID: id})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Company not found",
			},
		})
		return
	}

	company := getResult.Company
	if req.Status != nil {
		company.Status = models.EnrollmentStatus(*req.Status)
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.TaxID != nil {
		company.TaxID = req.TaxID
	}
	if req.EmployeeCount != nil {
		company.EmployeeCount = req.EmployeeCount
	}
	if req.Owners != nil {
		company.Owners = *req.Owners
	}
	if req.SelectedCarrier != nil {
		company.SelectedCarrier = req.SelectedCarrier
	}
	if req.SelectedPlanID != nil {
		company.SelectedPlanID = req.SelectedPlanID
	}
	if req.HasPriorCoverage != nil {
		company.HasPriorCoverage = req.HasPriorCoverage
	}
	if req.PriorCarrier != nil {
		company.PriorCarrier = req.PriorCarrier
	}
	if req.RenewalDate != nil {
		company.RenewalDate = req.RenewalDate
	}

	result, err := h.companyService.UpdateCompany(c.Request.Context(), service.UpdateCompanyRequest{Company: company})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Company,
	})
}

// ListCompanies handles GET /api/companies?broker_id=...
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	brokerIDStr := c.Query("broker_id")
	if brokerIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_BROKER_ID",
				"message": "broker_id query parameter is required",
			},
		})
		return
	}

	brokerID, err := uuid.Parse(brokerIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_BROKER_ID",
				"message": "Invalid broker_id format",
			},
		})
		return
	}

	serviceReq := service.ListCompaniesRequest{BrokerID: brokerID}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.EnrollmentStatus(statusStr)
		serviceReq.Status = &status
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			serviceReq.Limit = limit
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			serviceReq.Offset = offset
		}
	}

	result, err := h.companyService.ListCompanies(c.Request.Context(), serviceReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Companies,
	})
}

// SubmitEnrollment handles POST /api/companies/:id/submit
func (h *CompanyHandler) SubmitEnrollment(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid company ID format",
			},
		})
		return
	}

	result, err := h.companyService.SubmitEnrollment(c.Request.Context(), service.SubmitEnrollmentRequest{CompanyID: id})
	if err != nil {
		if errors.Is(err, service.ErrEnrollmentIncomplete) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":           "INCOMPLETE_DOCUMENTS",
					"message":        "Required document groups are not yet satisfied",
					"missing_groups": result.MissingGroups,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUBMIT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Company,
	})
}

// ListRenewals handles GET /api/renewals?days=N
func (h *CompanyHandler) ListRenewals(c *gin.Context) {
	days := 60 // Default renewal window
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_DAYS",
					"message": "days must be a positive integer",
				},
			})
			return
		}
		days = parsed
	}

	result, err := h.companyService.ListRenewals(c.Request.Context(), service.ListRenewalsRequest{Days: days})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Companies,
	})
}
