package handlers

import (
	"net/http"

	"groupenroll-backend/pdfforms"
	"groupenroll-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequirementHandler serves the resolved document checklist and the
// carrier PDF field maps
type RequirementHandler struct {
	requirementService *service.RequirementService
	fieldMaps          *pdfforms.FieldMaps
}

// NewRequirementHandler creates a new requirement handler
func NewRequirementHandler(requirementService *service.RequirementService, fieldMaps *pdfforms.FieldMaps) *RequirementHandler {
	return &RequirementHandler{
		requirementService: requirementService,
		fieldMaps:          fieldMaps,
	}
}

// GetRequirements handles GET /api/companies/:id/requirements
func (h *RequirementHandler) GetRequirements(c *gin.Context) {
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

	result, err := h.requirementService.ResolveForCompany(c.Request.Context(), service.ResolveForCompanyRequest{CompanyID: id})
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
		"data": gin.H{
			"groups":     result.Groups,
			"validation": result.Status,
		},
	})
}

// GetCarrierFormFields handles GET /api/carriers/:carrier/form-fields
func (h *RequirementHandler) GetCarrierFormFields(c *gin.Context) {
	carrier := c.Param("carrier")

	fields, ok := h.fieldMaps.CarrierFields(carrier)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNKNOWN_CARRIER",
				"message": "No PDF field map for carrier",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"carrier": carrier,
			"fields":  fields,
		},
	})
}
