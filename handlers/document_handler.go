package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"groupenroll-backend/models"
	"groupenroll-backend/repository"
	"groupenroll-backend/requirements"
	"groupenroll-backend/service"
	"groupenroll-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for supporting-document operations
type DocumentHandler struct {
	documentRepo       *repository.DocumentRepository
	companyRepo        *repository.CompanyRepository
	storage            storage.Storage
	catalog            *requirements.Catalog
	requirementService *service.RequirementService
	maxFileSize        int64
	allowedMimeTypes   map[string]bool
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	documentRepo *repository.DocumentRepository,
	companyRepo *repository.CompanyRepository,
	storage storage.Storage,
	catalog *requirements.Catalog,
	requirementService *service.RequirementService,
) *DocumentHandler {
	return &DocumentHandler{
		documentRepo:       documentRepo,
		companyRepo:        companyRepo,
		storage:            storage,
		catalog:            catalog,
		requirementService: requirementService,
		maxFileSize:        15 * 1024 * 1024, // 15MB, scanned documents run large
		allowedMimeTypes: map[string]bool{
			"application/pdf": true,
			"image/png":       true,
			"image/jpeg":      true,
			"image/tiff":      true,
		},
	}
}

// UploadDocument handles POST /api/documents/upload
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	companyIDStr := c.PostForm("company_id")
	if companyIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_COMPANY_ID",
				"message": "company_id is required",
			},
		})
		return
	}

	companyID, err := uuid.Parse(companyIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_COMPANY_ID",
				"message": "Invalid company_id format",
			},
		})
		return
	}

	if _, err := h.companyRepo.GetByID(c.Request.Context(), companyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "COMPANY_NOT_FOUND",
				"message": "Company not found",
			},
		})
		return
	}

	documentType := c.PostForm("document_type")
	if documentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_DOCUMENT_TYPE",
				"message": "document_type is required",
			},
		})
		return
	}

	// The type must be one the requirement catalog knows about, otherwise
	// the upload can never count toward any group
	if !h.catalog.KnownDocumentTypes()[documentType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNKNOWN_DOCUMENT_TYPE",
				"message": fmt.Sprintf("Document type %q is not in the requirements catalog", documentType),
			},
		})
		return
	}

	// Get file from form
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}

	// Validate file size
	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize),
			},
		})
		return
	}

	// Open file
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_OPEN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	// Determine MIME type
	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		// Try to infer from extension
		filename := strings.ToLower(fileHeader.Filename)
		switch {
		case strings.HasSuffix(filename, ".pdf"):
			mimeType = "application/pdf"
		case strings.HasSuffix(filename, ".png"):
			mimeType = "image/png"
		case strings.HasSuffix(filename, ".jpg"), strings.HasSuffix(filename, ".jpeg"):
			mimeType = "image/jpeg"
		case strings.HasSuffix(filename, ".tif"), strings.HasSuffix(filename, ".tiff"):
			mimeType = "image/tiff"
		default:
			mimeType = "application/octet-stream"
		}
	}

	// Validate MIME type
	if !h.allowedMimeTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILE_TYPE",
				"message": "File type not allowed. Allowed types: PDF, PNG, JPEG, TIFF",
			},
		})
		return
	}

	// Generate document ID
	documentID := uuid.New()

	// Upload to storage
	storagePath, err := h.storage.Upload(c.Request.Context(), documentID, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": fmt.Sprintf("Failed to upload file: %v", err),
			},
		})
		return
	}

	// Create document record in database
	document := &models.Document{
		ID:           documentID,
		CompanyID:    companyID,
		DocumentType: documentType,
		Filename:     fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		StoragePath:  storagePath,
	}

	err = h.documentRepo.Create(c.Request.Context(), document)
	if err != nil {
		// Try to clean up uploaded file
		h.storage.Delete(c.Request.Context(), storagePath)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to save document record: %v", err),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":            document.ID,
			"company_id":    document.CompanyID,
			"document_type": document.DocumentType,
			"filename":      document.Filename,
			"mime_type":     document.MimeType,
			"size":          document.Size,
			"created_at":    document.CreatedAt,
			"validation":    h.recomputeStatus(c, companyID),
		},
	})
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	document, err := h.documentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	// Download from storage
	reader, err := h.storage.Download(c.Request.Context(), document.StoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DOWNLOAD_FAILED",
				"message": fmt.Sprintf("Failed to download document: %v", err),
			},
		})
		return
	}
	defer reader.Close()

	// Set headers
	c.Header("Content-Type", document.MimeType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", document.Filename))
	c.DataFromReader(http.StatusOK, document.Size, document.MimeType, reader, nil)
}

// ListDocuments handles GET /api/companies/:id/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	idStr := c.Param("id")
	companyID, err := uuid.Parse(idStr)
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

	documents, err := h.documentRepo.ListByCompanyID(c.Request.Context(), companyID)
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
		"data":    documents,
	})
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	document, err := h.documentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	if err := h.documentRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	// Storage cleanup is best effort, the record is already gone
	if err := h.storage.Delete(c.Request.Context(), document.StoragePath); err != nil {
		log.Printf("Warning: Failed to delete stored document %s: %v", document.StoragePath, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":         document.ID,
			"validation": h.recomputeStatus(c, document.CompanyID),
		},
	})
}

// recomputeStatus re-runs requirement resolution after an upload or
// removal so the client can refresh its checklist without a second call.
func (h *DocumentHandler) recomputeStatus(c *gin.Context, companyID uuid.UUID) *requirements.ValidationStatus {
	result, err := h.requirementService.ResolveForCompany(c.Request.Context(), service.ResolveForCompanyRequest{CompanyID: companyID})
	if err != nil {
		log.Printf("Warning: Failed to recompute validation status for company %s: %v", companyID, err)
		return nil
	}
	return &result.Status
}
