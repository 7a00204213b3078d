package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"workshop-backend/internal/repository"
	"workshop-backend/internal/services"
	"workshop-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// GetServiceReport streams the vehicle's service history as a PDF download
func (h *DocumentHandler) GetServiceReport(c *gin.Context) {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Vehicle ID is required", nil)
		return
	}

	doc, err := h.documentService.GenerateServiceReport(vehicleID, c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Vehicle not found", err)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate service report", err)
		return
	}

	serveDocument(c, doc)
}

// GetInvoice streams an invoice for the vehicle's services as a PDF download
func (h *DocumentHandler) GetInvoice(c *gin.Context) {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Vehicle ID is required", nil)
		return
	}

	doc, err := h.documentService.GenerateInvoice(vehicleID, c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Vehicle not found", err)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to generate invoice", err)
		return
	}

	serveDocument(c, doc)
}

func serveDocument(c *gin.Context, doc *services.GeneratedDocument) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}
