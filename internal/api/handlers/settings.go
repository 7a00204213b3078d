package handlers

import (
	"net/http"

	"workshop-backend/internal/services"
	"workshop-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	validator       *validator.Validate
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		validator:       validator.New(),
	}
}

// GetSettings returns the manager's company settings, creating defaults on
// first read
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.GetString("user_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings retrieved successfully", settings)
}

// UpdateSettings upserts the manager's company settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.GetString("user_id"), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings saved successfully", settings)
}
