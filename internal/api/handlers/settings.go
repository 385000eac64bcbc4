package handlers

import (
	"net/http"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles the feature flags
type SettingsHandler struct {
	settingsService service.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService service.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegistrationRequest either sets the flag now or schedules a change
type RegistrationRequest struct {
	Enabled         *bool      `json:"enabled,omitempty"`
	ScheduledChange *time.Time `json:"scheduledChange,omitempty"`
	ScheduledState  *bool      `json:"scheduledState,omitempty"`
}

// ProblemsRequest publishes or hides the problem statements
type ProblemsRequest struct {
	Released *bool `json:"released" binding:"required"`
}

// SettingsResponse wraps the settings after a change
type SettingsResponse struct {
	Message  string           `json:"message"`
	Settings *models.Settings `json:"settings"`
}

// GetSettings handles GET /api/settings
// @Summary Get feature flags
// @Description Registration and problem-release flags, including any pending scheduled change
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateRegistration handles PUT /api/settings/registration
// @Summary Open, close or schedule registration
// @Description Send {enabled} to change the flag now, or {scheduledChange, scheduledState} to schedule a future change
// @Tags settings
// @Accept json
// @Produce json
// @Param request body RegistrationRequest true "Immediate or scheduled change"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse "Missing fields or schedule in the past"
// @Security BearerAuth
// @Router /api/settings/registration [put]
func (h *SettingsHandler) UpdateRegistration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	var (
		settings *models.Settings
		err      error
		message  string
	)
	switch {
	case req.ScheduledChange != nil:
		if req.ScheduledState == nil {
			badRequest(c, "scheduledState is required with scheduledChange")
			return
		}
		settings, err = h.settingsService.ScheduleRegistration(c.Request.Context(), *req.ScheduledChange, *req.ScheduledState)
		message = "Registration change scheduled"
	case req.Enabled != nil:
		settings, err = h.settingsService.SetRegistrationEnabled(c.Request.Context(), *req.Enabled)
		message = "Registration updated"
	default:
		badRequest(c, "enabled or scheduledChange is required")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Message: message, Settings: settings})
}

// ClearSchedule handles DELETE /api/settings/registration/schedule
// @Summary Cancel a scheduled registration change
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Security BearerAuth
// @Router /api/settings/registration/schedule [delete]
func (h *SettingsHandler) ClearSchedule(c *gin.Context) {
	settings, err := h.settingsService.ClearSchedule(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Message: "Scheduled change cleared", Settings: settings})
}

// UpdateProblems handles PUT /api/settings/problems
// @Summary Publish or hide problem statements
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ProblemsRequest true "Release flag"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse "released is required"
// @Security BearerAuth
// @Router /api/settings/problems [put]
func (h *SettingsHandler) UpdateProblems(c *gin.Context) {
	var req ProblemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "released is required")
		return
	}

	settings, err := h.settingsService.SetProblemsReleased(c.Request.Context(), *req.Released)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Message: "Problem statements updated", Settings: settings})
}

// StreamSettings handles GET /api/settings/stream
// @Summary Stream settings changes
// @Description Server-Sent Events; the current settings first, then every change
// @Tags settings
// @Produce text/event-stream
// @Param token query string false "Bearer token when the Authorization header cannot be set"
// @Success 200 {object} models.Settings
// @Security BearerAuth
// @Router /api/settings/stream [get]
func (h *SettingsHandler) StreamSettings(c *gin.Context) {
	ctx := c.Request.Context()
	current, err := h.settingsService.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	events, err := h.settingsService.Watch(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	startStream(c)
	c.SSEvent("settings", current)
	c.Writer.Flush()
	streamEvents(c, "settings", events)
}
