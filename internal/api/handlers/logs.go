package handlers

import (
	"net/http"
	"strconv"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler serves the audit log
type LogHandler struct {
	logService service.LogServiceInterface
}

// NewLogHandler creates a new log handler
func NewLogHandler(logService service.LogServiceInterface) *LogHandler {
	return &LogHandler{logService: logService}
}

// LogListResponse lists audit entries
type LogListResponse struct {
	Logs  []models.LogEntry `json:"logs"`
	Total int               `json:"total"`
}

// ListLogs handles GET /api/logs
// @Summary List audit log entries
// @Description Newest first. Defaults to 100 entries, at most 1000.
// @Tags logs
// @Produce json
// @Param limit query int false "Maximum entries"
// @Param level query string false "info, warn or error"
// @Param action query string false "Exact action name"
// @Success 200 {object} LogListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /api/logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	filter := models.LogFilter{
		Level:  models.LogLevel(c.Query("level")),
		Action: c.Query("action"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(c, "limit must be a number")
			return
		}
		filter.Limit = limit
	}

	entries, err := h.logService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}

	c.JSON(http.StatusOK, LogListResponse{Logs: entries, Total: len(entries)})
}

// StreamLogs handles GET /api/logs/stream
// @Summary Stream new audit log entries
// @Description Server-Sent Events; one "log" event per inserted entry
// @Tags logs
// @Produce text/event-stream
// @Param token query string false "Bearer token when the Authorization header cannot be set"
// @Success 200 {object} models.LogEntry
// @Security BearerAuth
// @Router /api/logs/stream [get]
func (h *LogHandler) StreamLogs(c *gin.Context) {
	events, err := h.logService.Watch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	startStream(c)
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()
	streamEvents(c, "log", events)
}
