package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SheetsHandler exposes the spreadsheet mirror
type SheetsHandler struct {
	syncService service.SheetSyncServiceInterface
}

// NewSheetsHandler creates a new sheets handler
func NewSheetsHandler(syncService service.SheetSyncServiceInterface) *SheetsHandler {
	return &SheetsHandler{syncService: syncService}
}

// SyncNow handles POST /api/sheets/sync
// @Summary Rewrite the spreadsheet from the store
// @Description Runs a full sync synchronously
// @Tags sheets
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse "Spreadsheet API unavailable"
// @Security BearerAuth
// @Router /api/sheets/sync [post]
func (h *SheetsHandler) SyncNow(c *gin.Context) {
	if err := h.syncService.SyncAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Spreadsheet synced"})
}
