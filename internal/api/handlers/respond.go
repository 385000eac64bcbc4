package handlers

import (
	"errors"
	"net/http"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string            `json:"error" example:"error message"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse represents a bare success response
type MessageResponse struct {
	Message string `json:"message" example:"done"`
}

// respondError writes err with the status its type maps to. Validation and
// conflict failures carry the offending field paths; server-side failures
// are logged and reported without internals.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	resp := ErrorResponse{Error: err.Error()}

	if verrs, ok := apperrors.AsValidationErrors(err); ok {
		resp.Error = verrs.First()
		resp.Fields = verrs.Fields()
	}

	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) && conflict.Field != "" {
		resp.Fields = map[string]string{conflict.Field: conflict.Error()}
	}

	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		resp.Error = "internal server error"
		var upstream *apperrors.UpstreamError
		if errors.As(err, &upstream) {
			resp.Error = upstream.Service + " unavailable"
		}
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
