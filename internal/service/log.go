package service

import (
	"context"
	"strings"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"
)

// MaxLogLimit caps a single log listing.
const MaxLogLimit = 1000

// LogService serves the audit log to admins
type LogService struct {
	repo repository.LogRepositoryInterface
}

// NewLogService creates a new log service
func NewLogService(repo repository.LogRepositoryInterface) *LogService {
	return &LogService{repo: repo}
}

// List returns entries newest first
func (s *LogService) List(ctx context.Context, filter models.LogFilter) ([]models.LogEntry, error) {
	filter.Level = models.LogLevel(strings.ToLower(strings.TrimSpace(string(filter.Level))))
	filter.Action = strings.TrimSpace(filter.Action)

	if filter.Level != "" && !filter.Level.IsValid() {
		return nil, apperrors.NewValidationError("level", "must be one of: info warn error")
	}
	if filter.Limit < 0 || filter.Limit > MaxLogLimit {
		return nil, apperrors.NewValidationError("limit", "must not exceed 1000")
	}
	return s.repo.List(ctx, filter)
}

// Watch streams newly inserted entries
func (s *LogService) Watch(ctx context.Context) (<-chan models.LogEntry, error) {
	return s.repo.Watch(ctx)
}
