package auditlog

import (
	"context"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/tasks"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=auditlog.go -destination=../mocks/auditlog_mocks.go -package=mocks

// TaskName identifies audit inserts on the task queue
const TaskName = "audit_log_insert"

// Recorder writes audit entries
type Recorder interface {
	Log(ctx context.Context, action string, level models.LogLevel, details map[string]interface{})
}

// Logger records audit entries without making the caller wait. Each entry is
// mirrored to the process log immediately and inserted into the store from
// the task queue. A failed insert is only reported to the process log.
type Logger struct {
	repo  repository.LogRepositoryInterface
	queue tasks.Enqueuer
	now   func() time.Time
}

// NewLogger creates a new audit logger
func NewLogger(repo repository.LogRepositoryInterface, queue tasks.Enqueuer) *Logger {
	return &Logger{repo: repo, queue: queue, now: time.Now}
}

// Log records action. The caller's email is taken from ctx.
func (l *Logger) Log(ctx context.Context, action string, level models.LogLevel, details map[string]interface{}) {
	if !level.IsValid() {
		level = models.LogLevelInfo
	}
	entry := &models.LogEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   details,
		UserEmail: logger.EmailFromContext(ctx),
		Timestamp: l.now().UTC(),
		Level:     level,
	}

	mirror(ctx, entry)

	err := l.queue.Enqueue(tasks.Task{
		ID:     entry.ID,
		Name:   TaskName,
		Fields: map[string]interface{}{"action": action},
		Run: func(ctx context.Context) error {
			err := l.repo.Insert(ctx, entry)
			if apperrors.IsConflict(err) {
				// An earlier attempt landed before its reply was lost.
				return nil
			}
			return err
		},
	})
	if err != nil {
		logger.WithContext(ctx).WithField("action", action).WithError(err).Warn("audit entry not queued")
	}
}

func mirror(ctx context.Context, entry *models.LogEntry) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"audit":    true,
		"action":   entry.Action,
		"entry_id": entry.ID,
	})
	if len(entry.Details) > 0 {
		log = log.WithField("details", entry.Details)
	}

	var lvl logrus.Level
	switch entry.Level {
	case models.LogLevelError:
		lvl = logrus.ErrorLevel
	case models.LogLevelWarn:
		lvl = logrus.WarnLevel
	default:
		lvl = logrus.InfoLevel
	}
	log.Log(lvl, "audit")
}
