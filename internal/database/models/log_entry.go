package models

import "time"

// LogLevel is the severity of an audit log entry
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid checks if the LogLevel is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// Audit actions
const (
	ActionTeamCreated                 = "team_created"
	ActionTeamUpdated                 = "team_updated"
	ActionTeamDeleted                 = "team_deleted"
	ActionSheetSynced                 = "sheet_synced"
	ActionSheetSyncFailed             = "sheet_sync_failed"
	ActionUserCreated                 = "user_created"
	ActionUserRoleUpdated             = "user_role_updated"
	ActionUserDeleted                 = "user_deleted"
	ActionRoleDivergence              = "role_divergence"
	ActionUserDeleteDivergence        = "user_delete_divergence"
	ActionRegistrationToggled         = "registration_toggled"
	ActionRegistrationScheduled       = "registration_scheduled"
	ActionRegistrationScheduleCleared = "registration_schedule_cleared"
	ActionRegistrationScheduleApplied = "registration_schedule_applied"
	ActionProblemsToggled             = "problems_toggled"
	ActionTaskFailed                  = "task_failed"
)

// LogEntry is an append-only audit record (collection "logs")
type LogEntry struct {
	ID        string                 `json:"id" bson:"_id"`
	Action    string                 `json:"action" bson:"action"`
	Details   map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
	UserEmail string                 `json:"userEmail" bson:"userEmail"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
	Level     LogLevel               `json:"level" bson:"level"`
}

// LogFilter narrows a log listing
type LogFilter struct {
	Level  LogLevel
	Action string
	Limit  int64
}
