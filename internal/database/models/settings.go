package models

import "time"

// SettingsID is the _id of the singleton settings document.
const SettingsID = "features"

// Settings holds the feature flags (collection "settings", _id "features")
type Settings struct {
	ID               string     `json:"-" bson:"_id"`
	ProblemsReleased bool       `json:"problemsReleased" bson:"problemsReleased"`
	Enabled          bool       `json:"enabled" bson:"enabled"`
	IsScheduled      bool       `json:"isScheduled" bson:"isScheduled"`
	ScheduledChange  *time.Time `json:"scheduledChange,omitempty" bson:"scheduledChange,omitempty"`
	ScheduledState   *bool      `json:"scheduledState,omitempty" bson:"scheduledState,omitempty"`
	UpdatedAt        time.Time  `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy        string     `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// DefaultSettings is returned before an admin has saved anything.
func DefaultSettings() *Settings {
	return &Settings{ID: SettingsID}
}

// ScheduleDue reports whether a pending change should be applied at now.
func (s *Settings) ScheduleDue(now time.Time) bool {
	return s.IsScheduled && s.ScheduledChange != nil && s.ScheduledState != nil && !s.ScheduledChange.After(now)
}
