package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/validation"

	"github.com/google/uuid"
)

// seq keeps generated emails, phones and register numbers unique across a
// test binary.
var seq atomic.Int64

func next() int64 { return seq.Add(1) }

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a valid member with unique identifiers
func (f *MemberFactory) Create() models.Member {
	n := next()
	m := models.Member{
		Name:           fmt.Sprintf("Participant %d", n),
		Email:          fmt.Sprintf("participant%d@example.com", n),
		Phone:          fmt.Sprintf("9%09d", n),
		RegisterNumber: fmt.Sprintf("RA%08d", n),
		ClassName:      "II Year",
		Department:     "Computer Science",
		School:         "School of Computing",
	}
	m.SetDerived()
	return m
}

// WithEmail creates a member with a custom email
func (f *MemberFactory) WithEmail(email string) models.Member {
	m := f.Create()
	m.Email = email
	m.SetDerived()
	return m
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	members *MemberFactory
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{members: NewMemberFactory()}
}

// Create creates a stored-shape team with three members
func (f *TeamFactory) Create() *models.Team {
	return f.WithMembers(fmt.Sprintf("Team %d", next()), 3)
}

// WithName creates a team with a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	return f.WithMembers(name, 3)
}

// WithMembers creates a team with n generated members
func (f *TeamFactory) WithMembers(name string, n int) *models.Team {
	now := time.Now().UTC().Truncate(time.Millisecond)
	t := &models.Team{
		ID:        uuid.NewString(),
		TeamName:  name,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := 0; i < n; i++ {
		t.Members = append(t.Members, f.members.Create())
	}
	t.SetDerived()
	return t
}

// Input returns the form input equivalent of a generated team
func (f *TeamFactory) Input(name string, n int) validation.TeamInput {
	return validation.InputFromTeam(f.WithMembers(name, n))
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a volunteer user
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		UID:   fmt.Sprintf("uid-%d", n),
		Email: fmt.Sprintf("staff%d@example.com", n),
		Role:  models.RoleVolunteer,
	}
}

// WithRole creates a user with a custom role
func (f *UserFactory) WithRole(role models.Role) *models.User {
	u := f.Create()
	u.Role = role
	return u
}

// LogEntryFactory provides methods to create test LogEntry data
type LogEntryFactory struct{}

// NewLogEntryFactory creates a new LogEntryFactory
func NewLogEntryFactory() *LogEntryFactory {
	return &LogEntryFactory{}
}

// Create creates an info entry
func (f *LogEntryFactory) Create(action string) *models.LogEntry {
	return &models.LogEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   map[string]interface{}{"seq": next()},
		UserEmail: "admin@example.com",
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		Level:     models.LogLevelInfo,
	}
}

// WithLevel creates an entry with a custom level
func (f *LogEntryFactory) WithLevel(action string, level models.LogLevel) *models.LogEntry {
	e := f.Create(action)
	e.Level = level
	return e
}

// FactorySet groups all factories for convenient access in tests
type FactorySet struct {
	Member   *MemberFactory
	Team     *TeamFactory
	User     *UserFactory
	LogEntry *LogEntryFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Member:   NewMemberFactory(),
		Team:     NewTeamFactory(),
		User:     NewUserFactory(),
		LogEntry: NewLogEntryFactory(),
	}
}
