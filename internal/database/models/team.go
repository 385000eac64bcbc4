package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

const (
	// MinTeamMembers and MaxTeamMembers bound the size of every team.
	MinTeamMembers = 2
	MaxTeamMembers = 5
)

// Team represents one hackathon entry (collection "registrations")
type Team struct {
	ID            string    `json:"id" bson:"_id"`
	TeamName      string    `json:"teamName" bson:"teamName"`
	TeamNameLower string    `json:"-" bson:"teamNameLower"`
	Slug          string    `json:"slug" bson:"slug"`
	Members       []Member  `json:"members" bson:"members"`
	Version       int64     `json:"version" bson:"version"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Member is one participant. Index 0 of Team.Members is the team lead.
type Member struct {
	Name                string `json:"name" bson:"name"`
	Email               string `json:"email" bson:"email"`
	EmailLower          string `json:"-" bson:"emailLower"`
	Phone               string `json:"phone" bson:"phone"`
	RegisterNumber      string `json:"registerNumber" bson:"registerNumber"`
	RegisterNumberLower string `json:"-" bson:"registerNumberLower"`
	ClassName           string `json:"className" bson:"className"`
	Department          string `json:"department" bson:"department"`
	School              string `json:"school" bson:"school"`
}

// Lead returns the team lead, or nil for an empty team.
func (t *Team) Lead() *Member {
	if len(t.Members) == 0 {
		return nil
	}
	return &t.Members[0]
}

// fallbackSlug names teams whose name has no letters or digits.
const fallbackSlug = "team"

// SetDerived recomputes the lower-cased lookup fields. A missing slug is
// set from the name; an assigned one is kept.
func (t *Team) SetDerived() {
	t.TeamNameLower = strings.ToLower(t.TeamName)
	if t.Slug == "" {
		t.Slug = BaseSlug(t.TeamName)
	}
	for i := range t.Members {
		t.Members[i].SetDerived()
	}
}

// BaseSlug is the URL slug of name before any collision suffix.
func BaseSlug(name string) string {
	if s := slug.Make(name); s != "" {
		return s
	}
	return fallbackSlug
}

// AssignSlug gives t the first of base, base-2, base-3... not used by a
// team in others. The team with id excludeID is ignored.
func (t *Team) AssignSlug(others []Team, excludeID string) {
	taken := make(map[string]bool, len(others))
	for i := range others {
		if others[i].ID != excludeID {
			taken[others[i].Slug] = true
		}
	}
	base := BaseSlug(t.TeamName)
	t.Slug = base
	for n := 2; taken[t.Slug]; n++ {
		t.Slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// SetDerived recomputes the lower-cased lookup fields.
func (m *Member) SetDerived() {
	m.EmailLower = strings.ToLower(m.Email)
	m.RegisterNumberLower = strings.ToLower(m.RegisterNumber)
}

// Snapshot returns a copy of the members suitable for audit payloads.
func (t *Team) Snapshot() []Member {
	out := make([]Member, len(t.Members))
	copy(out, t.Members)
	return out
}
