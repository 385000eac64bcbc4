package validation

import (
	"sort"
	"strings"

	"hackathon-portal-backend/internal/database/models"
)

// UniquenessIndex holds the identifiers used by every team other than the
// one being edited. It is built per request from a fresh team listing and is
// never shared between requests.
type UniquenessIndex struct {
	excludeID       string
	emails          map[string]struct{}
	phones          map[string]struct{}
	registerNumbers map[string]struct{}
	teamNames       map[string]struct{}
}

// Snapshot is the read-only form of the index returned by the
// duplicate-scan endpoint.
type Snapshot struct {
	Emails          []string `json:"emails"`
	Phones          []string `json:"phones"`
	RegisterNumbers []string `json:"registerNumbers"`
	TeamNames       []string `json:"teamNames"`
}

// NewUniquenessIndex indexes every team except excludeID. Pass an empty
// excludeID when creating a team.
func NewUniquenessIndex(teams []models.Team, excludeID string) *UniquenessIndex {
	idx := &UniquenessIndex{
		excludeID:       excludeID,
		emails:          make(map[string]struct{}),
		phones:          make(map[string]struct{}),
		registerNumbers: make(map[string]struct{}),
		teamNames:       make(map[string]struct{}),
	}
	for i := range teams {
		t := &teams[i]
		if excludeID != "" && t.ID == excludeID {
			continue
		}
		if name := lowerKey(t.TeamName); name != "" {
			idx.teamNames[name] = struct{}{}
		}
		for _, m := range t.Members {
			if k := lowerKey(m.Email); k != "" {
				idx.emails[k] = struct{}{}
			}
			if k := strings.TrimSpace(m.Phone); k != "" {
				idx.phones[k] = struct{}{}
			}
			if k := lowerKey(m.RegisterNumber); k != "" {
				idx.registerNumbers[k] = struct{}{}
			}
		}
	}
	return idx
}

func lowerKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExcludedID returns the team id left out of the index.
func (idx *UniquenessIndex) ExcludedID() string { return idx.excludeID }

func (idx *UniquenessIndex) HasEmail(email string) bool {
	_, ok := idx.emails[lowerKey(email)]
	return ok
}

// HasPhone compares phones as typed, after trimming.
func (idx *UniquenessIndex) HasPhone(phone string) bool {
	_, ok := idx.phones[strings.TrimSpace(phone)]
	return ok
}

func (idx *UniquenessIndex) HasRegisterNumber(registerNumber string) bool {
	_, ok := idx.registerNumbers[lowerKey(registerNumber)]
	return ok
}

func (idx *UniquenessIndex) HasTeamName(name string) bool {
	_, ok := idx.teamNames[lowerKey(name)]
	return ok
}

// Snapshot returns the indexed identifiers as sorted slices.
func (idx *UniquenessIndex) Snapshot() Snapshot {
	return Snapshot{
		Emails:          sortedKeys(idx.emails),
		Phones:          sortedKeys(idx.phones),
		RegisterNumbers: sortedKeys(idx.registerNumbers),
		TeamNames:       sortedKeys(idx.teamNames),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
