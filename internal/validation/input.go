package validation

import (
	"html"
	"strings"

	"hackathon-portal-backend/internal/database/models"

	"github.com/microcosm-cc/bluemonday"
)

// MemberInput is one member as submitted by a form.
type MemberInput struct {
	Name           string `json:"name" validate:"required,min=2,nomarkup"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,phone_in"`
	RegisterNumber string `json:"registerNumber" validate:"required,nomarkup"`
	ClassName      string `json:"className" validate:"required,nomarkup"`
	Department     string `json:"department" validate:"required,nomarkup"`
	School         string `json:"school" validate:"required,school"`
}

// TeamInput is a candidate team aggregate.
type TeamInput struct {
	TeamName string        `json:"teamName" validate:"required,min=3,max=100,nomarkup"`
	Members  []MemberInput `json:"members" validate:"min=2,max=5,dive"`
}

var strict = bluemonday.StrictPolicy()

// CleanText trims s and strips any markup from it. It is for free text
// such as prompt keywords; identifiers are rejected by HasMarkup instead.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// HasMarkup reports whether sanitizing s would change its text, which
// happens when s contains a tag or comment. A lone "<" followed by a space
// or digit is plain text.
func HasMarkup(s string) bool {
	return html.UnescapeString(strict.Sanitize(s)) != html.UnescapeString(s)
}

// Normalize returns a trimmed copy of in. School names are rewritten to
// their listed spelling when they match.
func Normalize(in TeamInput) TeamInput {
	out := TeamInput{
		TeamName: strings.TrimSpace(in.TeamName),
		Members:  make([]MemberInput, len(in.Members)),
	}
	for i, m := range in.Members {
		nm := MemberInput{
			Name:           strings.TrimSpace(m.Name),
			Email:          strings.TrimSpace(m.Email),
			Phone:          strings.TrimSpace(m.Phone),
			RegisterNumber: strings.TrimSpace(m.RegisterNumber),
			ClassName:      strings.TrimSpace(m.ClassName),
			Department:     strings.TrimSpace(m.Department),
			School:         strings.TrimSpace(m.School),
		}
		if canonical, ok := models.CanonicalSchool(nm.School); ok {
			nm.School = canonical
		}
		out.Members[i] = nm
	}
	return out
}

// ToTeam builds the store aggregate from a normalized input.
func (in TeamInput) ToTeam() *models.Team {
	team := &models.Team{
		TeamName: in.TeamName,
		Members:  make([]models.Member, len(in.Members)),
	}
	for i, m := range in.Members {
		team.Members[i] = models.Member{
			Name:           m.Name,
			Email:          m.Email,
			Phone:          m.Phone,
			RegisterNumber: m.RegisterNumber,
			ClassName:      m.ClassName,
			Department:     m.Department,
			School:         m.School,
		}
	}
	team.SetDerived()
	return team
}

// InputFromTeam converts a stored team back into form input.
func InputFromTeam(t *models.Team) TeamInput {
	in := TeamInput{TeamName: t.TeamName, Members: make([]MemberInput, len(t.Members))}
	for i, m := range t.Members {
		in.Members[i] = MemberInput{
			Name:           m.Name,
			Email:          m.Email,
			Phone:          m.Phone,
			RegisterNumber: m.RegisterNumber,
			ClassName:      m.ClassName,
			Department:     m.Department,
			School:         m.School,
		}
	}
	return in
}
