package validation

import (
	"fmt"
	"strings"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TeamValidator composes the field rules, the intra-team check and the
// cross-team uniqueness index into a single all-or-nothing pass.
type TeamValidator struct {
	validate *validator.Validate
}

// NewTeamValidator creates a TeamValidator. v must come from New so the
// custom tags are registered.
func NewTeamValidator(v *validator.Validate) *TeamValidator {
	return &TeamValidator{validate: v}
}

// Validate normalizes input and checks it. Field and intra-team failures are
// returned together as ValidationErrors. A collision with another team is
// returned as a ConflictError naming the offending field. index may be nil
// when only the field rules should run.
func (tv *TeamValidator) Validate(input TeamInput, index *UniquenessIndex) (*models.Team, error) {
	in := Normalize(input)

	errs := tv.fieldErrors(in)
	errs = append(errs, CheckIntraTeam(in.Members)...)
	if len(errs) > 0 {
		return nil, errs
	}

	if index != nil {
		if err := checkCrossTeam(in, index); err != nil {
			return nil, err
		}
	}

	return in.ToTeam(), nil
}

// ValidTeamName reports whether name passes the team-name field rule.
func (tv *TeamValidator) ValidTeamName(name string) bool {
	return tv.validate.Var(strings.TrimSpace(name), "required,min=3,max=100,nomarkup") == nil
}

func (tv *TeamValidator) fieldErrors(in TeamInput) apperrors.ValidationErrors {
	return structErrors(tv.validate, in)
}

func checkCrossTeam(in TeamInput, index *UniquenessIndex) error {
	if index.HasTeamName(in.TeamName) {
		return &apperrors.ConflictError{
			Entity: apperrors.ErrTeamNameTaken.Entity,
			Field:  "teamName",
			Value:  in.TeamName,
			Reason: apperrors.ErrTeamNameTaken.Reason,
		}
	}
	for i, m := range in.Members {
		switch {
		case index.HasEmail(m.Email):
			return apperrors.NewConflictError("email", fmt.Sprintf("members[%d].email", i), m.Email)
		case index.HasPhone(m.Phone):
			return apperrors.NewConflictError("phone", fmt.Sprintf("members[%d].phone", i), m.Phone)
		case index.HasRegisterNumber(m.RegisterNumber):
			return apperrors.NewConflictError("register number", fmt.Sprintf("members[%d].registerNumber", i), m.RegisterNumber)
		}
	}
	return nil
}
