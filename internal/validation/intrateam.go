package validation

import (
	"fmt"
	"strings"

	apperrors "hackathon-portal-backend/internal/errors"
)

// CheckIntraTeam reports every member that repeats the email or register
// number of an earlier member of the same team. Comparison is
// case-insensitive; empty values are left to the field rules.
func CheckIntraTeam(members []MemberInput) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors
	emails := make(map[string]int, len(members))
	registers := make(map[string]int, len(members))

	for i, m := range members {
		if k := strings.ToLower(strings.TrimSpace(m.Email)); k != "" {
			if first, seen := emails[k]; seen {
				errs = append(errs, &apperrors.ValidationError{
					Field:   fmt.Sprintf("members[%d].email", i),
					Message: fmt.Sprintf("duplicate email within team (same as member %d)", first+1),
				})
			} else {
				emails[k] = i
			}
		}
		if k := strings.ToLower(strings.TrimSpace(m.RegisterNumber)); k != "" {
			if first, seen := registers[k]; seen {
				errs = append(errs, &apperrors.ValidationError{
					Field:   fmt.Sprintf("members[%d].registerNumber", i),
					Message: fmt.Sprintf("duplicate register number within team (same as member %d)", first+1),
				})
			} else {
				registers[k] = i
			}
		}
	}
	return errs
}
