package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrTeamNameTaken))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConflictError("email", "members[0].email", "a@x.com")
		assert.Equal(t, `email "a@x.com" is already taken`, err.Error())
	})

	t.Run("Error message with reason", func(t *testing.T) {
		assert.Equal(t, "team name already taken", ErrTeamNameTaken.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err := &ConflictError{Entity: "team name", Field: "teamName", Value: "Orbiters"}
		assert.True(t, errors.Is(err, ErrTeamNameTaken))
		assert.False(t, errors.Is(err, ErrStaleTeam))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrStaleTeam))
		assert.False(t, IsConflict(ErrTeamNotFound))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("Single field message", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("Set keeps first message per field", func(t *testing.T) {
		set := ValidationErrors{
			{Field: "members[1].phone", Message: "invalid phone number"},
			{Field: "teamName", Message: "too short"},
			{Field: "members[1].phone", Message: "second rule"},
		}
		fields := set.Fields()
		assert.Len(t, fields, 2)
		assert.Equal(t, "invalid phone number", fields["members[1].phone"])
		assert.Equal(t, "validation error: members[1].phone - invalid phone number", set.First())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ValidationErrors{{Field: "a", Message: "b"}}))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})

	t.Run("AsValidationErrors promotes single error", func(t *testing.T) {
		set, ok := AsValidationErrors(ErrScheduleInPast)
		assert.True(t, ok)
		assert.Len(t, set, 1)
		_, ok = AsValidationErrors(ErrTeamNotFound)
		assert.False(t, ok)
	})
}

func TestUpstreamAndPartial(t *testing.T) {
	cause := errors.New("connection refused")

	up := NewUpstreamError("spreadsheet", cause)
	assert.True(t, IsUpstream(up))
	assert.True(t, errors.Is(up, cause))
	assert.Equal(t, "spreadsheet unavailable: connection refused", up.Error())

	partial := NewPartialFailure("sheet sync", up)
	assert.True(t, IsPartialFailure(partial))
	assert.True(t, IsUpstream(partial))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", ValidationErrors{{Field: "teamName", Message: "x"}}, http.StatusBadRequest},
		{"not found", ErrTeamNotFound, http.StatusNotFound},
		{"conflict", ErrTeamNameTaken, http.StatusConflict},
		{"wrapped conflict", fmt.Errorf("update: %w", ErrStaleTeam), http.StatusConflict},
		{"authentication", ErrInvalidToken, http.StatusUnauthorized},
		{"authorization", ErrRegistrationClosed, http.StatusForbidden},
		{"disabled feature", ErrSuggestionsDisabled, http.StatusServiceUnavailable},
		{"upstream", NewUpstreamError("store", errors.New("down")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}
