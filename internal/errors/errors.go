package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a uniqueness collision (name, email, phone,
// register number) or a stale write detected by the version check.
type ConflictError struct {
	Entity string
	Field  string // json path of the offending input, e.g. members[1].email
	Value  string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q is already taken", e.Entity, e.Value)
	}
	return fmt.Sprintf("%s is already taken", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is an ordered set of field-attributed validation failures.
// Any non-empty set blocks the whole submission.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Fields returns the failures keyed by field path. The first message wins
// when a field failed more than one rule.
func (e ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// First returns the first actionable message, or an empty string.
func (e ValidationErrors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Error()
}

// UpstreamError wraps an infrastructural failure of the store, the identity
// provider, the spreadsheet or the generative text API.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PartialFailure records that the primary write succeeded but a dependent
// step did not. It is logged, never rolled back and never returned to HTTP
// callers.
type PartialFailure struct {
	Step string
	Err  error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("partial failure in %s: %v", e.Step, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrSettingsNotFound = &NotFoundError{Entity: "settings"}
	ErrAccountNotFound  = &NotFoundError{Entity: "account"}
)

// Conflict Errors
var (
	ErrTeamNameTaken = &ConflictError{Entity: "team name", Field: "teamName", Reason: "team name already taken"}
	ErrStaleTeam     = &ConflictError{Entity: "team", Field: "version", Reason: "team was modified by someone else, reload and try again"}
	ErrDuplicateKey  = &ConflictError{Entity: "record", Reason: "a record with the same unique value already exists"}
)

// Business Logic Errors
var (
	ErrRegistrationClosed  = &AuthorizationError{Message: "registration is currently closed"}
	ErrScheduleInPast      = &ValidationError{Field: "scheduledChange", Message: "scheduled change must be in the future"}
	ErrInvalidRole         = &ValidationError{Field: "role", Message: "invalid role"}
	ErrSuggestionsDisabled = errors.New("team name suggestions are not configured")
	ErrQueueClosed         = errors.New("task queue is closed")
	ErrQueueFull           = errors.New("task queue is full")
	ErrLockNotAcquired     = errors.New("could not acquire write lock")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
	ErrForbidden    = &AuthorizationError{Message: "insufficient role"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsPartialFailure checks if an error is a PartialFailure
func IsPartialFailure(err error) bool {
	var partial *PartialFailure
	return errors.As(err, &partial)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// AsValidationErrors returns err as a ValidationErrors set when it is one
// (a single ValidationError is promoted to a one-element set).
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var set ValidationErrors
	if errors.As(err, &set) {
		return set, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}

// HTTPStatus maps an application error to the status class it is reported with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case errors.Is(err, ErrSuggestionsDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a field-attributed ConflictError
func NewConflictError(entity, field, value string) error {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUpstreamError wraps err as an UpstreamError for the named service
func NewUpstreamError(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}

// NewPartialFailure wraps err as a PartialFailure of the named step
func NewPartialFailure(step string, err error) error {
	return &PartialFailure{Step: step, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
