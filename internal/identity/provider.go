// Package identity is the boundary to the identity provider: token
// verification, role claims and account lifecycle.
package identity

import (
	"context"

	"hackathon-portal-backend/internal/database/models"
)

//go:generate mockgen -source=provider.go -destination=../mocks/identity_mocks.go -package=mocks

// RoleClaim is the custom claim carrying a user's role.
const RoleClaim = "role"

// Identity is a verified caller.
type Identity struct {
	UID   string      `json:"uid"`
	Email string      `json:"email"`
	Role  models.Role `json:"role,omitempty"`
}

// Account is a user record held by the identity provider.
type Account struct {
	UID   string
	Email string
	Role  models.Role
}

// Provider is implemented by FirebaseProvider and LocalProvider.
type Provider interface {
	// VerifyToken validates a bearer token and returns the caller.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
	// GetRole returns the role claim of uid, empty when none is set.
	GetRole(ctx context.Context, uid string) (models.Role, error)
	// SetRole replaces the role claim; an empty role removes it.
	SetRole(ctx context.Context, uid string, role models.Role) error
	// GetUserByEmail returns ErrAccountNotFound when no account exists.
	GetUserByEmail(ctx context.Context, email string) (*Account, error)
	CreateUser(ctx context.Context, email, password string) (*Account, error)
	DeleteUser(ctx context.Context, uid string) error
}

func roleFromClaims(claims map[string]interface{}) models.Role {
	if claims == nil {
		return ""
	}
	raw, _ := claims[RoleClaim].(string)
	role, ok := models.ParseRole(raw)
	if !ok {
		return ""
	}
	return role
}
