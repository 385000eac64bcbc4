package models

import (
	"strings"
	"time"
)

// Role is the custom role claim held by the identity provider and mirrored
// in the user document.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleVolunteer   Role = "volunteer"
	RoleJudge       Role = "judge"
)

// Roles lists every assignable role.
var Roles = []Role{RoleSuperAdmin, RoleAdmin, RoleCoordinator, RoleVolunteer, RoleJudge}

// IsValid checks if the Role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleCoordinator, RoleVolunteer, RoleJudge:
		return true
	}
	return false
}

// IsAdmin reports whether the role may use the back-office.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ParseRole normalizes s and returns it as a Role when it is valid.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// User mirrors an identity-provider account (collection "users", _id = uid)
type User struct {
	UID        string    `json:"uid" bson:"_id"`
	Email      string    `json:"email" bson:"email"`
	EmailLower string    `json:"-" bson:"emailLower"`
	Role       Role      `json:"role" bson:"role"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Vertical   string    `json:"vertical,omitempty" bson:"vertical,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
