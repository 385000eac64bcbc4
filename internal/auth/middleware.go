package auth

import (
	"context"
	"strings"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	ContextEmail    = "email"
	ContextUID      = "uid"
	ContextRole     = "role"
	ContextIdentity = "identity"

	// ContextSuperAdmin is true when the caller has the super_admin claim
	// or an allowlisted email.
	ContextSuperAdmin = "superAdmin"
)

// TokenVerifier checks a bearer token and returns the caller it belongs to
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*identity.Identity, error)
}

// SuperAdminAllowlist reports whether an email is granted super-admin
// rights regardless of its role claim.
type SuperAdminAllowlist interface {
	IsSuperAdminEmail(email string) bool
}

// AuthMiddleware provides bearer-token authentication and role guards
type AuthMiddleware struct {
	verifier  TokenVerifier
	allowlist SuperAdminAllowlist
}

// NewAuthMiddleware creates a new authentication middleware. allowlist may be nil.
func NewAuthMiddleware(verifier TokenVerifier, allowlist SuperAdminAllowlist) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, allowlist: allowlist}
}

// RequireAuth validates the ID token and sets the caller on the gin and
// request contexts
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperrors.ErrMissingToken)
			return
		}

		// Extract token from Bearer header
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == authHeader || token == "" {
			abort(c, apperrors.NewAuthenticationError("invalid authorization header format"))
			return
		}

		id, err := m.verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			if !apperrors.IsAuthentication(err) {
				logger.WithContext(c.Request.Context()).WithError(err).Error("token verification failed")
				abort(c, apperrors.ErrInvalidToken)
				return
			}
			abort(c, err)
			return
		}

		m.setCaller(c, id)
		c.Next()
	}
}

// OptionalAuth sets the caller when a valid bearer token is present and
// otherwise continues anonymously
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token == "" || token == c.GetHeader("Authorization") {
			c.Next()
			return
		}

		id, err := m.verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			// Invalid token, continue without setting user context
			c.Next()
			return
		}
		m.setCaller(c, id)
		c.Next()
	}
}

// RequireStreamAuth is RequireAuth for Server-Sent Event routes. Browsers
// cannot set headers on an EventSource, so the token may come as ?token=.
func (m *AuthMiddleware) RequireStreamAuth() gin.HandlerFunc {
	requireAuth := m.RequireAuth()
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if token := strings.TrimSpace(c.Query("token")); token != "" {
				c.Request.Header.Set("Authorization", "Bearer "+token)
			}
		}
		requireAuth(c)
	}
}

// RequireRole allows callers whose role claim is one of roles. super_admin
// always passes.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			abort(c, apperrors.NewAuthenticationError("authentication required"))
			return
		}
		if id.Role == models.RoleSuperAdmin || m.allowlisted(id.Email) {
			c.Next()
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		abort(c, apperrors.ErrForbidden)
	}
}

// RequireAdmin allows admin and super_admin callers
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(models.RoleAdmin)
}

// RequireSuperAdmin allows callers with the super_admin claim or an
// allowlisted email
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return m.RequireRole()
}

// IsSuperAdmin reports whether id has super-admin rights
func (m *AuthMiddleware) IsSuperAdmin(id *identity.Identity) bool {
	return id != nil && (id.Role == models.RoleSuperAdmin || m.allowlisted(id.Email))
}

func (m *AuthMiddleware) allowlisted(email string) bool {
	return m.allowlist != nil && m.allowlist.IsSuperAdminEmail(email)
}

func (m *AuthMiddleware) setCaller(c *gin.Context, id *identity.Identity) {
	c.Set(ContextSuperAdmin, m.IsSuperAdmin(id))
	c.Set(ContextEmail, id.Email)
	c.Set(ContextUID, id.UID)
	c.Set(ContextRole, id.Role)
	c.Set(ContextIdentity, id)
	c.Request = c.Request.WithContext(logger.ContextWithEmail(c.Request.Context(), id.Email))
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// GetIdentity is a helper function to extract the caller from context
func GetIdentity(c *gin.Context) (*identity.Identity, bool) {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return nil, false
	}
	id, ok := v.(*identity.Identity)
	return id, ok
}

// IsAdminCaller reports whether the authenticated caller holds admin rights,
// counting allowlisted super-admin emails.
func IsAdminCaller(c *gin.Context) bool {
	id, ok := GetIdentity(c)
	if !ok {
		return false
	}
	return id.Role.IsAdmin() || c.GetBool(ContextSuperAdmin)
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetUID is a helper function to extract the caller's uid from context
func GetUID(c *gin.Context) (string, bool) {
	uid, exists := c.Get(ContextUID)
	if !exists {
		return "", false
	}

	uidStr, ok := uid.(string)
	return uidStr, ok
}
