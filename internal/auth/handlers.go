package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// PasswordLogin exchanges credentials for a bearer token. Only the local
// development provider implements it; with Firebase the client signs in
// directly against the identity provider.
type PasswordLogin interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginRequest represents the local sign-in payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token string `json:"token"`
}

// MeResponse describes the authenticated caller
type MeResponse struct {
	UID        string `json:"uid"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	SuperAdmin bool   `json:"superAdmin"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	login      PasswordLogin
	middleware *AuthMiddleware
}

// NewAuthHandler creates a new authentication handler. login may be nil.
func NewAuthHandler(login PasswordLogin, middleware *AuthMiddleware) *AuthHandler {
	return &AuthHandler{login: login, middleware: middleware}
}

// Login handles POST /api/auth/login
// @Summary Sign in with email and password
// @Description Issue a bearer token from the local development identity provider
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Failure 404 {object} map[string]interface{} "Password sign-in not enabled"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if h.login == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "password sign-in is not enabled"})
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, err := h.login.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithField("email", req.Email).Warn("sign-in rejected")
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Me handles GET /api/me
// @Summary Get the current caller
// @Description Return the identity and role claim of the bearer token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		UID:        id.UID,
		Email:      id.Email,
		Role:       string(id.Role),
		SuperAdmin: h.middleware.IsSuperAdmin(id),
	})
}
