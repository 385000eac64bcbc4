package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for staff accounts
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserResponse wraps a written user
type UserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// UserListResponse lists users
type UserListResponse struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

// ListUsers handles GET /api/users
// @Summary List staff accounts
// @Tags users
// @Produce json
// @Success 200 {object} UserListResponse
// @Failure 403 {object} ErrorResponse "Super admin required"
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserListResponse{Users: users, Total: len(users)})
}

// UpsertUser handles POST /api/users
// @Summary Create a staff account or change its role
// @Description Creates the identity-provider account when missing, then sets the role claim and the user document
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.UpsertUserRequest true "Account and role"
// @Success 200 {object} UserResponse "Role updated"
// @Success 201 {object} UserResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid fields"
// @Failure 500 {object} ErrorResponse "Identity provider or store unavailable"
// @Security BearerAuth
// @Router /api/users [post]
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req service.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, created, err := h.userService.UpsertUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, UserResponse{Message: "User created successfully", User: user})
		return
	}
	c.JSON(http.StatusOK, UserResponse{Message: "User role updated successfully", User: user})
}

// DeleteUser handles DELETE /api/users/:uid
// @Summary Delete a staff account
// @Description Deletes the identity-provider account, then the user document
// @Tags users
// @Produce json
// @Param uid path string true "Account uid"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Cannot delete yourself"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Identity provider or store unavailable"
// @Security BearerAuth
// @Router /api/users/{uid} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	uid := c.Param("uid")
	if self, ok := auth.GetUID(c); ok && self == uid {
		badRequest(c, "you cannot delete your own account")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), uid); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
