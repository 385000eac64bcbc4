package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService       service.TeamServiceInterface
	suggestionService service.SuggestionServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, suggestionService service.SuggestionServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		suggestionService: suggestionService,
	}
}

// TeamResponse wraps a written team
type TeamResponse struct {
	Message string       `json:"message"`
	Team    *models.Team `json:"team"`
}

// TeamListResponse lists teams
type TeamListResponse struct {
	Teams []models.Team `json:"teams"`
	Total int           `json:"total"`
}

// CheckDuplicatesRequest names the team to leave out of the scan
type CheckDuplicatesRequest struct {
	ExcludeTeamID string `json:"excludeTeamId"`
}

// SuggestionResponse lists suggested team names
type SuggestionResponse struct {
	Names []string `json:"names"`
}

// CreateTeam handles POST /api/teams
// @Summary Register a team
// @Description Register a new team. Fails with 403 while registration is closed unless the caller is an admin.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body validation.TeamInput true "Team name and members, lead first"
// @Success 201 {object} TeamResponse "Team registered"
// @Failure 400 {object} ErrorResponse "Invalid fields"
// @Failure 403 {object} ErrorResponse "Registration closed"
// @Failure 409 {object} ErrorResponse "Name, email, phone or register number already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var input validation.TeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), input, auth.IsAdminCaller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TeamResponse{Message: "Team registered successfully", Team: team})
}

// CheckDuplicates handles POST /api/teams/check-duplicates
// @Summary Scan identifiers already in use
// @Description Return the emails, phones, register numbers and team names used by every team except excludeTeamId
// @Tags teams
// @Accept json
// @Produce json
// @Param request body CheckDuplicatesRequest false "Team to exclude"
// @Success 200 {object} validation.Snapshot
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/check-duplicates [post]
func (h *TeamHandler) CheckDuplicates(c *gin.Context) {
	var req CheckDuplicatesRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}

	snap, err := h.teamService.CheckDuplicates(c.Request.Context(), req.ExcludeTeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// SuggestName handles POST /api/teams/suggest-name
// @Summary Suggest team names
// @Description Ask the generative text API for up to five unused team names
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.SuggestionRequest false "Theme and keywords"
// @Success 200 {object} SuggestionResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Generative text API unavailable"
// @Failure 503 {object} ErrorResponse "Suggestions not configured"
// @Router /api/teams/suggest-name [post]
func (h *TeamHandler) SuggestName(c *gin.Context) {
	var req service.SuggestionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}

	names, err := h.suggestionService.Suggest(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestionResponse{Names: names})
}

// ListTeams handles GET /api/teams
// @Summary List all teams
// @Description List every registered team, oldest first
// @Tags teams
// @Produce json
// @Success 200 {object} TeamListResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TeamListResponse{Teams: teams, Total: len(teams)})
}

// GetTeam handles GET /api/teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamBySlug handles GET /api/teams/by-slug/:slug
// @Summary Get team by slug
// @Tags teams
// @Produce json
// @Param slug path string true "Team slug"
// @Success 200 {object} models.Team
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/teams/by-slug/{slug} [get]
func (h *TeamHandler) GetTeamBySlug(c *gin.Context) {
	team, err := h.teamService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /api/teams/:id
// @Summary Update a team
// @Description Replace the name and members of a team. id and createdAt never change.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body service.UpdateTeamRequest true "Team name, members and the version last read"
// @Success 200 {object} TeamResponse "Team updated"
// @Failure 400 {object} ErrorResponse "Invalid fields"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Duplicate identifier or stale version"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TeamResponse{Message: "Team updated successfully", Team: team})
}

// DeleteTeam handles DELETE /api/teams/:id
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Team deleted successfully"})
}
