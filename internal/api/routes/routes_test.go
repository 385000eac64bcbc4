package routes_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hackathon-portal-backend/internal/api/routes"
	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouteGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	teams := mocks.NewMockTeamServiceInterface(ctrl)
	users := mocks.NewMockUserServiceInterface(ctrl)
	settings := mocks.NewMockSettingsServiceInterface(ctrl)

	provider := identity.NewLocalProvider("routes-test-secret-123", time.Hour)
	token := func(email string, role models.Role) string {
		acc, err := provider.Seed(context.Background(), email, "password123", role)
		require.NoError(t, err)
		tok, err := provider.IssueToken(*acc)
		require.NoError(t, err)
		return tok
	}
	judge := token("judge@example.com", models.RoleJudge)
	admin := token("admin@example.com", models.RoleAdmin)
	owner := token("owner@example.com", models.RoleVolunteer)

	router := routes.SetupRoutes(&routes.Dependencies{
		Config:      &config.Config{AllowedOrigins: []string{"*"}, SuperAdminEmails: []string{"owner@example.com"}},
		Teams:       teams,
		Users:       users,
		Settings:    settings,
		Logs:        mocks.NewMockLogServiceInterface(ctrl),
		SheetSync:   mocks.NewMockSheetSyncServiceInterface(ctrl),
		Suggestions: mocks.NewMockSuggestionServiceInterface(ctrl),
		Verifier:    provider,
		Login:       provider,
		Version:     "test",
	})

	h := &testutils.HTTPTestSuite{Router: router}
	do := func(method, path, tok string) int {
		if tok == "" {
			return h.MakeRequest(method, path, nil).Code
		}
		return h.MakeAuthorizedRequest(method, path, tok, nil).Code
	}

	settings.EXPECT().Get(gomock.Any()).Return(&models.Settings{}, nil)
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/settings", ""), "settings are public")

	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/teams", ""))
	assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/teams", judge))

	teams.EXPECT().GetAll(gomock.Any()).Return([]models.Team{}, nil)
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/teams", admin))

	assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/users", admin))
	users.EXPECT().GetAll(gomock.Any()).Return([]models.User{}, nil)
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/users", owner), "allowlisted email is a super admin")

	teams.EXPECT().Create(gomock.Any(), gomock.Any(), false).Return(nil, apperrors.ErrRegistrationClosed)
	assert.Equal(t, http.StatusForbidden, h.MakeAuthorizedRequest(http.MethodPost, "/api/teams", judge, map[string]any{}).Code)
	teams.EXPECT().Create(gomock.Any(), gomock.Any(), true).Return(&models.Team{ID: "t1"}, nil)
	assert.Equal(t, http.StatusCreated, h.MakeAuthorizedRequest(http.MethodPost, "/api/teams", owner, map[string]any{}).Code,
		"allowlisted email registers while registration is closed")

	var me auth.MeResponse
	testutils.ParseJSONResponse(t, h.MakeAuthorizedRequest(http.MethodGet, "/api/me", judge, nil), &me)
	assert.Equal(t, "judge@example.com", me.Email)
	assert.False(t, me.SuperAdmin)
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/health/live", ""))
}
