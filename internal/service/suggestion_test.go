package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/testutils"
	"hackathon-portal-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func genAIServer(t *testing.T, status int, reply string, gotPrompt *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) && gotPrompt != nil {
			*gotPrompt = body.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": reply}}}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSuggestFiltersTakenAndInvalidNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	teams := mocks.NewMockTeamRepositoryInterface(ctrl)
	taken := testutils.NewTeamFactory().WithName("Byte Me")

	var prompt string
	reply := strings.Join([]string{
		"1. Byte Me",
		"2. \"Code Crusaders\"",
		"- X",
		"* 404 Found",
		"code crusaders",
		"• Null Pointers",
	}, "\n")
	srv := genAIServer(t, http.StatusOK, reply, &prompt)

	teams.EXPECT().GetAll(gomock.Any()).Return([]models.Team{*taken}, nil)

	v := validation.New()
	svc := service.NewSuggestionService(teams, validation.NewTeamValidator(v), v, "test-key", "test-model", srv.URL+"/")

	names, err := svc.Suggest(context.Background(), &service.SuggestionRequest{
		Theme:    " <b>Climate</b> ",
		Keywords: []string{"solar", "water"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Code Crusaders", "404 Found", "Null Pointers"}, names)
	assert.Contains(t, prompt, `"Climate"`)
	assert.Contains(t, prompt, "solar, water")
}

func TestSuggestCapsAtFive(t *testing.T) {
	ctrl := gomock.NewController(t)
	teams := mocks.NewMockTeamRepositoryInterface(ctrl)
	srv := genAIServer(t, http.StatusOK, "Alpha One\nBeta Two\nGamma Three\nDelta Four\nEpsilon Five\nZeta Six\nEta Seven", nil)

	teams.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	v := validation.New()
	svc := service.NewSuggestionService(teams, validation.NewTeamValidator(v), v, "test-key", "test-model", srv.URL)

	names, err := svc.Suggest(context.Background(), &service.SuggestionRequest{})

	require.NoError(t, err)
	assert.Len(t, names, 5)
}

func TestSuggestUpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	teams := mocks.NewMockTeamRepositoryInterface(ctrl)
	srv := genAIServer(t, http.StatusTooManyRequests, "", nil)

	v := validation.New()
	svc := service.NewSuggestionService(teams, validation.NewTeamValidator(v), v, "test-key", "test-model", srv.URL)

	_, err := svc.Suggest(context.Background(), &service.SuggestionRequest{Theme: "space"})

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "429")
}

func TestSuggestDisabledWithoutKey(t *testing.T) {
	v := validation.New()
	svc := service.NewSuggestionService(nil, validation.NewTeamValidator(v), v, "", "test-model", "http://unused")

	_, err := svc.Suggest(context.Background(), &service.SuggestionRequest{})

	assert.ErrorIs(t, err, apperrors.ErrSuggestionsDisabled)
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.HTTPStatus(err))
}

func TestSuggestValidatesRequest(t *testing.T) {
	v := validation.New()
	svc := service.NewSuggestionService(nil, validation.NewTeamValidator(v), v, "test-key", "test-model", "http://unused")

	_, err := svc.Suggest(context.Background(), &service.SuggestionRequest{
		Keywords: strings.Fields("a b c d e f g h i j k"),
	})

	verrs, ok := apperrors.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs.Fields(), "keywords")
}
