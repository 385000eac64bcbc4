package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

const (
	maxSuggestions   = 5
	genAIServiceName = "generative text API"
)

// SuggestionRequest represents the request for team name ideas
type SuggestionRequest struct {
	Theme    string   `json:"theme" validate:"max=200"`
	Keywords []string `json:"keywords" validate:"max=10,dive,max=50"`
}

// SuggestionService proposes team names from the generative text API and
// keeps only names that pass the team name rule and are not taken.
type SuggestionService struct {
	teams      repository.TeamRepositoryInterface
	names      *validation.TeamValidator
	validator  *validator.Validate
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewSuggestionService creates a new suggestion service. An empty apiKey
// disables the feature.
func NewSuggestionService(teams repository.TeamRepositoryInterface, names *validation.TeamValidator, v *validator.Validate, apiKey, model, baseURL string) *SuggestionService {
	return &SuggestionService{
		teams:     teams,
		names:     names,
		validator: v,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type genAIPart struct {
	Text string `json:"text"`
}

type genAIContent struct {
	Parts []genAIPart `json:"parts"`
}

type genAIRequest struct {
	Contents []genAIContent `json:"contents"`
}

type genAIResponse struct {
	Candidates []struct {
		Content genAIContent `json:"content"`
	} `json:"candidates"`
}

// Suggest returns up to five unused team names.
func (s *SuggestionService) Suggest(ctx context.Context, req *SuggestionRequest) ([]string, error) {
	if s.apiKey == "" {
		return nil, apperrors.ErrSuggestionsDisabled
	}
	req.Theme = validation.CleanText(req.Theme)
	for i, k := range req.Keywords {
		req.Keywords[i] = validation.CleanText(k)
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	text, err := s.generate(ctx, buildPrompt(req))
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	taken := validation.NewUniquenessIndex(teams, "")

	seen := make(map[string]struct{})
	out := make([]string, 0, maxSuggestions)
	for _, name := range parseSuggestions(text) {
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !s.names.ValidTeamName(name) || taken.HasTeamName(name) {
			continue
		}
		out = append(out, name)
		if len(out) == maxSuggestions {
			break
		}
	}

	logger.WithContext(ctx).WithField("suggestions", len(out)).Debug("team names suggested")
	return out, nil
}

func buildPrompt(req *SuggestionRequest) string {
	var b strings.Builder
	b.WriteString("Suggest 10 short, catchy hackathon team names")
	if req.Theme != "" {
		fmt.Fprintf(&b, " for the theme %q", req.Theme)
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, " inspired by: %s", strings.Join(req.Keywords, ", "))
	}
	b.WriteString(". Each name must be 3 to 40 characters. Reply with one name per line and nothing else.")
	return b.String()
}

var listMarker = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s*`)

// parseSuggestions extracts one name per line, dropping list markers and quotes.
func parseSuggestions(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = listMarker.ReplaceAllString(strings.TrimSpace(line), "")
		line = strings.Trim(line, "\"'`* ")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}

func (s *SuggestionService) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(genAIRequest{Contents: []genAIContent{{Parts: []genAIPart{{Text: prompt}}}}})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, url.PathEscape(s.model), url.QueryEscape(s.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", apperrors.NewUpstreamError(genAIServiceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperrors.NewUpstreamError(genAIServiceName, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	var out genAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperrors.NewUpstreamError(genAIServiceName, fmt.Errorf("decode response: %w", err))
	}

	var b strings.Builder
	for _, c := range out.Candidates {
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
