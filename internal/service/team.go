package service

import (
	"context"

	"hackathon-portal-backend/internal/auditlog"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/lock"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/validation"
)

// teamsLockKey guards every team write. Uniqueness spans all teams, so a
// per-team key would not be enough.
const teamsLockKey = "teams"

// UpdateTeamRequest represents the request to replace a team's name and members
type UpdateTeamRequest struct {
	validation.TeamInput
	// Version is the version the client loaded. When set, the update fails
	// with 409 if the team changed since.
	Version *int64 `json:"version,omitempty"`
}

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	settings  repository.SettingsRepositoryInterface
	validator *validation.TeamValidator
	locker    lock.Locker
	audit     auditlog.Recorder
	sync      SheetSyncServiceInterface
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
	validator *validation.TeamValidator,
	locker lock.Locker,
	audit auditlog.Recorder,
	sync SheetSyncServiceInterface,
) *TeamService {
	return &TeamService{
		repo:      repo,
		settings:  settings,
		validator: validator,
		locker:    locker,
		audit:     audit,
		sync:      sync,
	}
}

// Create registers a new team. Unless bypassClosed is set (admins), it
// fails with ErrRegistrationClosed while registration is disabled.
func (s *TeamService) Create(ctx context.Context, input validation.TeamInput, bypassClosed bool) (*models.Team, error) {
	if !bypassClosed {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		if !settings.Enabled {
			return nil, apperrors.ErrRegistrationClosed
		}
	}

	// Field rules first so malformed input never takes the lock.
	if _, err := s.validator.Validate(input, nil); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, teamsLockKey)
	if err != nil {
		return nil, err
	}
	defer unlock()

	team, err := s.validateAgainstOthers(ctx, input, "")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, models.ActionTeamCreated, models.LogLevelInfo, map[string]interface{}{
		"teamId":   team.ID,
		"teamName": team.TeamName,
		"members":  team.Snapshot(),
	})
	s.sync.EnqueueAppend(ctx, team)

	return team, nil
}

// Update replaces the name and members of team id. id and createdAt are kept.
func (s *TeamService) Update(ctx context.Context, id string, req *UpdateTeamRequest) (*models.Team, error) {
	if _, err := s.validator.Validate(req.TeamInput, nil); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, teamsLockKey)
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expected := current.Version
	if req.Version != nil {
		if *req.Version != current.Version {
			return nil, apperrors.ErrStaleTeam
		}
		expected = *req.Version
	}

	team, err := s.validateAgainstOthers(ctx, req.TeamInput, id)
	if err != nil {
		return nil, err
	}
	team.ID = current.ID
	team.CreatedAt = current.CreatedAt
	if models.BaseSlug(team.TeamName) == models.BaseSlug(current.TeamName) && current.Slug != "" {
		team.Slug = current.Slug
	}

	if err := s.repo.Replace(ctx, team, expected); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, models.ActionTeamUpdated, models.LogLevelInfo, map[string]interface{}{
		"teamId":       team.ID,
		"teamName":     team.TeamName,
		"previousName": current.TeamName,
		"before":       current.Snapshot(),
		"after":        team.Snapshot(),
	})
	s.sync.EnqueueSync(ctx, models.ActionTeamUpdated)

	return team, nil
}

// Delete removes a team
func (s *TeamService) Delete(ctx context.Context, id string) error {
	unlock, err := s.locker.Lock(ctx, teamsLockKey)
	if err != nil {
		return err
	}
	defer unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Log(ctx, models.ActionTeamDeleted, models.LogLevelWarn, map[string]interface{}{
		"teamId":   current.ID,
		"teamName": current.TeamName,
		"members":  current.Snapshot(),
	})
	s.sync.EnqueueSync(ctx, models.ActionTeamDeleted)

	return nil
}

// GetAll returns every team, oldest first
func (s *TeamService) GetAll(ctx context.Context) ([]models.Team, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns a team by ID
func (s *TeamService) GetByID(ctx context.Context, id string) (*models.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug returns a team by its URL slug
func (s *TeamService) GetBySlug(ctx context.Context, slug string) (*models.Team, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// CheckDuplicates returns the identifiers already used by teams other than
// excludeID.
func (s *TeamService) CheckDuplicates(ctx context.Context, excludeID string) (*validation.Snapshot, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	snap := validation.NewUniquenessIndex(teams, excludeID).Snapshot()
	return &snap, nil
}

// validateAgainstOthers runs the full validation against a fresh index,
// re-checks the name at the store and assigns a free slug. Callers hold the
// teams lock.
func (s *TeamService) validateAgainstOthers(ctx context.Context, input validation.TeamInput, excludeID string) (*models.Team, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	team, err := s.validator.Validate(input, validation.NewUniquenessIndex(teams, excludeID))
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(ctx, team.TeamName, excludeID)
	if err != nil {
		return nil, err
	}
	if taken {
		logger.WithContext(ctx).WithField("team_name", team.TeamName).Warn("team name taken at write time")
		return nil, &apperrors.ConflictError{
			Entity: apperrors.ErrTeamNameTaken.Entity,
			Field:  apperrors.ErrTeamNameTaken.Field,
			Value:  team.TeamName,
			Reason: apperrors.ErrTeamNameTaken.Reason,
		}
	}
	team.AssignSlug(teams, excludeID)
	return team, nil
}
