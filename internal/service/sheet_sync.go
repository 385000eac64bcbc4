package service

import (
	"context"

	"hackathon-portal-backend/internal/auditlog"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/lock"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/sheets"
	"hackathon-portal-backend/internal/tasks"
)

// Task names for spreadsheet work on the queue.
const (
	TaskSheetSync   = "sheet_sync"
	TaskSheetAppend = "sheet_append"
)

// sheetLockKey orders sheet writes. A sync reads the teams and rewrites the
// rows under it, so a slower sync cannot overwrite a newer one.
const sheetLockKey = "sheet"

// SheetSyncService mirrors the team collection into the spreadsheet. The
// store is authoritative; the sheet is rebuilt from it.
type SheetSyncService struct {
	teams  repository.TeamRepositoryInterface
	client sheets.Client
	queue  tasks.Enqueuer
	audit  auditlog.Recorder
	locker lock.Locker
}

// NewSheetSyncService creates a new sheet sync service
func NewSheetSyncService(teams repository.TeamRepositoryInterface, client sheets.Client, queue tasks.Enqueuer, audit auditlog.Recorder, locker lock.Locker) *SheetSyncService {
	return &SheetSyncService{teams: teams, client: client, queue: queue, audit: audit, locker: locker}
}

// SyncAll ensures the header, clears every data row and writes all teams in
// one batch.
func (s *SheetSyncService) SyncAll(ctx context.Context) error {
	unlock, err := s.locker.Lock(ctx, sheetLockKey)
	if err != nil {
		return err
	}
	defer unlock()

	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return err
	}
	if err := s.ensureHeader(ctx); err != nil {
		return err
	}
	if err := s.client.ClearRows(ctx); err != nil {
		return err
	}
	if err := s.client.WriteRows(ctx, sheets.Rows(teams)); err != nil {
		return err
	}

	s.audit.Log(ctx, models.ActionSheetSynced, models.LogLevelInfo, map[string]interface{}{"teams": len(teams)})
	return nil
}

// AppendTeam adds one team's row after the existing rows.
func (s *SheetSyncService) AppendTeam(ctx context.Context, team *models.Team) error {
	unlock, err := s.locker.Lock(ctx, sheetLockKey)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.ensureHeader(ctx); err != nil {
		return err
	}
	return s.client.AppendRow(ctx, sheets.TeamRow(team))
}

// EnqueueSync schedules a full sync. It never blocks the caller and never
// fails: a sync that cannot run is recorded as sheet_sync_failed.
func (s *SheetSyncService) EnqueueSync(ctx context.Context, reason string) {
	s.enqueue(ctx, TaskSheetSync, reason, s.SyncAll)
}

// EnqueueAppend schedules appending team's row. If the append fails the task
// falls back to a full sync.
func (s *SheetSyncService) EnqueueAppend(ctx context.Context, team *models.Team) {
	snapshot := *team
	snapshot.Members = team.Snapshot()
	s.enqueue(ctx, TaskSheetAppend, models.ActionTeamCreated, func(ctx context.Context) error {
		if err := s.AppendTeam(ctx, &snapshot); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("sheet append failed, running full sync")
			return s.SyncAll(ctx)
		}
		return nil
	})
}

func (s *SheetSyncService) enqueue(ctx context.Context, name, reason string, run func(context.Context) error) {
	// The task outlives the request; keep only who triggered it.
	email := logger.EmailFromContext(ctx)
	withCaller := func(ctx context.Context) context.Context {
		if email == "" {
			return ctx
		}
		return logger.ContextWithEmail(ctx, email)
	}

	err := s.queue.Enqueue(tasks.Task{
		Name:   name,
		Fields: map[string]interface{}{"reason": reason},
		Run: func(ctx context.Context) error {
			return run(withCaller(ctx))
		},
		OnFailure: func(ctx context.Context, err error) {
			s.recordFailure(withCaller(ctx), reason, err)
		},
	})
	if err != nil {
		s.recordFailure(ctx, reason, err)
	}
}

func (s *SheetSyncService) recordFailure(ctx context.Context, reason string, err error) {
	partial := apperrors.NewPartialFailure("sheet sync", err)
	logger.WithContext(ctx).WithError(partial).Error("spreadsheet sync failed")
	s.audit.Log(ctx, models.ActionSheetSyncFailed, models.LogLevelError, map[string]interface{}{
		"reason": reason,
		"error":  err.Error(),
	})
}

func (s *SheetSyncService) ensureHeader(ctx context.Context) error {
	header, err := s.client.ReadHeader(ctx)
	if err != nil {
		return err
	}
	if sheets.HeaderMatches(header) {
		return nil
	}
	return s.client.WriteHeader(ctx, sheets.Header())
}
