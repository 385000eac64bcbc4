package service

import (
	"context"
	"errors"
	"strings"

	"hackathon-portal-backend/internal/auditlog"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

// UpsertUserRequest represents the request to create a user or change its role
type UpsertUserRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     models.Role `json:"role" validate:"required"`
	Phone    string      `json:"phone,omitempty" validate:"omitempty,phone_in"`
	Vertical string      `json:"vertical,omitempty" validate:"omitempty,max=100"`
}

// UserService handles business logic for users. A role lives both in the
// identity provider's custom claim and in the store document; writes keep
// the two in step and log when they cannot.
type UserService struct {
	repo      repository.UserRepositoryInterface
	idp       identity.Provider
	validator *validator.Validate
	audit     auditlog.Recorder
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, idp identity.Provider, v *validator.Validate, audit auditlog.Recorder) *UserService {
	return &UserService{repo: repo, idp: idp, validator: v, audit: audit}
}

// UpsertUser creates the account if needed and sets its role. The claim is
// written first; if the store write then fails, the claim is reverted, or an
// account created by this call is deleted again. The bool result reports
// whether a new account was created.
func (s *UserService) UpsertUser(ctx context.Context, req *UpsertUserRequest) (*models.User, bool, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Vertical = validation.CleanText(req.Vertical)
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, false, err
	}
	role, ok := models.ParseRole(string(req.Role))
	if !ok {
		return nil, false, apperrors.ErrInvalidRole
	}

	created := false
	acc, err := s.idp.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		acc, err = s.idp.CreateUser(ctx, req.Email, req.Password)
		created = err == nil
	}
	if err != nil {
		return nil, false, err
	}

	var previous models.Role
	if !created {
		previous, err = s.idp.GetRole(ctx, acc.UID)
		if err != nil {
			return nil, false, err
		}
	}

	if err := s.idp.SetRole(ctx, acc.UID, role); err != nil {
		if created {
			s.discardAccount(ctx, acc.UID, req.Email, role, err)
		}
		return nil, false, err
	}

	user := &models.User{
		UID:      acc.UID,
		Email:    acc.Email,
		Role:     role,
		Phone:    req.Phone,
		Vertical: req.Vertical,
	}
	if user.Email == "" {
		user.Email = req.Email
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		if created {
			s.discardAccount(ctx, acc.UID, user.Email, role, err)
			return nil, false, err
		}
		s.revertRole(ctx, acc.UID, user.Email, previous, role, err)
		return nil, false, err
	}

	action := models.ActionUserRoleUpdated
	if created {
		action = models.ActionUserCreated
	}
	s.audit.Log(ctx, action, models.LogLevelInfo, map[string]interface{}{
		"uid":          user.UID,
		"email":        user.Email,
		"role":         role,
		"previousRole": previous,
	})
	return user, created, nil
}

func (s *UserService) revertRole(ctx context.Context, uid, email string, previous, attempted models.Role, cause error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"uid": uid, "role": attempted})
	log.WithError(cause).Warn("user store write failed, reverting role claim")

	if err := s.idp.SetRole(ctx, uid, previous); err != nil {
		log.WithError(err).Error("role claim revert failed, claim and store diverge")
		s.audit.Log(ctx, models.ActionRoleDivergence, models.LogLevelError, map[string]interface{}{
			"uid":          uid,
			"email":        email,
			"claimRole":    attempted,
			"previousRole": previous,
			"storeError":   cause.Error(),
			"revertError":  err.Error(),
		})
	}
}

// discardAccount deletes an account this request created once a later step
// failed, so no account is left without a user document.
func (s *UserService) discardAccount(ctx context.Context, uid, email string, attempted models.Role, cause error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"uid": uid, "role": attempted})
	log.WithError(cause).Warn("user write failed, deleting the new account")

	if err := s.idp.DeleteUser(ctx, uid); err != nil {
		log.WithError(err).Error("new account delete failed, account has no user document")
		s.audit.Log(ctx, models.ActionRoleDivergence, models.LogLevelError, map[string]interface{}{
			"uid":         uid,
			"email":       email,
			"claimRole":   attempted,
			"storeError":  cause.Error(),
			"deleteError": err.Error(),
		})
	}
}

// DeleteUser removes the identity-provider account, then the store document.
// The store document is kept when the account delete fails.
func (s *UserService) DeleteUser(ctx context.Context, uid string) error {
	accountGone := false
	if err := s.idp.DeleteUser(ctx, uid); err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			return err
		}
		accountGone = true
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			if accountGone {
				return err
			}
			// The account existed without a document; nothing diverges.
			s.audit.Log(ctx, models.ActionUserDeleted, models.LogLevelWarn, map[string]interface{}{"uid": uid})
			return nil
		}
		logger.WithContext(ctx).WithField("uid", uid).WithError(err).Error("account deleted but user document was not")
		s.audit.Log(ctx, models.ActionUserDeleteDivergence, models.LogLevelError, map[string]interface{}{
			"uid":   uid,
			"error": err.Error(),
		})
		return err
	}

	s.audit.Log(ctx, models.ActionUserDeleted, models.LogLevelWarn, map[string]interface{}{"uid": uid})
	return nil
}

// GetAll returns every user ordered by email
func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}
