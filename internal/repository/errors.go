package repository

import (
	"errors"

	"hackathon-portal-backend/internal/database"
	apperrors "hackathon-portal-backend/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const storeService = "store"

// storeErr converts a driver error into an application error. notFound is
// returned for mongo.ErrNoDocuments.
func storeErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) && notFound != nil {
		return notFound
	}
	if conflict := duplicateConflict(err); conflict != nil {
		return conflict
	}
	return apperrors.NewUpstreamError(storeService, err)
}

// duplicateConflict maps a unique index violation to the field it protects.
func duplicateConflict(err error) error {
	if !database.IsDuplicateKeyErr(err) {
		return nil
	}
	switch database.DuplicateKeyIndex(err) {
	case database.IndexTeamName:
		return apperrors.ErrTeamNameTaken
	case database.IndexTeamSlug:
		return &apperrors.ConflictError{Entity: "team slug", Field: "teamName", Reason: "a team with a similar name was registered at the same time, please retry"}
	case database.IndexMemberEmail:
		return &apperrors.ConflictError{Entity: "email", Field: "members", Reason: "a member email is already registered with another team"}
	case database.IndexMemberPhone:
		return &apperrors.ConflictError{Entity: "phone", Field: "members", Reason: "a member phone number is already registered with another team"}
	case database.IndexMemberRegister:
		return &apperrors.ConflictError{Entity: "register number", Field: "members", Reason: "a member register number is already registered with another team"}
	case database.IndexUserEmail:
		return &apperrors.ConflictError{Entity: "user email", Field: "email", Reason: "a user with this email already exists"}
	default:
		return apperrors.ErrDuplicateKey
	}
}
