package repository

import (
	"context"
	"strings"
	"time"

	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	c *mongo.Collection
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{c: db.Collection(database.CollectionRegistrations)}
}

// Create inserts a new team. The id, version and timestamps are assigned here.
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	now := time.Now().UTC()
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	team.Version = 1
	team.CreatedAt = now
	team.UpdatedAt = now
	team.SetDerived()

	_, err := r.c.InsertOne(ctx, team)
	return storeErr(err, nil)
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&team); err != nil {
		return nil, storeErr(err, apperrors.ErrTeamNotFound)
	}
	return &team, nil
}

// GetBySlug retrieves a team by its URL slug
func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (*models.Team, error) {
	var team models.Team
	if err := r.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&team); err != nil {
		return nil, storeErr(err, apperrors.ErrTeamNotFound)
	}
	return &team, nil
}

// GetAll retrieves every team, oldest first
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, storeErr(err, nil)
	}
	defer cur.Close(ctx)

	teams := make([]models.Team, 0)
	if err := cur.All(ctx, &teams); err != nil {
		return nil, storeErr(err, nil)
	}
	return teams, nil
}

// ExistsByName reports whether a team other than exceptID uses name,
// compared case-insensitively.
func (r *TeamRepository) ExistsByName(ctx context.Context, name, exceptID string) (bool, error) {
	filter := bson.M{"teamNameLower": strings.ToLower(strings.TrimSpace(name))}
	if exceptID != "" {
		filter["_id"] = bson.M{"$ne": exceptID}
	}
	n, err := r.c.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, storeErr(err, nil)
	}
	return n > 0, nil
}

// Replace overwrites the mutable fields of a team when its stored version
// still equals expectedVersion. id and createdAt are never touched. On
// success team carries the new version and updatedAt.
func (r *TeamRepository) Replace(ctx context.Context, team *models.Team, expectedVersion int64) error {
	team.SetDerived()
	now := time.Now().UTC()

	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": team.ID, "version": expectedVersion},
		bson.M{
			"$set": bson.M{
				"teamName":      team.TeamName,
				"teamNameLower": team.TeamNameLower,
				"slug":          team.Slug,
				"members":       team.Members,
				"updatedAt":     now,
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return storeErr(err, nil)
	}

	if res.MatchedCount == 0 {
		n, err := r.c.CountDocuments(ctx, bson.M{"_id": team.ID}, options.Count().SetLimit(1))
		if err != nil {
			return storeErr(err, nil)
		}
		if n == 0 {
			return apperrors.ErrTeamNotFound
		}
		return apperrors.ErrStaleTeam
	}

	team.Version = expectedVersion + 1
	team.UpdatedAt = now
	return nil
}

// Delete removes a team by ID
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, nil)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// Count returns the number of registered teams
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeErr(err, nil)
	}
	return n, nil
}
