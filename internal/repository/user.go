package repository

import (
	"context"
	"strings"
	"time"

	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository handles database operations for user documents
type UserRepository struct {
	c *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{c: db.Collection(database.CollectionUsers)}
}

// Upsert creates or updates the document keyed by user.UID. createdAt is set
// only on insert.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.EmailLower = strings.ToLower(strings.TrimSpace(user.Email))
	user.UpdatedAt = now

	set := bson.M{
		"email":      user.Email,
		"emailLower": user.EmailLower,
		"role":       user.Role,
		"updatedAt":  now,
	}
	unset := bson.M{}
	if user.Phone != "" {
		set["phone"] = user.Phone
	} else {
		unset["phone"] = ""
	}
	if user.Vertical != "" {
		set["vertical"] = user.Vertical
	} else {
		unset["vertical"] = ""
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var saved models.User
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": user.UID}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return storeErr(err, nil)
	}
	user.CreatedAt = saved.CreatedAt
	return nil
}

// GetByUID retrieves a user by identity-provider uid
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := r.c.FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
		return nil, storeErr(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	filter := bson.M{"emailLower": strings.ToLower(strings.TrimSpace(email))}
	if err := r.c.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, storeErr(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetAll retrieves every user ordered by email
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "emailLower", Value: 1}}))
	if err != nil {
		return nil, storeErr(err, nil)
	}
	defer cur.Close(ctx)

	users := make([]models.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, storeErr(err, nil)
	}
	return users, nil
}

// Delete removes a user document
func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return storeErr(err, nil)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
