package repository

import (
	"context"
	"time"

	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SchedulerActor is recorded as updatedBy when a scheduled change is applied.
const SchedulerActor = "scheduler"

// SettingsRepository handles the singleton settings document
type SettingsRepository struct {
	c *mongo.Collection
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{c: db.Collection(database.CollectionSettings)}
}

// Get returns the settings, or the defaults when none were saved yet
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.c.FindOne(ctx, bson.M{"_id": models.SettingsID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, storeErr(err, nil)
	}
	return &s, nil
}

// SetRegistrationEnabled flips registration now and drops any pending schedule
func (r *SettingsRepository) SetRegistrationEnabled(ctx context.Context, enabled bool, by string) (*models.Settings, error) {
	return r.upsert(ctx, bson.M{
		"$set": bson.M{
			"enabled":     enabled,
			"isScheduled": false,
			"updatedAt":   time.Now().UTC(),
			"updatedBy":   by,
		},
		"$unset": bson.M{"scheduledChange": "", "scheduledState": ""},
	})
}

// ScheduleRegistration stores a pending change of the enabled flag
func (r *SettingsRepository) ScheduleRegistration(ctx context.Context, at time.Time, state bool, by string) (*models.Settings, error) {
	return r.upsert(ctx, bson.M{
		"$set": bson.M{
			"isScheduled":     true,
			"scheduledChange": at.UTC(),
			"scheduledState":  state,
			"updatedAt":       time.Now().UTC(),
			"updatedBy":       by,
		},
	})
}

// ClearSchedule cancels a pending change
func (r *SettingsRepository) ClearSchedule(ctx context.Context, by string) (*models.Settings, error) {
	return r.upsert(ctx, bson.M{
		"$set": bson.M{
			"isScheduled": false,
			"updatedAt":   time.Now().UTC(),
			"updatedBy":   by,
		},
		"$unset": bson.M{"scheduledChange": "", "scheduledState": ""},
	})
}

// SetProblemsReleased toggles publication of the problem statements
func (r *SettingsRepository) SetProblemsReleased(ctx context.Context, released bool, by string) (*models.Settings, error) {
	return r.upsert(ctx, bson.M{
		"$set": bson.M{
			"problemsReleased": released,
			"updatedAt":        time.Now().UTC(),
			"updatedBy":        by,
		},
	})
}

// ApplyDueSchedule applies a pending change whose time has come. The filter
// and the update run as one findOneAndUpdate, so concurrent callers apply a
// given schedule at most once. applied is false when nothing was due.
func (r *SettingsRepository) ApplyDueSchedule(ctx context.Context, now time.Time) (*models.Settings, bool, error) {
	filter := bson.M{
		"_id":             models.SettingsID,
		"isScheduled":     true,
		"scheduledChange": bson.M{"$lte": now.UTC()},
		"scheduledState":  bson.M{"$exists": true},
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"enabled":     "$scheduledState",
			"isScheduled": false,
			"updatedAt":   now.UTC(),
			"updatedBy":   SchedulerActor,
		}}},
		{{Key: "$unset", Value: bson.A{"scheduledChange", "scheduledState"}}},
	}

	var s models.Settings
	err := r.c.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storeErr(err, nil)
	}
	return &s, true, nil
}

// Watch streams the full settings document after every change until ctx ends.
func (r *SettingsRepository) Watch(ctx context.Context) (<-chan models.Settings, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{"documentKey._id": models.SettingsID}}}}
	stream, err := r.c.Watch(ctx, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, storeErr(err, nil)
	}

	out := make(chan models.Settings)
	go pump(ctx, stream, out, database.CollectionSettings)
	return out, nil
}

func (r *SettingsRepository) upsert(ctx context.Context, update bson.M) (*models.Settings, error) {
	var s models.Settings
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": models.SettingsID}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, storeErr(err, nil)
	}
	return &s, nil
}

// pump forwards full documents from a change stream to out and closes out
// when the stream or ctx ends.
func pump[T any](ctx context.Context, stream *mongo.ChangeStream, out chan<- T, collection string) {
	defer close(out)
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var ev struct {
			FullDocument *T `bson:"fullDocument"`
		}
		if err := stream.Decode(&ev); err != nil {
			logger.New().WithField("collection", collection).WithError(err).Warn("decode change event")
			continue
		}
		if ev.FullDocument == nil {
			continue
		}
		select {
		case out <- *ev.FullDocument:
		case <-ctx.Done():
			return
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		logger.New().WithField("collection", collection).WithError(err).Error("change stream ended")
	}
}
