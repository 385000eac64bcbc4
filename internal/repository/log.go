package repository

import (
	"context"
	"time"

	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 1000
)

// LogRepository handles the append-only audit log. There is no update or
// delete.
type LogRepository struct {
	c *mongo.Collection
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{c: db.Collection(database.CollectionLogs)}
}

// Insert appends an entry, filling id, timestamp and level when missing
func (r *LogRepository) Insert(ctx context.Context, entry *models.LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if !entry.Level.IsValid() {
		entry.Level = models.LogLevelInfo
	}
	_, err := r.c.InsertOne(ctx, entry)
	return storeErr(err, nil)
}

// List returns the newest entries first
func (r *LogRepository) List(ctx context.Context, filter models.LogFilter) ([]models.LogEntry, error) {
	q := bson.M{}
	if filter.Level != "" {
		q["level"] = filter.Level
	}
	if filter.Action != "" {
		q["action"] = filter.Action
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	cur, err := r.c.Find(ctx, q, options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, storeErr(err, nil)
	}
	defer cur.Close(ctx)

	entries := make([]models.LogEntry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, storeErr(err, nil)
	}
	return entries, nil
}

// Watch streams newly inserted entries until ctx ends
func (r *LogRepository) Watch(ctx context.Context) (<-chan models.LogEntry, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{"operationType": "insert"}}}}
	stream, err := r.c.Watch(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err, nil)
	}

	out := make(chan models.LogEntry)
	go pump(ctx, stream, out, database.CollectionLogs)
	return out, nil
}
