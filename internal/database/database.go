package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollectionRegistrations = "registrations"
	CollectionUsers         = "users"
	CollectionSettings      = "settings"
	CollectionLogs          = "logs"
)

type Options struct {
	ConnectTimeout  time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	EnsureIndexes   bool
}

// Initialize connects to MongoDB, verifies the connection and creates the
// indexes that back uniqueness and listing queries.
func Initialize(ctx context.Context, uri, dbName string, opts *Options) (*mongo.Client, *mongo.Database, error) {
	// Defaults
	if opts == nil {
		opts = &Options{EnsureIndexes: true}
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	if opts.MaxPoolSize == 0 {
		opts.MaxPoolSize = 50
	}
	if opts.MinPoolSize == 0 {
		opts.MinPoolSize = 2
	}
	if opts.MaxConnIdleTime == 0 {
		opts.MaxConnIdleTime = 10 * time.Minute
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(opts.MaxPoolSize).
		SetMinPoolSize(opts.MinPoolSize).
		SetMaxConnIdleTime(opts.MaxConnIdleTime).
		SetServerSelectionTimeout(opts.ConnectTimeout)

	connectCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)

	if opts.EnsureIndexes {
		if err := EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("ensure indexes: %w", err)
		}
	}

	return client, db, nil
}

// Ping checks that the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
