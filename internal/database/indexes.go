package database

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index names referenced when translating duplicate-key errors.
const (
	IndexTeamName       = "uniq_team_name"
	IndexTeamSlug       = "uniq_team_slug"
	IndexMemberEmail    = "uniq_member_email"
	IndexMemberPhone    = "uniq_member_phone"
	IndexMemberRegister = "uniq_member_register_number"
	IndexUserEmail      = "uniq_user_email"
)

// EnsureIndexes is idempotent. Problems are collected per collection so a
// single failure does not hide the others.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureRegistrations(ctx, db); err != nil {
		problems = append(problems, CollectionRegistrations+": "+err.Error())
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, CollectionUsers+": "+err.Error())
	}
	if err := ensureLogs(ctx, db); err != nil {
		problems = append(problems, CollectionLogs+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Member fields are multikey indexes: unique across documents, while
// duplicates inside one team are rejected by validation.
func ensureRegistrations(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionRegistrations).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "teamNameLower", Value: 1}},
			Options: options.Index().SetName(IndexTeamName).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "members.emailLower", Value: 1}},
			Options: options.Index().SetName(IndexMemberEmail).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "members.phone", Value: 1}},
			Options: options.Index().SetName(IndexMemberPhone).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "members.registerNumberLower", Value: 1}},
			Options: options.Index().SetName(IndexMemberRegister).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName(IndexTeamSlug).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	})
	return err
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "emailLower", Value: 1}},
			Options: options.Index().SetName(IndexUserEmail).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_role"),
		},
	})
	return err
}

func ensureLogs(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionLogs).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_timestamp"),
		},
		{
			Keys:    bson.D{{Key: "level", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_level_timestamp"),
		},
		{
			Keys:    bson.D{{Key: "action", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_action_timestamp"),
		},
	})
	return err
}

// IsDuplicateKeyErr reports whether err is a unique index violation.
func IsDuplicateKeyErr(err error) bool {
	return DuplicateKeyIndex(err) != "" || mongo.IsDuplicateKeyError(err)
}

// DuplicateKeyIndex returns the name of the violated unique index, or an
// empty string when err is not a duplicate-key error or the name cannot be
// recovered from the server message.
func DuplicateKeyIndex(err error) string {
	if err == nil {
		return ""
	}
	var msgs []string
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				msgs = append(msgs, e.Message)
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		msgs = append(msgs, ce.Message)
	}
	for _, m := range msgs {
		for _, name := range []string{IndexTeamName, IndexMemberEmail, IndexMemberPhone, IndexMemberRegister, IndexUserEmail} {
			if strings.Contains(m, "index: "+name) {
				return name
			}
		}
	}
	return ""
}
