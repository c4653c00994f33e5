// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureAssociations(ctx, db); err != nil {
		problems = append(problems, "associations: "+err.Error())
	}
	if err := ensureDocuments(ctx, db); err != nil {
		problems = append(problems, "documents: "+err.Error())
	}
	if err := ensureIssues(ctx, db); err != nil {
		problems = append(problems, "issues: "+err.Error())
	}
	if err := ensureCollaborations(ctx, db); err != nil {
		problems = append(problems, "collaborations: "+err.Error())
	}
	if err := ensureOAuthStates(ctx, db); err != nil {
		problems = append(problems, "oauth_states: "+err.Error())
	}
	if err := ensureLoginRecords(ctx, db); err != nil {
		problems = append(problems, "login_records: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			// Sparse: most accounts have a google_id, but linked-by-email
			// records may not until their first Google sign-in.
			Keys:    bson.D{{Key: "google_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_google_id"),
		},
		{
			// Roster queries: "all users with a membership in association X".
			Keys:    bson.D{{Key: "associations.association_id", Value: 1}},
			Options: options.Index().SetName("by_membership_assoc"),
		},
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("by_name_ci"),
		},
	})
	return err
}

func ensureAssociations(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("associations").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_name_ci"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("by_status_name"),
		},
	})
	return err
}

func ensureDocuments(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("documents").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "association_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_assoc_created"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("by_tags"),
		},
	})
	return err
}

func ensureIssues(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("issues").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "association_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_assoc_created"),
		},
		{
			Keys:    bson.D{{Key: "association_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("by_assoc_status"),
		},
		{
			Keys:    bson.D{{Key: "association_id", Value: 1}, {Key: "priority", Value: 1}},
			Options: options.Index().SetName("by_assoc_priority"),
		},
	})
	return err
}

func ensureCollaborations(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("collaborations").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_status_created"),
		},
		{
			Keys:    bson.D{{Key: "participating_associations", Value: 1}},
			Options: options.Index().SetName("by_participant"),
		},
	})
	return err
}

func ensureOAuthStates(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("oauth_states").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "state", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_state"),
		},
		{
			// Mongo's TTL monitor removes expired states.
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires"),
		},
	})
	return err
}

func ensureLoginRecords(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("login_records").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "at", Value: -1}},
			Options: options.Index().SetName("by_user_at"),
		},
	})
	return err
}
