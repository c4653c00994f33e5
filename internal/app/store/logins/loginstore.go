// Package loginstore records successful sign-ins for audit and activity
// views.
package loginstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("login_records")}
}

// Record writes a login record for the user, minting a fresh session id.
// Returns the record so callers can surface the session id.
func (s *Store) Record(ctx context.Context, userID primitive.ObjectID, method string) (models.LoginRecord, error) {
	rec := models.LoginRecord{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		SessionID: uuid.NewString(),
		Method:    method,
		At:        time.Now(),
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return models.LoginRecord{}, err
	}
	return rec, nil
}

// RecentForUser returns the user's most recent logins, newest first.
func (s *Store) RecentForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.LoginRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []models.LoginRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
