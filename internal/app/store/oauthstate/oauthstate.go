// Package oauthstate persists short-lived OAuth state tokens for CSRF
// protection. States are single-use: Consume deletes on read. A TTL
// index on expires_at reaps anything a caller abandons.
package oauthstate

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type record struct {
	State     string    `bson:"state"`
	ReturnURL string    `bson:"return_url,omitempty"`
	ExpiresAt time.Time `bson:"expires_at"`
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("oauth_states")}
}

// Save stores a state token with its return URL and expiry.
func (s *Store) Save(ctx context.Context, state, returnURL string, expiresAt time.Time) error {
	_, err := s.c.InsertOne(ctx, record{
		State:     state,
		ReturnURL: returnURL,
		ExpiresAt: expiresAt,
	})
	return err
}

// Consume atomically looks up and deletes a state token. It returns the
// stored return URL and ok=false when the state is unknown or expired.
// The TTL monitor lags deletion, so expiry is re-checked here.
func (s *Store) Consume(ctx context.Context, state string) (returnURL string, ok bool, err error) {
	var rec record
	err = s.c.FindOneAndDelete(ctx, bson.M{"state": state}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if time.Now().After(rec.ExpiresAt) {
		return "", false, nil
	}
	return rec.ReturnURL, true, nil
}
