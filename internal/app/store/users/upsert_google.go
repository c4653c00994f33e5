// internal/app/store/users/upsert_google.go
package userstore

import (
	"context"
	"time"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/normalize"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertGoogleUser resolves a Google sign-in to a user record:
//
//  1. a user already linked to this Google id is returned as-is;
//  2. otherwise an existing account with the same email is linked to the
//     Google id;
//  3. otherwise a fresh account is created with no memberships.
//
// In every case last_login is stamped before returning.
func (s *Store) UpsertGoogleUser(ctx context.Context, googleID, email, name string) (*models.User, error) {
	email = normalize.Email(email)
	name = normalize.Name(name)

	u, err := s.GetByGoogleID(ctx, googleID)
	switch err {
	case nil:
		// linked already
	case mongo.ErrNoDocuments:
		u, err = s.GetByEmail(ctx, email)
		switch err {
		case nil:
			// Existing account signing in with Google for the first time.
			if _, err := s.c.UpdateByID(ctx, u.ID, bson.M{"$set": bson.M{"google_id": googleID}}); err != nil {
				return nil, err
			}
			u.GoogleID = googleID
		case mongo.ErrNoDocuments:
			created, err := s.Create(ctx, models.User{
				Email:    email,
				Name:     name,
				GoogleID: googleID,
			})
			if err != nil {
				return nil, err
			}
			u = &created
		default:
			return nil, err
		}
	default:
		return nil, err
	}

	now := time.Now()
	if err := s.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return u, nil
}
