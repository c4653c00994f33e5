package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/normalize"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrDuplicateEmail is returned when creating a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrDuplicateMembership is returned when adding a membership the user already holds.
	ErrDuplicateMembership = errors.New("user is already a member of this association")
	// ErrMembershipNotFound is returned when updating a membership the user does not hold.
	ErrMembershipNotFound = errors.New("member not found in association")

	errMissingEmail = errors.New("email is required")
	errMissingName  = errors.New("name is required")
	errBadRole      = errors.New(`role must be "president"|"vice_president"|"treasurer"|"area_representative"|"member"`)
)

// IsValidation reports whether err is a field-validation failure, as
// opposed to a database error. Callers map these to 400 responses.
func IsValidation(err error) bool {
	switch err {
	case errMissingEmail, errMissingName, errBadRole:
		return true
	}
	return false
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByGoogleID looks up a user by their linked Google account id.
func (s *Store) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"google_id": googleID}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing and validating fields.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)
	u.NameCI = text.Fold(u.Name)

	if u.Email == "" {
		return models.User{}, errMissingEmail
	}
	if u.Name == "" {
		return models.User{}, errMissingName
	}
	for _, m := range u.Memberships {
		if !models.ValidRole(m.Role) {
			return models.User{}, errBadRole
		}
	}

	u.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// AddMembership appends an (association, role) membership to the user.
// A user holds at most one membership per association; adding a second
// returns ErrDuplicateMembership. The default role is member.
func (s *Store) AddMembership(ctx context.Context, userID, assocID primitive.ObjectID, role string) error {
	role = normalize.Role(role)
	if role == "" {
		role = models.RoleMember
	}
	if !models.ValidRole(role) {
		return errBadRole
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":                         userID,
			"associations.association_id": bson.M{"$ne": assocID},
		},
		bson.M{"$push": bson.M{"associations": models.Membership{
			AssociationID: assocID,
			Role:          role,
		}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the user does not exist or they already hold a
		// membership in this association; look once to tell them apart.
		if err := s.c.FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
			return err // mongo.ErrNoDocuments for a missing user
		}
		return ErrDuplicateMembership
	}
	return nil
}

// UpdateMembershipRole changes the role the user holds in the given
// association.
func (s *Store) UpdateMembershipRole(ctx context.Context, userID, assocID primitive.ObjectID, role string) error {
	role = normalize.Role(role)
	if !models.ValidRole(role) {
		return errBadRole
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": userID, "associations.association_id": assocID},
		bson.M{"$set": bson.M{"associations.$.role": role}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMembershipNotFound
	}
	return nil
}

// MembersOf returns every user holding a membership in the association,
// sorted by folded name.
func (s *Store) MembersOf(ctx context.Context, assocID primitive.ObjectID) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"associations.association_id": assocID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// TouchLastLogin stamps the user's last_login.
func (s *Store) TouchLastLogin(ctx context.Context, userID primitive.ObjectID, at time.Time) error {
	_, err := s.c.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"last_login": at}})
	return err
}
