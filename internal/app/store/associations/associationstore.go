package associationstore

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
	// ErrDuplicateName is returned when creating an association whose name already exists.
	ErrDuplicateName = errors.New("an association with this name already exists")

	errMissingName     = errors.New("name is required")
	errMissingLocation = errors.New("location is required")
	errMissingContact  = errors.New("contact email is required")
	errBadStatus       = errors.New(`status must be "active"|"inactive"`)
	errBadPlatform     = errors.New(`email platform must be "mailchimp"|"other"|"none"`)
)

// IsValidation reports whether err is a field-validation failure, as
// opposed to a database error. Callers map these to 400 responses.
func IsValidation(err error) bool {
	switch err {
	case errMissingName, errMissingLocation, errMissingContact, errBadStatus, errBadPlatform:
		return true
	}
	return false
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("associations")}
}

// GetByID loads an association by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Association, error) {
	var a models.Association
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListActive returns every active association sorted by name.
func (s *Store) ListActive(ctx context.Context) ([]models.Association, error) {
	return s.list(ctx, bson.M{"status": models.AssociationActive})
}

// ListActiveByIDs returns the active associations among the given ids,
// sorted by name. Used for "my associations" views.
func (s *Store) ListActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Association, error) {
	if len(ids) == 0 {
		return []models.Association{}, nil
	}
	return s.list(ctx, bson.M{
		"_id":    bson.M{"$in": ids},
		"status": models.AssociationActive,
	})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Association, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Association
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new association after normalizing and validating
// fields. Status defaults to active and the email platform to none.
func (s *Store) Create(ctx context.Context, a models.Association) (models.Association, error) {
	a.ID = primitive.NewObjectID()
	a.Name = normalize.Name(a.Name)
	a.NameCI = text.Fold(a.Name)
	a.ContactEmail = normalize.Email(a.ContactEmail)
	if a.Status == "" {
		a.Status = models.AssociationActive
	}
	if a.EmailPlatform == "" {
		a.EmailPlatform = models.EmailPlatformNone
	}

	if a.Name == "" {
		return models.Association{}, errMissingName
	}
	if a.Location == "" {
		return models.Association{}, errMissingLocation
	}
	if a.ContactEmail == "" {
		return models.Association{}, errMissingContact
	}
	if a.Status != models.AssociationActive && a.Status != models.AssociationInactive {
		return models.Association{}, errBadStatus
	}
	if !models.ValidEmailPlatform(a.EmailPlatform) {
		return models.Association{}, errBadPlatform
	}

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Association{}, ErrDuplicateName
		}
		return models.Association{}, err
	}
	return a, nil
}

// Update holds the fields an officer may change. Nil means "no change
// requested"; a pointer to the zero value clears the field.
type Update struct {
	Name                   *string
	Description            *string
	Location               *string
	ContactEmail           *string
	Status                 *string
	GoogleWorkspaceEnabled *bool
	EmailPlatform          *string
	EmailPlatformConfig    map[string]string
}

// Apply updates the association with the supplied fields and returns the
// updated record. This is a blind per-field overwrite relative to the
// supplied values; concurrent updates are last-write-wins.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Association, error) {
	set := bson.M{"updated_at": time.Now()}

	if upd.Name != nil {
		name := normalize.Name(*upd.Name)
		if name == "" {
			return nil, errMissingName
		}
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Location != nil {
		if *upd.Location == "" {
			return nil, errMissingLocation
		}
		set["location"] = *upd.Location
	}
	if upd.ContactEmail != nil {
		email := normalize.Email(*upd.ContactEmail)
		if email == "" {
			return nil, errMissingContact
		}
		set["contact_email"] = email
	}
	if upd.Status != nil {
		if *upd.Status != models.AssociationActive && *upd.Status != models.AssociationInactive {
			return nil, errBadStatus
		}
		set["status"] = *upd.Status
	}
	if upd.GoogleWorkspaceEnabled != nil {
		set["google_workspace_enabled"] = *upd.GoogleWorkspaceEnabled
	}
	if upd.EmailPlatform != nil {
		if !models.ValidEmailPlatform(*upd.EmailPlatform) {
			return nil, errBadPlatform
		}
		set["email_platform"] = *upd.EmailPlatform
	}
	if upd.EmailPlatformConfig != nil {
		set["email_platform_config"] = upd.EmailPlatformConfig
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Association
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&a)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &a, nil
}
