package collabstore

import (
	"context"
	"errors"
	"time"

	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	errMissingTitle       = errors.New("title is required")
	errMissingDescription = errors.New("description is required")
	errBadType            = errors.New(`type must be "discussion"|"initiative"|"event"|"resource_sharing"`)
	errBadStatus          = errors.New(`status must be "active"|"completed"|"archived"`)
)

// IsValidation reports whether err is a field-validation failure, as
// opposed to a database error. Callers map these to 400 responses.
func IsValidation(err error) bool {
	switch err {
	case errMissingTitle, errMissingDescription, errBadType, errBadStatus:
		return true
	}
	return false
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("collaborations")}
}

// GetByID loads a collaboration by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Collaboration, error) {
	var c models.Collaboration
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActiveForAssociations returns active collaborations in which any of
// the given associations participates, newest first.
func (s *Store) ListActiveForAssociations(ctx context.Context, assocIDs []primitive.ObjectID) ([]models.Collaboration, error) {
	if len(assocIDs) == 0 {
		return []models.Collaboration{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{
		"status":                     models.CollabActive,
		"participating_associations": bson.M{"$in": assocIDs},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Collaboration
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new collaboration. The creating association is always
// included in the participant set, and status defaults to active.
func (s *Store) Create(ctx context.Context, c models.Collaboration) (models.Collaboration, error) {
	if c.Status == "" {
		c.Status = models.CollabActive
	}

	if c.Title == "" {
		return models.Collaboration{}, errMissingTitle
	}
	if c.Description == "" {
		return models.Collaboration{}, errMissingDescription
	}
	if !models.ValidCollabType(c.Type) {
		return models.Collaboration{}, errBadType
	}
	if !models.ValidCollabStatus(c.Status) {
		return models.Collaboration{}, errBadStatus
	}

	if !c.IsParticipating(c.CreatedBy.AssociationID) {
		c.ParticipatingAssociations = append(c.ParticipatingAssociations, c.CreatedBy.AssociationID)
	}

	c.ID = primitive.NewObjectID()
	c.Messages = []models.CollabMessage{}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Collaboration{}, err
	}
	return c, nil
}

// AddMessage appends a message to the collaboration's thread and
// refreshes updated_at. The thread is append-only.
func (s *Store) AddMessage(ctx context.Context, id primitive.ObjectID, m models.CollabMessage) (*models.Collaboration, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collaboration
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"messages": m},
			"$set":  bson.M{"updated_at": time.Now()},
		}, opts).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Join adds an association to the participant set. Joining twice is a
// no-op: $addToSet leaves the set unchanged when the id is already
// present, so the id never appears more than once.
func (s *Store) Join(ctx context.Context, id, assocID primitive.ObjectID) (*models.Collaboration, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collaboration
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{"participating_associations": assocID},
			"$set":      bson.M{"updated_at": time.Now()},
		}, opts).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus moves the collaboration to the given status. Transitions
// are validated against the enum only.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Collaboration, error) {
	if !models.ValidCollabStatus(status) {
		return nil, errBadStatus
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collaboration
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}}, opts).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
