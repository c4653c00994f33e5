package documentstore

import (
	"context"
	"errors"
	"time"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/docversion"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	errMissingTitle    = errors.New("title is required")
	errMissingFileURL  = errors.New("file url is required")
	errMissingFileName = errors.New("file name is required")
)

// IsValidation reports whether err is a field-validation failure, as
// opposed to a database error. Callers map these to 400 responses.
func IsValidation(err error) bool {
	switch err {
	case errMissingTitle, errMissingFileURL, errMissingFileName:
		return true
	}
	return false
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("documents")}
}

// GetByID loads a document scoped to its association. A document id from
// a different association is not found.
func (s *Store) GetByID(ctx context.Context, assocID, docID primitive.ObjectID) (*models.Document, error) {
	var d models.Document
	err := s.c.FindOne(ctx, bson.M{"_id": docID, "association_id": assocID}).Decode(&d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByAssociation returns the association's documents, newest first.
func (s *Store) ListByAssociation(ctx context.Context, assocID primitive.ObjectID) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"association_id": assocID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create inserts a new document at version 1 with an empty history.
func (s *Store) Create(ctx context.Context, d models.Document) (models.Document, error) {
	if d.Title == "" {
		return models.Document{}, errMissingTitle
	}
	if d.FileURL == "" {
		return models.Document{}, errMissingFileURL
	}
	if d.FileName == "" {
		return models.Document{}, errMissingFileName
	}

	d.ID = primitive.NewObjectID()
	d.Version = 1
	d.PreviousVersions = []models.DocumentVersion{}

	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Document{}, err
	}
	return d, nil
}

// ApplyUpdate runs the versioning engine over the current document and
// persists the result: one read, one replace. There is no optimistic
// concurrency token; near-simultaneous updates are last-write-wins, and
// the losing writer's snapshot is discarded along with its fields.
func (s *Store) ApplyUpdate(ctx context.Context, assocID, docID primitive.ObjectID, upd docversion.Update, actorID primitive.ObjectID) (*models.Document, error) {
	current, err := s.GetByID(ctx, assocID, docID)
	if err != nil {
		return nil, err
	}

	next := docversion.Apply(*current, upd, actorID, time.Now())

	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": docID, "association_id": assocID}, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Delete removes a document. Documents are the only entity that is hard
// deleted. Returns the number of documents removed (0 or 1).
func (s *Store) Delete(ctx context.Context, assocID, docID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": docID, "association_id": assocID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
