package issuestore

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
	errBadStatus          = errors.New(`status must be "open"|"in_progress"|"needs_city_communication"|"resolved"|"closed"`)
	errBadPriority        = errors.New(`priority must be "low"|"medium"|"high"|"urgent"`)
	errBadCategory        = errors.New(`category must be "safety"|"infrastructure"|"community"|"environment"|"other"`)
)

// IsValidation reports whether err is a field-validation failure, as
// opposed to a database error. Callers map these to 400 responses.
func IsValidation(err error) bool {
	switch err {
	case errMissingTitle, errMissingDescription, errBadStatus, errBadPriority, errBadCategory:
		return true
	}
	return false
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("issues")}
}

// GetByID loads an issue scoped to its association.
func (s *Store) GetByID(ctx context.Context, assocID, issueID primitive.ObjectID) (*models.Issue, error) {
	var i models.Issue
	err := s.c.FindOne(ctx, bson.M{"_id": issueID, "association_id": assocID}).Decode(&i)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Filter narrows a list query. Empty fields match everything.
type Filter struct {
	Status   string
	Priority string
}

// ListByAssociation returns the association's issues, newest first,
// optionally filtered by status and priority.
func (s *Store) ListByAssociation(ctx context.Context, assocID primitive.ObjectID, f Filter) ([]models.Issue, error) {
	filter := bson.M{"association_id": assocID}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var issues []models.Issue
	if err := cur.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Create inserts a new issue. Status defaults to open and priority to
// medium.
func (s *Store) Create(ctx context.Context, i models.Issue) (models.Issue, error) {
	if i.Status == "" {
		i.Status = models.IssueOpen
	}
	if i.Priority == "" {
		i.Priority = models.PriorityMedium
	}

	if i.Title == "" {
		return models.Issue{}, errMissingTitle
	}
	if i.Description == "" {
		return models.Issue{}, errMissingDescription
	}
	if !models.ValidIssueStatus(i.Status) {
		return models.Issue{}, errBadStatus
	}
	if !models.ValidPriority(i.Priority) {
		return models.Issue{}, errBadPriority
	}
	if i.Category != "" && !models.ValidCategory(i.Category) {
		return models.Issue{}, errBadCategory
	}

	i.ID = primitive.NewObjectID()
	i.Comments = []models.IssueComment{}

	now := time.Now()
	i.CreatedAt = now
	i.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, i); err != nil {
		return models.Issue{}, err
	}
	return i, nil
}

// Update holds the fields a member may change on an issue. Nil means "no
// change requested". AssignedTo uses a double pointer so callers can
// distinguish "leave as is" (nil) from "unassign" (pointer to nil).
type Update struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Category    *string
	AssignedTo  **primitive.ObjectID
}

// Apply sets the supplied fields and refreshes updated_at, returning the
// updated issue. Status transitions are validated against the enum only;
// any status may move to any other. Overlapping concurrent updates are
// last-write-wins per field, never merged.
func (s *Store) Apply(ctx context.Context, assocID, issueID primitive.ObjectID, upd Update) (*models.Issue, error) {
	set := bson.M{"updated_at": time.Now()}

	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, errMissingTitle
		}
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		if *upd.Description == "" {
			return nil, errMissingDescription
		}
		set["description"] = *upd.Description
	}
	if upd.Status != nil {
		if !models.ValidIssueStatus(*upd.Status) {
			return nil, errBadStatus
		}
		set["status"] = *upd.Status
	}
	if upd.Priority != nil {
		if !models.ValidPriority(*upd.Priority) {
			return nil, errBadPriority
		}
		set["priority"] = *upd.Priority
	}
	if upd.Category != nil {
		if *upd.Category != "" && !models.ValidCategory(*upd.Category) {
			return nil, errBadCategory
		}
		set["category"] = *upd.Category
	}
	if upd.AssignedTo != nil {
		set["assigned_to"] = *upd.AssignedTo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var i models.Issue
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": issueID, "association_id": assocID},
		bson.M{"$set": set}, opts).Decode(&i)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// AddComment appends a comment to the issue's thread and refreshes
// updated_at. The thread is append-only; comments are never edited or
// removed.
func (s *Store) AddComment(ctx context.Context, assocID, issueID primitive.ObjectID, c models.IssueComment) (*models.Issue, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var i models.Issue
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": issueID, "association_id": assocID},
		bson.M{
			"$push": bson.M{"comments": c},
			"$set":  bson.M{"updated_at": time.Now()},
		}, opts).Decode(&i)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// MarkNeedsCityNotification flags the issue for city notification and
// moves it to needs_city_communication in one write. The prior status is
// neither validated nor preserved, and city_notification_sent is left
// untouched.
func (s *Store) MarkNeedsCityNotification(ctx context.Context, assocID, issueID primitive.ObjectID) (*models.Issue, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var i models.Issue
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": issueID, "association_id": assocID},
		bson.M{"$set": bson.M{
			"needs_city_notification": true,
			"status":                  models.IssueNeedsCityContact,
			"updated_at":              time.Now(),
		}}, opts).Decode(&i)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
