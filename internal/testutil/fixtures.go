package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAssociation creates an active test association with the given
// name.
func (f *Fixtures) CreateAssociation(ctx context.Context, name string) models.Association {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Association{
		ID:            primitive.NewObjectID(),
		Name:          name,
		NameCI:        text.Fold(name),
		Description:   "Test association",
		Location:      "Test City",
		ContactEmail:  "board@test.com",
		EmailPlatform: models.EmailPlatformNone,
		Status:        models.AssociationActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("associations").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test association: %v", err)
	}
	return a
}

// CreateUser creates a test user holding the given memberships.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string, memberships ...models.Membership) models.User {
	f.t.Helper()

	if memberships == nil {
		memberships = []models.Membership{}
	}
	now := time.Now().UTC()
	u := models.User{
		ID:          primitive.NewObjectID(),
		Email:       email,
		Name:        name,
		NameCI:      text.Fold(name),
		Memberships: memberships,
		CreatedAt:   now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateMember creates a test user holding one membership in the given
// association.
func (f *Fixtures) CreateMember(ctx context.Context, name, email string, assocID primitive.ObjectID, role string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.Membership{AssociationID: assocID, Role: role})
}

// CreateDocument creates a version-1 test document in the given
// association.
func (f *Fixtures) CreateDocument(ctx context.Context, assocID, uploaderID primitive.ObjectID, title string) models.Document {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Document{
		ID:               primitive.NewObjectID(),
		Title:            title,
		AssociationID:    assocID,
		UploadedBy:       uploaderID,
		FileURL:          "https://files.test/" + primitive.NewObjectID().Hex() + ".pdf",
		FileName:         "test.pdf",
		MimeType:         "application/pdf",
		Version:          1,
		PreviousVersions: []models.DocumentVersion{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("documents").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test document: %v", err)
	}
	return d
}

// CreateIssue creates an open, medium-priority test issue in the given
// association.
func (f *Fixtures) CreateIssue(ctx context.Context, assocID, reporterID primitive.ObjectID, title string) models.Issue {
	f.t.Helper()

	now := time.Now().UTC()
	i := models.Issue{
		ID:            primitive.NewObjectID(),
		Title:         title,
		Description:   "Test issue description",
		AssociationID: assocID,
		ReportedBy:    reporterID,
		Status:        models.IssueOpen,
		Priority:      models.PriorityMedium,
		Comments:      []models.IssueComment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("issues").InsertOne(ctx, i); err != nil {
		f.t.Fatalf("failed to create test issue: %v", err)
	}
	return i
}

// CreateCollaboration creates an active test collaboration originated by
// the given user and association.
func (f *Fixtures) CreateCollaboration(ctx context.Context, userID, assocID primitive.ObjectID, title string) models.Collaboration {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Collaboration{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test collaboration",
		CreatedBy: models.CollabOrigin{
			UserID:        userID,
			AssociationID: assocID,
		},
		ParticipatingAssociations: []primitive.ObjectID{assocID},
		Type:                      models.CollabDiscussion,
		Status:                    models.CollabActive,
		Messages:                  []models.CollabMessage{},
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if _, err := f.db.Collection("collaborations").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test collaboration: %v", err)
	}
	return c
}
