package documentstore_test

import (
	"fmt"
	"testing"

	documentstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/documents"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/docversion"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"github.com/itsthtdev/neighborhoods-unite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func strptr(s string) *string { return &s }

func newStore(t *testing.T) (*documentstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return documentstore.New(db), testutil.NewFixtures(t, db)
}

func TestCreate_StartsAtVersionOne(t *testing.T) {
	store, fixtures := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	assoc := fixtures.CreateAssociation(ctx, "Oak Hills")
	uploader := primitive.NewObjectID()

	d, err := store.Create(ctx, models.Document{
		Title:         "Bylaws",
		AssociationID: assoc.ID,
		UploadedBy:    uploader,
		FileURL:       "https://files.test/bylaws.pdf",
		FileName:      "bylaws.pdf",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d.Version != 1 {
		t.Errorf("Version = %d, want 1", d.Version)
	}
	if len(d.PreviousVersions) != 0 {
		t.Errorf("history should start empty, got %d entries", len(d.PreviousVersions))
	}

	if _, err := store.Create(ctx, models.Document{AssociationID: assoc.ID}); !documentstore.IsValidation(err) {
		t.Errorf("err = %v, want a validation error", err)
	}
}

func TestGetByID_ScopedToAssociation(t *testing.T) {
	store, fixtures := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	assocA := fixtures.CreateAssociation(ctx, "Assoc A")
	assocB := fixtures.CreateAssociation(ctx, "Assoc B")
	doc := fixtures.CreateDocument(ctx, assocA.ID, primitive.NewObjectID(), "Minutes")

	if _, err := store.GetByID(ctx, assocA.ID, doc.ID); err != nil {
		t.Fatalf("GetByID in owning association failed: %v", err)
	}
	if _, err := store.GetByID(ctx, assocB.ID, doc.ID); err != mongo.ErrNoDocuments {
		t.Errorf("err = %v, want ErrNoDocuments for a foreign association", err)
	}
}

func TestApplyUpdate_VersionsPersist(t *testing.T) {
	store, fixtures := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	assoc := fixtures.CreateAssociation(ctx, "Oak Hills")
	original := primitive.NewObjectID()
	editor := primitive.NewObjectID()
	doc := fixtures.CreateDocument(ctx, assoc.ID, original, "Budget")

	updated, err := store.ApplyUpdate(ctx, assoc.ID, doc.ID, docversion.Update{
		FileURL: strptr("https://files.test/budget-v2.pdf"),
	}, editor)
	if err != nil {
		t.Fatalf("ApplyUpdate failed: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("Version = %d, want 2", updated.Version)
	}
	if updated.UploadedBy != editor {
		t.Error("UploadedBy should become the editor")
	}
	if len(updated.PreviousVersions) != 1 || updated.PreviousVersions[0].UploadedBy != original {
		t.Error("the snapshot should record the original uploader")
	}

	// The write must be persisted, not just returned.
	reloaded, err := store.GetByID(ctx, assoc.ID, doc.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.Version != 2 || len(reloaded.PreviousVersions) != 1 {
		t.Errorf("persisted doc: version %d, %d snapshots", reloaded.Version, len(reloaded.PreviousVersions))
	}

	if _, err := store.ApplyUpdate(ctx, assoc.ID, primitive.NewObjectID(), docversion.Update{}, editor); err != mongo.ErrNoDocuments {
		t.Errorf("err = %v, want ErrNoDocuments", err)
	}
}

func TestApplyUpdate_RepeatedUpdatesStayContiguous(t *testing.T) {
	store, fixtures := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	assoc := fixtures.CreateAssociation(ctx, "Oak Hills")
	actor := primitive.NewObjectID()
	doc := fixtures.CreateDocument(ctx, assoc.ID, actor, "Newsletter")

	const n = 5
	for i := 0; i < n; i++ {
		upd := docversion.Update{Title: strptr(fmt.Sprintf("Newsletter %d", i+1))}
		if _, err := store.ApplyUpdate(ctx, assoc.ID, doc.ID, upd, actor); err != nil {
			t.Fatalf("update %d failed: %v", i+1, err)
		}
	}

	got, err := store.GetByID(ctx, assoc.ID, doc.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Version != 1+n {
		t.Errorf("Version = %d, want %d", got.Version, 1+n)
	}
	for i, snap := range got.PreviousVersions {
		if snap.Version != i+1 {
			t.Errorf("snapshot[%d].Version = %d, want %d", i, snap.Version, i+1)
		}
	}
}

func TestDelete(t *testing.T) {
	store, fixtures := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	assoc := fixtures.CreateAssociation(ctx, "Oak Hills")
	doc := fixtures.CreateDocument(ctx, assoc.ID, primitive.NewObjectID(), "Old Notice")

	n, err := store.Delete(ctx, assoc.ID, doc.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	n, err = store.Delete(ctx, assoc.ID, doc.ID)
	if err != nil {
		t.Fatalf("second Delete errored: %v", err)
	}
	if n != 0 {
		t.Errorf("second delete removed %d, want 0", n)
	}
}
