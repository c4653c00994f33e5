package docversion_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/docversion"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strptr(s string) *string { return &s }

func newDoc(uploader primitive.ObjectID) models.Document {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Document{
		ID:               primitive.NewObjectID(),
		Title:            "Bylaws",
		AssociationID:    primitive.NewObjectID(),
		UploadedBy:       uploader,
		FileURL:          "https://files.test/bylaws-v1.pdf",
		FileName:         "bylaws.pdf",
		Version:          1,
		PreviousVersions: []models.DocumentVersion{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestApply_ArchivesCurrentStateAndBumpsVersion(t *testing.T) {
	original := primitive.NewObjectID()
	editor := primitive.NewObjectID()
	doc := newDoc(original)
	firstUpdated := doc.UpdatedAt

	now := firstUpdated.Add(time.Hour)
	next := docversion.Apply(doc, docversion.Update{
		FileURL: strptr("https://files.test/bylaws-v2.pdf"),
	}, editor, now)

	if next.Version != 2 {
		t.Errorf("Version = %d, want 2", next.Version)
	}
	if next.FileURL != "https://files.test/bylaws-v2.pdf" {
		t.Errorf("FileURL = %q, want the new url", next.FileURL)
	}
	if next.UploadedBy != editor {
		t.Error("UploadedBy should become the actor")
	}
	if !next.UpdatedAt.Equal(now) {
		t.Error("UpdatedAt should be the supplied time")
	}

	if len(next.PreviousVersions) != 1 {
		t.Fatalf("history length = %d, want 1", len(next.PreviousVersions))
	}
	snap := next.PreviousVersions[0]
	if snap.Version != 1 {
		t.Errorf("snapshot version = %d, want 1", snap.Version)
	}
	if snap.FileURL != "https://files.test/bylaws-v1.pdf" {
		t.Errorf("snapshot FileURL = %q, want the pre-update url", snap.FileURL)
	}
	if snap.UploadedBy != original {
		t.Error("snapshot should record the pre-update uploader")
	}
	if !snap.UploadedAt.Equal(firstUpdated) {
		t.Error("snapshot should record the pre-update timestamp")
	}
}

func TestApply_MetadataOnlyUpdateStillVersionsAndKeepsFileURL(t *testing.T) {
	doc := newDoc(primitive.NewObjectID())
	doc.Version = 2
	doc.FileURL = "https://files.test/bylaws-v2.pdf"
	doc.PreviousVersions = []models.DocumentVersion{
		{Version: 1, FileURL: "https://files.test/bylaws-v1.pdf"},
	}

	next := docversion.Apply(doc, docversion.Update{
		Description: strptr("Amended bylaws"),
	}, primitive.NewObjectID(), time.Now())

	if next.Version != 3 {
		t.Errorf("Version = %d, want 3", next.Version)
	}
	if next.FileURL != "https://files.test/bylaws-v2.pdf" {
		t.Error("file url must be untouched by a metadata-only update")
	}
	if next.Description != "Amended bylaws" {
		t.Errorf("Description = %q", next.Description)
	}
	if len(next.PreviousVersions) != 2 {
		t.Fatalf("history length = %d, want 2", len(next.PreviousVersions))
	}
	if next.PreviousVersions[1].FileURL != "https://files.test/bylaws-v2.pdf" {
		t.Error("new snapshot should carry the v2 file url")
	}
}

func TestApply_NUpdatesYieldContiguousHistory(t *testing.T) {
	doc := newDoc(primitive.NewObjectID())
	actor := primitive.NewObjectID()

	const n = 7
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("Bylaws rev %d", i+1)
		doc = docversion.Apply(doc, docversion.Update{Title: &title}, actor, time.Now())
	}

	if doc.Version != 1+n {
		t.Errorf("Version = %d, want %d", doc.Version, 1+n)
	}
	if len(doc.PreviousVersions) != n {
		t.Fatalf("history length = %d, want %d", len(doc.PreviousVersions), n)
	}
	for i, snap := range doc.PreviousVersions {
		if snap.Version != i+1 {
			t.Errorf("snapshot[%d].Version = %d, want %d", i, snap.Version, i+1)
		}
	}
}

func TestApply_EmptyUpdateStillVersions(t *testing.T) {
	doc := newDoc(primitive.NewObjectID())

	upd := docversion.Update{}
	if !upd.Empty() {
		t.Fatal("zero Update should report Empty")
	}

	next := docversion.Apply(doc, upd, primitive.NewObjectID(), time.Now())
	if next.Version != 2 {
		t.Errorf("Version = %d, want 2: every update is a version", next.Version)
	}
	if next.Title != doc.Title || next.FileURL != doc.FileURL {
		t.Error("empty update must not change any field")
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	doc := newDoc(primitive.NewObjectID())
	history := doc.PreviousVersions

	_ = docversion.Apply(doc, docversion.Update{Title: strptr("Changed")}, primitive.NewObjectID(), time.Now())

	if doc.Version != 1 {
		t.Error("input version mutated")
	}
	if doc.Title != "Bylaws" {
		t.Error("input title mutated")
	}
	if len(history) != 0 || len(doc.PreviousVersions) != 0 {
		t.Error("input history mutated")
	}
}

func TestUpdate_Empty(t *testing.T) {
	if (docversion.Update{Title: strptr("")}).Empty() {
		t.Error("an update with a set pointer is not empty, even to the zero value")
	}
}
