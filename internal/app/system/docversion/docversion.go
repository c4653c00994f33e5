// internal/app/system/docversion/docversion.go

// Package docversion implements the document versioning rules: every
// update archives the current state into the previous-versions history
// and advances the version counter by exactly one.
//
// Apply is pure; the documents store is responsible for loading the
// current document and persisting the result.
package docversion

import (
	"time"

	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Update carries the fields a caller may change on a document. Nil means
// "no change requested"; a pointer to the empty string clears the field.
type Update struct {
	Title       *string
	Description *string
	FileURL     *string
}

// Empty reports whether the update requests no field changes. An empty
// update still produces a new version when applied; that is deliberate
// ("every update is a version"), so callers who want to skip no-ops must
// check before calling Apply.
func (u Update) Empty() bool {
	return u.Title == nil && u.Description == nil && u.FileURL == nil
}

// Apply produces the next version of doc: the current state is archived
// as a snapshot, the version advances by one, supplied fields overwrite
// their current values, and the actor becomes the current uploader.
//
// The returned document's history is a fresh slice; the input is not
// mutated. Snapshot versions plus the new current version always form the
// contiguous sequence 1..N.
func Apply(doc models.Document, upd Update, actorID primitive.ObjectID, now time.Time) models.Document {
	snapshot := models.DocumentVersion{
		Version:    doc.Version,
		FileURL:    doc.FileURL,
		UploadedAt: doc.UpdatedAt,
		UploadedBy: doc.UploadedBy,
	}

	next := doc
	next.PreviousVersions = make([]models.DocumentVersion, 0, len(doc.PreviousVersions)+1)
	next.PreviousVersions = append(next.PreviousVersions, doc.PreviousVersions...)
	next.PreviousVersions = append(next.PreviousVersions, snapshot)

	next.Version = doc.Version + 1
	if upd.Title != nil {
		next.Title = *upd.Title
	}
	if upd.Description != nil {
		next.Description = *upd.Description
	}
	if upd.FileURL != nil {
		next.FileURL = *upd.FileURL
	}
	next.UpdatedAt = now
	next.UploadedBy = actorID

	return next
}
