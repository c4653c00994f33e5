// internal/domain/models/document.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentVersion is an archived snapshot of a document as it was before
// an update. The previous_versions array is append-only: snapshots are
// never reordered, rewritten, or truncated.
type DocumentVersion struct {
	Version    int                `bson:"version" json:"version"`
	FileURL    string             `bson:"file_url" json:"file_url"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploaded_at"`
	UploadedBy primitive.ObjectID `bson:"uploaded_by" json:"uploaded_by"`
}

// Document is a shared file belonging to one association. Version starts
// at 1 and advances by exactly one on every update; the snapshot versions
// in PreviousVersions plus the current Version always form the contiguous
// sequence 1..N.
type Document struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	AssociationID primitive.ObjectID `bson:"association_id" json:"association_id"`
	UploadedBy    primitive.ObjectID `bson:"uploaded_by" json:"uploaded_by"`

	FileURL  string `bson:"file_url" json:"file_url"`
	FileName string `bson:"file_name" json:"file_name"`
	FileSize int64  `bson:"file_size,omitempty" json:"file_size,omitempty"`
	MimeType string `bson:"mime_type,omitempty" json:"mime_type,omitempty"`

	Version          int               `bson:"version" json:"version"`
	PreviousVersions []DocumentVersion `bson:"previous_versions" json:"previous_versions"`

	Tags []string `bson:"tags,omitempty" json:"tags,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
