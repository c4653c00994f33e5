// internal/domain/models/association.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Association statuses.
const (
	AssociationActive   = "active"
	AssociationInactive = "inactive"
)

// Email platform choices for an association's mailing list integration.
const (
	EmailPlatformMailchimp = "mailchimp"
	EmailPlatformOther     = "other"
	EmailPlatformNone      = "none"
)

// Association is a neighborhood association. Name is unique (folded NameCI
// backs the unique index and search/sort).
type Association struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Location     string             `bson:"location" json:"location"`
	ContactEmail string             `bson:"contact_email" json:"contact_email"`

	GoogleWorkspaceEnabled bool              `bson:"google_workspace_enabled" json:"google_workspace_enabled"`
	EmailPlatform          string            `bson:"email_platform" json:"email_platform"`
	EmailPlatformConfig    map[string]string `bson:"email_platform_config,omitempty" json:"email_platform_config,omitempty"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidEmailPlatform reports whether p is a recognized email platform value.
func ValidEmailPlatform(p string) bool {
	switch p {
	case EmailPlatformMailchimp, EmailPlatformOther, EmailPlatformNone:
		return true
	}
	return false
}
