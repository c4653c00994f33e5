// internal/domain/models/collaboration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collaboration types.
const (
	CollabDiscussion      = "discussion"
	CollabInitiative      = "initiative"
	CollabEvent           = "event"
	CollabResourceSharing = "resource_sharing"
)

// Collaboration statuses.
const (
	CollabActive    = "active"
	CollabCompleted = "completed"
	CollabArchived  = "archived"
)

// CollabOrigin records who started a collaboration and on behalf of which
// association.
type CollabOrigin struct {
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	AssociationID primitive.ObjectID `bson:"association_id" json:"association_id"`
}

// CollabMessage is one entry in a collaboration's append-only message
// thread.
type CollabMessage struct {
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	AssociationID primitive.ObjectID `bson:"association_id" json:"association_id"`
	Message       string             `bson:"message" json:"message"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// Collaboration is a cross-association discussion, initiative, event, or
// resource-sharing effort. The creating association is always a
// participant; joining is idempotent.
type Collaboration struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	CreatedBy   CollabOrigin       `bson:"created_by" json:"created_by"`

	ParticipatingAssociations []primitive.ObjectID `bson:"participating_associations" json:"participating_associations"`

	Type   string `bson:"type" json:"type"`
	Status string `bson:"status" json:"status"`

	Messages []CollabMessage `bson:"messages" json:"messages"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsParticipating reports whether the association is already part of the
// collaboration.
func (c *Collaboration) IsParticipating(assocID primitive.ObjectID) bool {
	for _, id := range c.ParticipatingAssociations {
		if id == assocID {
			return true
		}
	}
	return false
}

// ValidCollabType reports whether t is a recognized collaboration type.
func ValidCollabType(t string) bool {
	switch t {
	case CollabDiscussion, CollabInitiative, CollabEvent, CollabResourceSharing:
		return true
	}
	return false
}

// ValidCollabStatus reports whether s is a recognized collaboration status.
func ValidCollabStatus(s string) bool {
	switch s {
	case CollabActive, CollabCompleted, CollabArchived:
		return true
	}
	return false
}
