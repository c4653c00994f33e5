// internal/domain/models/issue.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Issue statuses. Any status may transition to any other status; there is
// no enforced ordering between them.
const (
	IssueOpen             = "open"
	IssueInProgress       = "in_progress"
	IssueNeedsCityContact = "needs_city_communication"
	IssueResolved         = "resolved"
	IssueClosed           = "closed"
)

// Issue priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Issue categories.
const (
	CategorySafety         = "safety"
	CategoryInfrastructure = "infrastructure"
	CategoryCommunity      = "community"
	CategoryEnvironment    = "environment"
	CategoryOther          = "other"
)

// IssueComment is one entry in an issue's append-only comment thread.
type IssueComment struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Issue is a problem or topic reported within one association.
type Issue struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	AssociationID primitive.ObjectID `bson:"association_id" json:"association_id"`
	ReportedBy    primitive.ObjectID `bson:"reported_by" json:"reported_by"`

	Status   string `bson:"status" json:"status"`
	Priority string `bson:"priority" json:"priority"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`

	AssignedTo *primitive.ObjectID `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`

	NeedsCityNotification bool `bson:"needs_city_notification" json:"needs_city_notification"`
	CityNotificationSent  bool `bson:"city_notification_sent" json:"city_notification_sent"`

	Comments []IssueComment `bson:"comments" json:"comments"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidIssueStatus reports whether s is a recognized issue status.
func ValidIssueStatus(s string) bool {
	switch s {
	case IssueOpen, IssueInProgress, IssueNeedsCityContact, IssueResolved, IssueClosed:
		return true
	}
	return false
}

// ValidPriority reports whether p is a recognized issue priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidCategory reports whether c is a recognized issue category.
func ValidCategory(c string) bool {
	switch c {
	case CategorySafety, CategoryInfrastructure, CategoryCommunity, CategoryEnvironment, CategoryOther:
		return true
	}
	return false
}
