// internal/domain/models/loginrecord.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRecord captures one successful sign-in for audit and activity views.
// SessionID is a random UUID minted at login, not the cookie value.
type LoginRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	Method    string             `bson:"method" json:"method"` // "google"
	At        time.Time          `bson:"at" json:"at"`
}
