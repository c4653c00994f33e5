// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership ties a user to one association with a single role.
//
// A user holds at most one Membership per association; the user store
// enforces this on every add/update path.
type Membership struct {
	AssociationID primitive.ObjectID `bson:"association_id" json:"association_id"`
	Role          string             `bson:"role" json:"role"`
}

// User represents a resident account. Accounts are created through Google
// sign-in; Memberships record which associations the user belongs to and
// in what role.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	GoogleID string             `bson:"google_id,omitempty" json:"-"`

	Memberships []Membership `bson:"associations" json:"associations"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// MembershipFor returns the user's membership in the given association.
// When the user somehow holds more than one entry for the association,
// the first entry wins; duplicates are rejected at the store layer, so
// this is a defensive tie-break, not an expected path.
func (u *User) MembershipFor(assocID primitive.ObjectID) (Membership, bool) {
	for _, m := range u.Memberships {
		if m.AssociationID == assocID {
			return m, true
		}
	}
	return Membership{}, false
}
