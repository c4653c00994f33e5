// internal/app/system/authz/membershipset.go
package authz

import (
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipSet is a caller's memberships keyed by association for O(1)
// lookup. Build it once per request when a handler needs more than one
// check against the same set.
type MembershipSet map[primitive.ObjectID]models.Membership

// NewMembershipSet indexes the memberships by association id. When the
// input carries duplicate entries for one association, the first entry is
// kept, matching the slice-order policy of Evaluate.
func NewMembershipSet(memberships []models.Membership) MembershipSet {
	set := make(MembershipSet, len(memberships))
	for _, m := range memberships {
		if _, exists := set[m.AssociationID]; !exists {
			set[m.AssociationID] = m
		}
	}
	return set
}

// Contains reports whether the set holds any membership in the
// association.
func (s MembershipSet) Contains(assocID primitive.ObjectID) bool {
	_, ok := s[assocID]
	return ok
}

// Role returns the role held in the association, if any.
func (s MembershipSet) Role(assocID primitive.ObjectID) (string, bool) {
	m, ok := s[assocID]
	if !ok {
		return "", false
	}
	return m.Role, true
}

// AssociationIDs returns the ids of every association in the set, in
// unspecified order.
func (s MembershipSet) AssociationIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
