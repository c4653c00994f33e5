// internal/app/system/authz/authz.go

// Package authz decides whether a caller may act within an association.
//
// The whole package is a pure predicate over the caller's membership set;
// it performs no I/O. Handlers resolve the session user once per request
// (internal/app/system/auth) and pass the memberships in explicitly —
// there is no process-wide authentication state.
package authz

import (
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/normalize"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Evaluate reports whether a caller with the given memberships may act on
// the target association.
//
// With an empty requiredRoles, any membership in the association allows.
// With required roles, the caller's role in that association must be one
// of them. No membership in the association always denies, regardless of
// requiredRoles.
func Evaluate(memberships []models.Membership, assocID primitive.ObjectID, requiredRoles []string) bool {
	m, ok := membershipFor(memberships, assocID)
	if !ok {
		return false
	}
	if len(requiredRoles) == 0 {
		return true
	}
	have := normalize.Role(m.Role)
	for _, want := range requiredRoles {
		if have == normalize.Role(want) {
			return true
		}
	}
	return false
}

// IsMember reports whether the caller belongs to the association in any
// role.
func IsMember(memberships []models.Membership, assocID primitive.ObjectID) bool {
	return Evaluate(memberships, assocID, nil)
}

// HasRole reports whether the caller's role in the association is one of
// roles.
func HasRole(memberships []models.Membership, assocID primitive.ObjectID, roles ...string) bool {
	return Evaluate(memberships, assocID, roles)
}

// RoleIn returns the caller's role in the association, if any.
func RoleIn(memberships []models.Membership, assocID primitive.ObjectID) (string, bool) {
	m, ok := membershipFor(memberships, assocID)
	if !ok {
		return "", false
	}
	return m.Role, true
}

// membershipFor scans in slice order so that, should a caller ever hold
// two entries for the same association, the first one wins. The user
// store rejects duplicate memberships, so in practice there is exactly
// zero or one entry per association; the first-match policy is pinned
// down by tests regardless.
func membershipFor(memberships []models.Membership, assocID primitive.ObjectID) (models.Membership, bool) {
	for _, m := range memberships {
		if m.AssociationID == assocID {
			return m, true
		}
	}
	return models.Membership{}, false
}
