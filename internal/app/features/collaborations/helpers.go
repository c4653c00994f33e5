// internal/app/features/collaborations/helpers.go
package collaborations

import (
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/auth"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/authz"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// actingMembership resolves which of the caller's memberships a request
// acts through. An explicit association id must be one the caller holds;
// when none is supplied the caller's first membership is used. Callers
// with no memberships at all cannot act here.
func actingMembership(w http.ResponseWriter, u *auth.SessionUser, explicit string) (models.Membership, bool) {
	if len(u.Memberships) == 0 {
		httpjson.Error(w, http.StatusForbidden, "Must be member of an association")
		return models.Membership{}, false
	}
	if explicit == "" {
		return u.Memberships[0], true
	}

	assocID, err := primitive.ObjectIDFromHex(explicit)
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Association not found")
		return models.Membership{}, false
	}
	m, ok := authz.NewMembershipSet(u.Memberships)[assocID]
	if !ok {
		httpjson.Error(w, http.StatusForbidden, "Not a member of this association")
		return models.Membership{}, false
	}
	return m, true
}

// participatingMembership returns the membership through which the
// caller participates in the collaboration. When explicit is set that
// association must both belong to the caller and participate; otherwise
// the caller's first participating membership is used.
func participatingMembership(w http.ResponseWriter, u *auth.SessionUser, c *models.Collaboration, explicit string) (models.Membership, bool) {
	if explicit != "" {
		m, ok := actingMembership(w, u, explicit)
		if !ok {
			return models.Membership{}, false
		}
		if !c.IsParticipating(m.AssociationID) {
			httpjson.Error(w, http.StatusForbidden, "Association not participating in this collaboration")
			return models.Membership{}, false
		}
		return m, true
	}

	for _, m := range u.Memberships {
		if c.IsParticipating(m.AssociationID) {
			return m, true
		}
	}
	httpjson.Error(w, http.StatusForbidden, "Association not participating in this collaboration")
	return models.Membership{}, false
}
