// internal/app/features/collaborations/status.go
package collaborations

import (
	"context"
	"net/http"

	collabstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/collaborations"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/authz"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// statusInput is the request body for moving a collaboration between
// active, completed, and archived.
type statusInput struct {
	Status string `json:"status"`
}

// ServeUpdateStatus handles PUT /api/collaborations/{id}/status. Only an
// officer of a participating association may move the status.
func (h *Handler) ServeUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Collaboration not found")
	if !ok {
		return
	}
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	var in statusInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed status body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	collab, err := h.Collabs.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Collaboration not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to load collaboration", err)
		return
	}

	officer := false
	for _, m := range res.User.Memberships {
		if collab.IsParticipating(m.AssociationID) &&
			authz.HasRole(res.User.Memberships, m.AssociationID, models.OfficerRoles()...) {
			officer = true
			break
		}
	}
	if !officer {
		httpjson.Error(w, http.StatusForbidden, "Insufficient permissions")
		return
	}

	collab, err = h.Collabs.UpdateStatus(ctx, id, in.Status)
	switch {
	case err == mongo.ErrNoDocuments:
		h.ErrLog.NotFound(w, "Collaboration not found")
		return
	case collabstore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid status body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to update collaboration status", err)
		return
	}
	httpjson.Write(w, http.StatusOK, collab)
}
