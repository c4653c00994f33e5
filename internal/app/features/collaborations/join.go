// internal/app/features/collaborations/join.go
package collaborations

import (
	"context"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"go.mongodb.org/mongo-driver/mongo"
)

// joinInput is the request body for joining a collaboration. The
// optional association_id selects which of the caller's associations
// joins; it defaults to the caller's first membership.
type joinInput struct {
	AssociationID string `json:"association_id"`
}

// ServeJoin handles POST /api/collaborations/{id}/join. Joining an
// already-participating association is a no-op that returns the same
// success response; the participant set never holds duplicates.
func (h *Handler) ServeJoin(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Collaboration not found")
	if !ok {
		return
	}
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	var in joinInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed join body", err)
		return
	}

	m, ok := actingMembership(w, res.User, in.AssociationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	collab, err := h.Collabs.Join(ctx, id, m.AssociationID)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Collaboration not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to join collaboration", err)
		return
	}
	httpjson.Write(w, http.StatusOK, collab)
}
