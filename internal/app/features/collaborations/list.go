// internal/app/features/collaborations/list.go
package collaborations

import (
	"context"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/authz"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList handles GET /api/collaborations: active collaborations in
// which any of the caller's associations participates, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ids := authz.NewMembershipSet(res.User.Memberships).AssociationIDs()
	collabs, err := h.Collabs.ListActiveForAssociations(ctx, ids)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to list collaborations", err)
		return
	}
	httpjson.Write(w, http.StatusOK, collabs)
}

// ServeView handles GET /api/collaborations/{id}: one collaboration with
// its message thread. Only members of a participating association may
// read it.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Collaboration not found")
	if !ok {
		return
	}
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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
	if _, ok := participatingMembership(w, res.User, collab, ""); !ok {
		return
	}
	httpjson.Write(w, http.StatusOK, collab)
}
