// internal/app/features/associations/list.go
package associations

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

// ServeList handles GET /api/associations: every active association,
// visible to any signed-in user.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assocs, err := h.Assocs.ListActive(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to list associations", err)
		return
	}
	httpjson.Write(w, http.StatusOK, assocs)
}

// ServeMine handles GET /api/associations/my-associations: the active
// associations the caller belongs to.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ids := authz.NewMembershipSet(res.User.Memberships).AssociationIDs()
	assocs, err := h.Assocs.ListActiveByIDs(ctx, ids)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to list caller's associations", err)
		return
	}
	httpjson.Write(w, http.StatusOK, assocs)
}

// ServeView handles GET /api/associations/{id}: one association,
// visible to any signed-in user.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}
	id, ok := urlid.Param(w, r, "id", "Association not found")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	assoc, err := h.Assocs.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Association not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to load association", err)
		return
	}
	httpjson.Write(w, http.StatusOK, assoc)
}
