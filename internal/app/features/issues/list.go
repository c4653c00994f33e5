// internal/app/features/issues/list.go
package issues

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	issuestore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/issues"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList handles GET /api/issues/{associationId}: the association's
// issues, newest first, optionally filtered by ?status= and ?priority=.
// Members only.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	assocID, ok := urlid.Param(w, r, "associationId", "Association not found")
	if !ok {
		return
	}
	res := gates.RequireMember(w, r, assocID)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	issues, err := h.Issues.ListByAssociation(ctx, assocID, issuestore.Filter{
		Status:   query.Get(r, "status"),
		Priority: query.Get(r, "priority"),
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to list issues", err)
		return
	}
	httpjson.Write(w, http.StatusOK, issues)
}

// ServeView handles GET /api/issues/{associationId}/{id}: one issue with
// its comment thread.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	assocID, ok := urlid.Param(w, r, "associationId", "Association not found")
	if !ok {
		return
	}
	issueID, ok := urlid.Param(w, r, "id", "Issue not found")
	if !ok {
		return
	}
	res := gates.RequireMember(w, r, assocID)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	issue, err := h.Issues.GetByID(ctx, assocID, issueID)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Issue not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to load issue", err)
		return
	}
	httpjson.Write(w, http.StatusOK, issue)
}
