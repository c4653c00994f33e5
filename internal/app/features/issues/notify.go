// internal/app/features/issues/notify.go
package issues

import (
	"context"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeNotifyCity handles PUT /api/issues/{associationId}/{id}/notify-city.
// Any member may flag the issue for the city; the flag and the status
// move land in one write, and repeating the call is a no-op with the
// same response.
func (h *Handler) ServeNotifyCity(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	issue, err := h.Issues.MarkNeedsCityNotification(ctx, assocID, issueID)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Issue not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to flag issue for city notification", err)
		return
	}
	httpjson.Write(w, http.StatusOK, issue)
}
