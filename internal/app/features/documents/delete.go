// internal/app/features/documents/delete.go
package documents

import (
	"context"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
)

// ServeDelete handles DELETE /api/documents/{associationId}/{id}.
// Members only; deletion discards the version history with the
// document.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	assocID, ok := urlid.Param(w, r, "associationId", "Association not found")
	if !ok {
		return
	}
	docID, ok := urlid.Param(w, r, "id", "Document not found")
	if !ok {
		return
	}
	res := gates.RequireMember(w, r, assocID)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Docs.Delete(ctx, assocID, docID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to delete document", err)
		return
	}
	if n == 0 {
		h.ErrLog.NotFound(w, "Document not found")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}
