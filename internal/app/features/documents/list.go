// internal/app/features/documents/list.go
package documents

import (
	"context"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList handles GET /api/documents/{associationId}: the
// association's documents, newest first. Members only.
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

	docs, err := h.Docs.ListByAssociation(ctx, assocID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to list documents", err)
		return
	}
	httpjson.Write(w, http.StatusOK, docs)
}

// ServeView handles GET /api/documents/{associationId}/{id}: one
// document, including its version history.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Docs.GetByID(ctx, assocID, docID)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Document not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to load document", err)
		return
	}
	httpjson.Write(w, http.StatusOK, doc)
}
