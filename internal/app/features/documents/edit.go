// internal/app/features/documents/edit.go
package documents

import (
	"context"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/docversion"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"go.mongodb.org/mongo-driver/mongo"
)

// editInput is the request body for updating a document. Absent fields
// are left untouched; any update, even metadata-only, produces a new
// version.
type editInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url"`
}

// ServeEdit handles PUT /api/documents/{associationId}/{id}. Members
// only. The current state is archived into the version history before
// the supplied fields are applied.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
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

	var in editInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed edit-document body", err)
		return
	}

	upd := docversion.Update{FileURL: in.FileURL}
	if in.Title != nil {
		title := htmlsanitize.StripTags(*in.Title)
		upd.Title = &title
	}
	if in.Description != nil {
		desc := htmlsanitize.Sanitize(*in.Description)
		upd.Description = &desc
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc, err := h.Docs.ApplyUpdate(ctx, assocID, docID, upd, res.UserID)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Document not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to update document", err)
		return
	}
	httpjson.Write(w, http.StatusOK, doc)
}
