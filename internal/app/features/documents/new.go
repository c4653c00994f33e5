// internal/app/features/documents/new.go
package documents

import (
	"context"
	"net/http"

	documentstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/documents"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
)

// createInput is the request body for uploading a document record. The
// file itself lives in external storage; the API stores its location and
// metadata.
type createInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FileURL     string   `json:"file_url"`
	FileName    string   `json:"file_name"`
	FileSize    int64    `json:"file_size"`
	MimeType    string   `json:"mime_type"`
	Tags        []string `json:"tags"`
}

// ServeCreate handles POST /api/documents/{associationId}. Any member
// may add a document; it starts at version 1 with an empty history and
// the caller as uploader.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	assocID, ok := urlid.Param(w, r, "associationId", "Association not found")
	if !ok {
		return
	}
	res := gates.RequireMember(w, r, assocID)
	if !res.OK {
		return
	}

	var in createInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed create-document body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	doc, err := h.Docs.Create(ctx, models.Document{
		Title:         htmlsanitize.StripTags(in.Title),
		Description:   htmlsanitize.Sanitize(in.Description),
		AssociationID: assocID,
		UploadedBy:    res.UserID,
		FileURL:       in.FileURL,
		FileName:      in.FileName,
		FileSize:      in.FileSize,
		MimeType:      in.MimeType,
		Tags:          in.Tags,
	})
	switch {
	case documentstore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid create-document body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to create document", err)
		return
	}
	httpjson.Write(w, http.StatusCreated, doc)
}
