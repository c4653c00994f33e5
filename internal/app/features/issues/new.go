// internal/app/features/issues/new.go
package issues

import (
	"context"
	"net/http"

	issuestore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/issues"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
)

// createInput is the request body for reporting an issue.
type createInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// ServeCreate handles POST /api/issues/{associationId}. Any member may
// report an issue; it opens with the caller as reporter.
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
		h.ErrLog.BadRequest(w, r, "malformed create-issue body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	issue, err := h.Issues.Create(ctx, models.Issue{
		Title:         htmlsanitize.StripTags(in.Title),
		Description:   htmlsanitize.Sanitize(in.Description),
		AssociationID: assocID,
		ReportedBy:    res.UserID,
		Priority:      in.Priority,
		Category:      in.Category,
	})
	switch {
	case issuestore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid create-issue body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to create issue", err)
		return
	}
	httpjson.Write(w, http.StatusCreated, issue)
}
