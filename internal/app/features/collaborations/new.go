// internal/app/features/collaborations/new.go
package collaborations

import (
	"context"
	"net/http"

	collabstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/collaborations"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
)

// createInput is the request body for starting a collaboration. The
// optional association_id selects which of the caller's associations is
// the origin; it defaults to the caller's first membership.
type createInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	AssociationID string `json:"association_id"`
}

// ServeCreate handles POST /api/collaborations. The origin association
// is always part of the participant set.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	var in createInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed create-collaboration body", err)
		return
	}

	origin, ok := actingMembership(w, res.User, in.AssociationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	collab, err := h.Collabs.Create(ctx, models.Collaboration{
		Title:       htmlsanitize.StripTags(in.Title),
		Description: htmlsanitize.Sanitize(in.Description),
		Type:        in.Type,
		CreatedBy: models.CollabOrigin{
			UserID:        res.UserID,
			AssociationID: origin.AssociationID,
		},
	})
	switch {
	case collabstore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid create-collaboration body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to create collaboration", err)
		return
	}
	httpjson.Write(w, http.StatusCreated, collab)
}
