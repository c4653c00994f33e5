// internal/app/features/associations/edit.go
package associations

import (
	"context"
	"net/http"

	associationstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/associations"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// editInput is the request body for updating an association. Absent
// fields are left untouched.
type editInput struct {
	Name                   *string           `json:"name"`
	Description            *string           `json:"description"`
	Location               *string           `json:"location"`
	ContactEmail           *string           `json:"contact_email"`
	Status                 *string           `json:"status"`
	GoogleWorkspaceEnabled *bool             `json:"google_workspace_enabled"`
	EmailPlatform          *string           `json:"email_platform"`
	EmailPlatformConfig    map[string]string `json:"email_platform_config"`
}

// ServeEdit handles PUT /api/associations/{id}. Officers only.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Association not found")
	if !ok {
		return
	}
	res := gates.RequireRole(w, r, id, models.OfficerRoles()...)
	if !res.OK {
		return
	}

	var in editInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed edit-association body", err)
		return
	}

	upd := associationstore.Update{
		Location:               in.Location,
		ContactEmail:           in.ContactEmail,
		Status:                 in.Status,
		GoogleWorkspaceEnabled: in.GoogleWorkspaceEnabled,
		EmailPlatform:          in.EmailPlatform,
		EmailPlatformConfig:    in.EmailPlatformConfig,
	}
	if in.Name != nil {
		name := htmlsanitize.StripTags(*in.Name)
		upd.Name = &name
	}
	if in.Description != nil {
		desc := htmlsanitize.Sanitize(*in.Description)
		upd.Description = &desc
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assoc, err := h.Assocs.Apply(ctx, id, upd)
	switch {
	case err == mongo.ErrNoDocuments:
		h.ErrLog.NotFound(w, "Association not found")
		return
	case err == associationstore.ErrDuplicateName:
		h.ErrLog.Conflict(w, err.Error())
		return
	case associationstore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid edit-association body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to update association", err)
		return
	}
	httpjson.Write(w, http.StatusOK, assoc)
}
