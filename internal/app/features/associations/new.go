// internal/app/features/associations/new.go
package associations

import (
	"context"
	"net/http"

	associationstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/associations"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.uber.org/zap"
)

// createInput is the request body for creating an association.
type createInput struct {
	Name                   string            `json:"name"`
	Description            string            `json:"description"`
	Location               string            `json:"location"`
	ContactEmail           string            `json:"contact_email"`
	GoogleWorkspaceEnabled bool              `json:"google_workspace_enabled"`
	EmailPlatform          string            `json:"email_platform"`
	EmailPlatformConfig    map[string]string `json:"email_platform_config"`
}

// ServeCreate handles POST /api/associations. Any signed-in user may
// found an association; the founder becomes its president.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	var in createInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed create-association body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	assoc, err := h.Assocs.Create(ctx, models.Association{
		Name:                   htmlsanitize.StripTags(in.Name),
		Description:            htmlsanitize.Sanitize(in.Description),
		Location:               in.Location,
		ContactEmail:           in.ContactEmail,
		GoogleWorkspaceEnabled: in.GoogleWorkspaceEnabled,
		EmailPlatform:          in.EmailPlatform,
		EmailPlatformConfig:    in.EmailPlatformConfig,
	})
	switch {
	case err == associationstore.ErrDuplicateName:
		h.ErrLog.Conflict(w, err.Error())
		return
	case associationstore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid create-association body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to create association", err)
		return
	}

	// Founder joins as president. The association exists either way; a
	// failed membership write is surfaced so the caller can retry the
	// join rather than silently losing their role.
	if err := h.Users.AddMembership(ctx, res.UserID, assoc.ID, models.RolePresident); err != nil {
		h.Log.Error("failed to add founder membership",
			zap.Error(err),
			zap.String("association_id", assoc.ID.Hex()),
			zap.String("user_id", res.UserID.Hex()))
		h.ErrLog.ServerError(w, r, "failed to add founder membership", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, assoc)
}
