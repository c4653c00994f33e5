// internal/app/features/collaborations/messages.go
package collaborations

import (
	"context"
	"errors"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// messageInput is the request body for posting to the thread. The
// optional association_id selects which of the caller's participating
// associations the message speaks for.
type messageInput struct {
	Message       string `json:"message"`
	AssociationID string `json:"association_id"`
}

// ServeAddMessage handles POST /api/collaborations/{id}/messages. Only
// members of a participating association may post; the thread is
// append-only.
func (h *Handler) ServeAddMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Collaboration not found")
	if !ok {
		return
	}
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	var in messageInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed message body", err)
		return
	}
	message := htmlsanitize.Sanitize(in.Message)
	if message == "" {
		h.ErrLog.BadRequest(w, r, "invalid message body", errors.New("message is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	collab, err := h.Collabs.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Collaboration not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to load collaboration", err)
		return
	}

	m, ok := participatingMembership(w, res.User, collab, in.AssociationID)
	if !ok {
		return
	}

	collab, err = h.Collabs.AddMessage(ctx, id, models.CollabMessage{
		UserID:        res.UserID,
		AssociationID: m.AssociationID,
		Message:       message,
	})
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Collaboration not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to add message", err)
		return
	}
	httpjson.Write(w, http.StatusOK, collab)
}
