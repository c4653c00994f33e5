// internal/app/features/issues/edit.go
package issues

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	issuestore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/issues"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// editInput is the request body for updating an issue. Absent fields are
// left untouched. assigned_to accepts an ObjectID hex string or null to
// unassign; an absent key leaves the assignment as is.
type editInput struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	Priority    *string         `json:"priority"`
	Category    *string         `json:"category"`
	AssignedTo  json.RawMessage `json:"assigned_to"`
}

// ServeEdit handles PUT /api/issues/{associationId}/{id}. Members only.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
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

	var in editInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed edit-issue body", err)
		return
	}

	upd := issuestore.Update{
		Status:   in.Status,
		Priority: in.Priority,
		Category: in.Category,
	}
	if in.Title != nil {
		title := htmlsanitize.StripTags(*in.Title)
		upd.Title = &title
	}
	if in.Description != nil {
		desc := htmlsanitize.Sanitize(*in.Description)
		upd.Description = &desc
	}
	if len(in.AssignedTo) > 0 {
		assignee, err := parseAssignee(in.AssignedTo)
		if err != nil {
			h.ErrLog.BadRequest(w, r, "invalid edit-issue body", err)
			return
		}
		upd.AssignedTo = &assignee
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	issue, err := h.Issues.Apply(ctx, assocID, issueID, upd)
	switch {
	case err == mongo.ErrNoDocuments:
		h.ErrLog.NotFound(w, "Issue not found")
		return
	case issuestore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid edit-issue body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to update issue", err)
		return
	}
	httpjson.Write(w, http.StatusOK, issue)
}

// parseAssignee decodes an assigned_to value: JSON null clears the
// assignment, a hex string assigns that user.
func parseAssignee(raw json.RawMessage) (*primitive.ObjectID, error) {
	var hex *string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return nil, errors.New("assigned_to must be an id string or null")
	}
	if hex == nil {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*hex)
	if err != nil {
		return nil, errors.New("assigned_to must be a valid user id")
	}
	return &id, nil
}
