// internal/app/features/issues/comments.go
package issues

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

// commentInput is the request body for adding a comment.
type commentInput struct {
	Comment string `json:"comment"`
}

// ServeAddComment handles POST /api/issues/{associationId}/{id}/comments.
// Members only; the thread is append-only.
func (h *Handler) ServeAddComment(w http.ResponseWriter, r *http.Request) {
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

	var in commentInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed comment body", err)
		return
	}
	comment := htmlsanitize.Sanitize(in.Comment)
	if comment == "" {
		h.ErrLog.BadRequest(w, r, "invalid comment body", errors.New("comment is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	issue, err := h.Issues.AddComment(ctx, assocID, issueID, models.IssueComment{
		UserID:  res.UserID,
		Comment: comment,
	})
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "Issue not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to add comment", err)
		return
	}
	httpjson.Write(w, http.StatusOK, issue)
}
