// internal/app/features/associations/members.go
package associations

import (
	"context"
	"net/http"

	userstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/users"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/gates"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/normalize"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/urlid"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// memberView is one roster row: the user plus their role in this
// association.
type memberView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ServeMembers handles GET /api/associations/{id}/members: the roster,
// visible to any member.
func (h *Handler) ServeMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Association not found")
	if !ok {
		return
	}
	res := gates.RequireMember(w, r, id)
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.MembersOf(ctx, id)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to list members", err)
		return
	}

	out := make([]memberView, 0, len(users))
	for _, u := range users {
		m, ok := u.MembershipFor(id)
		if !ok {
			continue
		}
		out = append(out, memberView{
			ID:    u.ID.Hex(),
			Name:  u.Name,
			Email: u.Email,
			Role:  m.Role,
		})
	}
	httpjson.Write(w, http.StatusOK, out)
}

// addMemberInput is the request body for adding a member by email.
type addMemberInput struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ServeAddMember handles POST /api/associations/{id}/members. Officers
// add an existing user to the association; the role defaults to member.
func (h *Handler) ServeAddMember(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Association not found")
	if !ok {
		return
	}
	res := gates.RequireRole(w, r, id, models.OfficerRoles()...)
	if !res.OK {
		return
	}

	var in addMemberInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed add-member body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, normalize.Email(in.Email))
	if err == mongo.ErrNoDocuments {
		h.ErrLog.NotFound(w, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to look up user", err)
		return
	}

	err = h.Users.AddMembership(ctx, user.ID, id, in.Role)
	switch {
	case err == userstore.ErrDuplicateMembership:
		h.ErrLog.Conflict(w, err.Error())
		return
	case err == mongo.ErrNoDocuments:
		h.ErrLog.NotFound(w, "User not found")
		return
	case userstore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid add-member body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to add member", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Member added successfully"})
}

// memberRoleInput is the request body for changing a member's role.
type memberRoleInput struct {
	Role string `json:"role"`
}

// ServeUpdateMemberRole handles PUT /api/associations/{id}/members/{userId}/role.
// Only the president may reassign roles.
func (h *Handler) ServeUpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	id, ok := urlid.Param(w, r, "id", "Association not found")
	if !ok {
		return
	}
	userID, ok := urlid.Param(w, r, "userId", "Member not found in association")
	if !ok {
		return
	}
	res := gates.RequireRole(w, r, id, models.RolePresident)
	if !res.OK {
		return
	}

	var in memberRoleInput
	if err := httpjson.Decode(r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, "malformed member-role body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Users.UpdateMembershipRole(ctx, userID, id, in.Role)
	switch {
	case err == userstore.ErrMembershipNotFound:
		h.ErrLog.NotFound(w, err.Error())
		return
	case userstore.IsValidation(err):
		h.ErrLog.BadRequest(w, r, "invalid member-role body", err)
		return
	case err != nil:
		h.ErrLog.ServerError(w, r, "failed to update member role", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Member role updated successfully"})
}
