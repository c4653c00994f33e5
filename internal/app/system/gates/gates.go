// Package gates provides authorization gate functions for API handlers.
//
// Route middleware (auth.RequireSignedIn) covers the signed-in check for
// whole route groups. Gates cover the association-scoped checks that
// depend on a URL or body value: "is the caller a member of this
// association" and "does the caller hold one of these roles in it". Both
// reduce to authz.Evaluate; gates add the 401/403 response writing so
// handlers can bail out with a single call.
//
// A gate that fails writes the error response and returns OK=false; no
// side effect may occur after a failed gate.
package gates

import (
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/auth"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/authz"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result carries the resolved caller out of a successful gate check.
type Result struct {
	User   *auth.SessionUser
	UserID primitive.ObjectID
	OK     bool
}

// RequireAuth ensures a user is signed in and that their id is a valid
// object id. Malformed ids fail closed as unauthenticated.
func RequireAuth(w http.ResponseWriter, r *http.Request) Result {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return Result{}
	}
	uid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return Result{}
	}
	return Result{User: u, UserID: uid, OK: true}
}

// RequireMember ensures the caller belongs to the association in any
// role.
func RequireMember(w http.ResponseWriter, r *http.Request, assocID primitive.ObjectID) Result {
	res := RequireAuth(w, r)
	if !res.OK {
		return res
	}
	if !authz.IsMember(res.User.Memberships, assocID) {
		httpjson.Error(w, http.StatusForbidden, "Not a member of this association")
		return Result{}
	}
	return res
}

// RequireRole ensures the caller holds one of the given roles in the
// association. Non-members are denied before the role check.
func RequireRole(w http.ResponseWriter, r *http.Request, assocID primitive.ObjectID, roles ...string) Result {
	res := RequireAuth(w, r)
	if !res.OK {
		return res
	}
	if !authz.HasRole(res.User.Memberships, assocID, roles...) {
		httpjson.Error(w, http.StatusForbidden, "Insufficient permissions")
		return Result{}
	}
	return res
}
