// internal/app/system/urlid/urlid.go

// Package urlid parses ObjectID URL parameters for the API handlers.
package urlid

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Param parses the named chi URL parameter as an ObjectID. A malformed
// id cannot name any entity, so it is reported as not found with the
// given message and ok=false.
func Param(w http.ResponseWriter, r *http.Request, name, notFoundMsg string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, notFoundMsg)
		return primitive.NilObjectID, false
	}
	return id, true
}
