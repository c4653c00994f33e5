package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client and logger.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string   `json:"status"`
	Database string   `json:"database"`
	Message  string   `json:"message,omitempty"`
	Error    string   `json:"error,omitempty"`
	Features []string `json:"features,omitempty"`
}

// features the API advertises to clients on a healthy check.
var features = []string{
	"Multi-Association Management",
	"Role-Based User Management",
	"Document Management with Version Control",
	"Issue & Topic Tracking",
	"Inter-Association Collaboration",
	"Google OAuth Integration",
}

// Serve handles GET /api/health.
//
// On success: 200 and
//
//	{ "status":"healthy", "database":"connected", "message":"...", "features":[...] }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  "Database unavailable",
			Error:    err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "healthy",
		Database: "connected",
		Message:  "Neighborhoods Unite API is running",
		Features: features,
	})
}
