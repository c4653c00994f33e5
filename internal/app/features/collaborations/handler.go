// internal/app/features/collaborations/handler.go

// Package collaborations serves the cross-association workspace API:
// shared discussions, initiatives, events, and resource sharing between
// associations.
package collaborations

import (
	uierrors "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	collabstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/collaborations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Collaborations.
type Handler struct {
	Collabs *collabstore.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a Collaborations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Collabs: collabstore.New(db),
		ErrLog:  errLog,
		Log:     logger,
	}
}
