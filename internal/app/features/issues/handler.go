// internal/app/features/issues/handler.go

// Package issues serves the per-association issue tracker: reports,
// status moves, comment threads, and the city-notification flag.
package issues

import (
	uierrors "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	issuestore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/issues"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Issues.
type Handler struct {
	Issues *issuestore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an Issues handler bound to a DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Issues: issuestore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
