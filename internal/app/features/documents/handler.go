// internal/app/features/documents/handler.go

// Package documents serves the per-association document API, including
// the version-on-every-update history.
package documents

import (
	uierrors "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	documentstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/documents"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Documents.
type Handler struct {
	Docs   *documentstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Documents handler bound to a DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Docs:   documentstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
