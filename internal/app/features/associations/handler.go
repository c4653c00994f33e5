// internal/app/features/associations/handler.go
package associations

import (
	uierrors "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	associationstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/associations"
	userstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Associations.
type Handler struct {
	Assocs *associationstore.Store
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an Associations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Assocs: associationstore.New(db),
		Users:  userstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
