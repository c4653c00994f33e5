// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	associationsfeature "github.com/itsthtdev/neighborhoods-unite/internal/app/features/associations"
	authgooglefeature "github.com/itsthtdev/neighborhoods-unite/internal/app/features/authgoogle"
	collaborationsfeature "github.com/itsthtdev/neighborhoods-unite/internal/app/features/collaborations"
	documentsfeature "github.com/itsthtdev/neighborhoods-unite/internal/app/features/documents"
	errorsfeature "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	healthfeature "github.com/itsthtdev/neighborhoods-unite/internal/app/features/health"
	issuesfeature "github.com/itsthtdev/neighborhoods-unite/internal/app/features/issues"
	userstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/users"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. The session middleware runs on
// every route so auth.CurrentUser works anywhere; the association-scoped
// membership and role checks happen per handler via gates.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey,
		appCfg.SessionName,
		appCfg.SessionDomain,
		time.Duration(appCfg.SessionMaxAge)*time.Second,
		secure,
		logger,
	)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// The session cookie holds only the user id; LoadSessionUser fetches
	// fresh user data on each request so membership and role changes take
	// effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	// Google OAuth entry/callback plus the session endpoints.
	authHandler := authgooglefeature.NewHandler(
		deps.MongoDatabase, sessionMgr, errLog,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL,
		logger,
	)
	r.Mount("/auth", authgooglefeature.Routes(authHandler))
	r.Mount("/api/auth", authgooglefeature.APIRoutes(authHandler))

	// Domain APIs. Every route in these groups requires a session; the
	// handlers still run their own membership and role gates.
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireSignedIn)

		assocHandler := associationsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/api/associations", associationsfeature.Routes(assocHandler))

		docHandler := documentsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/api/documents", documentsfeature.Routes(docHandler))

		issueHandler := issuesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/api/issues", issuesfeature.Routes(issueHandler))

		collabHandler := collaborationsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/api/collaborations", collaborationsfeature.Routes(collabHandler))
	})

	return r, nil
}
