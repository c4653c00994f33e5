// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/gorilla/securecookie"
	uierrors "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	loginstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/logins"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/store/oauthstate"
	userstore "github.com/itsthtdev/neighborhoods-unite/internal/app/store/users"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/auth"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateLifetime = 10 * time.Minute
	userinfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// Handler handles Google OAuth authentication and the session endpoints.
type Handler struct {
	Users      *userstore.Store
	States     *oauthstate.Store
	Logins     *loginstore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g., "https://neighborhoods.example.com/auth/google/callback"
}

// NewHandler creates a new Google OAuth handler.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	clientID, clientSecret, baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Users:        userstore.New(db),
		States:       oauthstate.New(db),
		Logins:       loginstore.New(db),
		SessionMgr:   sessionMgr,
		ErrLog:       errLog,
		Log:          logger,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  strings.TrimRight(baseURL, "/") + "/auth/google/callback",
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google                                                             |
| Initiates the OAuth flow by redirecting to Google's consent screen.          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		httpjson.Error(w, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}

	state, err := generateState()
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to generate OAuth state", err)
		return
	}

	returnURL := query.Get(r, "return")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	expiresAt := time.Now().UTC().Add(stateLifetime)
	if err := h.States.Save(ctx, state, returnURL, expiresAt); err != nil {
		h.ErrLog.ServerError(w, r, "failed to save OAuth state", err)
		return
	}

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google/callback                                                    |
| Resolves the Google profile to a user record and signs the session in.       |
*─────────────────────────────────────────────────────────────────────────────*/

// googleProfile is the subset of the userinfo response we use.
type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := query.Get(r, "error"); errParam != "" {
		h.Log.Warn("Google OAuth denied", zap.String("error", errParam))
		httpjson.Error(w, http.StatusUnauthorized, "Google sign-in was cancelled")
		return
	}

	state := query.Get(r, "state")
	code := query.Get(r, "code")
	if state == "" || code == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing state or code")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	returnURL, ok, err := h.States.Consume(ctx, state)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to consume OAuth state", err)
		return
	}
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid or expired sign-in attempt")
		return
	}

	profile, err := h.fetchProfile(ctx, code)
	if err != nil {
		h.ErrLog.ServerError(w, r, "Google token exchange failed", err)
		return
	}
	if profile.Email == "" {
		httpjson.Error(w, http.StatusUnauthorized, "Google account has no email")
		return
	}

	user, err := h.Users.UpsertGoogleUser(ctx, profile.ID, profile.Email, profile.Name)
	if err != nil {
		h.ErrLog.ServerError(w, r, "failed to resolve Google user", err)
		return
	}

	if _, err := h.Logins.Record(ctx, user.ID, "google"); err != nil {
		// Login history is best effort; the sign-in itself proceeds.
		h.Log.Warn("failed to record login", zap.Error(err))
	}

	if err := h.SessionMgr.SignIn(w, r, user.ID.Hex()); err != nil {
		h.ErrLog.ServerError(w, r, "failed to establish session", err)
		return
	}

	h.Log.Info("user signed in",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", user.Email))

	if returnURL == "" || !strings.HasPrefix(returnURL, "/") {
		returnURL = "/"
	}
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

// fetchProfile exchanges the authorization code and loads the userinfo
// profile with the resulting token.
func (h *Handler) fetchProfile(ctx context.Context, code string) (*googleProfile, error) {
	cfg := h.oauth2Config()

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := cfg.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &profile, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/auth/user, POST /api/auth/logout                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCurrentUser returns the resolved session user.
func (h *Handler) ServeCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"associations": u.Memberships,
	})
}

// ServeLogout clears the session.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.ErrLog.ServerError(w, r, "failed to clear session", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// generateState returns a cryptographically random, URL-safe state token.
func generateState() (string, error) {
	b := securecookie.GenerateRandomKey(32)
	if b == nil {
		return "", fmt.Errorf("random source unavailable")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
