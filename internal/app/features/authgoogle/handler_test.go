package authgoogle_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/features/authgoogle"
	uierrors "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/auth"
	"github.com/itsthtdev/neighborhoods-unite/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*authgoogle.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager(
		"0123456789abcdef0123456789abcdef", "test-session", "",
		time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	handler := authgoogle.NewHandler(db, sessionMgr, uierrors.NewErrorLogger(logger),
		"client-id", "client-secret", "http://localhost:3000", logger)
	return handler, testutil.NewFixtures(t, db)
}

func TestServeCurrentUser(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	t.Run("anonymous is 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/user", nil)
		rec := httptest.NewRecorder()
		handler.ServeCurrentUser(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if msg := testutil.ErrorMessage(t, rec); msg != "Authentication required" {
			t.Errorf("error = %q", msg)
		}
	})

	t.Run("signed-in user is echoed", func(t *testing.T) {
		assoc := fixtures.CreateAssociation(ctx, "Oak Hills")
		user := fixtures.CreateMember(ctx, "Alice", "alice@test.com", assoc.ID, "president")

		req := httptest.NewRequest("GET", "/api/auth/user", nil)
		req = testutil.WithUser(req, user)
		rec := httptest.NewRecorder()
		handler.ServeCurrentUser(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
		}
		var got struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			Email        string `json:"email"`
			Associations []struct {
				AssociationID string `json:"association_id"`
				Role          string `json:"role"`
			} `json:"associations"`
		}
		testutil.DecodeBody(t, rec, &got)
		if got.ID != user.ID.Hex() || got.Email != "alice@test.com" {
			t.Errorf("identity = %+v", got)
		}
		if len(got.Associations) != 1 || got.Associations[0].Role != "president" {
			t.Errorf("associations = %+v", got.Associations)
		}
	})
}

func TestServeLogout(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	testutil.DecodeBody(t, rec, &body)
	if body["message"] != "Logged out successfully" {
		t.Errorf("message = %q", body["message"])
	}

	// The session cookie is expired on the response.
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected an expired session cookie")
	}
}
