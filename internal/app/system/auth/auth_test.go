package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/auth"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testKey, "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

type staticFetcher struct {
	users map[string]*auth.SessionUser
}

func (f *staticFetcher) FetchUser(_ context.Context, userID string) *auth.SessionUser {
	return f.users[userID]
}

func TestNewSessionManager_EmptyKeyRejected(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Error("expected an error for an empty session key")
	}
}

func TestSignInThenLoadSessionUser(t *testing.T) {
	sm := newManager(t)
	sm.SetUserFetcher(&staticFetcher{users: map[string]*auth.SessionUser{
		"u1": {ID: "u1", Name: "Alice", Email: "alice@test.com"},
	}})

	// Sign in and capture the cookie.
	signInRec := httptest.NewRecorder()
	if err := sm.SignIn(signInRec, httptest.NewRequest("GET", "/", nil), "u1"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := signInRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("SignIn should set a session cookie")
	}

	// Replay the cookie through the middleware.
	var got *auth.SessionUser
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("middleware should resolve the signed-in user")
	}
	if got.ID != "u1" || got.Name != "Alice" {
		t.Errorf("resolved user = %+v", got)
	}
}

func TestLoadSessionUser_UnknownUserPassesThroughAnonymous(t *testing.T) {
	sm := newManager(t)
	sm.SetUserFetcher(&staticFetcher{users: map[string]*auth.SessionUser{}})

	signInRec := httptest.NewRecorder()
	if err := sm.SignIn(signInRec, httptest.NewRequest("GET", "/", nil), "deleted-user"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	called := false
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := auth.CurrentUser(r); ok {
			t.Error("a user the fetcher cannot find must not be resolved")
		}
	}))

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range signInRec.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("request should pass through to the handler")
	}
}

func TestSignOutClearsSession(t *testing.T) {
	sm := newManager(t)
	sm.SetUserFetcher(&staticFetcher{users: map[string]*auth.SessionUser{
		"u1": {ID: "u1", Name: "Alice"},
	}})

	signInRec := httptest.NewRecorder()
	if err := sm.SignIn(signInRec, httptest.NewRequest("GET", "/", nil), "u1"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	signOutReq := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range signInRec.Result().Cookies() {
		signOutReq.AddCookie(c)
	}
	signOutRec := httptest.NewRecorder()
	if err := sm.SignOut(signOutRec, signOutReq); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	cleared := signOutRec.Result().Cookies()
	if len(cleared) == 0 {
		t.Fatal("SignOut should rewrite the cookie")
	}
	if cleared[0].MaxAge != -1 {
		t.Errorf("cleared cookie MaxAge = %d, want -1", cleared[0].MaxAge)
	}
}

func TestRequireSignedIn(t *testing.T) {
	sm := newManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("resolved user passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: "u1"})
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}
