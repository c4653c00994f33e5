package collaborations_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/features/collaborations"
	uierrors "github.com/itsthtdev/neighborhoods-unite/internal/app/features/errors"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"github.com/itsthtdev/neighborhoods-unite/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*collaborations.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := collaborations.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func TestServeCreate_OriginFromMembership(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	assoc := fixtures.CreateAssociation(ctx, "Oak Hills")
	member := fixtures.CreateMember(ctx, "Member", "m@test.com", assoc.ID, models.RoleMember)

	req := testutil.NewJSONRequest(t, "POST", "/api/collaborations", map[string]any{
		"title":       "Joint cleanup day",
		"description": "Shared cleanup across adjacent neighborhoods.",
		"type":        models.CollabInitiative,
	})
	req = testutil.WithUser(req, member)

	rec := httptest.NewRecorder()
	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	var got models.Collaboration
	testutil.DecodeBody(t, rec, &got)
	if got.CreatedBy.UserID != member.ID || got.CreatedBy.AssociationID != assoc.ID {
		t.Errorf("CreatedBy = %+v", got.CreatedBy)
	}
	if len(got.ParticipatingAssociations) != 1 || got.ParticipatingAssociations[0] != assoc.ID {
		t.Errorf("participants = %v, want just the origin", got.ParticipatingAssociations)
	}
	if got.Status != models.CollabActive {
		t.Errorf("Status = %q, want active", got.Status)
	}
}

func TestServeCreate_NoMemberships(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	loner := fixtures.CreateUser(ctx, "Loner", "loner@test.com")

	req := testutil.NewJSONRequest(t, "POST", "/api/collaborations", map[string]any{
		"title":       "Joint cleanup day",
		"description": "Shared cleanup.",
		"type":        models.CollabInitiative,
	})
	req = testutil.WithUser(req, loner)

	rec := httptest.NewRecorder()
	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if msg := testutil.ErrorMessage(t, rec); msg != "Must be member of an association" {
		t.Errorf("error = %q", msg)
	}
}

func TestServeCreate_ExplicitAssociationMustBeHeld(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mine := fixtures.CreateAssociation(ctx, "Oak Hills")
	theirs := fixtures.CreateAssociation(ctx, "Maple Street")
	member := fixtures.CreateMember(ctx, "Member", "m@test.com", mine.ID, models.RoleMember)

	req := testutil.NewJSONRequest(t, "POST", "/api/collaborations", map[string]any{
		"title":          "Joint cleanup day",
		"description":    "Shared cleanup.",
		"type":           models.CollabInitiative,
		"association_id": theirs.ID.Hex(),
	})
	req = testutil.WithUser(req, member)

	rec := httptest.NewRecorder()
	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if msg := testutil.ErrorMessage(t, rec); msg != "Not a member of this association" {
		t.Errorf("error = %q", msg)
	}
}

func TestServeJoin_Idempotent(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	origin := fixtures.CreateAssociation(ctx, "Oak Hills")
	creator := fixtures.CreateMember(ctx, "Creator", "c@test.com", origin.ID, models.RoleMember)
	collab := fixtures.CreateCollaboration(ctx, creator.ID, origin.ID, "Joint cleanup")

	joiningAssoc := fixtures.CreateAssociation(ctx, "Maple Street")
	joiner := fixtures.CreateMember(ctx, "Joiner", "j@test.com", joiningAssoc.ID, models.RoleMember)

	join := func() *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, "POST",
			"/api/collaborations/"+collab.ID.Hex()+"/join", nil)
		req = testutil.WithChiURLParam(req, "id", collab.ID.Hex())
		req = testutil.WithUser(req, joiner)
		rec := httptest.NewRecorder()
		handler.ServeJoin(rec, req)
		return rec
	}

	rec := join()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	var got models.Collaboration
	testutil.DecodeBody(t, rec, &got)
	if len(got.ParticipatingAssociations) != 2 {
		t.Fatalf("participants = %d, want 2", len(got.ParticipatingAssociations))
	}

	// Joining again changes nothing.
	rec = join()
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat status = %d; body %s", rec.Code, rec.Body.String())
	}
	testutil.DecodeBody(t, rec, &got)
	if len(got.ParticipatingAssociations) != 2 {
		t.Errorf("participants after repeat = %d, want 2", len(got.ParticipatingAssociations))
	}
}

func TestServeAddMessage_ParticipantsOnly(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	origin := fixtures.CreateAssociation(ctx, "Oak Hills")
	creator := fixtures.CreateMember(ctx, "Creator", "c@test.com", origin.ID, models.RoleMember)
	collab := fixtures.CreateCollaboration(ctx, creator.ID, origin.ID, "Joint cleanup")

	outsideAssoc := fixtures.CreateAssociation(ctx, "Maple Street")
	outsider := fixtures.CreateMember(ctx, "Outsider", "o@test.com", outsideAssoc.ID, models.RoleMember)

	post := func(as models.User, message string) *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, "POST",
			"/api/collaborations/"+collab.ID.Hex()+"/messages",
			map[string]any{"message": message})
		req = testutil.WithChiURLParam(req, "id", collab.ID.Hex())
		req = testutil.WithUser(req, as)
		rec := httptest.NewRecorder()
		handler.ServeAddMessage(rec, req)
		return rec
	}

	t.Run("non-participant is refused", func(t *testing.T) {
		rec := post(outsider, "Hello from Maple Street")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
		if msg := testutil.ErrorMessage(t, rec); msg != "Association not participating in this collaboration" {
			t.Errorf("error = %q", msg)
		}
	})

	t.Run("participant posts", func(t *testing.T) {
		rec := post(creator, "Kickoff is Saturday")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
		}
		var got models.Collaboration
		testutil.DecodeBody(t, rec, &got)
		if len(got.Messages) != 1 {
			t.Fatalf("messages = %d, want 1", len(got.Messages))
		}
		m := got.Messages[0]
		if m.UserID != creator.ID || m.AssociationID != origin.ID {
			t.Errorf("message attribution = %+v", m)
		}
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		rec := post(creator, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if msg := testutil.ErrorMessage(t, rec); msg != "message is required" {
			t.Errorf("error = %q", msg)
		}
	})
}

func TestServeUpdateStatus_OfficerOfParticipant(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	origin := fixtures.CreateAssociation(ctx, "Oak Hills")
	creator := fixtures.CreateMember(ctx, "Creator", "c@test.com", origin.ID, models.RoleMember)
	officer := fixtures.CreateMember(ctx, "Officer", "officer@test.com", origin.ID, models.RolePresident)
	collab := fixtures.CreateCollaboration(ctx, creator.ID, origin.ID, "Joint cleanup")

	outsideAssoc := fixtures.CreateAssociation(ctx, "Maple Street")
	outsideOfficer := fixtures.CreateMember(ctx, "Other", "other@test.com", outsideAssoc.ID, models.RolePresident)

	put := func(as models.User, status string) *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, "PUT",
			"/api/collaborations/"+collab.ID.Hex()+"/status",
			map[string]any{"status": status})
		req = testutil.WithChiURLParam(req, "id", collab.ID.Hex())
		req = testutil.WithUser(req, as)
		rec := httptest.NewRecorder()
		handler.ServeUpdateStatus(rec, req)
		return rec
	}

	t.Run("plain member is refused", func(t *testing.T) {
		rec := put(creator, models.CollabCompleted)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("officer of a non-participating association is refused", func(t *testing.T) {
		rec := put(outsideOfficer, models.CollabCompleted)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
		if msg := testutil.ErrorMessage(t, rec); msg != "Insufficient permissions" {
			t.Errorf("error = %q", msg)
		}
	})

	t.Run("participating officer updates", func(t *testing.T) {
		rec := put(officer, models.CollabCompleted)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
		}
		var got models.Collaboration
		testutil.DecodeBody(t, rec, &got)
		if got.Status != models.CollabCompleted {
			t.Errorf("Status = %q, want completed", got.Status)
		}
	})
}

func TestServeList_ScopedToCallerAssociations(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mine := fixtures.CreateAssociation(ctx, "Oak Hills")
	member := fixtures.CreateMember(ctx, "Member", "m@test.com", mine.ID, models.RoleMember)
	fixtures.CreateCollaboration(ctx, member.ID, mine.ID, "Visible")

	other := fixtures.CreateAssociation(ctx, "Maple Street")
	stranger := fixtures.CreateMember(ctx, "Stranger", "s@test.com", other.ID, models.RoleMember)
	fixtures.CreateCollaboration(ctx, stranger.ID, other.ID, "Hidden")

	req := httptest.NewRequest("GET", "/api/collaborations", nil)
	req = testutil.WithUser(req, member)

	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	var got []models.Collaboration
	testutil.DecodeBody(t, rec, &got)
	if len(got) != 1 {
		t.Fatalf("collaborations = %d, want 1", len(got))
	}
	if got[0].Title != "Visible" {
		t.Errorf("Title = %q", got[0].Title)
	}
}
