package authz_test

import (
	"testing"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/authz"
	"github.com/itsthtdev/neighborhoods-unite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEvaluate_RoleMatrix(t *testing.T) {
	assocA := primitive.NewObjectID()
	assocB := primitive.NewObjectID()

	alice := []models.Membership{
		{AssociationID: assocA, Role: models.RolePresident},
		{AssociationID: assocB, Role: models.RoleMember},
	}
	bob := []models.Membership{
		{AssociationID: assocB, Role: models.RoleTreasurer},
	}

	tests := []struct {
		name        string
		memberships []models.Membership
		assoc       primitive.ObjectID
		roles       []string
		want        bool
	}{
		{"president passes officer check in own association", alice, assocA, models.OfficerRoles(), true},
		{"plain member fails officer check", alice, assocB, models.OfficerRoles(), false},
		{"member passes any-member check", alice, assocB, nil, true},
		{"no membership denies even with empty roles", bob, assocA, nil, false},
		{"no membership denies regardless of roles", bob, assocA, models.OfficerRoles(), false},
		{"treasurer passes when treasurer is required", bob, assocB, []string{models.RoleTreasurer}, true},
		{"treasurer fails when only president is required", bob, assocB, []string{models.RolePresident}, false},
		{"empty membership slice always denies", nil, assocA, nil, false},
		{"empty required roles slice behaves like nil", alice, assocB, []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authz.Evaluate(tt.memberships, tt.assoc, tt.roles); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_RoleComparisonIsNormalized(t *testing.T) {
	assoc := primitive.NewObjectID()
	memberships := []models.Membership{
		{AssociationID: assoc, Role: " President "},
	}

	if !authz.Evaluate(memberships, assoc, []string{models.RolePresident}) {
		t.Error("expected padded, differently-cased role to match after normalization")
	}
}

func TestEvaluate_DuplicateMembershipFirstWins(t *testing.T) {
	assoc := primitive.NewObjectID()
	memberships := []models.Membership{
		{AssociationID: assoc, Role: models.RoleMember},
		{AssociationID: assoc, Role: models.RolePresident},
	}

	// The first entry (member) decides; the later president entry must
	// not be consulted.
	if authz.Evaluate(memberships, assoc, []string{models.RolePresident}) {
		t.Error("expected first-listed role to win over a later duplicate")
	}
	if !authz.Evaluate(memberships, assoc, []string{models.RoleMember}) {
		t.Error("expected first-listed role to be the effective one")
	}
}

func TestIsMemberAndHasRole(t *testing.T) {
	assoc := primitive.NewObjectID()
	other := primitive.NewObjectID()
	memberships := []models.Membership{
		{AssociationID: assoc, Role: models.RoleAreaRepresentative},
	}

	if !authz.IsMember(memberships, assoc) {
		t.Error("IsMember should pass for a held membership")
	}
	if authz.IsMember(memberships, other) {
		t.Error("IsMember should fail for an unknown association")
	}
	if !authz.HasRole(memberships, assoc, models.RoleAreaRepresentative, models.RoleTreasurer) {
		t.Error("HasRole should pass when the held role is among the wanted ones")
	}
	if authz.HasRole(memberships, assoc, models.RolePresident) {
		t.Error("HasRole should fail when the held role is not wanted")
	}
}

func TestRoleIn(t *testing.T) {
	assoc := primitive.NewObjectID()
	memberships := []models.Membership{
		{AssociationID: assoc, Role: models.RoleVicePresident},
	}

	role, ok := authz.RoleIn(memberships, assoc)
	if !ok || role != models.RoleVicePresident {
		t.Errorf("RoleIn() = %q, %v; want %q, true", role, ok, models.RoleVicePresident)
	}
	if _, ok := authz.RoleIn(memberships, primitive.NewObjectID()); ok {
		t.Error("RoleIn should report no role for an unknown association")
	}
}

func TestMembershipSet(t *testing.T) {
	assocA := primitive.NewObjectID()
	assocB := primitive.NewObjectID()

	set := authz.NewMembershipSet([]models.Membership{
		{AssociationID: assocA, Role: models.RolePresident},
		{AssociationID: assocA, Role: models.RoleMember}, // duplicate, ignored
		{AssociationID: assocB, Role: models.RoleMember},
	})

	if !set.Contains(assocA) || !set.Contains(assocB) {
		t.Fatal("set should contain both associations")
	}
	if set.Contains(primitive.NewObjectID()) {
		t.Error("set should not contain an unknown association")
	}

	role, ok := set.Role(assocA)
	if !ok || role != models.RolePresident {
		t.Errorf("Role(assocA) = %q, %v; want president (first entry wins)", role, ok)
	}

	ids := set.AssociationIDs()
	if len(ids) != 2 {
		t.Errorf("AssociationIDs() returned %d ids, want 2", len(ids))
	}
}
