package authz_test

import (
	"testing"

	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanCreateClub(t *testing.T) {
	created := uuid.New()

	assert.NoError(t, authz.CanCreateClub(authz.Principal{GlobalRole: model.GlobalRoleUser}))
	assert.NoError(t, authz.CanCreateClub(authz.Principal{GlobalRole: model.GlobalRoleMaster, CreatedClubID: &created}))
	assertRule(t, authz.CanCreateClub(authz.Principal{GlobalRole: model.GlobalRoleUser, CreatedClubID: &created}),
		domain.ErrForbidden, domain.RuleClubAlreadyCreated)
}

func TestCanDeleteClub(t *testing.T) {
	assert.NoError(t, authz.CanDeleteClub(authz.Principal{GlobalRole: model.GlobalRoleMaster}))
	assertRule(t, authz.CanDeleteClub(authz.Principal{GlobalRole: model.GlobalRoleUser}),
		domain.ErrForbidden, domain.RuleMasterRequired)
}

func TestCanDeleteUnit(t *testing.T) {
	assert.NoError(t, authz.CanDeleteUnit(authz.AuthorityClubAdmin, nil, 0))

	err := authz.CanDeleteUnit(authz.AuthorityClubAdmin, nil, 3)
	assertRule(t, err, domain.ErrInvalidArgument, domain.RuleUnitHasMembers)
	var re *domain.RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "3", re.Metadata["count"])

	assertRule(t, authz.CanDeleteUnit(authz.AuthorityMember, nil, 0), domain.ErrForbidden, domain.RuleClubAdminRequired)
}

func TestCheckUnitReparent(t *testing.T) {
	unit := &model.Unit{ID: uuid.New(), ClubID: uuid.New()}
	other := uuid.New()

	assert.NoError(t, authz.CheckUnitReparent(unit, nil))
	assert.NoError(t, authz.CheckUnitReparent(unit, &unit.ClubID))
	assertRule(t, authz.CheckUnitReparent(unit, &other), domain.ErrInvalidArgument, domain.RuleUnitReparent)
}

func TestCheckRegionalTarget(t *testing.T) {
	assert.NoError(t, authz.CheckRegionalTarget(&model.User{GlobalRole: model.GlobalRoleRegional}))
	assertRule(t, authz.CheckRegionalTarget(&model.User{GlobalRole: model.GlobalRoleUser}),
		domain.ErrInvalidArgument, domain.RuleNotRegional)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Clube Águia Dourada":     "clube-aguia-dourada",
		"  São João  do Piauí ":   "sao-joao-do-piaui",
		"Órion -- Desbravadores!": "orion-desbravadores",
		"Clube 7 de Setembro":     "clube-7-de-setembro",
		"! Leões":                 "leoes",
	}
	for in, want := range tests {
		assert.Equal(t, want, authz.Slugify(in), in)
	}
}
