package authz_test

import (
	"testing"
	"time"

	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func TestAge(t *testing.T) {
	tests := []struct {
		birth, now time.Time
		want       int
	}{
		{date(2000, 6, 15), date(2025, 6, 14), 24},
		{date(2000, 6, 15), date(2025, 6, 15), 25},
		{date(2000, 6, 15), date(2025, 7, 1), 25},
		{date(2004, 2, 29), date(2022, 2, 28), 17},
		{date(2004, 2, 29), date(2022, 3, 1), 18},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, authz.Age(tc.birth, tc.now), "birth %s now %s", tc.birth, tc.now)
	}
}

func assertRule(t *testing.T, err error, kind error, rule domain.Rule) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	got, ok := domain.RuleOf(err)
	require.True(t, ok)
	assert.Equal(t, rule, got)
}

func TestDeriveRequest(t *testing.T) {
	now := date(2025, 3, 10)
	unitID := uuid.New()

	t.Run("unbaptized adult is placed as instructor", func(t *testing.T) {
		p, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleCounselor,
			UnitID:      &unitID,
			BirthDate:   date(2000, 1, 1),
			Baptized:    false,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, model.ClubRoleInstructor, p.Role)
		assert.True(t, p.Overridden())
		assert.NotEmpty(t, p.Advisory)
		assert.Equal(t, &unitID, p.UnitID)
		assert.Equal(t, 25, p.Age)
	})

	t.Run("unknown role is not overridden into instructor", func(t *testing.T) {
		_, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRole("PRESIDENTE"),
			UnitID:      &unitID,
			BirthDate:   date(2000, 1, 1),
		}, now)
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleValidation)
	})

	t.Run("requesting instructor directly carries no advisory", func(t *testing.T) {
		p, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleInstructor,
			UnitID:      &unitID,
			BirthDate:   date(1990, 1, 1),
		}, now)
		require.NoError(t, err)
		assert.False(t, p.Overridden())
	})

	t.Run("overridden adult without unit needs a unit", func(t *testing.T) {
		_, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleBoard,
			BirthDate:   date(1990, 1, 1),
		}, now)
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleUnitRequired)
	})

	t.Run("pathfinder requires unit", func(t *testing.T) {
		_, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRolePathfinder,
			BirthDate:   date(2013, 5, 5),
			Baptized:    true,
		}, now)
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleUnitRequired)
	})

	t.Run("counselor under sixteen", func(t *testing.T) {
		_, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleCounselor,
			UnitID:      &unitID,
			BirthDate:   date(2009, 3, 11),
			Baptized:    true,
		}, now)
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleMinimumAge)
	})

	t.Run("counselor turning sixteen today", func(t *testing.T) {
		p, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleCounselor,
			UnitID:      &unitID,
			BirthDate:   date(2009, 3, 10),
			Baptized:    true,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, model.ClubRoleCounselor, p.Role)
	})

	t.Run("unbaptized minor cannot join the board", func(t *testing.T) {
		_, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleBoard,
			BirthDate:   date(2008, 1, 1),
			Baptized:    false,
		}, now)
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleBaptismRequired)
	})

	t.Run("club level office clears the unit", func(t *testing.T) {
		p, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleBoard,
			UnitID:      &unitID,
			BirthDate:   date(1985, 1, 1),
			Baptized:    true,
			Office:      ptr("Diretor"),
		}, now)
		require.NoError(t, err)
		assert.Nil(t, p.UnitID)
		assert.Equal(t, "Diretor", *p.Office)
	})

	t.Run("unit level office requires a unit", func(t *testing.T) {
		_, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleBoard,
			BirthDate:   date(1985, 1, 1),
			Baptized:    true,
			Office:      ptr("Tesoureiro"),
		}, now)
		assertRule(t, err, domain.ErrInvalidArgument, domain.RuleOfficeRequiresUnit)
	})

	t.Run("board without office needs no unit", func(t *testing.T) {
		p, err := authz.DeriveRequest(authz.MembershipRequest{
			DesiredRole: model.ClubRoleBoard,
			BirthDate:   date(1985, 1, 1),
			Baptized:    true,
		}, now)
		require.NoError(t, err)
		assert.Nil(t, p.UnitID)
	})
}

func TestDerivePlacement(t *testing.T) {
	unitID := uuid.New()

	_, err := authz.DerivePlacement(model.ClubRolePathfinder, nil, nil)
	assertRule(t, err, domain.ErrInvalidArgument, domain.RuleUnitRequired)

	p, err := authz.DerivePlacement(model.ClubRoleAdmin, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.ClubRoleAdmin, p.Role)

	p, err = authz.DerivePlacement(model.ClubRoleBoard, &unitID, ptr("Secretário"))
	require.NoError(t, err)
	assert.Nil(t, p.UnitID)

	_, err = authz.DerivePlacement(model.ClubRoleBoard, nil, ptr("Tesoureiro"))
	assertRule(t, err, domain.ErrInvalidArgument, domain.RuleOfficeRequiresUnit)

	_, err = authz.DerivePlacement(model.ClubRole("PRESIDENTE"), &unitID, nil)
	assertRule(t, err, domain.ErrInvalidArgument, domain.RuleValidation)
}

func TestMembershipGuards(t *testing.T) {
	clubID := uuid.New()

	assert.NoError(t, authz.CheckUnitInClub(clubID, &model.Unit{ID: uuid.New(), ClubID: clubID}))
	assertRule(t, authz.CheckUnitInClub(clubID, &model.Unit{ID: uuid.New(), ClubID: uuid.New()}),
		domain.ErrInvalidArgument, domain.RuleUnitOutsideClub)

	assert.NoError(t, authz.CheckRequestable(model.ClubRoleBoard))
	assertRule(t, authz.CheckRequestable(model.ClubRoleAdmin), domain.ErrInvalidArgument, domain.RuleAdminNotRequestable)

	assert.NoError(t, authz.CheckPending(&model.Membership{Status: model.MembershipPending}))
	assertRule(t, authz.CheckPending(&model.Membership{Status: model.MembershipActive}),
		domain.ErrInvalidArgument, domain.RuleAlreadyProcessed)
}

func TestCanRemove(t *testing.T) {
	m := &model.Membership{UserID: uuid.New(), ClubID: uuid.New()}

	assert.NoError(t, authz.CanRemove(authz.Principal{ID: m.UserID}, authz.AuthorityMember, m))
	assert.NoError(t, authz.CanRemove(authz.Principal{ID: uuid.New()}, authz.AuthorityClubAdmin, m))
	assert.NoError(t, authz.CanRemove(authz.Principal{ID: uuid.New(), GlobalRole: model.GlobalRoleMaster}, authz.AuthoritySuper, m))
	assertRule(t, authz.CanRemove(authz.Principal{ID: uuid.New()}, authz.AuthorityMember, m),
		domain.ErrForbidden, domain.RuleSelfOrAdmin)
	assertRule(t, authz.CanRemove(authz.Principal{ID: uuid.New()}, authz.AuthoritySupervisor, m),
		domain.ErrForbidden, domain.RuleSelfOrAdmin)
}
