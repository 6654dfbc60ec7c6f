package service_test

import (
	"context"
	"testing"

	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthority(t *testing.T) {
	ctx := context.Background()

	t.Run("MASTER resolves to SUPER without membership lookups", func(t *testing.T) {
		f := newFixture(t)
		master := f.user(model.GlobalRoleMaster)
		club := f.club(uuid.New())

		a, err := f.authority.Authority(ctx, master.ID, club.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.AuthoritySuper, a)
	})

	t.Run("creator resolves to CLUB_ADMIN", func(t *testing.T) {
		f := newFixture(t)
		owner := f.user(model.GlobalRoleUser)
		club := f.club(owner.ID)
		f.stranger(owner, club)

		a, err := f.authority.Authority(ctx, owner.ID, club.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.AuthorityClubAdmin, a)
	})

	t.Run("active member resolves to MEMBER", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		f.member(u, club, model.ClubRolePathfinder, ptr(uuid.New()))

		a, err := f.authority.Authority(ctx, u.ID, club.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.AuthorityMember, a)
	})

	t.Run("pending member resolves to NONE", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(model.GlobalRoleUser)
		club := f.club(uuid.New())
		m := f.member(u, club, model.ClubRoleBoard, nil)
		m.Status = model.MembershipPending

		a, err := f.authority.Authority(ctx, u.ID, club.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.AuthorityNone, a)
	})

	t.Run("regional without a link is not supervising", func(t *testing.T) {
		f := newFixture(t)
		regional := f.user(model.GlobalRoleRegional)
		club := f.club(uuid.New())
		f.stranger(regional, club)
		f.regionals.EXPECT().Exists(gomock.Any(), regional.ID, club.ID).Return(false, nil)

		a, err := f.authority.Authority(ctx, regional.ID, club.ID)
		assert.Equal(t, authz.AuthorityNone, a)
		requireRule(t, err, domain.ErrForbidden, domain.RuleNotSupervising)
	})

	t.Run("regional with a link resolves to SUPERVISOR", func(t *testing.T) {
		f := newFixture(t)
		regional := f.user(model.GlobalRoleRegional)
		club := f.club(uuid.New())
		f.stranger(regional, club)
		f.regionals.EXPECT().Exists(gomock.Any(), regional.ID, club.ID).Return(true, nil)

		a, err := f.authority.Authority(ctx, regional.ID, club.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.AuthoritySupervisor, a)
	})

	t.Run("regional who is a member skips the link lookup", func(t *testing.T) {
		f := newFixture(t)
		regional := f.user(model.GlobalRoleRegional)
		club := f.club(uuid.New())
		f.member(regional, club, model.ClubRoleInstructor, ptr(uuid.New()))

		a, err := f.authority.Authority(ctx, regional.ID, club.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.AuthorityMember, a)
	})

	t.Run("unknown club is not found", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(model.GlobalRoleUser)
		missing := uuid.New()
		f.clubs.EXPECT().FindByID(gomock.Any(), missing).Return(nil, domain.ErrClubNotFound)

		_, err := f.authority.Authority(ctx, u.ID, missing)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
