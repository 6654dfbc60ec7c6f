package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AuthorityService loads the facts authz.Resolve needs and classifies principals.
type AuthorityService struct {
	users       repository.UserRepositoryIface
	clubs       repository.ClubRepositoryIface
	memberships repository.MembershipRepositoryIface
	regionals   repository.RegionalRepositoryIface
}

func NewAuthorityService(
	users repository.UserRepositoryIface,
	clubs repository.ClubRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	regionals repository.RegionalRepositoryIface,
) *AuthorityService {
	return &AuthorityService{
		users:       users,
		clubs:       clubs,
		memberships: memberships,
		regionals:   regionals,
	}
}

// clubAccess is a principal resolved against one club.
type clubAccess struct {
	principal authz.Principal
	club      *model.Club
	authority authz.Authority
	// membership is the principal's record in the club in any status, or nil.
	membership *model.Membership
	// denial is the resolver's error, kept for precise Forbidden responses.
	denial error
}

func (a *clubAccess) requireAdmin() error {
	return authz.RequireAdmin(a.authority, a.denial)
}

func (a *clubAccess) requireObserver() error {
	return authz.RequireObserver(a.authority, a.denial)
}

// activeMembership returns the principal's membership when it is ACTIVE.
func (a *clubAccess) activeMembership() *model.Membership {
	if a.membership.IsActive() {
		return a.membership
	}
	return nil
}

// Principal loads the account behind id.
func (s *AuthorityService) Principal(ctx context.Context, id uuid.UUID) (authz.Principal, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return authz.Principal{}, fmt.Errorf("loading principal: %w", err)
	}
	return authz.PrincipalFromUser(user), nil
}

// Authority resolves principalID against clubID. A REGIONAL without a link to
// the club gets AuthorityNone and domain.ErrNotSupervising.
func (s *AuthorityService) Authority(ctx context.Context, principalID, clubID uuid.UUID) (_ authz.Authority, err error) {
	ctx, span := startSpan(ctx, "AuthorityService.Authority")
	defer func() { endSpan(span, err) }()

	acc, err := s.access(ctx, principalID, clubID)
	if err != nil {
		return authz.AuthorityNone, err
	}
	return acc.authority, acc.denial
}

// access loads the principal and the club concurrently, then resolves.
func (s *AuthorityService) access(ctx context.Context, principalID, clubID uuid.UUID) (*clubAccess, error) {
	var (
		user *model.User
		club *model.Club
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.FindByID(gctx, principalID)
		if err != nil {
			return fmt.Errorf("loading principal: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		club, err = s.clubs.FindByID(gctx, clubID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.accessTo(ctx, authz.PrincipalFromUser(user), club)
}

// accessTo resolves an already loaded principal against an already loaded club.
func (s *AuthorityService) accessTo(ctx context.Context, p authz.Principal, club *model.Club) (*clubAccess, error) {
	acc := &clubAccess{principal: p, club: club}

	if !p.IsMaster() {
		m, err := s.memberships.FindByUserAndClub(ctx, p.ID, club.ID)
		switch {
		case errors.Is(err, domain.ErrMembershipNotFound):
		case err != nil:
			return nil, fmt.Errorf("loading membership: %w", err)
		default:
			acc.membership = m
		}
	}

	facts := authz.ClubFacts{Club: club, Membership: acc.membership}
	if authz.NeedsSupervisionLookup(p, club, acc.membership) {
		ok, err := s.regionals.Exists(ctx, p.ID, club.ID)
		if err != nil {
			return nil, fmt.Errorf("checking regional link: %w", err)
		}
		facts.Supervises = ok
	}

	acc.authority, acc.denial = authz.Resolve(p, facts)
	return acc, nil
}
