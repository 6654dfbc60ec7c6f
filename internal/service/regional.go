package service

import (
	"context"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/audit"
	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RegionalService manages which clubs each REGIONAL account supervises.
type RegionalService struct {
	authority *AuthorityService
	users     repository.UserRepositoryIface
	clubs     repository.ClubRepositoryIface
	regionals repository.RegionalRepositoryIface
	collab    Collaborators
}

func NewRegionalService(
	authority *AuthorityService,
	users repository.UserRepositoryIface,
	clubs repository.ClubRepositoryIface,
	regionals repository.RegionalRepositoryIface,
	collab Collaborators,
) *RegionalService {
	return &RegionalService{
		authority: authority,
		users:     users,
		clubs:     clubs,
		regionals: regionals,
		collab:    collab.withDefaults(),
	}
}

// LinkClub grants regionalID supervision over clubID. MASTER only.
func (s *RegionalService) LinkClub(ctx context.Context, actorID, regionalID, clubID uuid.UUID) (_ *model.RegionalClub, err error) {
	ctx, span := startSpan(ctx, "RegionalService.LinkClub")
	defer func() { endSpan(span, err) }()

	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageRegionalLinks(p); err != nil {
		return nil, err
	}

	var (
		regional *model.User
		club     *model.Club
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		regional, err = s.users.FindByID(gctx, regionalID)
		return err
	})
	g.Go(func() error {
		var err error
		club, err = s.clubs.FindByID(gctx, clubID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := authz.CheckRegionalTarget(regional); err != nil {
		return nil, err
	}

	link := &model.RegionalClub{RegionalID: regional.ID, ClubID: club.ID}
	if err := s.regionals.Create(ctx, link); err != nil {
		return nil, err
	}
	link.Regional, link.Club = regional, club

	s.collab.mirror(ctx, "grant_supervision", func(sync RelationshipSyncer) error {
		return sync.GrantSupervision(ctx, regional.ID, club.ID)
	})
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionRegionalLinked,
		ActorID:    actorID,
		ClubID:     uuidPtr(club.ID),
		EntityType: audit.EntityRegional,
		EntityID:   link.ID.String(),
		Details:    map[string]interface{}{"regional_id": regional.ID.String()},
	})

	return link, nil
}

// UnlinkClub revokes regionalID's supervision over clubID. MASTER only.
func (s *RegionalService) UnlinkClub(ctx context.Context, actorID, regionalID, clubID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "RegionalService.UnlinkClub")
	defer func() { endSpan(span, err) }()

	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return err
	}
	if err := authz.CanManageRegionalLinks(p); err != nil {
		return err
	}

	if err := s.regionals.Delete(ctx, regionalID, clubID); err != nil {
		return err
	}

	s.collab.mirror(ctx, "revoke_supervision", func(sync RelationshipSyncer) error {
		return sync.RevokeSupervision(ctx, regionalID, clubID)
	})
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionRegionalUnlinked,
		ActorID:    actorID,
		ClubID:     uuidPtr(clubID),
		EntityType: audit.EntityRegional,
		EntityID:   fmt.Sprintf("%s:%s", regionalID, clubID),
		Details:    map[string]interface{}{"regional_id": regionalID.String()},
	})

	return nil
}

// ListClubsOfRegional lists the clubs regionalID supervises. Visible to MASTER
// and to the regional themself.
func (s *RegionalService) ListClubsOfRegional(ctx context.Context, actorID, regionalID uuid.UUID) ([]*model.Club, error) {
	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !p.IsMaster() && p.ID != regionalID {
		return nil, domain.Forbidden(domain.RuleMasterRequired, "only MASTER or the regional may list supervised clubs")
	}
	return s.regionals.FindClubsByRegional(ctx, regionalID)
}

// ListRegionalsOfClub lists the supervisors of clubID for anyone with authority over it.
func (s *RegionalService) ListRegionalsOfClub(ctx context.Context, actorID, clubID uuid.UUID) ([]*model.User, error) {
	acc, err := s.authority.access(ctx, actorID, clubID)
	if err != nil {
		return nil, err
	}
	if err := acc.requireObserver(); err != nil {
		return nil, err
	}
	return s.regionals.FindRegionalsByClub(ctx, clubID)
}
