package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desbravaprovas/clubcore/internal/audit"
	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type MembershipService struct {
	authority   *AuthorityService
	users       repository.UserRepositoryIface
	clubs       repository.ClubRepositoryIface
	memberships repository.MembershipRepositoryIface
	collab      Collaborators
	validate    *validator.Validate
}

func NewMembershipService(
	authority *AuthorityService,
	users repository.UserRepositoryIface,
	clubs repository.ClubRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	collab Collaborators,
) *MembershipService {
	return &MembershipService{
		authority:   authority,
		users:       users,
		clubs:       clubs,
		memberships: memberships,
		collab:      collab.withDefaults(),
		validate:    validator.New(),
	}
}

type RequestMembershipInput struct {
	ClubID      uuid.UUID      `json:"club_id" validate:"required"`
	DesiredRole model.ClubRole `json:"role" validate:"required,oneof=ADMIN_CLUBE DIRETORIA CONSELHEIRO INSTRUTOR DESBRAVADOR"`
	UnitID      *uuid.UUID     `json:"unit_id,omitempty"`
	BirthDate   time.Time      `json:"birth_date" validate:"required"`
	Baptized    bool           `json:"baptized"`
	Office      *string        `json:"office,omitempty" validate:"omitempty,min=2,max=50"`
}

// RequestResult is the stored PENDING membership. Advisory is set when the
// requested role was replaced.
type RequestResult struct {
	Membership *model.Membership `json:"membership"`
	Advisory   string            `json:"advisory,omitempty"`
}

// RequestMembership files a PENDING join request for userID.
func (s *MembershipService) RequestMembership(ctx context.Context, userID uuid.UUID, input RequestMembershipInput) (_ *RequestResult, err error) {
	ctx, span := startSpan(ctx, "MembershipService.RequestMembership")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	var (
		user *model.User
		club *model.Club
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.FindByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		club, err = s.clubs.FindByID(gctx, input.ClubID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	_, err = s.memberships.FindByUserAndClub(ctx, userID, club.ID)
	switch {
	case err == nil:
		return nil, domain.ErrMembershipExists
	case !errors.Is(err, domain.ErrMembershipNotFound):
		return nil, fmt.Errorf("checking existing membership: %w", err)
	}

	placement, err := authz.DeriveRequest(authz.MembershipRequest{
		DesiredRole: input.DesiredRole,
		UnitID:      input.UnitID,
		BirthDate:   dateOnly(input.BirthDate),
		Baptized:    input.Baptized,
		Office:      input.Office,
	}, dateOnly(s.collab.Clock.Now()))
	if err != nil {
		return nil, err
	}

	unit, err := s.unitInClub(ctx, club.ID, input.UnitID)
	if err != nil {
		return nil, err
	}

	if err := authz.CheckRequestable(placement.Role); err != nil {
		return nil, err
	}

	m := &model.Membership{
		UserID:    user.ID,
		ClubID:    club.ID,
		UnitID:    placement.UnitID,
		Role:      placement.Role,
		Status:    model.MembershipPending,
		BirthDate: dateOnly(input.BirthDate),
		Baptized:  input.Baptized,
		Office:    placement.Office,
	}
	// Concurrent requests for the same pair are settled by the unique index.
	if err := s.memberships.Create(ctx, m); err != nil {
		return nil, err
	}
	m.User, m.Club = user, club
	if placement.UnitID != nil {
		m.Unit = unit
	}

	details := map[string]interface{}{"role": string(m.Role), "desired_role": string(input.DesiredRole)}
	if placement.Overridden() {
		details["advisory"] = placement.Advisory
	}
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionMembershipRequested,
		ActorID:    user.ID,
		ClubID:     uuidPtr(club.ID),
		EntityType: audit.EntityMembership,
		EntityID:   m.ID.String(),
		Details:    details,
	})

	s.collab.notify(ctx, "membership_request", func(nctx context.Context) error {
		admin, err := s.memberships.FindClubAdmin(nctx, club.ID)
		if err != nil {
			if errors.Is(err, domain.ErrMembershipNotFound) {
				return nil
			}
			return fmt.Errorf("finding club admin: %w", err)
		}
		if admin.User == nil {
			return nil
		}
		notice := noticeFor(m)
		notice.RecipientEmail = admin.User.Email
		notice.RecipientName = admin.User.Name
		return s.collab.Notifier.NotifyNewRequest(nctx, notice)
	})

	return &RequestResult{Membership: m, Advisory: placement.Advisory}, nil
}

type ApproveInput struct {
	Role   model.ClubRole `json:"role" validate:"required,oneof=ADMIN_CLUBE DIRETORIA CONSELHEIRO INSTRUTOR DESBRAVADOR"`
	UnitID *uuid.UUID     `json:"unit_id,omitempty"`
	Office *string        `json:"office,omitempty" validate:"omitempty,min=2,max=50"`
}

// Approve activates a PENDING membership with the approver's final placement.
func (s *MembershipService) Approve(ctx context.Context, approverID, membershipID uuid.UUID, input ApproveInput) (_ *model.Membership, err error) {
	ctx, span := startSpan(ctx, "MembershipService.Approve")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	m, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckPending(m); err != nil {
		return nil, err
	}

	acc, err := s.authority.access(ctx, approverID, m.ClubID)
	if err != nil {
		return nil, err
	}
	if err := acc.requireAdmin(); err != nil {
		return nil, err
	}

	placement, err := authz.DerivePlacement(input.Role, input.UnitID, input.Office)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitInClub(ctx, m.ClubID, input.UnitID)
	if err != nil {
		return nil, err
	}

	requestedRole := m.Role
	m.Role = placement.Role
	m.UnitID = placement.UnitID
	m.Office = placement.Office
	m.Status = model.MembershipActive
	m.Unit = nil
	if placement.UnitID != nil {
		m.Unit = unit
	}
	if err := s.memberships.Activate(ctx, m); err != nil {
		return nil, err
	}

	s.collab.mirror(ctx, "grant_membership", func(sync RelationshipSyncer) error {
		return sync.GrantMembership(ctx, m)
	})
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionMembershipApproved,
		ActorID:    approverID,
		ClubID:     uuidPtr(m.ClubID),
		EntityType: audit.EntityMembership,
		EntityID:   m.ID.String(),
		Details:    map[string]interface{}{"requested_role": string(requestedRole), "role": string(m.Role)},
	})
	s.notifyMember(ctx, "membership_approved", m, Notifier.NotifyApproved)

	return m, nil
}

// Reject deletes a PENDING membership. The user may file a new request afterwards.
func (s *MembershipService) Reject(ctx context.Context, approverID, membershipID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "MembershipService.Reject")
	defer func() { endSpan(span, err) }()

	m, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return err
	}
	if err := authz.CheckPending(m); err != nil {
		return err
	}

	acc, err := s.authority.access(ctx, approverID, m.ClubID)
	if err != nil {
		return err
	}
	if err := acc.requireAdmin(); err != nil {
		return err
	}

	if err := s.memberships.DeletePending(ctx, m.ID); err != nil {
		return err
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionMembershipRejected,
		ActorID:    approverID,
		ClubID:     uuidPtr(m.ClubID),
		EntityType: audit.EntityMembership,
		EntityID:   m.ID.String(),
		Details:    map[string]interface{}{"user_id": m.UserID.String(), "role": string(m.Role)},
	})
	s.notifyMember(ctx, "membership_rejected", m, Notifier.NotifyRejected)

	return nil
}

// UpdateMembershipInput changes placement only. Nil fields keep their value.
type UpdateMembershipInput struct {
	UnitID *uuid.UUID `json:"unit_id,omitempty"`
	Office *string    `json:"office,omitempty" validate:"omitempty,min=2,max=50"`
}

// UpdateMembership moves a member to another unit or office.
func (s *MembershipService) UpdateMembership(ctx context.Context, actorID, membershipID uuid.UUID, input UpdateMembershipInput) (_ *model.Membership, err error) {
	ctx, span := startSpan(ctx, "MembershipService.UpdateMembership")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	m, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	acc, err := s.authority.access(ctx, actorID, m.ClubID)
	if err != nil {
		return nil, err
	}
	if err := acc.requireAdmin(); err != nil {
		return nil, err
	}

	unitID, office := m.UnitID, m.Office
	if input.UnitID != nil {
		unitID = input.UnitID
	}
	if input.Office != nil {
		office = input.Office
	}

	placement, err := authz.DerivePlacement(m.Role, unitID, office)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitInClub(ctx, m.ClubID, input.UnitID)
	if err != nil {
		return nil, err
	}

	m.UnitID = placement.UnitID
	m.Office = placement.Office
	switch {
	case placement.UnitID == nil:
		m.Unit = nil
	case unit != nil:
		m.Unit = unit
	}
	if err := s.memberships.UpdatePlacement(ctx, m); err != nil {
		return nil, err
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionMembershipUpdated,
		ActorID:    actorID,
		ClubID:     uuidPtr(m.ClubID),
		EntityType: audit.EntityMembership,
		EntityID:   m.ID.String(),
	})

	return m, nil
}

// RemoveMembership deletes a membership. Allowed for the member, MASTER and club administrators.
func (s *MembershipService) RemoveMembership(ctx context.Context, actorID, membershipID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "MembershipService.RemoveMembership")
	defer func() { endSpan(span, err) }()

	m, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return err
	}

	acc, err := s.authority.access(ctx, actorID, m.ClubID)
	if err != nil {
		return err
	}
	if err := authz.CanRemove(acc.principal, acc.authority, m); err != nil {
		return err
	}

	if err := s.memberships.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("deleting membership: %w", err)
	}

	if m.IsActive() {
		s.collab.mirror(ctx, "revoke_membership", func(sync RelationshipSyncer) error {
			return sync.RevokeMembership(ctx, m)
		})
	}
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionMembershipRemoved,
		ActorID:    actorID,
		ClubID:     uuidPtr(m.ClubID),
		EntityType: audit.EntityMembership,
		EntityID:   m.ID.String(),
		Details:    map[string]interface{}{"user_id": m.UserID.String(), "role": string(m.Role)},
	})

	return nil
}

// GetMembership returns a membership to its member or to anyone with authority over the club.
func (s *MembershipService) GetMembership(ctx context.Context, actorID, membershipID uuid.UUID) (_ *model.Membership, err error) {
	ctx, span := startSpan(ctx, "MembershipService.GetMembership")
	defer func() { endSpan(span, err) }()

	m, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if m.UserID == actorID {
		return m, nil
	}

	acc, err := s.authority.access(ctx, actorID, m.ClubID)
	if err != nil {
		return nil, err
	}
	if err := acc.requireObserver(); err != nil {
		return nil, err
	}
	return m, nil
}

// ListPendingRequests lists PENDING requests for a club's administrators.
func (s *MembershipService) ListPendingRequests(ctx context.Context, actorID, clubID uuid.UUID) (_ []*model.Membership, err error) {
	ctx, span := startSpan(ctx, "MembershipService.ListPendingRequests")
	defer func() { endSpan(span, err) }()

	acc, err := s.authority.access(ctx, actorID, clubID)
	if err != nil {
		return nil, err
	}
	if err := acc.requireAdmin(); err != nil {
		return nil, err
	}
	return s.memberships.FindByClub(ctx, clubID, model.MembershipPending)
}

// ListMembers lists ACTIVE members of a club.
func (s *MembershipService) ListMembers(ctx context.Context, actorID, clubID uuid.UUID) (_ []*model.Membership, err error) {
	ctx, span := startSpan(ctx, "MembershipService.ListMembers")
	defer func() { endSpan(span, err) }()

	acc, err := s.authority.access(ctx, actorID, clubID)
	if err != nil {
		return nil, err
	}
	if err := acc.requireObserver(); err != nil {
		return nil, err
	}
	return s.memberships.FindByClub(ctx, clubID, model.MembershipActive)
}

// ListMyMemberships lists userID's memberships in every status.
func (s *MembershipService) ListMyMemberships(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	return s.memberships.FindByUser(ctx, userID)
}

// unitInClub loads unitID, when given, and checks it belongs to clubID.
func (s *MembershipService) unitInClub(ctx context.Context, clubID uuid.UUID, unitID *uuid.UUID) (*model.Unit, error) {
	if unitID == nil {
		return nil, nil
	}
	unit, err := s.clubs.FindUnitByID(ctx, *unitID)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckUnitInClub(clubID, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// notifyMember addresses a notice to the member behind m.
func (s *MembershipService) notifyMember(ctx context.Context, kind string, m *model.Membership, send func(Notifier, context.Context, MembershipNotice) error) {
	if s.collab.Notifier == nil || m.User == nil {
		return
	}
	notice := noticeFor(m)
	notice.RecipientEmail = m.User.Email
	notice.RecipientName = m.User.Name
	s.collab.notify(ctx, kind, func(nctx context.Context) error {
		return send(s.collab.Notifier, nctx, notice)
	})
}

func noticeFor(m *model.Membership) MembershipNotice {
	n := MembershipNotice{Role: m.Role}
	if m.User != nil {
		n.MemberName = m.User.Name
		n.MemberEmail = m.User.Email
	}
	if m.Club != nil {
		n.ClubName = m.Club.Name
	}
	if m.Unit != nil {
		n.UnitName = m.Unit.Name
	}
	if m.Office != nil {
		n.Office = *m.Office
	}
	return n
}
