package service

import (
	"context"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/audit"
	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultCountry = "Brasil"

type ClubService struct {
	authority *AuthorityService
	clubs     repository.ClubRepositoryIface
	collab    Collaborators
	validate  *validator.Validate
}

func NewClubService(authority *AuthorityService, clubs repository.ClubRepositoryIface, collab Collaborators) *ClubService {
	return &ClubService{
		authority: authority,
		clubs:     clubs,
		collab:    collab.withDefaults(),
		validate:  validator.New(),
	}
}

type CreateClubInput struct {
	Name      string   `json:"name" validate:"required,min=3,max=100"`
	Slug      string   `json:"slug,omitempty" validate:"omitempty,min=3,max=100"`
	City      string   `json:"city,omitempty" validate:"max=100"`
	State     string   `json:"state,omitempty" validate:"max=100"`
	Country   string   `json:"country,omitempty" validate:"max=100"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type UpdateClubInput struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Slug      *string  `json:"slug,omitempty" validate:"omitempty,min=3,max=100"`
	City      *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	State     *string  `json:"state,omitempty" validate:"omitempty,max=100"`
	Country   *string  `json:"country,omitempty" validate:"omitempty,max=100"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type ListClubsOutput struct {
	Clubs []*model.Club `json:"clubs"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// CanCreateClub reports whether principalID may create another club.
func (s *ClubService) CanCreateClub(ctx context.Context, principalID uuid.UUID) error {
	p, err := s.authority.Principal(ctx, principalID)
	if err != nil {
		return err
	}
	return authz.CanCreateClub(p)
}

// CanManageClub reports whether principalID may edit clubID and its units.
func (s *ClubService) CanManageClub(ctx context.Context, principalID, clubID uuid.UUID) error {
	_, err := s.manageable(ctx, principalID, clubID)
	return err
}

// CanManageUnit applies the management rule of the unit's club.
func (s *ClubService) CanManageUnit(ctx context.Context, principalID, unitID uuid.UUID) error {
	unit, err := s.clubs.FindUnitByID(ctx, unitID)
	if err != nil {
		return err
	}
	return s.unitsManageable(ctx, principalID, unit.ClubID)
}

// CanDeleteUnit additionally requires that no membership references the unit.
func (s *ClubService) CanDeleteUnit(ctx context.Context, principalID, unitID uuid.UUID) error {
	_, err := s.deletableUnit(ctx, principalID, unitID)
	return err
}

// CreateClub creates a club owned by actorID. Non-MASTER accounts may create one club.
func (s *ClubService) CreateClub(ctx context.Context, actorID uuid.UUID, input CreateClubInput) (_ *model.Club, err error) {
	ctx, span := startSpan(ctx, "ClubService.CreateClub")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanCreateClub(p); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = authz.Slugify(input.Name)
	}
	if slug == "" {
		return nil, domain.Invalid(domain.RuleValidation, "a slug cannot be derived from name %q", input.Name)
	}

	country := input.Country
	if country == "" {
		country = defaultCountry
	}

	club := &model.Club{
		Name:      input.Name,
		Slug:      slug,
		City:      input.City,
		State:     input.State,
		Country:   country,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		CreatorID: p.ID,
	}
	if err := s.clubs.Create(ctx, club, !p.IsMaster()); err != nil {
		return nil, err
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionClubCreated,
		ActorID:    actorID,
		ClubID:     uuidPtr(club.ID),
		EntityType: audit.EntityClub,
		EntityID:   club.ID.String(),
		Details:    map[string]interface{}{"slug": club.Slug},
	})

	return club, nil
}

func (s *ClubService) GetClub(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	return s.clubs.FindByID(ctx, id)
}

func (s *ClubService) GetClubBySlug(ctx context.Context, slug string) (*model.Club, error) {
	return s.clubs.FindBySlug(ctx, slug)
}

// ListClubs pages through clubs, newest first. page is 1-based.
func (s *ClubService) ListClubs(ctx context.Context, page, limit int) (*ListClubsOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	clubs, total, err := s.clubs.FindAllPaginated(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("listing clubs: %w", err)
	}
	return &ListClubsOutput{Clubs: clubs, Total: total, Page: page, Limit: limit}, nil
}

func (s *ClubService) UpdateClub(ctx context.Context, actorID, clubID uuid.UUID, input UpdateClubInput) (_ *model.Club, err error) {
	ctx, span := startSpan(ctx, "ClubService.UpdateClub")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	acc, err := s.manageable(ctx, actorID, clubID)
	if err != nil {
		return nil, err
	}

	club := acc.club
	if input.Name != nil {
		club.Name = *input.Name
	}
	if input.Slug != nil {
		club.Slug = *input.Slug
	}
	if input.City != nil {
		club.City = *input.City
	}
	if input.State != nil {
		club.State = *input.State
	}
	if input.Country != nil {
		club.Country = *input.Country
	}
	if input.Latitude != nil {
		club.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		club.Longitude = input.Longitude
	}

	if err := s.clubs.Update(ctx, club); err != nil {
		return nil, err
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionClubUpdated,
		ActorID:    actorID,
		ClubID:     uuidPtr(club.ID),
		EntityType: audit.EntityClub,
		EntityID:   club.ID.String(),
	})

	return club, nil
}

// DeleteClub removes a club with its units, memberships and exams. MASTER only.
func (s *ClubService) DeleteClub(ctx context.Context, actorID, clubID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "ClubService.DeleteClub")
	defer func() { endSpan(span, err) }()

	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return err
	}
	if err := authz.CanDeleteClub(p); err != nil {
		return err
	}

	club, err := s.clubs.FindByID(ctx, clubID)
	if err != nil {
		return err
	}
	if err := s.clubs.Delete(ctx, club.ID); err != nil {
		return fmt.Errorf("deleting club: %w", err)
	}

	s.collab.invalidatePublicExams(ctx)
	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionClubDeleted,
		ActorID:    actorID,
		ClubID:     uuidPtr(club.ID),
		EntityType: audit.EntityClub,
		EntityID:   club.ID.String(),
		Details:    map[string]interface{}{"slug": club.Slug, "name": club.Name},
	})

	return nil
}

type CreateUnitInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// UpdateUnitInput renames a unit. ClubID is accepted only to reject reparenting.
type UpdateUnitInput struct {
	Name   string     `json:"name" validate:"required,min=2,max=100"`
	ClubID *uuid.UUID `json:"club_id,omitempty"`
}

func (s *ClubService) CreateUnit(ctx context.Context, actorID, clubID uuid.UUID, input CreateUnitInput) (_ *model.Unit, err error) {
	ctx, span := startSpan(ctx, "ClubService.CreateUnit")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	if err := s.unitsManageable(ctx, actorID, clubID); err != nil {
		return nil, err
	}

	unit := &model.Unit{ClubID: clubID, Name: input.Name}
	if err := s.clubs.CreateUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("creating unit: %w", err)
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionUnitCreated,
		ActorID:    actorID,
		ClubID:     uuidPtr(clubID),
		EntityType: audit.EntityUnit,
		EntityID:   unit.ID.String(),
		Details:    map[string]interface{}{"name": unit.Name},
	})

	return unit, nil
}

func (s *ClubService) UpdateUnit(ctx context.Context, actorID, unitID uuid.UUID, input UpdateUnitInput) (_ *model.Unit, err error) {
	ctx, span := startSpan(ctx, "ClubService.UpdateUnit")
	defer func() { endSpan(span, err) }()

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	unit, err := s.clubs.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckUnitReparent(unit, input.ClubID); err != nil {
		return nil, err
	}
	if err := s.unitsManageable(ctx, actorID, unit.ClubID); err != nil {
		return nil, err
	}

	unit.Name = input.Name
	if err := s.clubs.UpdateUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("updating unit: %w", err)
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionUnitUpdated,
		ActorID:    actorID,
		ClubID:     uuidPtr(unit.ClubID),
		EntityType: audit.EntityUnit,
		EntityID:   unit.ID.String(),
	})

	return unit, nil
}

func (s *ClubService) DeleteUnit(ctx context.Context, actorID, unitID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "ClubService.DeleteUnit")
	defer func() { endSpan(span, err) }()

	unit, err := s.deletableUnit(ctx, actorID, unitID)
	if err != nil {
		return err
	}
	if err := s.clubs.DeleteUnit(ctx, unit.ID); err != nil {
		return fmt.Errorf("deleting unit: %w", err)
	}

	s.collab.record(ctx, audit.Entry{
		Action:     model.ActionUnitDeleted,
		ActorID:    actorID,
		ClubID:     uuidPtr(unit.ClubID),
		EntityType: audit.EntityUnit,
		EntityID:   unit.ID.String(),
		Details:    map[string]interface{}{"name": unit.Name},
	})

	return nil
}

// ListUnits lists a club's units. Any authenticated account may read them.
func (s *ClubService) ListUnits(ctx context.Context, clubID uuid.UUID) ([]*model.Unit, error) {
	if _, err := s.clubs.FindByID(ctx, clubID); err != nil {
		return nil, err
	}
	return s.clubs.FindUnitsByClub(ctx, clubID)
}

func (s *ClubService) manageable(ctx context.Context, actorID, clubID uuid.UUID) (*clubAccess, error) {
	acc, err := s.authority.access(ctx, actorID, clubID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageClub(acc.authority, acc.denial); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *ClubService) unitsManageable(ctx context.Context, actorID, clubID uuid.UUID) error {
	acc, err := s.authority.access(ctx, actorID, clubID)
	if err != nil {
		return err
	}
	return authz.CanManageUnit(acc.authority, acc.denial)
}

func (s *ClubService) deletableUnit(ctx context.Context, actorID, unitID uuid.UUID) (*model.Unit, error) {
	unit, err := s.clubs.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	acc, err := s.authority.access(ctx, actorID, unit.ClubID)
	if err != nil {
		return nil, err
	}

	var count int64
	if acc.authority.CanAdminister() {
		count, err = s.clubs.CountUnitMembers(ctx, unit.ID)
		if err != nil {
			return nil, fmt.Errorf("counting unit members: %w", err)
		}
	}
	if err := authz.CanDeleteUnit(acc.authority, acc.denial, count); err != nil {
		return nil, err
	}
	return unit, nil
}
