// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepositoryIface interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error)
	FindByUserAndClub(ctx context.Context, userID, clubID uuid.UUID) (*model.Membership, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error)
	FindByClub(ctx context.Context, clubID uuid.UUID, status model.MembershipStatus) ([]*model.Membership, error)
	FindClubAdmin(ctx context.Context, clubID uuid.UUID) (*model.Membership, error)
	FindAllActive(ctx context.Context) ([]*model.Membership, error)
	Activate(ctx context.Context, membership *model.Membership) error
	UpdatePlacement(ctx context.Context, membership *model.Membership) error
	DeletePending(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership. The (user, club) unique index turns a
// concurrent duplicate into ErrMembershipExists.
func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(membership).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMembershipExists
		}
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Club").Preload("Unit").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindByUserAndClub(ctx context.Context, userID, clubID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

// FindByUser returns the user's memberships, oldest first.
func (r *MembershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	var ms []*model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Club").Preload("Unit").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("finding user memberships: %w", err)
	}
	return ms, nil
}

func (r *MembershipRepository) FindByClub(ctx context.Context, clubID uuid.UUID, status model.MembershipStatus) ([]*model.Membership, error) {
	var ms []*model.Membership
	if err := r.db.WithContext(ctx).
		Preload("User").Preload("Unit").
		Where("club_id = ? AND status = ?", clubID, status).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("finding club memberships: %w", err)
	}
	return ms, nil
}

// FindClubAdmin returns the longest-standing active ADMIN_CLUBE of the club.
func (r *MembershipRepository) FindClubAdmin(ctx context.Context, clubID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("club_id = ? AND role = ? AND status = ?", clubID, model.ClubRoleAdmin, model.MembershipActive).
		Order("created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding club admin: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindAllActive(ctx context.Context) ([]*model.Membership, error) {
	var ms []*model.Membership
	if err := r.db.WithContext(ctx).Where("status = ?", model.MembershipActive).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("finding active memberships: %w", err)
	}
	return ms, nil
}

// Activate moves a PENDING membership to ACTIVE with its final placement. The
// status is part of the condition, so a request that was rejected, removed or
// approved concurrently is reported as already processed and never rewritten.
func (r *MembershipRepository) Activate(ctx context.Context, membership *model.Membership) error {
	res := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("id = ? AND status = ?", membership.ID, model.MembershipPending).
		Updates(map[string]interface{}{
			"role":    membership.Role,
			"unit_id": membership.UnitID,
			"office":  membership.Office,
			"status":  model.MembershipActive,
		})
	if res.Error != nil {
		return fmt.Errorf("activating membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errAlreadyProcessed()
	}
	membership.Status = model.MembershipActive
	return nil
}

// UpdatePlacement writes the unit and office of an existing membership.
func (r *MembershipRepository) UpdatePlacement(ctx context.Context, membership *model.Membership) error {
	res := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("id = ?", membership.ID).
		Updates(map[string]interface{}{
			"unit_id": membership.UnitID,
			"office":  membership.Office,
		})
	if res.Error != nil {
		return fmt.Errorf("updating membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}

// DeletePending removes a membership only while it is still PENDING.
func (r *MembershipRepository) DeletePending(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.MembershipPending).
		Delete(&model.Membership{})
	if res.Error != nil {
		return fmt.Errorf("deleting membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errAlreadyProcessed()
	}
	return nil
}

func errAlreadyProcessed() error {
	return domain.Invalid(domain.RuleAlreadyProcessed, "membership request already processed")
}

func (r *MembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Membership{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}
