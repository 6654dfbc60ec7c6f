// internal/repository/regional.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegionalRepositoryIface interface {
	Create(ctx context.Context, link *model.RegionalClub) error
	Delete(ctx context.Context, regionalID, clubID uuid.UUID) error
	Exists(ctx context.Context, regionalID, clubID uuid.UUID) (bool, error)
	FindClubsByRegional(ctx context.Context, regionalID uuid.UUID) ([]*model.Club, error)
	FindRegionalsByClub(ctx context.Context, clubID uuid.UUID) ([]*model.User, error)
	FindAll(ctx context.Context) ([]*model.RegionalClub, error)
}

type RegionalRepository struct {
	db *gorm.DB
}

func NewRegionalRepository(db *gorm.DB) *RegionalRepository {
	return &RegionalRepository{db: db}
}

func (r *RegionalRepository) Create(ctx context.Context, link *model.RegionalClub) error {
	if err := r.db.WithContext(ctx).Omit("Regional", "Club").Create(link).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRegionalLinkExists
		}
		return fmt.Errorf("creating regional link: %w", err)
	}
	return nil
}

func (r *RegionalRepository) Delete(ctx context.Context, regionalID, clubID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("regional_id = ? AND club_id = ?", regionalID, clubID).
		Delete(&model.RegionalClub{})
	if res.Error != nil {
		return fmt.Errorf("deleting regional link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRegionalLinkNotFound
	}
	return nil
}

func (r *RegionalRepository) Exists(ctx context.Context, regionalID, clubID uuid.UUID) (bool, error) {
	var link model.RegionalClub
	err := r.db.WithContext(ctx).
		Select("id").
		Where("regional_id = ? AND club_id = ?", regionalID, clubID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking regional link: %w", err)
	}
	return true, nil
}

func (r *RegionalRepository) FindClubsByRegional(ctx context.Context, regionalID uuid.UUID) ([]*model.Club, error) {
	var clubs []*model.Club
	if err := r.db.WithContext(ctx).
		Joins("JOIN regional_clubs ON clubs.id = regional_clubs.club_id").
		Where("regional_clubs.regional_id = ?", regionalID).
		Order("clubs.name ASC").
		Find(&clubs).Error; err != nil {
		return nil, fmt.Errorf("finding supervised clubs: %w", err)
	}
	return clubs, nil
}

func (r *RegionalRepository) FindRegionalsByClub(ctx context.Context, clubID uuid.UUID) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN regional_clubs ON users.id = regional_clubs.regional_id").
		Where("regional_clubs.club_id = ?", clubID).
		Order("users.name ASC").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("finding club regionals: %w", err)
	}
	return users, nil
}

// FindAll returns every regional link
func (r *RegionalRepository) FindAll(ctx context.Context) ([]*model.RegionalClub, error) {
	var links []*model.RegionalClub
	if err := r.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("finding regional links: %w", err)
	}
	return links, nil
}
