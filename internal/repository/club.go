// internal/repository/club.go
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

type ClubRepositoryIface interface {
	Create(ctx context.Context, club *model.Club, recordCreator bool) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error)
	FindBySlug(ctx context.Context, slug string) (*model.Club, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Club, int64, error)
	Update(ctx context.Context, club *model.Club) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateUnit(ctx context.Context, unit *model.Unit) error
	FindUnitByID(ctx context.Context, id uuid.UUID) (*model.Unit, error)
	FindUnitsByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Unit, error)
	UpdateUnit(ctx context.Context, unit *model.Unit) error
	DeleteUnit(ctx context.Context, id uuid.UUID) error
	CountUnitMembers(ctx context.Context, unitID uuid.UUID) (int64, error)
}

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create inserts the club. When recordCreator is set the creator's account is
// marked in the same transaction, and the insert fails if it already was.
func (r *ClubRepository) Create(ctx context.Context, club *model.Club, recordCreator bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(club).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrSlugTaken
			}
			return fmt.Errorf("creating club: %w", err)
		}

		if !recordCreator {
			return nil
		}

		res := tx.Model(&model.User{}).
			Where("id = ? AND created_club_id IS NULL", club.CreatorID).
			Update("created_club_id", club.ID)
		if res.Error != nil {
			return fmt.Errorf("recording club creator: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.Forbidden(domain.RuleClubAlreadyCreated, "account has already created a club")
		}
		return nil
	})

	if err != nil {
		var ruleErr *domain.RuleError
		if errors.Is(err, domain.ErrSlugTaken) || errors.As(err, &ruleErr) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).First(&club, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("finding club: %w", err)
	}
	return &club, nil
}

func (r *ClubRepository) FindBySlug(ctx context.Context, slug string) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).Preload("Units").First(&club, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("finding club by slug: %w", err)
	}
	return &club, nil
}

// FindAllPaginated returns a page of clubs ordered by name
func (r *ClubRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Club, int64, error) {
	var clubs []*model.Club
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Club{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clubs: %w", err)
	}

	result := r.db.WithContext(ctx).Order("name ASC").Offset(offset).Limit(limit).Find(&clubs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated clubs: %w", result.Error)
	}

	return clubs, count, nil
}

func (r *ClubRepository) Update(ctx context.Context, club *model.Club) error {
	res := r.db.WithContext(ctx).Model(club).
		Select("Name", "Slug", "City", "State", "Country", "Latitude", "Longitude").
		Updates(club)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("updating club: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClubNotFound
	}
	return nil
}

// Delete removes the club and everything it owns.
func (r *ClubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exams := tx.Model(&model.Exam{}).Select("id").Where("club_id = ?", id)
		if err := tx.Where("exam_id IN (?)", exams).Delete(&model.Question{}).Error; err != nil {
			return fmt.Errorf("deleting questions: %w", err)
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Exam{}).Error; err != nil {
			return fmt.Errorf("deleting exams: %w", err)
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Unit{}).Error; err != nil {
			return fmt.Errorf("deleting units: %w", err)
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.RegionalClub{}).Error; err != nil {
			return fmt.Errorf("deleting regional links: %w", err)
		}
		if err := tx.Model(&model.User{}).Where("created_club_id = ?", id).
			Update("created_club_id", nil).Error; err != nil {
			return fmt.Errorf("clearing club creator: %w", err)
		}

		res := tx.Delete(&model.Club{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("deleting club: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrClubNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrClubNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *ClubRepository) CreateUnit(ctx context.Context, unit *model.Unit) error {
	if err := r.db.WithContext(ctx).Create(unit).Error; err != nil {
		return fmt.Errorf("creating unit: %w", err)
	}
	return nil
}

func (r *ClubRepository) FindUnitByID(ctx context.Context, id uuid.UUID) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("finding unit: %w", err)
	}
	return &unit, nil
}

func (r *ClubRepository) FindUnitsByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Unit, error) {
	var units []*model.Unit
	if err := r.db.WithContext(ctx).Where("club_id = ?", clubID).Order("name ASC").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("finding club units: %w", err)
	}
	return units, nil
}

// UpdateUnit renames the unit. ClubID is create-only on the model and is never written here.
func (r *ClubRepository) UpdateUnit(ctx context.Context, unit *model.Unit) error {
	res := r.db.WithContext(ctx).Model(unit).Select("Name").Updates(unit)
	if res.Error != nil {
		return fmt.Errorf("updating unit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *ClubRepository) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Unit{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting unit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *ClubRepository) CountUnitMembers(ctx context.Context, unitID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).Where("unit_id = ?", unitID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting unit members: %w", err)
	}
	return count, nil
}
