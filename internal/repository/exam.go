// internal/repository/exam.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/authz"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamRepositoryIface interface {
	Create(ctx context.Context, exam *model.Exam) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Exam, error)
	FindPublic(ctx context.Context) ([]*model.Exam, error)
	FindByClub(ctx context.Context, filter authz.ExamFilter) ([]*model.Exam, error)
	Update(ctx context.Context, exam *model.Exam) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindQuestionByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	AddQuestion(ctx context.Context, q *model.Question, position *int) error
	UpdateQuestion(ctx context.Context, q *model.Question) error
	DeleteQuestion(ctx context.Context, q *model.Question) error
	ReorderQuestions(ctx context.Context, examID uuid.UUID, order []uuid.UUID) error
}

type ExamRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("ordering ASC")
}

// Create inserts the exam together with its questions in one statement batch.
func (r *ExamRepository) Create(ctx context.Context, exam *model.Exam) error {
	if err := r.db.WithContext(ctx).Create(exam).Error; err != nil {
		return fmt.Errorf("creating exam: %w", err)
	}
	return nil
}

func (r *ExamRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).Preload("Questions", orderedQuestions).First(&exam, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExamNotFound
		}
		return nil, fmt.Errorf("finding exam: %w", err)
	}
	return &exam, nil
}

func (r *ExamRepository) FindPublic(ctx context.Context) ([]*model.Exam, error) {
	var exams []*model.Exam
	if err := r.db.WithContext(ctx).
		Where("visibility = ?", model.VisibilityPublic).
		Order("created_at DESC").
		Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("finding public exams: %w", err)
	}
	return exams, nil
}

// FindByClub lists a club's exams narrowed by filter.
func (r *ExamRepository) FindByClub(ctx context.Context, filter authz.ExamFilter) ([]*model.Exam, error) {
	query := r.db.WithContext(ctx).Where("club_id = ?", filter.ClubID)

	if filter.Restricted {
		open := []model.Visibility{model.VisibilityPublic, model.VisibilityClubPrivate}
		if filter.UnitID != nil {
			query = query.Where("(visibility IN ? OR (visibility = ? AND unit_id = ?))",
				open, model.VisibilityUnitPrivate, *filter.UnitID)
		} else {
			query = query.Where("visibility IN ?", open)
		}
	}

	var exams []*model.Exam
	if err := query.Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("finding club exams: %w", err)
	}
	return exams, nil
}

// Update writes the editable exam fields. A row that no longer exists is
// reported as ErrExamNotFound instead of being inserted again.
func (r *ExamRepository) Update(ctx context.Context, exam *model.Exam) error {
	res := r.db.WithContext(ctx).Model(exam).
		Select("UnitID", "Title", "Description", "Category", "Visibility", "MDAReference").
		Updates(exam)
	if res.Error != nil {
		return fmt.Errorf("updating exam: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrExamNotFound
	}
	return nil
}

func (r *ExamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return fmt.Errorf("deleting questions: %w", err)
		}
		res := tx.Delete(&model.Exam{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("deleting exam: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrExamNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrExamNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ExamRepository) FindQuestionByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var q model.Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("finding question: %w", err)
	}
	return &q, nil
}

// lockExam serialises ordering changes on one exam.
func lockExam(tx *gorm.DB, examID uuid.UUID) error {
	var exam model.Exam
	if err := lockForUpdate(tx).Select("id").First(&exam, "id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExamNotFound
		}
		return fmt.Errorf("locking exam: %w", err)
	}
	return nil
}

// AddQuestion inserts q at position (appending when nil), shifting later
// questions so the ordering stays dense.
func (r *ExamRepository) AddQuestion(ctx context.Context, q *model.Question, position *int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockExam(tx, q.ExamID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Question{}).Where("exam_id = ?", q.ExamID).Count(&count).Error; err != nil {
			return fmt.Errorf("counting questions: %w", err)
		}

		ordering, err := authz.InsertPosition(int(count), position)
		if err != nil {
			return err
		}

		if ordering <= int(count) {
			if err := tx.Model(&model.Question{}).
				Where("exam_id = ? AND ordering >= ?", q.ExamID, ordering).
				Update("ordering", gorm.Expr("ordering + 1")).Error; err != nil {
				return fmt.Errorf("shifting questions: %w", err)
			}
		}

		q.Ordering = ordering
		if err := tx.Create(q).Error; err != nil {
			return fmt.Errorf("creating question: %w", err)
		}
		return nil
	})
}

func (r *ExamRepository) UpdateQuestion(ctx context.Context, q *model.Question) error {
	res := r.db.WithContext(ctx).Model(q).
		Select("Type", "Statement", "Options", "CorrectAnswer", "Points").
		Updates(q)
	if res.Error != nil {
		return fmt.Errorf("updating question: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// DeleteQuestion removes q and closes the gap it leaves in the ordering.
func (r *ExamRepository) DeleteQuestion(ctx context.Context, q *model.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockExam(tx, q.ExamID); err != nil {
			return err
		}

		var current model.Question
		if err := tx.Select("id", "ordering").First(&current, "id = ? AND exam_id = ?", q.ID, q.ExamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrQuestionNotFound
			}
			return fmt.Errorf("finding question: %w", err)
		}

		if err := tx.Delete(&model.Question{}, "id = ?", q.ID).Error; err != nil {
			return fmt.Errorf("deleting question: %w", err)
		}

		if err := tx.Model(&model.Question{}).
			Where("exam_id = ? AND ordering > ?", q.ExamID, current.Ordering).
			Update("ordering", gorm.Expr("ordering - 1")).Error; err != nil {
			return fmt.Errorf("compacting questions: %w", err)
		}
		return nil
	})
}

// ReorderQuestions applies order as the new 1-based ordering. The permutation
// is checked against the stored set under the exam lock, and every row is
// written in the same transaction.
func (r *ExamRepository) ReorderQuestions(ctx context.Context, examID uuid.UUID, order []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockExam(tx, examID); err != nil {
			return err
		}

		var current []model.Question
		if err := tx.Select("id", "ordering").Where("exam_id = ?", examID).Find(&current).Error; err != nil {
			return fmt.Errorf("loading questions: %w", err)
		}

		plan, err := authz.PlanReorder(current, order)
		if err != nil {
			return err
		}

		for _, q := range current {
			next := plan[q.ID]
			if next == q.Ordering {
				continue
			}
			if err := tx.Model(&model.Question{}).
				Where("id = ?", q.ID).
				Update("ordering", next).Error; err != nil {
				return fmt.Errorf("reordering question %s: %w", q.ID, err)
			}
		}
		return nil
	})
}
