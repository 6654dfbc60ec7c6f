// internal/model/exam.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Visibility string

const (
	VisibilityPublic      Visibility = "PUBLIC"
	VisibilityClubPrivate Visibility = "CLUB_PRIVATE"
	VisibilityUnitPrivate Visibility = "UNIT_PRIVATE"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityClubPrivate, VisibilityUnitPrivate:
		return true
	}
	return false
}

type Exam struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClubID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"club_id"`
	UnitID           *uuid.UUID `gorm:"type:uuid;index" json:"unit_id,omitempty"`
	CreatorID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title            string     `gorm:"type:text;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	Category         string     `gorm:"type:text;not null" json:"category"`
	Visibility       Visibility `gorm:"type:text;not null;default:'CLUB_PRIVATE';index" json:"visibility"`
	MDAReference     string     `gorm:"type:text" json:"mda_reference,omitempty"`
	OriginalAuthorID *uuid.UUID `gorm:"type:uuid" json:"original_author_id,omitempty"`
	OriginalExamID   *uuid.UUID `gorm:"type:uuid" json:"original_exam_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Questions []Question `gorm:"foreignKey:ExamID" json:"questions,omitempty"`
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionEssay          QuestionType = "ESSAY"
	QuestionPractical      QuestionType = "PRACTICAL"
)

// Question ordering is 1-based and dense within its exam.
type Question struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExamID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"exam_id"`
	Ordering      int               `gorm:"not null" json:"ordering"`
	Type          QuestionType      `gorm:"type:text;not null" json:"type"`
	Statement     string            `gorm:"type:text;not null" json:"statement"`
	Options       datatypes.JSONMap `gorm:"type:jsonb" json:"options,omitempty"`
	CorrectAnswer *string           `gorm:"type:text" json:"correct_answer,omitempty"`
	Points        int               `gorm:"not null" json:"points"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
