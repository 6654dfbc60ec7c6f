package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of a state change.
type AuditLog struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp  time.Time  `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP;index"`
	Action     string     `json:"action" gorm:"index"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	ClubID     *uuid.UUID `json:"club_id,omitempty" gorm:"type:uuid;index"`
	EntityType string     `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Details    JSONMap    `json:"details" gorm:"type:jsonb"`
	RequestID  string     `json:"request_id"`
	CreatedAt  time.Time  `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Audit actions
const (
	ActionMembershipRequested = "membership_requested"
	ActionMembershipApproved  = "membership_approved"
	ActionMembershipRejected  = "membership_rejected"
	ActionMembershipUpdated   = "membership_updated"
	ActionMembershipRemoved   = "membership_removed"
	ActionClubCreated         = "club_created"
	ActionClubUpdated         = "club_updated"
	ActionClubDeleted         = "club_deleted"
	ActionUnitCreated         = "unit_created"
	ActionUnitUpdated         = "unit_updated"
	ActionUnitDeleted         = "unit_deleted"
	ActionRegionalLinked      = "regional_linked"
	ActionRegionalUnlinked    = "regional_unlinked"
	ActionExamCreated         = "exam_created"
	ActionExamCopied          = "exam_copied"
	ActionExamUpdated         = "exam_updated"
	ActionExamDeleted         = "exam_deleted"
	ActionQuestionAdded       = "question_added"
	ActionQuestionUpdated     = "question_updated"
	ActionQuestionDeleted     = "question_deleted"
	ActionQuestionsReordered  = "questions_reordered"
)
