package audit

import (
	"context"

	"github.com/google/uuid"
)

// Entry describes one state change to be recorded.
type Entry struct {
	Action     string
	ActorID    uuid.UUID
	ClubID     *uuid.UUID
	EntityType string
	EntityID   string
	Details    map[string]interface{}
}

// Entity types used in entries
const (
	EntityClub       = "club"
	EntityUnit       = "unit"
	EntityMembership = "membership"
	EntityRegional   = "regional_link"
	EntityExam       = "exam"
	EntityQuestion   = "question"
)

// Logger defines the interface for auditing operations
type Logger interface {
	// Record appends an entry to the audit trail
	Record(ctx context.Context, entry Entry) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// Record implements Logger.Record
func (l *NoOpLogger) Record(ctx context.Context, entry Entry) error {
	return nil
}
