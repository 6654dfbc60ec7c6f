package service

import (
	"context"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/audit"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Ensure AuditLogService implements the audit.Logger interface
var _ audit.Logger = (*AuditLogService)(nil)

// AuditLogService writes and queries the audit trail
type AuditLogService struct {
	repo      repository.AuditLogRepositoryIface
	authority *AuthorityService
	clock     Clock
}

// NewAuditLogService creates a new AuditLogService
func NewAuditLogService(repo repository.AuditLogRepositoryIface, authority *AuthorityService, clock Clock) *AuditLogService {
	if clock == nil {
		clock = SystemClock
	}
	return &AuditLogService{
		repo:      repo,
		authority: authority,
		clock:     clock,
	}
}

// Record appends entry, tagging it with the request id when one is in ctx.
func (s *AuditLogService) Record(ctx context.Context, entry audit.Entry) error {
	actorID := entry.ActorID
	log := &model.AuditLog{
		Timestamp:  s.clock.Now().UTC(),
		Action:     entry.Action,
		ClubID:     entry.ClubID,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Details:    model.JSONMap(entry.Details),
		RequestID:  middleware.GetReqID(ctx),
	}
	if actorID != uuid.Nil {
		log.ActorID = &actorID
	}

	return s.repo.Create(ctx, log)
}

// GetAuditLogs retrieves audit logs based on query parameters. MASTER only.
func (s *AuditLogService) GetAuditLogs(
	ctx context.Context,
	actorID uuid.UUID,
	params repository.QueryParams,
) ([]model.AuditLog, int64, error) {
	if err := s.requireMaster(ctx, actorID); err != nil {
		return nil, 0, err
	}
	return s.repo.Query(ctx, params)
}

// GetAuditLogByID retrieves an audit log by ID. MASTER only.
func (s *AuditLogService) GetAuditLogByID(
	ctx context.Context,
	actorID uuid.UUID,
	id uuid.UUID,
) (*model.AuditLog, error) {
	if err := s.requireMaster(ctx, actorID); err != nil {
		return nil, err
	}

	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log by ID: %w", err)
	}

	return log, nil
}

func (s *AuditLogService) requireMaster(ctx context.Context, actorID uuid.UUID) error {
	p, err := s.authority.Principal(ctx, actorID)
	if err != nil {
		return err
	}
	if !p.IsMaster() {
		return domain.Forbidden(domain.RuleMasterRequired, "only MASTER may read the audit log")
	}
	return nil
}
