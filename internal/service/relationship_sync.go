// internal/service/relationship_sync.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/desbravaprovas/clubcore/internal/auth"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/google/uuid"
)

// RelationshipWriter is the part of auth.PermifyService the mirror needs.
type RelationshipWriter interface {
	WriteRelationships(ctx context.Context, rels []auth.Relationship) error
	DeleteRelationship(ctx context.Context, entity model.Entity, relation string, subject model.Subject) error
}

var _ RelationshipWriter = (*auth.PermifyService)(nil)

// RelationshipSync mirrors club memberships and supervision links as relationship tuples.
type RelationshipSync struct {
	writer RelationshipWriter
}

var _ RelationshipSyncer = (*RelationshipSync)(nil)

func NewRelationshipSync(writer RelationshipWriter) *RelationshipSync {
	return &RelationshipSync{writer: writer}
}

// membershipRelation maps a club role to its mirrored relation.
func membershipRelation(role model.ClubRole) string {
	if role == model.ClubRoleAdmin {
		return model.RelationAdmin
	}
	return model.RelationMember
}

func membershipTuple(m *model.Membership) auth.Relationship {
	return auth.Relationship{
		Entity:   model.ClubEntity(m.ClubID),
		Relation: membershipRelation(m.Role),
		Subject:  model.UserSubject(m.UserID),
	}
}

func supervisionTuple(regionalID, clubID uuid.UUID) auth.Relationship {
	return auth.Relationship{
		Entity:   model.ClubEntity(clubID),
		Relation: model.RelationSupervisor,
		Subject:  model.UserSubject(regionalID),
	}
}

func (s *RelationshipSync) GrantMembership(ctx context.Context, m *model.Membership) error {
	if err := s.writer.WriteRelationships(ctx, []auth.Relationship{membershipTuple(m)}); err != nil {
		return fmt.Errorf("writing membership relation: %w", err)
	}
	return nil
}

func (s *RelationshipSync) RevokeMembership(ctx context.Context, m *model.Membership) error {
	t := membershipTuple(m)
	if err := s.writer.DeleteRelationship(ctx, t.Entity, t.Relation, t.Subject); err != nil {
		return fmt.Errorf("deleting membership relation: %w", err)
	}
	return nil
}

func (s *RelationshipSync) GrantSupervision(ctx context.Context, regionalID, clubID uuid.UUID) error {
	if err := s.writer.WriteRelationships(ctx, []auth.Relationship{supervisionTuple(regionalID, clubID)}); err != nil {
		return fmt.Errorf("writing supervision relation: %w", err)
	}
	return nil
}

func (s *RelationshipSync) RevokeSupervision(ctx context.Context, regionalID, clubID uuid.UUID) error {
	t := supervisionTuple(regionalID, clubID)
	if err := s.writer.DeleteRelationship(ctx, t.Entity, t.Relation, t.Subject); err != nil {
		return fmt.Errorf("deleting supervision relation: %w", err)
	}
	return nil
}

// ReconcileReport summarises one reconciliation pass.
type ReconcileReport struct {
	Memberships  int
	Supervisions int
	Written      int
	Failed       int
}

// RelationshipReconciler rewrites the full relationship mirror from the database,
// once on demand or periodically.
type RelationshipReconciler struct {
	memberships  repository.MembershipRepositoryIface
	regionals    repository.RegionalRepositoryIface
	writer       RelationshipWriter
	syncInterval time.Duration
	batchSize    int
	logger       *slog.Logger
	stopChan     chan struct{}
	stoppedChan  chan struct{}
}

func NewRelationshipReconciler(
	memberships repository.MembershipRepositoryIface,
	regionals repository.RegionalRepositoryIface,
	writer RelationshipWriter,
	syncInterval time.Duration,
	logger *slog.Logger,
) *RelationshipReconciler {
	if syncInterval == 0 {
		syncInterval = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RelationshipReconciler{
		memberships:  memberships,
		regionals:    regionals,
		writer:       writer,
		syncInterval: syncInterval,
		batchSize:    100,
		logger:       logger,
		stopChan:     make(chan struct{}),
		stoppedChan:  make(chan struct{}),
	}
}

// SetBatchSize sets the number of tuples written per request
func (s *RelationshipReconciler) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// Start begins periodic reconciliation
func (s *RelationshipReconciler) Start() {
	go func() {
		ticker := time.NewTicker(s.syncInterval)
		defer ticker.Stop()
		defer close(s.stoppedChan)

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				if _, err := s.Run(ctx, false); err != nil {
					s.logger.Error("reconciliation failed", "error", err)
				}
				cancel()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop halts periodic reconciliation
func (s *RelationshipReconciler) Stop() {
	close(s.stopChan)
	<-s.stoppedChan
}

// Run writes a tuple for every ACTIVE membership and every regional link.
// With dryRun set nothing is written. Batch failures are logged and counted.
func (s *RelationshipReconciler) Run(ctx context.Context, dryRun bool) (*ReconcileReport, error) {
	memberships, err := s.memberships.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching active memberships: %w", err)
	}
	links, err := s.regionals.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching regional links: %w", err)
	}

	report := &ReconcileReport{Memberships: len(memberships), Supervisions: len(links)}
	s.logger.Info("reconciling relationships",
		"memberships", report.Memberships, "supervisions", report.Supervisions, "dry_run", dryRun)

	tuples := make([]auth.Relationship, 0, len(memberships)+len(links))
	for _, m := range memberships {
		tuples = append(tuples, membershipTuple(m))
	}
	for _, l := range links {
		tuples = append(tuples, supervisionTuple(l.RegionalID, l.ClubID))
	}

	if dryRun {
		for _, t := range tuples {
			s.logger.Info("would write relationship (dry run)",
				"entity", t.Entity.Type+":"+t.Entity.ID, "relation", t.Relation, "subject", t.Subject.ID)
		}
		return report, nil
	}

	for i := 0; i < len(tuples); i += s.batchSize {
		end := i + s.batchSize
		if end > len(tuples) {
			end = len(tuples)
		}

		batch := tuples[i:end]
		if err := s.writer.WriteRelationships(ctx, batch); err != nil {
			s.logger.Error("failed to write relationship batch", "start", i, "end", end, "error", err)
			report.Failed += len(batch)
		} else {
			report.Written += len(batch)
		}

		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}
	}

	s.logger.Info("completed relationship reconciliation", "written", report.Written, "failed", report.Failed)
	return report, nil
}
