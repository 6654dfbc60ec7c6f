package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/desbravaprovas/clubcore/internal/audit"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/desbravaprovas/clubcore/internal/service")

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// MembershipNotice carries what the notifier needs to address one email.
type MembershipNotice struct {
	RecipientEmail string
	RecipientName  string
	MemberName     string
	MemberEmail    string
	ClubName       string
	Role           model.ClubRole
	UnitName       string
	Office         string
}

// Notifier delivers membership notifications. Calls are best effort.
type Notifier interface {
	NotifyNewRequest(ctx context.Context, notice MembershipNotice) error
	NotifyApproved(ctx context.Context, notice MembershipNotice) error
	NotifyRejected(ctx context.Context, notice MembershipNotice) error
}

// RelationshipSyncer mirrors club relationships to an external authorization store.
type RelationshipSyncer interface {
	GrantMembership(ctx context.Context, m *model.Membership) error
	RevokeMembership(ctx context.Context, m *model.Membership) error
	GrantSupervision(ctx context.Context, regionalID, clubID uuid.UUID) error
	RevokeSupervision(ctx context.Context, regionalID, clubID uuid.UUID) error
}

// Collaborators are the side-effect dependencies shared by the services.
// Any nil field is replaced by a no-op or default.
type Collaborators struct {
	Notifier      Notifier
	Audit         audit.Logger
	Sync          RelationshipSyncer
	Cache         *CacheService
	Clock         Clock
	Logger        *slog.Logger
	NotifyTimeout time.Duration
}

const defaultNotifyTimeout = 5 * time.Second

func (c Collaborators) withDefaults() Collaborators {
	if c.Audit == nil {
		c.Audit = &audit.NoOpLogger{}
	}
	if c.Clock == nil {
		c.Clock = SystemClock
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.NotifyTimeout <= 0 {
		c.NotifyTimeout = defaultNotifyTimeout
	}
	return c
}

// record writes an audit entry. A failure is logged; the change it describes
// has already been committed.
func (c Collaborators) record(ctx context.Context, entry audit.Entry) {
	if err := c.Audit.Record(ctx, entry); err != nil {
		c.Logger.WarnContext(ctx, "failed to record audit entry",
			"action", entry.Action, "entity_id", entry.EntityID, "error", err)
	}
}

// notify runs send with its own deadline, detached from the caller's
// cancellation, and waits at most NotifyTimeout for it. Errors are logged.
func (c Collaborators) notify(ctx context.Context, kind string, send func(context.Context) error) {
	if c.Notifier == nil {
		return
	}

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.NotifyTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- send(nctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			c.Logger.WarnContext(ctx, "notification failed", "kind", kind, "error", err)
		}
	case <-nctx.Done():
		c.Logger.WarnContext(ctx, "notification timed out", "kind", kind, "timeout", c.NotifyTimeout)
	}
}

// mirror applies a relationship change when a syncer is configured.
func (c Collaborators) mirror(ctx context.Context, what string, apply func(RelationshipSyncer) error) {
	if c.Sync == nil {
		return
	}
	if err := apply(c.Sync); err != nil {
		c.Logger.WarnContext(ctx, "relationship sync failed", "change", what, "error", err)
	}
}

func (c Collaborators) invalidatePublicExams(ctx context.Context) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.InvalidatePublicExams(ctx); err != nil {
		c.Logger.WarnContext(ctx, "failed to invalidate public exam cache", "error", err)
	}
}

// validationError converts validator output into an InvalidArgument rule error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return domain.Invalid(domain.RuleValidation, "%s", strings.Join(fields, "; ")).
		WithMetadata("fields", strings.Join(fields, "; "))
}

// startSpan opens a span for op and returns a finisher that records err.
func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, op)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

// dateOnly truncates t to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
