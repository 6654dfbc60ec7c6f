package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/desbravaprovas/clubcore/internal/audit"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/mocks"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	users       *mocks.MockUserRepositoryIface
	clubs       *mocks.MockClubRepositoryIface
	memberships *mocks.MockMembershipRepositoryIface
	regionals   *mocks.MockRegionalRepositoryIface
	exams       *mocks.MockExamRepositoryIface
	auditLogs   *mocks.MockAuditLogRepositoryIface

	notifier *fakeNotifier
	audit    *recordingAudit
	sync     *fakeSyncer

	authority *service.AuthorityService
	collab    service.Collaborators
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		users:       mocks.NewMockUserRepositoryIface(ctrl),
		clubs:       mocks.NewMockClubRepositoryIface(ctrl),
		memberships: mocks.NewMockMembershipRepositoryIface(ctrl),
		regionals:   mocks.NewMockRegionalRepositoryIface(ctrl),
		exams:       mocks.NewMockExamRepositoryIface(ctrl),
		auditLogs:   mocks.NewMockAuditLogRepositoryIface(ctrl),
		notifier:    &fakeNotifier{},
		audit:       &recordingAudit{},
		sync:        &fakeSyncer{},
	}
	f.authority = service.NewAuthorityService(f.users, f.clubs, f.memberships, f.regionals)
	f.collab = service.Collaborators{
		Notifier:      f.notifier,
		Audit:         f.audit,
		Sync:          f.sync,
		Clock:         service.ClockFunc(func() time.Time { return fixedNow }),
		NotifyTimeout: time.Second,
	}
	return f
}

func (f *fixture) user(role model.GlobalRole) *model.User {
	u := &model.User{
		ID:         uuid.New(),
		Email:      uuid.NewString()[:8] + "@example.com",
		Name:       "Test " + string(role),
		GlobalRole: role,
	}
	f.users.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil).AnyTimes()
	return u
}

func (f *fixture) club(creatorID uuid.UUID) *model.Club {
	c := &model.Club{ID: uuid.New(), Name: "Clube Órion", Slug: "clube-orion", CreatorID: creatorID}
	f.clubs.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil).AnyTimes()
	return c
}

func (f *fixture) unit(clubID uuid.UUID) *model.Unit {
	u := &model.Unit{ID: uuid.New(), ClubID: clubID, Name: "Unidade Falcão"}
	f.clubs.EXPECT().FindUnitByID(gomock.Any(), u.ID).Return(u, nil).AnyTimes()
	return u
}

// member registers an ACTIVE membership of u in club with role.
func (f *fixture) member(u *model.User, club *model.Club, role model.ClubRole, unitID *uuid.UUID) *model.Membership {
	m := &model.Membership{
		ID:        uuid.New(),
		UserID:    u.ID,
		ClubID:    club.ID,
		UnitID:    unitID,
		Role:      role,
		Status:    model.MembershipActive,
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Baptized:  true,
		User:      u,
		Club:      club,
	}
	f.memberships.EXPECT().FindByUserAndClub(gomock.Any(), u.ID, club.ID).Return(m, nil).AnyTimes()
	return m
}

// stranger registers that u has no membership in club.
func (f *fixture) stranger(u *model.User, club *model.Club) {
	f.memberships.EXPECT().FindByUserAndClub(gomock.Any(), u.ID, club.ID).
		Return(nil, domain.ErrMembershipNotFound).AnyTimes()
}

func ptr[T any](v T) *T {
	return &v
}

func requireRule(t *testing.T, err error, kind error, rule domain.Rule) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	got, ok := domain.RuleOf(err)
	require.True(t, ok, "expected a rule error, got %v", err)
	require.Equal(t, rule, got)
}

type fakeNotifier struct {
	mu       sync.Mutex
	err      error
	requests []service.MembershipNotice
	approved []service.MembershipNotice
	rejected []service.MembershipNotice
}

func (n *fakeNotifier) NotifyNewRequest(_ context.Context, notice service.MembershipNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requests = append(n.requests, notice)
	return n.err
}

func (n *fakeNotifier) NotifyApproved(_ context.Context, notice service.MembershipNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.approved = append(n.approved, notice)
	return n.err
}

func (n *fakeNotifier) NotifyRejected(_ context.Context, notice service.MembershipNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rejected = append(n.rejected, notice)
	return n.err
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (a *recordingAudit) Record(_ context.Context, entry audit.Entry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeSyncer struct {
	mu      sync.Mutex
	err     error
	granted []uuid.UUID
	revoked []uuid.UUID
	links   [][2]uuid.UUID
}

func (s *fakeSyncer) GrantMembership(_ context.Context, m *model.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted = append(s.granted, m.ID)
	return s.err
}

func (s *fakeSyncer) RevokeMembership(_ context.Context, m *model.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked = append(s.revoked, m.ID)
	return s.err
}

func (s *fakeSyncer) GrantSupervision(_ context.Context, regionalID, clubID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, [2]uuid.UUID{regionalID, clubID})
	return s.err
}

func (s *fakeSyncer) RevokeSupervision(_ context.Context, regionalID, clubID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

var errBoom = errors.New("boom")
