package service_test

import (
	"context"
	"testing"

	"github.com/desbravaprovas/clubcore/internal/auth"
	"github.com/desbravaprovas/clubcore/internal/mocks"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeWriter struct {
	batches [][]auth.Relationship
	deleted []auth.Relationship
	err     error
}

func (w *fakeWriter) WriteRelationships(_ context.Context, rels []auth.Relationship) error {
	w.batches = append(w.batches, rels)
	return w.err
}

func (w *fakeWriter) DeleteRelationship(_ context.Context, entity model.Entity, relation string, subject model.Subject) error {
	w.deleted = append(w.deleted, auth.Relationship{Entity: entity, Relation: relation, Subject: subject})
	return w.err
}

func TestRelationshipSync(t *testing.T) {
	ctx := context.Background()
	w := &fakeWriter{}
	sync := service.NewRelationshipSync(w)

	clubID, userID := uuid.New(), uuid.New()
	admin := &model.Membership{UserID: userID, ClubID: clubID, Role: model.ClubRoleAdmin}
	member := &model.Membership{UserID: userID, ClubID: clubID, Role: model.ClubRolePathfinder}

	require.NoError(t, sync.GrantMembership(ctx, admin))
	require.NoError(t, sync.RevokeMembership(ctx, member))
	require.NoError(t, sync.GrantSupervision(ctx, userID, clubID))

	require.Len(t, w.batches, 2)
	assert.Equal(t, model.RelationAdmin, w.batches[0][0].Relation)
	assert.Equal(t, model.ClubEntity(clubID), w.batches[0][0].Entity)
	assert.Equal(t, model.RelationSupervisor, w.batches[1][0].Relation)

	require.Len(t, w.deleted, 1)
	assert.Equal(t, model.RelationMember, w.deleted[0].Relation)
	assert.Equal(t, model.UserSubject(userID), w.deleted[0].Subject)
}

func TestRelationshipReconciler(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*mocks.MockMembershipRepositoryIface, *mocks.MockRegionalRepositoryIface) {
		ctrl := gomock.NewController(t)
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		regionals := mocks.NewMockRegionalRepositoryIface(ctrl)

		active := make([]*model.Membership, 0, 4)
		for i := 0; i < 4; i++ {
			active = append(active, &model.Membership{UserID: uuid.New(), ClubID: uuid.New(), Role: model.ClubRoleInstructor})
		}
		memberships.EXPECT().FindAllActive(gomock.Any()).Return(active, nil)
		regionals.EXPECT().FindAll(gomock.Any()).Return([]*model.RegionalClub{{RegionalID: uuid.New(), ClubID: uuid.New()}}, nil)
		return memberships, regionals
	}

	t.Run("writes in batches", func(t *testing.T) {
		memberships, regionals := setup(t)
		w := &fakeWriter{}
		r := service.NewRelationshipReconciler(memberships, regionals, w, 0, nil)
		r.SetBatchSize(2)

		report, err := r.Run(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 4, report.Memberships)
		assert.Equal(t, 1, report.Supervisions)
		assert.Equal(t, 5, report.Written)
		assert.Len(t, w.batches, 3)
		assert.Equal(t, model.RelationSupervisor, w.batches[2][0].Relation)
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		memberships, regionals := setup(t)
		w := &fakeWriter{}
		r := service.NewRelationshipReconciler(memberships, regionals, w, 0, nil)

		report, err := r.Run(ctx, true)
		require.NoError(t, err)
		assert.Zero(t, report.Written)
		assert.Empty(t, w.batches)
	})

	t.Run("failed batches are counted", func(t *testing.T) {
		memberships, regionals := setup(t)
		w := &fakeWriter{err: errBoom}
		r := service.NewRelationshipReconciler(memberships, regionals, w, 0, nil)

		report, err := r.Run(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 5, report.Failed)
	})
}
