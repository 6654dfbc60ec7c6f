package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/desbravaprovas/clubcore/internal/auth"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/mocks"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	testUser := &model.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		Name:         "Ana",
		GlobalRole:   model.GlobalRoleRegional,
		PasswordHash: hash,
	}
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("successful login issues a token with the global role", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(testUser, nil)
		svc := service.NewIdentityService(userRepo, hasher, tokens, nil)

		out, err := svc.Authenticate(ctx, service.LoginInput{Email: " Ana@Example.com ", Password: "correct_password"})
		require.NoError(t, err)
		assert.Equal(t, testUser.ID, out.User.ID)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, testUser.ID.String(), claims.UserID)
		assert.Equal(t, string(model.GlobalRoleRegional), claims.GlobalRole)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(testUser, nil)
		svc := service.NewIdentityService(userRepo, hasher, tokens, nil)

		_, err := svc.Authenticate(ctx, service.LoginInput{Email: "ana@example.com", Password: "wrong_password"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)
		svc := service.NewIdentityService(userRepo, hasher, tokens, nil)

		_, err := svc.Authenticate(ctx, service.LoginInput{Email: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestCreateUserAndSetRole(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := service.NewIdentityService(userRepo, auth.NewPasswordHasher(), auth.NewTokenManager("s", time.Hour), nil)

	var stored *model.User
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
		u.ID = uuid.New()
		stored = u
		return nil
	})

	u, err := svc.CreateUser(ctx, service.CreateUserInput{Email: "  Bia@Example.com ", Name: "Bia", Password: "s3nha-forte"})
	require.NoError(t, err)
	assert.Equal(t, "bia@example.com", u.Email)
	assert.Equal(t, model.GlobalRoleUser, u.GlobalRole)
	assert.NotEqual(t, "s3nha-forte", u.PasswordHash)

	userRepo.EXPECT().FindByEmail(gomock.Any(), "bia@example.com").Return(stored, nil)
	userRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	u, err = svc.SetGlobalRole(ctx, "bia@example.com", model.GlobalRoleMaster)
	require.NoError(t, err)
	assert.True(t, u.IsMaster())

	_, err = svc.SetGlobalRole(ctx, "bia@example.com", model.GlobalRole("ROOT"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
