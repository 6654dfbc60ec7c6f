package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/desbravaprovas/clubcore/internal/auth"
	"github.com/desbravaprovas/clubcore/internal/domain"
	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/desbravaprovas/clubcore/internal/repository"
	"github.com/go-playground/validator/v10"
)

// IdentityService holds the minimal account operations: login and the
// operator commands that create accounts and elevate global roles.
type IdentityService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewIdentityService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	logger *slog.Logger,
) *IdentityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		logger:         logger,
		validate:       validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Authenticate verifies credentials and issues a token.
func (s *IdentityService) Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if s.passwordHasher.NeedsRehash(user.PasswordHash) {
		if hash, err := s.passwordHasher.Hash(input.Password); err == nil {
			user.PasswordHash = hash
			if err := s.repo.Update(ctx, user); err != nil {
				s.logger.WarnContext(ctx, "failed to store rehashed password", "user_id", user.ID, "error", err)
			}
		}
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email, string(user.GlobalRole))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

type CreateUserInput struct {
	Email      string           `json:"email" validate:"required,email"`
	Name       string           `json:"name" validate:"required,min=2,max=100"`
	Password   string           `json:"password" validate:"required,min=8"`
	GlobalRole model.GlobalRole `json:"global_role" validate:"omitempty,oneof=MASTER REGIONAL USUARIO"`
}

// CreateUser stores a new account. The global role defaults to USUARIO.
func (s *IdentityService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	role := input.GlobalRole
	if role == "" {
		role = model.GlobalRoleUser
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		Name:         input.Name,
		GlobalRole:   role,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user created", "user_id", user.ID, "global_role", user.GlobalRole)
	return user, nil
}

// SetGlobalRole changes the global role of the account behind email.
func (s *IdentityService) SetGlobalRole(ctx context.Context, email string, role model.GlobalRole) (*model.User, error) {
	if !role.Valid() {
		return nil, domain.Invalid(domain.RuleValidation, "unknown global role %q", role)
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	previous := user.GlobalRole
	user.GlobalRole = role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	s.logger.InfoContext(ctx, "global role changed", "user_id", user.ID, "from", previous, "to", role)
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
