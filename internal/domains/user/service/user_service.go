package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/user"
	"library-catalog-backend/pkg/jwt"
	"library-catalog-backend/pkg/password"
)

// userService implements user.Service
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService creates the service instance; dependencies are injected
// through the constructor.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user with a hashed password.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	// DTO validation runs at the handler, but double-checking here keeps the
	// service safe when called directly.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameTaken
	}

	// argon2id with a per-call random salt; parameters live in the encoded
	// hash itself.
	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login verifies credentials and issues a bearer token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	// A missing field can only fail the lookup anyway; collapsing it into
	// the generic credential error keeps the response uniform.
	if err := req.Validate(); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		// An unknown username yields the same error as a wrong password:
		// no username-enumeration signal. A storage failure is neither.
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := password.Verify(req.Password, u.PasswordHash)
	if err != nil || !ok {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{
		Token: token,
		User:  u.ToDTO(),
	}, nil
}
