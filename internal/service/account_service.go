package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"github.com/phrazzld/gestor-tareas-api/internal/service/auth"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// AccountService registers users and logs them in.
type AccountService interface {
	// Register creates a user with a hashed password.
	// Returns store.ErrEmailExists if the email is taken.
	Register(ctx context.Context, db store.DBTX, email, password string) (*domain.User, error)

	// Login verifies the credentials and returns a signed access token.
	// Returns ErrInvalidCredentials for an unknown email or wrong password.
	Login(ctx context.Context, db store.DBTX, email, password string) (string, error)
}

type accountService struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.TokenService
	logger *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) (AccountService, error) {
	if users == nil {
		return nil, fmt.Errorf("users cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("tokens cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "account_service"),
	}, nil
}

// Register implements AccountService.Register
func (s *accountService) Register(ctx context.Context, db store.DBTX, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(email, hashed)
	if err != nil {
		return nil, err
	}

	if err := s.users.WithDB(db).Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration rejected: email already registered")
			return nil, err
		}
		log.Error("failed to register user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// Login implements AccountService.Login
func (s *accountService) Login(ctx context.Context, db store.DBTX, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.WithDB(db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected: unknown email")
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		log.Debug("login rejected: wrong password", slog.Int64("user_id", user.ID))
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(ctx, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
