package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epfafrica/user-service/internal/core/domain"
	"github.com/epfafrica/user-service/internal/core/ports"
)

// PasswordHasher abstracts the credential hashing scheme (bcrypt in production).
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenProvider mints session tokens for authenticated users.
type TokenProvider interface {
	Generate(user *domain.User) (string, error)
}

// LoginLimiter throttles repeated failed logins per username (Redis-backed).
type LoginLimiter interface {
	IsBlocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login. It holds no mutable state of
// its own: the user repository is the single shared resource, and its unique
// indexes — not the advisory existence checks below — decide races between
// concurrent registrations.
type AuthService struct {
	users   ports.UserRepository
	hasher  PasswordHasher
	tokens  TokenProvider
	limiter LoginLimiter            // optional
	events  ports.AuthEventRecorder // optional
	log     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher PasswordHasher,
	tokens TokenProvider,
	limiter LoginLimiter,
	events ports.AuthEventRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		events:  events,
		log:     log,
	}
}

// Register creates a new active user holding exactly ROLE_USER. The existence
// checks are advisory: a concurrent registration can slip between check and
// write, in which case Create fails with domain.ErrDuplicateIdentity and that
// error is propagated as-is.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	s.log.Info().Str("username", in.Username).Msg("registering new user")

	taken, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateUsername
	}

	used, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if used {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.AddRole(domain.RoleUser)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.EventUserRegistered, created.Username, created.ID)
	s.log.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints a session token. A missing user and a
// wrong password produce the same ErrInvalidCredentials so callers cannot
// enumerate usernames; inactive accounts yield ErrInactiveAccount, which the
// HTTP boundary renders identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if s.limiter != nil {
		blocked, err := s.limiter.IsBlocked(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, proceeding")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.loginFailed(ctx, username, "")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !user.Active {
		s.loginFailed(ctx, username, user.ID)
		return nil, domain.ErrInactiveAccount
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.loginFailed(ctx, username, user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login limiter")
		}
	}

	raw, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.record(domain.EventLoginSucceeded, user.Username, user.ID)
	s.log.Info().Str("username", user.Username).Msg("user authenticated")

	return &ports.LoginResult{Token: raw, TokenType: "Bearer", User: user}, nil
}

func (s *AuthService) loginFailed(ctx context.Context, username, userID string) {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
		}
	}
	s.record(domain.EventLoginFailed, username, userID)
}

func (s *AuthService) record(t domain.AuthEventType, username, userID string) {
	if s.events == nil {
		return
	}
	s.events.Record(domain.AuthEvent{
		Type:      t,
		Username:  username,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
}
