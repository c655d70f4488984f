package user

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/authentication"
	"github.com/lumenkb/lumen-server/internal/snowflake"
)

const (
	msgUsernameTaken      = "The username is already taken. Please choose a different one."
	msgUserDoesNotExist   = "The user does not exist. Please check your username or register for a new account."
	msgIncorrectPassword  = "Incorrect password. Please try again."
	msgAnonymousNoCaller  = "Unable to identify the current anonymous user. Please try again or start a new session."
	msgCredentialRequired = "Username and password are required."
)

// UserService covers registration, login, the anonymous identity lifecycle
// and logout. All side effects live in the credential store; nothing is
// cached in-process.
type UserService interface {
	// Register creates an account. A non-nil userID promotes an existing
	// anonymous identity to a durable account with that exact id.
	Register(ctx context.Context, username, password string, userID *int64) (*authentication.TokenPair, error)
	Login(ctx context.Context, username, password string) (*authentication.TokenPair, error)
	// LoginAnonymous issues tokens for a fresh id without creating a row.
	LoginAnonymous(ctx context.Context) (*authentication.TokenPair, error)
	// RegisterAnonymous promotes the calling anonymous identity.
	RegisterAnonymous(ctx context.Context, callerID int64, username, password string) (*authentication.TokenPair, error)
	// Refresh rotates a refresh token for a new pair.
	Refresh(ctx context.Context, rawToken string) (*authentication.TokenPair, error)
	// Logout disables every enabled refresh token owned by callerID.
	Logout(ctx context.Context, callerID int64) error
}

type userService struct {
	repo   UserRepository
	tokens authentication.TokenService
	ids    *snowflake.Generator
	logger *zap.Logger
}

func NewUserService(repo UserRepository, tokens authentication.TokenService, ids *snowflake.Generator, logger *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		ids:    ids,
		logger: logger,
	}
}

func (s *userService) Register(ctx context.Context, username, password string, userID *int64) (*authentication.TokenPair, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperr.NewInvalid(msgCredentialRequired)
	}

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.Error("username lookup failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, apperr.NewConflict(msgUsernameTaken)
	}

	hashed, err := hashPassword(username, password)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return nil, err
	}

	id := s.ids.NextID()
	if userID != nil {
		id = *userID
	}
	account := NewUser(id, username, hashed)

	pair, record, err := s.tokens.Mint(id, false)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateWithRecord(ctx, account, record); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, apperr.NewConflict(msgUsernameTaken)
		}
		s.logger.Error("user registration failed", zap.Int64("userID", id), zap.Error(err))
		return nil, err
	}
	return pair, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*authentication.TokenPair, error) {
	username = strings.TrimSpace(username)

	account, err := s.repo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NewNotFound(msgUserDoesNotExist)
		}
		s.logger.Error("user lookup failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	if !verifyPassword(account.Username, account.Password, password) {
		return nil, apperr.NewInvalid(msgIncorrectPassword)
	}
	return s.tokens.Issue(ctx, account.ID, false)
}

func (s *userService) LoginAnonymous(ctx context.Context) (*authentication.TokenPair, error) {
	return s.tokens.Issue(ctx, s.ids.NextID(), true)
}

func (s *userService) RegisterAnonymous(ctx context.Context, callerID int64, username, password string) (*authentication.TokenPair, error) {
	if callerID == 0 {
		return nil, apperr.NewUnauthorized(msgAnonymousNoCaller)
	}
	return s.Register(ctx, username, password, &callerID)
}

func (s *userService) Refresh(ctx context.Context, rawToken string) (*authentication.TokenPair, error) {
	return s.tokens.Refresh(ctx, rawToken)
}

func (s *userService) Logout(ctx context.Context, callerID int64) error {
	return s.tokens.RevokeAll(ctx, callerID)
}
