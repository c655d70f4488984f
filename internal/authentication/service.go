package authentication

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/entity"
	"github.com/lumenkb/lumen-server/internal/snowflake"
	"github.com/lumenkb/lumen-server/internal/utils"
)

// MsgRefreshInvalid is returned for any refresh attempt that does not match
// exactly one active record, including the loser of a double-use race.
const MsgRefreshInvalid = "Refresh token expired or invalid. Please log in again."

// TokenPair is the issued credential set returned to clients.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAtUtc time.Time `json:"expiresAtUtc"`
}

// TokenService issues signed access tokens and rotates single-use refresh
// tokens.
type TokenService interface {
	// Mint builds a token pair and its unsaved refresh record. It performs
	// no I/O, so callers can persist the record inside their own transaction.
	Mint(userID int64, anonymous bool) (*TokenPair, *RefreshTokenRecord, error)
	// Issue mints and persists a pair for userID.
	Issue(ctx context.Context, userID int64, anonymous bool) (*TokenPair, error)
	// Refresh exchanges a raw refresh token for a new pair, consuming it.
	Refresh(ctx context.Context, rawToken string) (*TokenPair, error)
	// RevokeAll disables every enabled refresh token owned by userID.
	RevokeAll(ctx context.Context, userID int64) error
}

type tokenService struct {
	records RecordRepository
	ids     *snowflake.Generator
	logger  *zap.Logger
	cfg     *utils.TokenConfig
}

func NewTokenService(records RecordRepository, ids *snowflake.Generator, logger *zap.Logger, cfg *utils.TokenConfig) TokenService {
	return &tokenService{
		records: records,
		ids:     ids,
		logger:  logger,
		cfg:     cfg,
	}
}

func (s *tokenService) Mint(userID int64, anonymous bool) (*TokenPair, *RefreshTokenRecord, error) {
	expireMinutes := s.cfg.ExpireMinutes
	if anonymous {
		expireMinutes = s.cfg.AnonymousExpireMonths * 30 * 24 * 60
	}
	expiresAt := time.Now().UTC().Add(time.Duration(expireMinutes) * time.Minute)

	access, err := utils.IssueAccessToken(userID, s.cfg.Secret, s.cfg.Issuer, s.cfg.Audience, expiresAt)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Int64("userID", userID), zap.Error(err))
		return nil, nil, err
	}

	raw := newOpaqueToken()
	record := &RefreshTokenRecord{
		Base:      entity.Base{ID: s.ids.NextID()},
		Token:     raw,
		UserID:    userID,
		ExpiresAt: expiresAt.AddDate(0, 0, s.cfg.RefreshExpireDays),
		Enable:    true,
	}

	pair := &TokenPair{
		AccessToken:  access,
		RefreshToken: raw,
		ExpiresAtUtc: expiresAt,
	}
	return pair, record, nil
}

func (s *tokenService) Issue(ctx context.Context, userID int64, anonymous bool) (*TokenPair, error) {
	pair, record, err := s.Mint(userID, anonymous)
	if err != nil {
		return nil, err
	}
	if err := s.records.Create(ctx, record); err != nil {
		s.logger.Error("failed to persist refresh token", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return pair, nil
}

func (s *tokenService) Refresh(ctx context.Context, rawToken string) (*TokenPair, error) {
	rawToken = strings.TrimSpace(rawToken)

	active, err := s.records.FindActive(ctx, rawToken, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, apperr.NewUnauthorized(MsgRefreshInvalid)
		}
		s.logger.Error("refresh token lookup failed", zap.Error(err))
		return nil, err
	}

	pair, replacement, err := s.Mint(active.UserID, active.Anonymous)
	if err != nil {
		return nil, err
	}

	if err := s.records.Rotate(ctx, active.RecordID, replacement); err != nil {
		if errors.Is(err, ErrRecordConsumed) {
			// lost the race against a concurrent refresh of the same token
			return nil, apperr.NewUnauthorized(MsgRefreshInvalid)
		}
		s.logger.Error("refresh token rotation failed", zap.Int64("recordID", active.RecordID), zap.Error(err))
		return nil, err
	}
	return pair, nil
}

func (s *tokenService) RevokeAll(ctx context.Context, userID int64) error {
	if err := s.records.DisableAllByUser(ctx, userID); err != nil {
		s.logger.Error("failed to disable refresh tokens", zap.Int64("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

// newOpaqueToken returns 128 random bits as 32 hex characters.
func newOpaqueToken() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
