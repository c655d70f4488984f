package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/snowflake"
	"github.com/lumenkb/lumen-server/internal/utils"
)

type fakeRecordRepo struct {
	created []*RefreshTokenRecord
	rotated []*RefreshTokenRecord

	findOut *ActiveRecord
	findErr error

	createErr  error
	rotateErr  error
	disableErr error

	disabledUser int64
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *RefreshTokenRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, record)
	return nil
}

func (f *fakeRecordRepo) FindActive(ctx context.Context, token string, now time.Time) (*ActiveRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRecordRepo) Rotate(ctx context.Context, recordID int64, replacement *RefreshTokenRecord) error {
	if f.rotateErr != nil {
		return f.rotateErr
	}
	f.rotated = append(f.rotated, replacement)
	return nil
}

func (f *fakeRecordRepo) DisableAllByUser(ctx context.Context, userID int64) error {
	if f.disableErr != nil {
		return f.disableErr
	}
	f.disabledUser = userID
	return nil
}

func testTokenConfig() *utils.TokenConfig {
	return &utils.TokenConfig{
		Secret:                "test-secret",
		Issuer:                "lumen-server",
		Audience:              "lumen-web",
		ExpireMinutes:         120,
		RefreshExpireDays:     7,
		AnonymousExpireMonths: 120,
	}
}

func newTestService(t *testing.T, repo RecordRepository) TokenService {
	t.Helper()
	ids, err := snowflake.New(snowflake.WithWorkerID(1))
	require.NoError(t, err)
	return NewTokenService(repo, ids, zap.NewNop(), testTokenConfig())
}

func TestIssuePersistsRecordAndReturnsPair(t *testing.T) {
	repo := &fakeRecordRepo{}
	s := newTestService(t, repo)

	pair, err := s.Issue(context.Background(), 42, false)
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.Len(t, pair.RefreshToken, 32)
	assert.WithinDuration(t, time.Now().UTC().Add(120*time.Minute), pair.ExpiresAtUtc, 5*time.Second)

	require.Len(t, repo.created, 1)
	rec := repo.created[0]
	assert.EqualValues(t, 42, rec.UserID)
	assert.Equal(t, pair.RefreshToken, rec.Token)
	assert.True(t, rec.Enable)
	assert.NotZero(t, rec.ID)
	assert.WithinDuration(t, pair.ExpiresAtUtc.AddDate(0, 0, 7), rec.ExpiresAt, time.Second)

	claims, err := utils.ParseAccessToken(pair.AccessToken, "test-secret", "lumen-server", "lumen-web")
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestIssueAnonymousUsesExtendedExpiry(t *testing.T) {
	repo := &fakeRecordRepo{}
	s := newTestService(t, repo)

	pair, err := s.Issue(context.Background(), 7, true)
	require.NoError(t, err)

	wantExpiry := time.Now().UTC().Add(time.Duration(120*30*24*60) * time.Minute)
	assert.WithinDuration(t, wantExpiry, pair.ExpiresAtUtc, 5*time.Second)
}

func TestRefreshRotatesAndPreservesSubject(t *testing.T) {
	repo := &fakeRecordRepo{findOut: &ActiveRecord{RecordID: 99, UserID: 42, Anonymous: false}}
	s := newTestService(t, repo)

	before := time.Now().UTC()
	pair, err := s.Refresh(context.Background(), "old-token")
	require.NoError(t, err)

	require.Len(t, repo.rotated, 1)
	replacement := repo.rotated[0]
	assert.EqualValues(t, 42, replacement.UserID)
	assert.NotEqual(t, "old-token", replacement.Token)
	assert.Equal(t, pair.RefreshToken, replacement.Token)

	claims, err := utils.ParseAccessToken(pair.AccessToken, "test-secret", "lumen-server", "lumen-web")
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.True(t, pair.ExpiresAtUtc.After(before))
}

func TestRefreshPreservesAnonymousExpiry(t *testing.T) {
	repo := &fakeRecordRepo{findOut: &ActiveRecord{RecordID: 1, UserID: 8, Anonymous: true}}
	s := newTestService(t, repo)

	pair, err := s.Refresh(context.Background(), "anon-token")
	require.NoError(t, err)

	wantExpiry := time.Now().UTC().Add(time.Duration(120*30*24*60) * time.Minute)
	assert.WithinDuration(t, wantExpiry, pair.ExpiresAtUtc, 5*time.Second)
}

func TestRefreshUnknownTokenIsUnauthorized(t *testing.T) {
	repo := &fakeRecordRepo{findErr: ErrRecordNotFound}
	s := newTestService(t, repo)

	_, err := s.Refresh(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
	assert.Equal(t, MsgRefreshInvalid, err.Error())
}

func TestRefreshLosingRaceIsUnauthorized(t *testing.T) {
	repo := &fakeRecordRepo{
		findOut:   &ActiveRecord{RecordID: 5, UserID: 1},
		rotateErr: ErrRecordConsumed,
	}
	s := newTestService(t, repo)

	_, err := s.Refresh(context.Background(), "stale")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestRefreshInfrastructureErrorPropagates(t *testing.T) {
	repo := &fakeRecordRepo{findErr: ErrUnresponsiveDatabase}
	s := newTestService(t, repo)

	_, err := s.Refresh(context.Background(), "t")
	require.Error(t, err)
	assert.False(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestRevokeAll(t *testing.T) {
	repo := &fakeRecordRepo{}
	s := newTestService(t, repo)

	require.NoError(t, s.RevokeAll(context.Background(), 13))
	assert.EqualValues(t, 13, repo.disabledUser)
}
