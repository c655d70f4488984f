package authentication

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound       = errors.New("no active record found for given token")
	ErrRecordConsumed       = errors.New("record already consumed")
	ErrDuplicateToken       = errors.New("refresh token string already exists")
	ErrUnresponsiveDatabase = errors.New("error occurred during writing to refresh token records table")
)

// ActiveRecord is the rotation candidate produced by the joined lookup.
// Anonymous reflects whether the owning user id has no users row.
type ActiveRecord struct {
	RecordID  int64
	UserID    int64
	Anonymous bool
}

type RecordRepository interface {
	Create(ctx context.Context, record *RefreshTokenRecord) error
	// FindActive matches an enabled, non-deleted, unexpired record by exact
	// token string, left-joined with its owning user.
	FindActive(ctx context.Context, token string, now time.Time) (*ActiveRecord, error)
	// Rotate atomically consumes the old record and inserts its replacement.
	// The disable is conditional on enable still being true, so of two racing
	// rotations exactly one can succeed.
	Rotate(ctx context.Context, recordID int64, replacement *RefreshTokenRecord) error
	DisableAllByUser(ctx context.Context, userID int64) error
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *RefreshTokenRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateToken
		}
		return ErrUnresponsiveDatabase
	}
	return nil
}

func (r *recordRepository) FindActive(ctx context.Context, token string, now time.Time) (*ActiveRecord, error) {
	var row struct {
		RecordID  int64
		UserID    int64
		Anonymous bool
	}
	res := r.db.WithContext(ctx).
		Model(&RefreshTokenRecord{}).
		Select("refresh_token_records.id AS record_id, refresh_token_records.user_id AS user_id, users.username IS NULL AS anonymous").
		Joins("LEFT JOIN users ON users.id = refresh_token_records.user_id").
		Where("refresh_token_records.token = ?", token).
		Where("refresh_token_records.enable = ?", true).
		Where("refresh_token_records.expires_at > ?", now).
		Limit(1).
		Scan(&row)

	if res.Error != nil {
		return nil, ErrUnresponsiveDatabase
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return &ActiveRecord{RecordID: row.RecordID, UserID: row.UserID, Anonymous: row.Anonymous}, nil
}

func (r *recordRepository) Rotate(ctx context.Context, recordID int64, replacement *RefreshTokenRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&RefreshTokenRecord{}).
			Where("id = ?", recordID).
			Where("enable = ?", true).
			Update("enable", false)
		if res.Error != nil {
			return ErrUnresponsiveDatabase
		}
		if res.RowsAffected == 0 {
			return ErrRecordConsumed
		}

		if err := tx.Create(replacement).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateToken
			}
			return ErrUnresponsiveDatabase
		}
		return nil
	})
}

func (r *recordRepository) DisableAllByUser(ctx context.Context, userID int64) error {
	res := r.db.WithContext(ctx).
		Model(&RefreshTokenRecord{}).
		Where("user_id = ?", userID).
		Where("enable = ?", true).
		Update("enable", false)
	if res.Error != nil {
		return ErrUnresponsiveDatabase
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
