package user

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/lumenkb/lumen-server/internal/authentication"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user id already exists")
	ErrUnresponsiveDatabase = errors.New("error occurred during writing to users table")
)

type UserRepository interface {
	// ExistsByUsername matches trimmed usernames case-insensitively among
	// non-deleted rows regardless of the enable flag.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// FindActiveByUsername matches enabled, non-deleted rows only.
	FindActiveByUsername(ctx context.Context, username string) (*User, error)
	// CreateWithRecord inserts the user and its first refresh token in one
	// transaction; both commit or neither does.
	CreateWithRecord(ctx context.Context, user *User, record *authentication.RefreshTokenRecord) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).
		Error
	if err != nil {
		return false, ErrUnresponsiveDatabase
	}
	return count > 0, nil
}

func (r *userRepository) FindActiveByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		Where("enable = ?", true).
		First(&user).
		Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, ErrUnresponsiveDatabase
	}
	return &user, nil
}

func (r *userRepository) CreateWithRecord(ctx context.Context, user *User, record *authentication.RefreshTokenRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
				strings.Contains(pgErr.ConstraintName, "pkey") {
				// promoting the same anonymous identity twice
				return ErrUserAlreadyExists
			}
			return ErrUnresponsiveDatabase
		}
		if err := tx.Create(record).Error; err != nil {
			return ErrUnresponsiveDatabase
		}
		return nil
	})
}
