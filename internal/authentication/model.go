package authentication

import (
	"time"

	"github.com/lumenkb/lumen-server/internal/entity"
)

// RefreshTokenRecord is one issued refresh token. A record is Active while
// enable is true and expires_at lies in the future; a successful rotation
// flips enable to false and there is no way back. The owning user id may
// belong to an anonymous identity with no users row.
type RefreshTokenRecord struct {
	entity.Base
	Token     string    `json:"-" gorm:"uniqueIndex;size:64;not null"`
	UserID    int64     `json:"userId,string" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
	Enable    bool      `json:"enable" gorm:"not null;default:true"`
}
