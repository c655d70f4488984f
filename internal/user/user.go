package user

import (
	"github.com/lumenkb/lumen-server/internal/entity"
)

// User is a registered account. Rows are created on registration only;
// anonymous identities exist solely as token subjects until promoted.
// Usernames are unique case-insensitively among non-deleted rows, enforced
// by the registration query rather than an index so a soft-deleted user
// frees the name.
type User struct {
	entity.Audit
	Username string `json:"username" gorm:"index;size:64;not null"`
	Password string `json:"-" gorm:"not null"`
	Enable   bool   `json:"enable" gorm:"not null;default:true"`
}

func NewUser(id int64, username, passwordHash string) *User {
	u := &User{
		Username: username,
		Password: passwordHash,
		Enable:   true,
	}
	u.ID = id
	u.SetCreationAudit(id)
	return u
}
