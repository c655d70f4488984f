// Package entity holds the base row types embedded by persisted models.
package entity

import (
	"time"

	"gorm.io/gorm"
)

// Base carries the assigned snowflake primary key and soft-delete support.
// IDs are assigned by the owning service before insert, never by the store.
type Base struct {
	ID        int64          `json:"id,string" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Audit extends Base with creator/modifier tracking.
type Audit struct {
	Base
	CreatedBy  int64 `json:"createdBy,string" gorm:"index"`
	ModifiedBy int64 `json:"modifiedBy,string"`
}

// SetCreationAudit stamps both creation and modification fields.
func (a *Audit) SetCreationAudit(userID int64) {
	a.CreatedBy = userID
	a.ModifiedBy = userID
}

// SetModificationAudit stamps the modification fields only.
func (a *Audit) SetModificationAudit(userID int64) {
	a.ModifiedBy = userID
}
