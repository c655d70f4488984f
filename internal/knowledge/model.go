package knowledge

import (
	"github.com/lumenkb/lumen-server/internal/entity"
	"github.com/lumenkb/lumen-server/internal/ragindex"
)

// Knowledge is one knowledge base. Rows are owner-scoped through CreatedBy
// and soft-deleted, never removed.
type Knowledge struct {
	entity.Audit
	Name        string               `json:"name" gorm:"size:100;not null;index"`
	Description string               `json:"description" gorm:"size:1000"`
	Language    string               `json:"language" gorm:"size:5"`
	Icon        string               `json:"icon" gorm:"size:500"`
	IndexConfig ragindex.IndexConfig `json:"indexConfig" gorm:"type:jsonb"`
}

// Language is a selectable knowledge-base language from the options file.
type Language struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Options is the knowledge section of the options file.
type Options struct {
	Languages []Language `yaml:"languages"`
}

// Input is the create/update payload.
type Input struct {
	Name        string               `json:"name" binding:"required,max=100"`
	Description string               `json:"description" binding:"max=1000"`
	Language    string               `json:"language" binding:"max=5"`
	Icon        string               `json:"icon" binding:"max=500"`
	IndexConfig ragindex.IndexConfig `json:"indexConfig"`
}
