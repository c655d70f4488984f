package knowledge

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrKnowledgeNotFound    = errors.New("knowledge base not found")
	ErrUnresponsiveDatabase = errors.New("error occurred during writing to knowledge table")
)

type KnowledgeRepository interface {
	Create(ctx context.Context, k *Knowledge) error
	Save(ctx context.Context, k *Knowledge) error
	FindByID(ctx context.Context, id int64) (*Knowledge, error)
	// ListByOwner returns the owner's non-deleted rows, newest change first.
	ListByOwner(ctx context.Context, ownerID int64) ([]Knowledge, error)
	// NameExists checks the owner's non-deleted rows for a name collision,
	// ignoring excludeID so updates do not collide with themselves.
	NameExists(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error)
	// Remove soft-deletes the row, persisting audit changes first.
	Remove(ctx context.Context, k *Knowledge) error
}

type knowledgeRepository struct {
	db *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

func (r *knowledgeRepository) Create(ctx context.Context, k *Knowledge) error {
	if err := r.db.WithContext(ctx).Create(k).Error; err != nil {
		return ErrUnresponsiveDatabase
	}
	return nil
}

func (r *knowledgeRepository) Save(ctx context.Context, k *Knowledge) error {
	if err := r.db.WithContext(ctx).Save(k).Error; err != nil {
		return ErrUnresponsiveDatabase
	}
	return nil
}

func (r *knowledgeRepository) FindByID(ctx context.Context, id int64) (*Knowledge, error) {
	var k Knowledge
	err := r.db.WithContext(ctx).First(&k, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKnowledgeNotFound
	}
	if err != nil {
		return nil, ErrUnresponsiveDatabase
	}
	return &k, nil
}

func (r *knowledgeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]Knowledge, error) {
	var out []Knowledge
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("updated_at DESC").
		Find(&out).
		Error
	if err != nil {
		return nil, ErrUnresponsiveDatabase
	}
	return out, nil
}

func (r *knowledgeRepository) NameExists(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Knowledge{}).
		Where("created_by = ?", ownerID).
		Where("name = ?", name).
		Where("id <> ?", excludeID).
		Count(&count).
		Error
	if err != nil {
		return false, ErrUnresponsiveDatabase
	}
	return count > 0, nil
}

func (r *knowledgeRepository) Remove(ctx context.Context, k *Knowledge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(k).Update("modified_by", k.ModifiedBy).Error; err != nil {
			return ErrUnresponsiveDatabase
		}
		if err := tx.Delete(k).Error; err != nil {
			return ErrUnresponsiveDatabase
		}
		return nil
	})
}
