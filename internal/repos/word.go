package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type WordRepo interface {
	ListByLineID(ctx context.Context, tx *gorm.DB, lineID uint) ([]*types.Word, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Word, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Word, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type wordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWordRepo(db *gorm.DB, baseLog *logger.Logger) WordRepo {
	return &wordRepo{db: db, log: baseLog.With("repo", "WordRepo")}
}

func (r *wordRepo) ListByLineID(ctx context.Context, tx *gorm.DB, lineID uint) ([]*types.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Word
	if err := transaction.WithContext(ctx).
		Where("line_id = ?", lineID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *wordRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Word
	if err := transaction.WithContext(ctx).
		Order("position ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID loads the word together with its variations.
func (r *wordRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Word
	err := transaction.WithContext(ctx).
		Preload("Variations").
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *wordRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Word{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
