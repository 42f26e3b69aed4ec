package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type ImportRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.ImportRun) (*types.ImportRun, error)
	ListByMushafID(ctx context.Context, tx *gorm.DB, mushafID uint) ([]*types.ImportRun, error)
}

type importRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewImportRunRepo(db *gorm.DB, baseLog *logger.Logger) ImportRunRepo {
	return &importRunRepo{db: db, log: baseLog.With("repo", "ImportRunRepo")}
}

func (r *importRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.ImportRun) (*types.ImportRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *importRunRepo) ListByMushafID(ctx context.Context, tx *gorm.DB, mushafID uint) ([]*types.ImportRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ImportRun
	if err := transaction.WithContext(ctx).
		Where("mushaf_id = ?", mushafID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
