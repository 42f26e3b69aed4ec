package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type MushafRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mushafs []*types.Mushaf) ([]*types.Mushaf, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Mushaf, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Mushaf, error)
}

type mushafRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMushafRepo(db *gorm.DB, baseLog *logger.Logger) MushafRepo {
	return &mushafRepo{db: db, log: baseLog.With("repo", "MushafRepo")}
}

func (r *mushafRepo) Create(ctx context.Context, tx *gorm.DB, mushafs []*types.Mushaf) ([]*types.Mushaf, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(mushafs) == 0 {
		return []*types.Mushaf{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&mushafs).Error; err != nil {
		return nil, err
	}
	return mushafs, nil
}

func (r *mushafRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Mushaf, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Mushaf
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mushafRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Mushaf, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Mushaf
	err := transaction.WithContext(ctx).
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
