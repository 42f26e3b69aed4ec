package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type NarratorRepo interface {
	Create(ctx context.Context, tx *gorm.DB, narrators []*types.Narrator) ([]*types.Narrator, error)
	// List preloads each narrator's parent (with the parent's region) and its
	// own region so projection never falls back to per-row lookups.
	List(ctx context.Context, tx *gorm.DB) ([]*types.Narrator, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Narrator, error)
}

type narratorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNarratorRepo(db *gorm.DB, baseLog *logger.Logger) NarratorRepo {
	return &narratorRepo{db: db, log: baseLog.With("repo", "NarratorRepo")}
}

func (r *narratorRepo) Create(ctx context.Context, tx *gorm.DB, narrators []*types.Narrator) ([]*types.Narrator, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(narrators) == 0 {
		return []*types.Narrator{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&narrators).Error; err != nil {
		return nil, err
	}
	return narrators, nil
}

func (r *narratorRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Narrator, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Narrator
	if err := transaction.WithContext(ctx).
		Preload("Parent").
		Preload("Parent.Region").
		Preload("Region").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *narratorRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Narrator, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Narrator
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
