package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type PageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, pages []*types.Page) ([]*types.Page, error)
	// GetByMushafAndPosition loads the full Page->Lines->Words subtree in a
	// bounded number of queries. Lines and words come back in ascending
	// position order.
	GetByMushafAndPosition(ctx context.Context, tx *gorm.DB, mushafID uint, position int) (*types.Page, error)
}

type pageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPageRepo(db *gorm.DB, baseLog *logger.Logger) PageRepo {
	return &pageRepo{db: db, log: baseLog.With("repo", "PageRepo")}
}

func (r *pageRepo) Create(ctx context.Context, tx *gorm.DB, pages []*types.Page) ([]*types.Page, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(pages) == 0 {
		return []*types.Page{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepo) GetByMushafAndPosition(ctx context.Context, tx *gorm.DB, mushafID uint, position int) (*types.Page, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Page
	err := transaction.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("lines.position ASC")
		}).
		Preload("Lines.Words", func(db *gorm.DB) *gorm.DB {
			return db.Order("words.position ASC")
		}).
		Where("mushaf_id = ? AND position = ?", mushafID, position).
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
