package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type VariationRepo interface {
	// ListByWordIDs returns variations for the given words with their
	// narrators preloaded.
	ListByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uint) ([]*types.Variation, error)
	// ListGlobal walks the whole corpus in reading order (page, line, word
	// position ascending), optionally scoped to one mushaf and/or a set of
	// narrators. Narrator and the Word->Line->Page chain are preloaded in
	// batches, never per row.
	ListGlobal(ctx context.Context, tx *gorm.DB, mushafID *uint, narratorIDs []uint) ([]*types.Variation, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Variation, error)
	GetByKeys(ctx context.Context, tx *gorm.DB, wordID, narratorID uint) (*types.Variation, error)
	// Upsert inserts or, on a (word_id, narrator_id) conflict, overwrites the
	// existing row's content. The returned row is re-read by natural key so
	// the caller always sees the canonical id.
	Upsert(ctx context.Context, tx *gorm.DB, variation *types.Variation) (*types.Variation, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error
}

type variationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVariationRepo(db *gorm.DB, baseLog *logger.Logger) VariationRepo {
	return &variationRepo{db: db, log: baseLog.With("repo", "VariationRepo")}
}

func (r *variationRepo) ListByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uint) ([]*types.Variation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Variation
	if len(wordIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Preload("Narrator").
		Where("word_id IN ?", wordIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *variationRepo) ListGlobal(ctx context.Context, tx *gorm.DB, mushafID *uint, narratorIDs []uint) ([]*types.Variation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).
		Joins("JOIN words ON words.id = variations.word_id").
		Joins("JOIN lines ON lines.id = words.line_id").
		Joins("JOIN pages ON pages.id = lines.page_id").
		Preload("Narrator").
		Preload("Word").
		Preload("Word.Line").
		Preload("Word.Line.Page")
	if mushafID != nil {
		query = query.Where("pages.mushaf_id = ?", *mushafID)
	}
	if len(narratorIDs) > 0 {
		query = query.Where("variations.narrator_id IN ?", narratorIDs)
	}
	var results []*types.Variation
	if err := query.
		Order("pages.position ASC, lines.position ASC, words.position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *variationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Variation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Variation
	err := transaction.WithContext(ctx).
		Preload("Narrator").
		Preload("Word").
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

func (r *variationRepo) GetByKeys(ctx context.Context, tx *gorm.DB, wordID, narratorID uint) (*types.Variation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Variation
	err := transaction.WithContext(ctx).
		Where("word_id = ? AND narrator_id = ?", wordID, narratorID).
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

func (r *variationRepo) Upsert(ctx context.Context, tx *gorm.DB, variation *types.Variation) (*types.Variation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "word_id"}, {Name: "narrator_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"content", "updated_at",
			}),
		}).
		Create(variation).Error; err != nil {
		return nil, err
	}
	return r.GetByKeys(ctx, transaction, variation.WordID, variation.NarratorID)
}

func (r *variationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Variation{}).Error
}
