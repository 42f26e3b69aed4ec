package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/apierr"
	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type VariationService interface {
	ListByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uint) ([]*VariationWithNarrator, error)
	ListGlobal(ctx context.Context, tx *gorm.DB, mushafID *uint, narratorIDs []uint) ([]*GlobalVariationView, error)
	Get(ctx context.Context, tx *gorm.DB, id uint) (*VariationDetail, error)
	// Upsert creates the variation for (wordID, narratorID) or overwrites the
	// existing one's content. At most one row ever exists per pair.
	Upsert(ctx context.Context, tx *gorm.DB, wordID, narratorID uint, content string) (*types.Variation, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteByKeys(ctx context.Context, tx *gorm.DB, wordID, narratorID uint) error
}

type variationService struct {
	db            *gorm.DB
	log           *logger.Logger
	variationRepo repos.VariationRepo
	wordRepo      repos.WordRepo
	narratorRepo  repos.NarratorRepo
}

func NewVariationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	variationRepo repos.VariationRepo,
	wordRepo repos.WordRepo,
	narratorRepo repos.NarratorRepo,
) VariationService {
	return &variationService{
		db:            db,
		log:           baseLog.With("service", "VariationService"),
		variationRepo: variationRepo,
		wordRepo:      wordRepo,
		narratorRepo:  narratorRepo,
	}
}

func (s *variationService) ListByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uint) ([]*VariationWithNarrator, error) {
	variations, err := s.variationRepo.ListByWordIDs(ctx, tx, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	views := make([]*VariationWithNarrator, 0, len(variations))
	for _, variation := range variations {
		views = append(views, newVariationWithNarrator(variation))
	}
	return views, nil
}

func (s *variationService) ListGlobal(ctx context.Context, tx *gorm.DB, mushafID *uint, narratorIDs []uint) ([]*GlobalVariationView, error) {
	variations, err := s.variationRepo.ListGlobal(ctx, tx, mushafID, narratorIDs)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	views := make([]*GlobalVariationView, 0, len(variations))
	for _, variation := range variations {
		views = append(views, newGlobalVariationView(variation))
	}
	return views, nil
}

func (s *variationService) Get(ctx context.Context, tx *gorm.DB, id uint) (*VariationDetail, error) {
	variation, err := s.variationRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("load variation: %w", err)
	}
	if variation == nil {
		return nil, apierr.New(http.StatusNotFound, "variation_not_found", fmt.Errorf("Variation not found"))
	}
	return &VariationDetail{
		ID:         variation.ID,
		Content:    variation.Content,
		WordID:     variation.WordID,
		NarratorID: variation.NarratorID,
		CreatedAt:  variation.CreatedAt,
		UpdatedAt:  variation.UpdatedAt,
		Narrator:   variation.Narrator,
		Word:       variation.Word,
	}, nil
}

func (s *variationService) Upsert(ctx context.Context, tx *gorm.DB, wordID, narratorID uint, content string) (*types.Variation, error) {
	validation := &apierr.ValidationError{}
	if strings.TrimSpace(content) == "" {
		validation.Add("content", "can't be blank")
	}
	if wordID == 0 {
		validation.Add("word", "must exist")
	} else {
		exists, err := s.wordRepo.Exists(ctx, tx, wordID)
		if err != nil {
			return nil, fmt.Errorf("check word: %w", err)
		}
		if !exists {
			validation.Add("word", "must exist")
		}
	}
	if narratorID == 0 {
		validation.Add("narrator", "must exist")
	} else {
		narrator, err := s.narratorRepo.GetByID(ctx, tx, narratorID)
		if err != nil {
			return nil, fmt.Errorf("check narrator: %w", err)
		}
		if narrator == nil {
			validation.Add("narrator", "must exist")
		}
	}
	if len(validation.Fields) > 0 {
		return nil, validation
	}

	variation, err := s.variationRepo.Upsert(ctx, tx, &types.Variation{
		WordID:     wordID,
		NarratorID: narratorID,
		Content:    content,
	})
	if err != nil {
		s.log.Error("Upsert variation failed", "word_id", wordID, "narrator_id", narratorID, "error", err)
		return nil, fmt.Errorf("upsert variation: %w", err)
	}
	return variation, nil
}

func (s *variationService) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	variation, err := s.variationRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("load variation: %w", err)
	}
	if variation == nil {
		return apierr.New(http.StatusNotFound, "variation_not_found", fmt.Errorf("Variation not found"))
	}
	if err := s.variationRepo.DeleteByID(ctx, tx, variation.ID); err != nil {
		return fmt.Errorf("delete variation: %w", err)
	}
	return nil
}

func (s *variationService) DeleteByKeys(ctx context.Context, tx *gorm.DB, wordID, narratorID uint) error {
	variation, err := s.variationRepo.GetByKeys(ctx, tx, wordID, narratorID)
	if err != nil {
		return fmt.Errorf("load variation: %w", err)
	}
	if variation == nil {
		return apierr.New(http.StatusNotFound, "variation_not_found", fmt.Errorf("Variation not found"))
	}
	if err := s.variationRepo.DeleteByID(ctx, tx, variation.ID); err != nil {
		return fmt.Errorf("delete variation: %w", err)
	}
	return nil
}
