package services

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/apierr"
	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

type WordService interface {
	// List returns words in position order, scoped to one line when lineID is
	// non-nil.
	List(ctx context.Context, tx *gorm.DB, lineID *uint) ([]*types.Word, error)
	Get(ctx context.Context, tx *gorm.DB, id uint) (*WordWithVariations, error)
}

type wordService struct {
	db       *gorm.DB
	log      *logger.Logger
	wordRepo repos.WordRepo
}

func NewWordService(db *gorm.DB, baseLog *logger.Logger, wordRepo repos.WordRepo) WordService {
	return &wordService{
		db:       db,
		log:      baseLog.With("service", "WordService"),
		wordRepo: wordRepo,
	}
}

func (s *wordService) List(ctx context.Context, tx *gorm.DB, lineID *uint) ([]*types.Word, error) {
	var (
		words []*types.Word
		err   error
	)
	if lineID != nil {
		words, err = s.wordRepo.ListByLineID(ctx, tx, *lineID)
	} else {
		words, err = s.wordRepo.ListAll(ctx, tx)
	}
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

func (s *wordService) Get(ctx context.Context, tx *gorm.DB, id uint) (*WordWithVariations, error) {
	word, err := s.wordRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("load word: %w", err)
	}
	if word == nil {
		return nil, apierr.New(http.StatusNotFound, "word_not_found", fmt.Errorf("Word not found"))
	}
	variations := word.Variations
	if variations == nil {
		variations = []types.Variation{}
	}
	return &WordWithVariations{
		ID:         word.ID,
		LineID:     word.LineID,
		Position:   word.Position,
		Content:    word.Content,
		Ayah:       word.Ayah,
		CreatedAt:  word.CreatedAt,
		UpdatedAt:  word.UpdatedAt,
		Variations: variations,
	}, nil
}
