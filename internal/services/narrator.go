package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
)

type NarratorService interface {
	List(ctx context.Context, tx *gorm.DB) ([]*NarratorView, error)
}

type narratorService struct {
	db           *gorm.DB
	log          *logger.Logger
	narratorRepo repos.NarratorRepo
}

func NewNarratorService(db *gorm.DB, baseLog *logger.Logger, narratorRepo repos.NarratorRepo) NarratorService {
	return &narratorService{
		db:           db,
		log:          baseLog.With("service", "NarratorService"),
		narratorRepo: narratorRepo,
	}
}

func (s *narratorService) List(ctx context.Context, tx *gorm.DB) ([]*NarratorView, error) {
	narrators, err := s.narratorRepo.List(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("list narrators: %w", err)
	}
	views := make([]*NarratorView, 0, len(narrators))
	for _, narrator := range narrators {
		views = append(views, newNarratorView(narrator))
	}
	return views, nil
}
