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

type MushafService interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Mushaf, error)
	Get(ctx context.Context, tx *gorm.DB, id uint) (*types.Mushaf, error)
}

type mushafService struct {
	db         *gorm.DB
	log        *logger.Logger
	mushafRepo repos.MushafRepo
}

func NewMushafService(db *gorm.DB, baseLog *logger.Logger, mushafRepo repos.MushafRepo) MushafService {
	return &mushafService{
		db:         db,
		log:        baseLog.With("service", "MushafService"),
		mushafRepo: mushafRepo,
	}
}

func (s *mushafService) List(ctx context.Context, tx *gorm.DB) ([]*types.Mushaf, error) {
	mushafs, err := s.mushafRepo.List(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("list mushafs: %w", err)
	}
	return mushafs, nil
}

func (s *mushafService) Get(ctx context.Context, tx *gorm.DB, id uint) (*types.Mushaf, error) {
	mushaf, err := s.mushafRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("load mushaf: %w", err)
	}
	if mushaf == nil {
		return nil, apierr.New(http.StatusNotFound, "mushaf_not_found", fmt.Errorf("Mushaf not found"))
	}
	return mushaf, nil
}
