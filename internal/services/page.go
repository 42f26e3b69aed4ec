package services

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/apierr"
	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
)

type PageService interface {
	// Get resolves a page by its position within a mushaf (not by page id)
	// and projects the full subtree with lines and words in position order.
	Get(ctx context.Context, tx *gorm.DB, mushafID uint, position int) (*PageView, error)
}

type pageService struct {
	db         *gorm.DB
	log        *logger.Logger
	mushafRepo repos.MushafRepo
	pageRepo   repos.PageRepo
}

func NewPageService(db *gorm.DB, baseLog *logger.Logger, mushafRepo repos.MushafRepo, pageRepo repos.PageRepo) PageService {
	return &pageService{
		db:         db,
		log:        baseLog.With("service", "PageService"),
		mushafRepo: mushafRepo,
		pageRepo:   pageRepo,
	}
}

func (s *pageService) Get(ctx context.Context, tx *gorm.DB, mushafID uint, position int) (*PageView, error) {
	mushaf, err := s.mushafRepo.GetByID(ctx, tx, mushafID)
	if err != nil {
		return nil, fmt.Errorf("load mushaf: %w", err)
	}
	if mushaf == nil {
		return nil, apierr.New(http.StatusNotFound, "mushaf_not_found", fmt.Errorf("Mushaf not found"))
	}

	page, err := s.pageRepo.GetByMushafAndPosition(ctx, tx, mushafID, position)
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	if page == nil {
		return nil, apierr.New(http.StatusNotFound, "page_not_found", fmt.Errorf("Page not found"))
	}
	return newPageView(page), nil
}
