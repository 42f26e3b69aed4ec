package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
	"github.com/mushafhub/mushaf-backend/internal/scraper"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

// wordEntry is the shape of one wordData element in a capture.
type wordEntry struct {
	Line     int    `json:"line"`
	Position int    `json:"position"`
	Text     string `json:"text"`
	Ayah     string `json:"ayah"`
}

type Importer struct {
	db            *gorm.DB
	log           *logger.Logger
	mushafRepo    repos.MushafRepo
	pageRepo      repos.PageRepo
	importRunRepo repos.ImportRunRepo
}

func New(db *gorm.DB, baseLog *logger.Logger, mushafRepo repos.MushafRepo, pageRepo repos.PageRepo, importRunRepo repos.ImportRunRepo) *Importer {
	return &Importer{
		db:            db,
		log:           baseLog.With("component", "Importer"),
		mushafRepo:    mushafRepo,
		pageRepo:      pageRepo,
		importRunRepo: importRunRepo,
	}
}

// ImportPage turns one scraper capture into a Page with its Lines and Words,
// replacing any page already at that position for the mushaf, and records an
// ImportRun for provenance. The whole import is one transaction.
func (i *Importer) ImportPage(ctx context.Context, mushafID uint, layoutID, pageNumber int, capture *scraper.Capture) (*types.Page, error) {
	mushaf, err := i.mushafRepo.GetByID(ctx, nil, mushafID)
	if err != nil {
		return nil, fmt.Errorf("load mushaf: %w", err)
	}
	if mushaf == nil {
		return nil, fmt.Errorf("mushaf %d not found", mushafID)
	}

	words, err := parseWordData(capture)
	if err != nil {
		return nil, err
	}
	page := buildPage(mushafID, pageNumber, words)

	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace, never merge: positions come from the capture.
		if err := tx.Where("mushaf_id = ? AND position = ?", mushafID, pageNumber).
			Delete(&types.Page{}).Error; err != nil {
			return fmt.Errorf("delete existing page: %w", err)
		}
		if _, err := i.pageRepo.Create(ctx, tx, []*types.Page{page}); err != nil {
			return fmt.Errorf("create page: %w", err)
		}
		if _, err := i.importRunRepo.Create(ctx, tx, &types.ImportRun{
			MushafID:   mushafID,
			LayoutID:   layoutID,
			PageNumber: pageNumber,
			Status:     "imported",
			Payload:    datatypes.JSON(capture.WordData),
		}); err != nil {
			return fmt.Errorf("record import run: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.log.Info("Imported page",
		"mushaf_id", mushafID,
		"page", pageNumber,
		"lines", len(page.Lines),
		"words", len(words),
	)
	return page, nil
}

func parseWordData(capture *scraper.Capture) ([]wordEntry, error) {
	if capture == nil || len(capture.WordData) == 0 || string(capture.WordData) == "null" {
		return nil, fmt.Errorf("capture has no wordData")
	}
	var words []wordEntry
	if err := json.Unmarshal(capture.WordData, &words); err != nil {
		return nil, fmt.Errorf("parse wordData: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("capture wordData is empty")
	}
	for idx, word := range words {
		if word.Line < 1 || word.Position < 1 {
			return nil, fmt.Errorf("wordData[%d]: line and position must be 1-based", idx)
		}
	}
	return words, nil
}

func buildPage(mushafID uint, pageNumber int, words []wordEntry) *types.Page {
	byLine := map[int][]wordEntry{}
	for _, word := range words {
		byLine[word.Line] = append(byLine[word.Line], word)
	}
	linePositions := make([]int, 0, len(byLine))
	for position := range byLine {
		linePositions = append(linePositions, position)
	}
	sort.Ints(linePositions)

	page := &types.Page{
		MushafID: mushafID,
		Position: pageNumber,
		Lines:    make([]types.Line, 0, len(linePositions)),
	}
	for _, linePosition := range linePositions {
		lineWords := byLine[linePosition]
		sort.Slice(lineWords, func(a, b int) bool {
			return lineWords[a].Position < lineWords[b].Position
		})
		line := types.Line{
			Position: linePosition,
			Words:    make([]types.Word, 0, len(lineWords)),
		}
		for _, word := range lineWords {
			line.Words = append(line.Words, types.Word{
				Position: word.Position,
				Content:  word.Text,
				Ayah:     word.Ayah,
			})
		}
		page.Lines = append(page.Lines, line)
	}
	return page
}
