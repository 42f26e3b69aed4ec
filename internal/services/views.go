package services

import (
	"time"

	"github.com/mushafhub/mushaf-backend/internal/types"
)

// Projection shapes for the read API. Nested rows omit the foreign keys the
// nesting already implies.

type WordNode struct {
	ID       uint   `json:"id"`
	Position int    `json:"position"`
	Content  string `json:"content"`
	Ayah     string `json:"ayah"`
}

type LineView struct {
	ID       uint       `json:"id"`
	Position int        `json:"position"`
	Words    []WordNode `json:"words"`
}

type PageView struct {
	ID       uint       `json:"id"`
	Position int        `json:"position"`
	Lines    []LineView `json:"lines"`
}

type RegionRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type ParentNarratorView struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	HighlightColor string     `json:"highlight_color"`
	Region         *RegionRef `json:"region,omitempty"`
}

type NarratorView struct {
	ID             uint                `json:"id"`
	Title          string              `json:"title"`
	HighlightColor string              `json:"highlight_color"`
	ParentID       *uint               `json:"narrator_id"`
	RegionID       *uint               `json:"region_id"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Parent         *ParentNarratorView `json:"narrator"`
	Region         *RegionRef          `json:"region"`
}

type NarratorRef struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	HighlightColor string `json:"highlight_color"`
}

type VariationWithNarrator struct {
	ID         uint            `json:"id"`
	Content    string          `json:"content"`
	WordID     uint            `json:"word_id"`
	NarratorID uint            `json:"narrator_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Narrator   *types.Narrator `json:"narrator"`
}

type PageRef struct {
	ID       uint `json:"id"`
	Position int  `json:"position"`
}

type LineRef struct {
	ID       uint     `json:"id"`
	Position int      `json:"position"`
	Page     *PageRef `json:"page,omitempty"`
}

type WordRef struct {
	ID       uint     `json:"id"`
	Content  string   `json:"content"`
	Position int      `json:"position"`
	Ayah     string   `json:"ayah"`
	Line     *LineRef `json:"line,omitempty"`
}

// GlobalVariationView is the sidebar projection: the variation annotated with
// its narrator and the full Word->Line->Page chain locating it in the text.
type GlobalVariationView struct {
	ID         uint         `json:"id"`
	Content    string       `json:"content"`
	WordID     uint         `json:"word_id"`
	NarratorID uint         `json:"narrator_id"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Narrator   *NarratorRef `json:"narrator"`
	Word       *WordRef     `json:"word"`
}

type VariationDetail struct {
	ID         uint            `json:"id"`
	Content    string          `json:"content"`
	WordID     uint            `json:"word_id"`
	NarratorID uint            `json:"narrator_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Narrator   *types.Narrator `json:"narrator"`
	Word       *types.Word     `json:"word"`
}

type WordWithVariations struct {
	ID         uint              `json:"id"`
	LineID     uint              `json:"line_id"`
	Position   int               `json:"position"`
	Content    string            `json:"content"`
	Ayah       string            `json:"ayah"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Variations []types.Variation `json:"variations"`
}

func newPageView(page *types.Page) *PageView {
	view := &PageView{
		ID:       page.ID,
		Position: page.Position,
		Lines:    make([]LineView, 0, len(page.Lines)),
	}
	for _, line := range page.Lines {
		lineView := LineView{
			ID:       line.ID,
			Position: line.Position,
			Words:    make([]WordNode, 0, len(line.Words)),
		}
		for _, word := range line.Words {
			lineView.Words = append(lineView.Words, WordNode{
				ID:       word.ID,
				Position: word.Position,
				Content:  word.Content,
				Ayah:     word.Ayah,
			})
		}
		view.Lines = append(view.Lines, lineView)
	}
	return view
}

func newRegionRef(region *types.Region) *RegionRef {
	if region == nil {
		return nil
	}
	return &RegionRef{ID: region.ID, Title: region.Title}
}

func newNarratorView(narrator *types.Narrator) *NarratorView {
	view := &NarratorView{
		ID:             narrator.ID,
		Title:          narrator.Title,
		HighlightColor: narrator.HighlightColor,
		ParentID:       narrator.ParentID,
		RegionID:       narrator.RegionID,
		CreatedAt:      narrator.CreatedAt,
		UpdatedAt:      narrator.UpdatedAt,
		Region:         newRegionRef(narrator.Region),
	}
	if narrator.Parent != nil {
		view.Parent = &ParentNarratorView{
			ID:             narrator.Parent.ID,
			Title:          narrator.Parent.Title,
			HighlightColor: narrator.Parent.HighlightColor,
			Region:         newRegionRef(narrator.Parent.Region),
		}
	}
	return view
}

func newVariationWithNarrator(variation *types.Variation) *VariationWithNarrator {
	return &VariationWithNarrator{
		ID:         variation.ID,
		Content:    variation.Content,
		WordID:     variation.WordID,
		NarratorID: variation.NarratorID,
		CreatedAt:  variation.CreatedAt,
		UpdatedAt:  variation.UpdatedAt,
		Narrator:   variation.Narrator,
	}
}

func newGlobalVariationView(variation *types.Variation) *GlobalVariationView {
	view := &GlobalVariationView{
		ID:         variation.ID,
		Content:    variation.Content,
		WordID:     variation.WordID,
		NarratorID: variation.NarratorID,
		CreatedAt:  variation.CreatedAt,
		UpdatedAt:  variation.UpdatedAt,
	}
	if variation.Narrator != nil {
		view.Narrator = &NarratorRef{
			ID:             variation.Narrator.ID,
			Title:          variation.Narrator.Title,
			HighlightColor: variation.Narrator.HighlightColor,
		}
	}
	if variation.Word != nil {
		view.Word = &WordRef{
			ID:       variation.Word.ID,
			Content:  variation.Word.Content,
			Position: variation.Word.Position,
			Ayah:     variation.Word.Ayah,
		}
		if variation.Word.Line != nil {
			view.Word.Line = &LineRef{
				ID:       variation.Word.Line.ID,
				Position: variation.Word.Line.Position,
			}
			if variation.Word.Line.Page != nil {
				view.Word.Line.Page = &PageRef{
					ID:       variation.Word.Line.Page.ID,
					Position: variation.Word.Line.Page.Position,
				}
			}
		}
	}
	return view
}
