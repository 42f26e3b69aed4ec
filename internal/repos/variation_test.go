package repos

import (
	"context"
	"testing"

	"github.com/mushafhub/mushaf-backend/internal/types"
)

func TestVariationUpsert_CreatesThenOverwrites(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	_, words, narrators := seedHierarchy(t, db)
	repo := NewVariationRepo(db, log)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, nil, &types.Variation{
		WordID:     words[0].ID,
		NarratorID: narrators[0].ID,
		Content:    "c1",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == 0 || first.Content != "c1" {
		t.Fatalf("unexpected first row: %+v", first)
	}

	second, err := repo.Upsert(ctx, nil, &types.Variation{
		WordID:     words[0].ID,
		NarratorID: narrators[0].ID,
		Content:    "c2",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a new row: first id %d, second id %d", first.ID, second.ID)
	}
	if second.Content != "c2" {
		t.Fatalf("content not overwritten: %q", second.Content)
	}

	var count int64
	if err := db.Model(&types.Variation{}).
		Where("word_id = ? AND narrator_id = ?", words[0].ID, narrators[0].ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row per (word, narrator), got %d", count)
	}
}

func TestVariationGetByKeys_MissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	seedHierarchy(t, db)
	repo := NewVariationRepo(db, log)

	row, err := repo.GetByKeys(context.Background(), nil, 12345, 67890)
	if err != nil {
		t.Fatalf("get by keys: %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil for missing pair, got %+v", row)
	}
}

func TestVariationListByWordIDs_PreloadsNarrator(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	_, words, narrators := seedHierarchy(t, db)
	repo := NewVariationRepo(db, log)
	ctx := context.Background()

	if _, err := repo.Upsert(ctx, nil, &types.Variation{WordID: words[0].ID, NarratorID: narrators[0].ID, Content: "a"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := repo.Upsert(ctx, nil, &types.Variation{WordID: words[1].ID, NarratorID: narrators[1].ID, Content: "b"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := repo.ListByWordIDs(ctx, nil, []uint{words[0].ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 variation, got %d", len(rows))
	}
	if rows[0].Narrator == nil || rows[0].Narrator.Title != "Hafs" {
		t.Fatalf("narrator not preloaded: %+v", rows[0].Narrator)
	}
}

func TestVariationListGlobal_ReadingOrderAndFilters(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	mushaf, words, narrators := seedHierarchy(t, db)
	repo := NewVariationRepo(db, log)
	ctx := context.Background()

	// Insert out of reading order on purpose.
	for _, seed := range []struct {
		word     *types.Word
		narrator *types.Narrator
	}{
		{words[7], narrators[0]}, // page 2, line 2, word 2
		{words[0], narrators[0]}, // page 1, line 1, word 1
		{words[3], narrators[1]}, // page 1, line 2, word 2
	} {
		if _, err := repo.Upsert(ctx, nil, &types.Variation{
			WordID:     seed.word.ID,
			NarratorID: seed.narrator.ID,
			Content:    "x",
		}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	rows, err := repo.ListGlobal(ctx, nil, nil, nil)
	if err != nil {
		t.Fatalf("list global: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 variations, got %d", len(rows))
	}
	wantOrder := []string{"w111", "w122", "w222"}
	for i, row := range rows {
		if row.Word == nil || row.Word.Line == nil || row.Word.Line.Page == nil {
			t.Fatalf("row %d missing word/line/page chain: %+v", i, row)
		}
		if row.Word.Content != wantOrder[i] {
			t.Fatalf("row %d out of reading order: got %q, want %q", i, row.Word.Content, wantOrder[i])
		}
	}

	filtered, err := repo.ListGlobal(ctx, nil, &mushaf.ID, []uint{narrators[1].ID})
	if err != nil {
		t.Fatalf("list global filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].NarratorID != narrators[1].ID {
		t.Fatalf("narrator filter failed: %+v", filtered)
	}

	missingMushaf := uint(9999)
	empty, err := repo.ListGlobal(ctx, nil, &missingMushaf, nil)
	if err != nil {
		t.Fatalf("list global other mushaf: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no variations for unknown mushaf, got %d", len(empty))
	}
}

func TestVariationDeleteByID(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	_, words, narrators := seedHierarchy(t, db)
	repo := NewVariationRepo(db, log)
	ctx := context.Background()

	row, err := repo.Upsert(ctx, nil, &types.Variation{WordID: words[0].ID, NarratorID: narrators[0].ID, Content: "x"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.DeleteByID(ctx, nil, row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, row.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("variation still present after delete: %+v", got)
	}
}
