package importer

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
	"github.com/mushafhub/mushaf-backend/internal/scraper"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

func newImporterFixture(t *testing.T) (*Importer, *gorm.DB, *types.Mushaf) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&types.Mushaf{}, &types.Page{}, &types.Line{}, &types.Word{}, &types.ImportRun{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	mushaf := &types.Mushaf{Title: "Import target"}
	if err := db.Create(mushaf).Error; err != nil {
		t.Fatalf("seed mushaf: %v", err)
	}

	imp := New(db, log,
		repos.NewMushafRepo(db, log),
		repos.NewPageRepo(db, log),
		repos.NewImportRunRepo(db, log),
	)
	return imp, db, mushaf
}

func captureWithWords(t *testing.T, words []map[string]any) *scraper.Capture {
	t.Helper()
	data, err := json.Marshal(words)
	if err != nil {
		t.Fatalf("marshal wordData: %v", err)
	}
	return &scraper.Capture{WordData: data}
}

func TestParseWordData_RejectsMissingAndMalformed(t *testing.T) {
	cases := []struct {
		name    string
		capture *scraper.Capture
	}{
		{"nil capture", nil},
		{"empty wordData", &scraper.Capture{}},
		{"null wordData", &scraper.Capture{WordData: json.RawMessage("null")}},
		{"empty array", &scraper.Capture{WordData: json.RawMessage("[]")}},
		{"not an array", &scraper.Capture{WordData: json.RawMessage(`{"line":1}`)}},
		{"zero-based line", &scraper.Capture{WordData: json.RawMessage(`[{"line":0,"position":1,"text":"x","ayah":"1:1"}]`)}},
		{"zero-based position", &scraper.Capture{WordData: json.RawMessage(`[{"line":1,"position":0,"text":"x","ayah":"1:1"}]`)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseWordData(tc.capture); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestBuildPage_GroupsAndSorts(t *testing.T) {
	words := []wordEntry{
		{Line: 2, Position: 2, Text: "d", Ayah: "1:2"},
		{Line: 1, Position: 2, Text: "b", Ayah: "1:1"},
		{Line: 2, Position: 1, Text: "c", Ayah: "1:2"},
		{Line: 1, Position: 1, Text: "a", Ayah: "1:1"},
	}
	page := buildPage(7, 3, words)

	if page.MushafID != 7 || page.Position != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if len(page.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(page.Lines))
	}
	want := [][]string{{"a", "b"}, {"c", "d"}}
	for i, line := range page.Lines {
		if line.Position != i+1 {
			t.Fatalf("line %d has position %d", i, line.Position)
		}
		if len(line.Words) != 2 {
			t.Fatalf("line %d: expected 2 words, got %d", i, len(line.Words))
		}
		for j, word := range line.Words {
			if word.Content != want[i][j] {
				t.Fatalf("line %d word %d: got %q, want %q", i, j, word.Content, want[i][j])
			}
			if word.Position != j+1 {
				t.Fatalf("line %d word %d has position %d", i, j, word.Position)
			}
		}
	}
}

func TestImportPage_PersistsHierarchyAndRun(t *testing.T) {
	imp, db, mushaf := newImporterFixture(t)
	capture := captureWithWords(t, []map[string]any{
		{"line": 1, "position": 1, "text": "بِسْمِ", "ayah": "1:1"},
		{"line": 1, "position": 2, "text": "ٱللَّهِ", "ayah": "1:1"},
		{"line": 2, "position": 1, "text": "ٱلْحَمْدُ", "ayah": "1:2"},
	})

	page, err := imp.ImportPage(context.Background(), mushaf.ID, 2, 1, capture)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(page.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(page.Lines))
	}

	var pageCount, wordCount, runCount int64
	if err := db.Model(&types.Page{}).Count(&pageCount).Error; err != nil {
		t.Fatalf("count pages: %v", err)
	}
	if err := db.Model(&types.Word{}).Count(&wordCount).Error; err != nil {
		t.Fatalf("count words: %v", err)
	}
	if err := db.Model(&types.ImportRun{}).Count(&runCount).Error; err != nil {
		t.Fatalf("count import runs: %v", err)
	}
	if pageCount != 1 || wordCount != 3 || runCount != 1 {
		t.Fatalf("unexpected row counts: pages=%d words=%d runs=%d", pageCount, wordCount, runCount)
	}

	var run types.ImportRun
	if err := db.First(&run).Error; err != nil {
		t.Fatalf("load import run: %v", err)
	}
	if run.MushafID != mushaf.ID || run.LayoutID != 2 || run.PageNumber != 1 || run.Status != "imported" {
		t.Fatalf("unexpected import run: %+v", run)
	}
}

func TestImportPage_ReplacesExistingPage(t *testing.T) {
	imp, db, mushaf := newImporterFixture(t)

	first := captureWithWords(t, []map[string]any{
		{"line": 1, "position": 1, "text": "old", "ayah": "1:1"},
		{"line": 1, "position": 2, "text": "words", "ayah": "1:1"},
	})
	if _, err := imp.ImportPage(context.Background(), mushaf.ID, 2, 1, first); err != nil {
		t.Fatalf("first import: %v", err)
	}

	second := captureWithWords(t, []map[string]any{
		{"line": 1, "position": 1, "text": "new", "ayah": "1:1"},
	})
	if _, err := imp.ImportPage(context.Background(), mushaf.ID, 2, 1, second); err != nil {
		t.Fatalf("second import: %v", err)
	}

	var pageCount, wordCount int64
	if err := db.Model(&types.Page{}).Count(&pageCount).Error; err != nil {
		t.Fatalf("count pages: %v", err)
	}
	if err := db.Model(&types.Word{}).Count(&wordCount).Error; err != nil {
		t.Fatalf("count words: %v", err)
	}
	if pageCount != 1 {
		t.Fatalf("expected the page to be replaced, got %d pages", pageCount)
	}
	if wordCount != 1 {
		t.Fatalf("expected stale words removed, got %d", wordCount)
	}

	var word types.Word
	if err := db.First(&word).Error; err != nil {
		t.Fatalf("load word: %v", err)
	}
	if word.Content != "new" {
		t.Fatalf("expected replacement content, got %q", word.Content)
	}
}

func TestImportPage_UnknownMushafFails(t *testing.T) {
	imp, _, _ := newImporterFixture(t)
	capture := captureWithWords(t, []map[string]any{
		{"line": 1, "position": 1, "text": "x", "ayah": "1:1"},
	})
	if _, err := imp.ImportPage(context.Background(), 99999, 2, 1, capture); err == nil {
		t.Fatal("expected error for unknown mushaf")
	}
}
