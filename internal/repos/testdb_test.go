package repos

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
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
		&types.Mushaf{},
		&types.Page{},
		&types.Line{},
		&types.Word{},
		&types.Region{},
		&types.Narrator{},
		&types.Variation{},
		&types.ImportRun{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

// seedHierarchy creates one mushaf with two pages, each holding two lines of
// two words, plus two narrators. Word contents encode their location so tests
// can assert ordering.
func seedHierarchy(t *testing.T, db *gorm.DB) (*types.Mushaf, []*types.Word, []*types.Narrator) {
	t.Helper()
	mushaf := &types.Mushaf{Title: "Test"}
	if err := db.Create(mushaf).Error; err != nil {
		t.Fatalf("seed mushaf: %v", err)
	}

	var words []*types.Word
	for pagePos := 1; pagePos <= 2; pagePos++ {
		page := &types.Page{MushafID: mushaf.ID, Position: pagePos}
		if err := db.Create(page).Error; err != nil {
			t.Fatalf("seed page: %v", err)
		}
		for linePos := 1; linePos <= 2; linePos++ {
			line := &types.Line{PageID: page.ID, Position: linePos}
			if err := db.Create(line).Error; err != nil {
				t.Fatalf("seed line: %v", err)
			}
			for wordPos := 1; wordPos <= 2; wordPos++ {
				word := &types.Word{
					LineID:   line.ID,
					Position: wordPos,
					Content:  wordContent(pagePos, linePos, wordPos),
					Ayah:     "1:1",
				}
				if err := db.Create(word).Error; err != nil {
					t.Fatalf("seed word: %v", err)
				}
				words = append(words, word)
			}
		}
	}

	narrators := []*types.Narrator{
		{Title: "Hafs", HighlightColor: "#f9ca24"},
		{Title: "Warsh", HighlightColor: "#6ab04c"},
	}
	for _, narrator := range narrators {
		if err := db.Create(narrator).Error; err != nil {
			t.Fatalf("seed narrator: %v", err)
		}
	}
	return mushaf, words, narrators
}

func wordContent(pagePos, linePos, wordPos int) string {
	return "w" + string(rune('0'+pagePos)) + string(rune('0'+linePos)) + string(rune('0'+wordPos))
}
