package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mushafhub/mushaf-backend/internal/apierr"
	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
	"github.com/mushafhub/mushaf-backend/internal/types"
)

func newVariationServiceForTest(t *testing.T) (VariationService, *gorm.DB) {
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
		&types.Mushaf{}, &types.Page{}, &types.Line{}, &types.Word{},
		&types.Region{}, &types.Narrator{}, &types.Variation{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	svc := NewVariationService(
		db,
		log,
		repos.NewVariationRepo(db, log),
		repos.NewWordRepo(db, log),
		repos.NewNarratorRepo(db, log),
	)
	return svc, db
}

func seedWordAndNarrator(t *testing.T, db *gorm.DB) (*types.Word, *types.Narrator) {
	t.Helper()
	mushaf := &types.Mushaf{Title: "Test"}
	if err := db.Create(mushaf).Error; err != nil {
		t.Fatalf("seed mushaf: %v", err)
	}
	page := &types.Page{MushafID: mushaf.ID, Position: 1}
	if err := db.Create(page).Error; err != nil {
		t.Fatalf("seed page: %v", err)
	}
	line := &types.Line{PageID: page.ID, Position: 1}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("seed line: %v", err)
	}
	word := &types.Word{LineID: line.ID, Position: 1, Content: "بِسْمِ", Ayah: "1:1"}
	if err := db.Create(word).Error; err != nil {
		t.Fatalf("seed word: %v", err)
	}
	narrator := &types.Narrator{Title: "Hafs", HighlightColor: "#f9ca24"}
	if err := db.Create(narrator).Error; err != nil {
		t.Fatalf("seed narrator: %v", err)
	}
	return word, narrator
}

func TestVariationUpsert_BlankContentRejected(t *testing.T) {
	svc, db := newVariationServiceForTest(t)
	word, narrator := seedWordAndNarrator(t, db)

	_, err := svc.Upsert(context.Background(), nil, word.ID, narrator.ID, "   ")
	var validation *apierr.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if msgs := validation.Fields["content"]; len(msgs) != 1 || msgs[0] != "can't be blank" {
		t.Fatalf("unexpected content messages: %v", validation.Fields)
	}

	var count int64
	if err := db.Model(&types.Variation{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("store changed on failed validation: %d rows", count)
	}
}

func TestVariationUpsert_UnknownWordOrNarratorRejected(t *testing.T) {
	svc, db := newVariationServiceForTest(t)
	word, narrator := seedWordAndNarrator(t, db)

	_, err := svc.Upsert(context.Background(), nil, 9999, narrator.ID, "بسم")
	var validation *apierr.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := validation.Fields["word"]; !ok {
		t.Fatalf("expected word error, got %v", validation.Fields)
	}

	_, err = svc.Upsert(context.Background(), nil, word.ID, 9999, "بسم")
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := validation.Fields["narrator"]; !ok {
		t.Fatalf("expected narrator error, got %v", validation.Fields)
	}

	var count int64
	if err := db.Model(&types.Variation{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("store changed on failed validation: %d rows", count)
	}
}

func TestVariationUpsert_OverwriteKeepsSingleRow(t *testing.T) {
	svc, db := newVariationServiceForTest(t)
	word, narrator := seedWordAndNarrator(t, db)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, nil, word.ID, narrator.ID, "c1")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := svc.Upsert(ctx, nil, word.ID, narrator.ID, "c2")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID || second.Content != "c2" {
		t.Fatalf("expected overwrite of row %d, got %+v", first.ID, second)
	}

	var count int64
	if err := db.Model(&types.Variation{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestVariationDelete_MissingIDIsNotFound(t *testing.T) {
	svc, _ := newVariationServiceForTest(t)

	err := svc.Delete(context.Background(), nil, 424242)
	var apiError *apierr.Error
	if !errors.As(err, &apiError) {
		t.Fatalf("expected apierr.Error, got %v", err)
	}
	if apiError.Status != 404 {
		t.Fatalf("expected 404, got %d", apiError.Status)
	}
}

func TestVariationDeleteByKeys_MissingPairIsNotFound(t *testing.T) {
	svc, db := newVariationServiceForTest(t)
	word, narrator := seedWordAndNarrator(t, db)

	err := svc.DeleteByKeys(context.Background(), nil, word.ID, narrator.ID)
	var apiError *apierr.Error
	if !errors.As(err, &apiError) {
		t.Fatalf("expected apierr.Error, got %v", err)
	}
	if apiError.Status != 404 {
		t.Fatalf("expected 404, got %d", apiError.Status)
	}
	if apiError.Error() != "Variation not found" {
		t.Fatalf("unexpected message: %q", apiError.Error())
	}
}
