package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mushafhub/mushaf-backend/internal/db"
	"github.com/mushafhub/mushaf-backend/internal/importer"
	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/repos"
	"github.com/mushafhub/mushaf-backend/internal/scraper"
)

// importpage loads a fetchpage capture file into the text hierarchy store:
//
//	importpage -mushaf 1 -layout 19 -page 3 -file captures/page_003.json
func main() {
	mushafID := flag.Uint("mushaf", 0, "target mushaf id")
	layoutID := flag.Int("layout", 0, "source layout id")
	pageNumber := flag.Int("page", 0, "page number")
	file := flag.String("file", "", "capture file produced by fetchpage")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *mushafID == 0 || *pageNumber <= 0 || *file == "" {
		fmt.Fprintln(os.Stderr, "usage: importpage -mushaf <id> -layout <id> -page <n> -file <capture.json>")
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("Read capture file failed", "file", *file, "error", err)
	}
	var capture scraper.Capture
	if err := json.Unmarshal(data, &capture); err != nil {
		log.Fatal("Parse capture file failed", "file", *file, "error", err)
	}

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	mushafRepo := repos.NewMushafRepo(thePG, log)
	pageRepo := repos.NewPageRepo(thePG, log)
	importRunRepo := repos.NewImportRunRepo(thePG, log)

	imp := importer.New(thePG, log, mushafRepo, pageRepo, importRunRepo)
	page, err := imp.ImportPage(context.Background(), *mushafID, *layoutID, *pageNumber, &capture)
	if err != nil {
		log.Fatal("Import failed", "error", err)
	}
	log.Info("Import complete", "page_id", page.ID, "lines", len(page.Lines))
}
