package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mushafhub/mushaf-backend/internal/logger"
	"github.com/mushafhub/mushaf-backend/internal/scraper"
)

// fetchpage captures mushaf layout pages from the third-party preview site.
//
// Single page (capture JSON on stdout, logs on stderr):
//
//	fetchpage -layout 19 -page 3
//
// Page range (one capture file per page):
//
//	fetchpage -layout 19 -pages 1-604 -out captures/
func main() {
	layoutID := flag.Int("layout", 0, "mushaf layout id")
	pageNumber := flag.Int("page", 0, "page number to fetch")
	pageRange := flag.String("pages", "", "inclusive page range, e.g. 1-604")
	outDir := flag.String("out", "", "output directory for range mode")
	concurrency := flag.Int("concurrency", 2, "parallel fetches in range mode")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *layoutID <= 0 {
		fail("layout id is required")
	}

	fetcher := scraper.NewFetcher(log)
	ctx := context.Background()

	if *pageRange != "" {
		if *outDir == "" {
			fail("-out is required with -pages")
		}
		if err := fetchRange(ctx, log, fetcher, *layoutID, *pageRange, *outDir, *concurrency); err != nil {
			fail(err.Error())
		}
		return
	}

	if *pageNumber <= 0 {
		fail("page number is required")
	}
	capture, err := fetcher.Fetch(ctx, *layoutID, *pageNumber)
	if err != nil {
		fail(err.Error())
	}
	if err := json.NewEncoder(os.Stdout).Encode(capture); err != nil {
		fail(err.Error())
	}
}

func fetchRange(ctx context.Context, log *logger.Logger, fetcher *scraper.Fetcher, layoutID int, pageRange, outDir string, concurrency int) error {
	first, last, err := parseRange(pageRange)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	if concurrency < 1 {
		concurrency = 1
	}
	group.SetLimit(concurrency)
	for page := first; page <= last; page++ {
		group.Go(func() error {
			capture, err := fetcher.Fetch(groupCtx, layoutID, page)
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			data, err := json.Marshal(capture)
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			path := filepath.Join(outDir, fmt.Sprintf("page_%03d.json", page))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			log.Info("Wrote capture", "page", page, "path", path)
			return nil
		})
	}
	return group.Wait()
}

func parseRange(raw string) (int, int, error) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid page range %q", raw)
	}
	first, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page range %q", raw)
	}
	last, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page range %q", raw)
	}
	if first < 1 || last < first {
		return 0, 0, fmt.Errorf("invalid page range %q", raw)
	}
	return first, last, nil
}

func fail(msg string) {
	payload, _ := json.Marshal(map[string]string{"error": msg})
	fmt.Println(string(payload))
	os.Exit(1)
}
