package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/mushafhub/mushaf-backend/internal/logger"
)

const (
	defaultBaseURL = "https://qul.tarteel.ai/resources/mushaf-layout"
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	navigationAttempts = 5
	navigationTimeout  = 60 * time.Second
	pageDataPolls      = 20
	pageDataPollDelay  = 500 * time.Millisecond
)

// Capture is the scraper's output contract: the rendered page HTML, the
// number of line elements found in the DOM, and the client-side pageData /
// wordData arrays (null when the page never populated them).
type Capture struct {
	HTML      *string         `json:"html"`
	LineCount int             `json:"lineCount"`
	PageData  json.RawMessage `json:"pageData"`
	WordData  json.RawMessage `json:"wordData"`
}

type Fetcher struct {
	log     *logger.Logger
	baseURL string
}

func NewFetcher(log *logger.Logger) *Fetcher {
	return &Fetcher{
		log:     log.With("component", "Fetcher"),
		baseURL: defaultBaseURL,
	}
}

// Fetch drives a headless browser to the layout preview page and extracts the
// client-side-rendered layout data. Navigation is retried with backoff; the
// pageData poll gives client scripts up to ~10s to populate.
func (f *Fetcher) Fetch(ctx context.Context, layoutID, pageNumber int) (*Capture, error) {
	url := fmt.Sprintf("%s/%d?page=%d", f.baseURL, layoutID, pageNumber)
	f.log.Info("Fetching layout page", "url", url)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-web-security", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if err := f.navigate(browserCtx, url); err != nil {
		return nil, err
	}

	// Give client scripts a moment before probing.
	_ = chromedp.Run(browserCtx, chromedp.Sleep(2*time.Second))

	if err := f.waitVisible(browserCtx, "#run-preview", 5*time.Second); err != nil {
		f.log.Warn("#run-preview not found, continuing", "error", err)
	}

	f.pollPageData(browserCtx)

	if err := f.waitVisible(browserCtx, "#run-preview div.line, #run-preview div.ayah", 8*time.Second); err != nil {
		f.log.Warn("Line elements not found, extracting from HTML anyway", "error", err)
	}

	_ = chromedp.Run(browserCtx, chromedp.Sleep(1500*time.Millisecond))

	var jsData struct {
		PageData json.RawMessage `json:"pageData"`
		WordData json.RawMessage `json:"wordData"`
	}
	extractScript := `(() => {
		if (typeof pageData !== 'undefined' && pageData && typeof wordData !== 'undefined' && wordData) {
			return { pageData: pageData, wordData: wordData };
		}
		return null;
	})()`
	if err := chromedp.Run(browserCtx, chromedp.Evaluate(extractScript, &jsData)); err != nil {
		f.log.Warn("Extracting pageData/wordData failed", "error", err)
	}

	var html string
	var lineCount int
	if err := chromedp.Run(browserCtx,
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelectorAll('#run-preview div.line, #run-preview div.ayah').length`, &lineCount),
	); err != nil {
		return nil, fmt.Errorf("extract page content: %w", err)
	}
	f.log.Info("Captured page", "line_count", lineCount)

	capture := &Capture{
		LineCount: lineCount,
		PageData:  normalizeRaw(jsData.PageData),
		WordData:  normalizeRaw(jsData.WordData),
	}
	if html != "" {
		capture.HTML = &html
	}
	return capture, nil
}

func (f *Fetcher) navigate(ctx context.Context, url string) error {
	var lastErr error
	for attempt := 0; attempt < navigationAttempts; attempt++ {
		navCtx, cancel := context.WithTimeout(ctx, navigationTimeout)
		err := chromedp.Run(navCtx,
			chromedp.Navigate(url),
			chromedp.WaitReady("body", chromedp.ByQuery),
		)
		cancel()
		if err == nil {
			f.log.Info("Page loaded", "attempt", attempt+1)
			return nil
		}
		lastErr = err
		f.log.Warn("Navigation attempt failed", "attempt", attempt+1, "error", err)
		if attempt < navigationAttempts-1 {
			backoff := time.Duration(attempt+1) * 2 * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("navigate to %s after %d attempts: %w", url, navigationAttempts, lastErr)
}

func (f *Fetcher) waitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return chromedp.Run(waitCtx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (f *Fetcher) pollPageData(ctx context.Context) {
	for i := 0; i < pageDataPolls; i++ {
		var length int
		err := chromedp.Run(ctx, chromedp.Evaluate(
			`typeof pageData !== 'undefined' && pageData ? pageData.length : 0`, &length))
		if err == nil && length > 0 {
			f.log.Info("pageData loaded", "items", length)
			return
		}
		if err := chromedp.Run(ctx, chromedp.Sleep(pageDataPollDelay)); err != nil {
			return
		}
	}
	f.log.Warn("pageData never populated")
}

func normalizeRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
