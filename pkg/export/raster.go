package export

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Device metrics for the screenshot: A4 at 96dpi, captured at 2x for
// print-quality output.
const (
	viewportWidthPx  = 794
	viewportHeightPx = 1123
	deviceScale      = 2
)

// Rasterizer turns a rendered HTML page into a full-height PNG.
type Rasterizer interface {
	// Available reports whether a browser binary can be found; callers use
	// it to fail fast before rendering.
	Available() bool
	Screenshot(ctx context.Context, html string) ([]byte, error)
}

// ChromedpRasterizer drives a headless Chrome via the DevTools protocol.
type ChromedpRasterizer struct {
	// ChromePath overrides binary discovery when set.
	ChromePath string
}

func NewChromedpRasterizer(chromePath string) *ChromedpRasterizer {
	return &ChromedpRasterizer{ChromePath: chromePath}
}

var chromeCandidates = []string{
	"google-chrome", "google-chrome-stable", "chromium", "chromium-browser",
}

func (r *ChromedpRasterizer) Available() bool {
	if r.ChromePath != "" {
		_, err := os.Stat(r.ChromePath)
		return err == nil
	}
	for _, name := range chromeCandidates {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func (r *ChromedpRasterizer) Screenshot(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	// Chrome only loads local pages from file URLs.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var shot []byte
	err = chromedp.Run(runCtx,
		emulation.SetDeviceMetricsOverride(viewportWidthPx, viewportHeightPx, deviceScale, false),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			shot, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return shot, nil
}
