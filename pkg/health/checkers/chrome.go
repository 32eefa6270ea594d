package checkers

import (
	"context"
	"errors"
)

// BrowserProbe is the subset of the PDF rasterizer the checker needs.
type BrowserProbe interface {
	Available() bool
}

// ChromeChecker reports whether a headless browser is present for PDF
// export, so a deploy without the binary is flagged at /ready instead of
// on the first export request.
type ChromeChecker struct {
	probe BrowserProbe
}

func NewChromeChecker(probe BrowserProbe) *ChromeChecker {
	return &ChromeChecker{probe: probe}
}

func (c *ChromeChecker) Name() string { return "chrome" }

func (c *ChromeChecker) Check(ctx context.Context) error {
	if c.probe == nil || !c.probe.Available() {
		return errors.New("headless chrome not found, PDF export disabled")
	}
	return nil
}
