package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/odisha-tools/rerascan/config"
	"github.com/odisha-tools/rerascan/fields"
	"github.com/odisha-tools/rerascan/locator"
	"github.com/odisha-tools/rerascan/models"
)

// Navigator moves the session between the listing page and a project's two
// detail views. Returning to the listing always re-visits the canonical
// listing URL; history back leaves the Angular app in a stale state.
type Navigator struct {
	page *rod.Page
	cfg  config.PortalConfig
}

// NewNavigator wraps the session page with portal navigation.
func NewNavigator(page *rod.Page, cfg config.PortalConfig) *Navigator {
	return &Navigator{page: page, cfg: cfg}
}

// OpenListing navigates to the listing page and returns how many project
// entry points are currently discoverable.
func (n *Navigator) OpenListing(ctx context.Context) (int, error) {
	p := n.page.Context(ctx)
	slog.Info("opening project listing", "url", n.cfg.ListingURL)
	if err := p.Navigate(n.cfg.ListingURL); err != nil {
		return 0, categorizeError(err, "navigation to listing failed")
	}
	n.waitReady(p)

	els, strat, err := locator.ProjectButtons.All(p)
	if err != nil {
		return 0, err
	}
	slog.Info("discovered project entry points", "count", len(els), "strategy", strat.String())
	return len(els), nil
}

// OpenProject clicks the index-th entry point and waits for the detail view.
// Entry points are re-resolved on every call because the listing DOM is
// re-rendered after each re-visit.
func (n *Navigator) OpenProject(ctx context.Context, index int) error {
	p := n.page.Context(ctx)

	els, _, err := locator.ProjectButtons.All(p)
	if err != nil {
		return err
	}
	if index >= len(els) {
		return models.NewScrapeError(
			models.ErrCodeElementNotFound,
			fmt.Sprintf("entry point %d not discoverable (%d on page)", index, len(els)),
			nil,
		)
	}

	slog.Info("opening project", "index", index)
	if err := locator.Click(els[index]); err != nil {
		return err
	}

	n.waitReady(p)
	if err := n.waitChain(ctx, p, locator.DetailContent); err != nil {
		return err
	}
	n.settle(ctx)
	return nil
}

// DetailHTML captures the current page HTML for offline field extraction.
func (n *Navigator) DetailHTML() (string, error) {
	html, err := n.page.HTML()
	if err != nil {
		return "", models.NewScrapeError(
			models.ErrCodeBrowserCrash, "failed to capture page HTML", err)
	}
	return html, nil
}

// OpenPromoterView switches the detail page to the promoter tab, polls until
// promoter content renders, and returns the resulting page HTML. A missing
// tab is not an error: some projects use a single-page layout, so the
// current page is returned for extraction instead.
func (n *Navigator) OpenPromoterView(ctx context.Context) (string, error) {
	p := n.page.Context(ctx)

	el, strat, err := locator.PromoterTab.First(p)
	if err != nil {
		slog.Warn("promoter tab not found, reading promoter fields from current page")
		return n.DetailHTML()
	}
	slog.Info("clicking promoter tab", "strategy", strat.String())
	if err := locator.Click(el); err != nil {
		return "", err
	}

	// The tab renders asynchronously; poll until a promoter field yields.
	var lastHTML string
	for try := 0; try < n.cfg.PromoterPollTries; try++ {
		if err := sleepCtx(ctx, n.cfg.PollInterval); err != nil {
			return "", categorizeError(err, "promoter wait canceled")
		}
		html, err := n.DetailHTML()
		if err != nil {
			return "", err
		}
		lastHTML = html
		ex, err := fields.Parse(html)
		if err != nil {
			continue
		}
		if ex.HasPromoterContent() {
			slog.Debug("promoter content ready", "try", try+1)
			return html, nil
		}
	}
	slog.Warn("promoter content did not render within wait budget",
		"tries", n.cfg.PromoterPollTries)
	return lastHTML, nil
}

// BackToListing re-visits the canonical listing URL.
func (n *Navigator) BackToListing(ctx context.Context) error {
	p := n.page.Context(ctx)
	slog.Info("returning to project listing")
	if err := p.Navigate(n.cfg.ListingURL); err != nil {
		return categorizeError(err, "navigation back to listing failed")
	}
	n.waitReady(p)
	return nil
}

// waitReady waits for the DOM to stop mutating, bounded by the nav timeout,
// then applies the fixed settle delay for late AJAX content.
func (n *Navigator) waitReady(p *rod.Page) {
	t := p.Timeout(n.cfg.NavTimeout)
	if err := t.WaitDOMStable(300*time.Millisecond, 0.1); err != nil {
		slog.Warn("page did not stabilize within wait budget, continuing", "error", err)
	}
	n.settle(p.GetContext())
}

// waitChain polls until the chain matches, bounded by the nav timeout.
func (n *Navigator) waitChain(ctx context.Context, p *rod.Page, chain locator.Chain) error {
	deadline := time.Now().Add(n.cfg.NavTimeout)
	for {
		if _, strat, err := chain.All(p); err == nil {
			slog.Debug("page content ready", "target", chain.Target, "strategy", strat.String())
			return nil
		}
		if time.Now().After(deadline) {
			return models.NewScrapeError(
				models.ErrCodeNavTimeout,
				fmt.Sprintf("target %q never appeared within %s", chain.Target, n.cfg.NavTimeout),
				nil,
			)
		}
		if err := sleepCtx(ctx, n.cfg.PollInterval); err != nil {
			return categorizeError(err, "wait canceled")
		}
	}
}

func (n *Navigator) settle(ctx context.Context) {
	_ = sleepCtx(ctx, n.cfg.SettleDelay)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// categorizeError wraps raw errors into typed ScrapeErrors so the
// orchestrator can tell timeouts from a dead session.
func categorizeError(err error, msg string) *models.ScrapeError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeNavTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeNavTimeout, "run canceled", err)
	default:
		return models.NewScrapeError(models.ErrCodeBrowserCrash, msg, err)
	}
}
