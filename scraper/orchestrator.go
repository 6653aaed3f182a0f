package scraper

import (
	"context"
	"log/slog"

	"github.com/odisha-tools/rerascan/config"
	"github.com/odisha-tools/rerascan/fields"
	"github.com/odisha-tools/rerascan/models"
	"golang.org/x/time/rate"
)

// PortalDriver drives the browser between the portal's views. Implemented
// by Navigator; faked in tests.
type PortalDriver interface {
	// OpenListing loads the listing page and returns the number of
	// discoverable project entry points.
	OpenListing(ctx context.Context) (int, error)

	// OpenProject opens the index-th entry point's detail view.
	OpenProject(ctx context.Context, index int) error

	// DetailHTML captures the current detail view's HTML.
	DetailHTML() (string, error)

	// OpenPromoterView switches to the promoter view and returns its HTML.
	OpenPromoterView(ctx context.Context) (string, error)

	// BackToListing returns to the listing page.
	BackToListing(ctx context.Context) error
}

// Orchestrator accumulates one record per project by walking the listing's
// entry points in order.
type Orchestrator struct {
	driver  PortalDriver
	cfg     config.PortalConfig
	limiter *rate.Limiter
}

// NewOrchestrator builds the per-run orchestrator. Pacing between project
// visits is driven by cfg.ProjectsPerSecond; zero disables it.
func NewOrchestrator(driver PortalDriver, cfg config.PortalConfig) *Orchestrator {
	var limiter *rate.Limiter
	if cfg.ProjectsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.ProjectsPerSecond), 1)
	}
	return &Orchestrator{driver: driver, cfg: cfg, limiter: limiter}
}

// Run walks up to MaxProjects entry points and returns the accumulated
// records in listing order. Per-project failures are logged and skipped; a
// fatal session error aborts the loop but the records gathered so far are
// still returned alongside the error.
func (o *Orchestrator) Run(ctx context.Context) ([]models.ProjectRecord, error) {
	entries, err := o.driver.OpenListing(ctx)
	if err != nil {
		return nil, err
	}
	if entries == 0 {
		slog.Warn("no project entry points on listing page")
		return nil, nil
	}

	target := entries
	if o.cfg.MaxProjects < target {
		target = o.cfg.MaxProjects
	}
	slog.Info("starting extraction", "discovered", entries, "target", target)

	var records []models.ProjectRecord
	for i := 0; i < target; i++ {
		if err := ctx.Err(); err != nil {
			slog.Warn("run canceled", "completed", len(records))
			return records, categorizeError(err, "run canceled")
		}
		if o.limiter != nil {
			if err := o.limiter.Wait(ctx); err != nil {
				return records, categorizeError(err, "pacing wait canceled")
			}
		}

		slog.Info("scraping project", "index", i+1, "of", target)
		rec, err := o.scrapeOne(ctx, i)
		if err != nil {
			if models.IsFatal(err) {
				slog.Error("browser session unusable, aborting run",
					"project", i+1, "error", err, "accumulated", len(records))
				return records, err
			}
			slog.Warn("skipping project", "project", i+1, "error", err)
		} else {
			records = append(records, rec)
			slog.Info("project scraped", "project", i+1, "name", rec.Basic.ProjectName)
		}

		if i < target-1 {
			if err := o.driver.BackToListing(ctx); err != nil {
				if models.IsFatal(err) {
					return records, err
				}
				slog.Error("failed to return to listing, stopping early",
					"error", err, "accumulated", len(records))
				break
			}
		}
	}

	slog.Info("extraction finished", "records", len(records), "target", target)
	return records, nil
}

// scrapeOne opens one project and assembles its record. Promoter failures
// degrade to sentinel fields rather than dropping the whole record.
func (o *Orchestrator) scrapeOne(ctx context.Context, index int) (models.ProjectRecord, error) {
	rec := models.NewProjectRecord()

	if err := o.driver.OpenProject(ctx, index); err != nil {
		return rec, err
	}

	html, err := o.driver.DetailHTML()
	if err != nil {
		return rec, err
	}
	ex, err := fields.Parse(html)
	if err != nil {
		return rec, err
	}
	rec.Basic = ex.BasicInfo()
	slog.Info("basic details extracted",
		"regNo", rec.Basic.RegistrationNo,
		"name", rec.Basic.ProjectName,
		"type", rec.Basic.ProjectType,
		"status", rec.Basic.ProjectStatus,
	)

	promoHTML, err := o.driver.OpenPromoterView(ctx)
	if err != nil {
		if models.IsFatal(err) {
			return rec, err
		}
		slog.Warn("promoter view unavailable, keeping sentinel promoter fields",
			"project", index+1, "error", err)
		return rec, nil
	}
	pex, err := fields.Parse(promoHTML)
	if err != nil {
		slog.Warn("promoter page unparseable, keeping sentinel promoter fields",
			"project", index+1, "error", err)
		return rec, nil
	}
	rec.Promoter = pex.PromoterInfo()
	slog.Info("promoter details extracted",
		"promoter", rec.Promoter.Name,
		"gst", rec.Promoter.GSTNo,
	)
	return rec, nil
}
