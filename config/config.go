package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Browser BrowserConfig
	Portal  PortalConfig
	Export  ExportConfig
	Log     LogConfig
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// WindowWidth and WindowHeight set the viewport size.
	WindowWidth  int // default: 1920
	WindowHeight int // default: 1080
}

// PortalConfig controls navigation against the RERA portal.
type PortalConfig struct {
	// ListingURL is the canonical project-listing page. Returning to the
	// listing always re-visits this URL rather than using history back.
	ListingURL string // default: the RERA Odisha project list

	// MaxProjects caps how many projects are scraped per run.
	MaxProjects int // default: 6

	// NavTimeout is the budget for a page's defining element to appear.
	NavTimeout time.Duration // default: 20s

	// PollInterval is the polling period inside bounded waits.
	PollInterval time.Duration // default: 500ms

	// SettleDelay is the fixed delay applied after a page reports ready,
	// covering late AJAX content the readiness check cannot see.
	SettleDelay time.Duration // default: 2s

	// PromoterPollTries bounds the poll for promoter content after the tab
	// click (one PollInterval apart, original waits up to ~8s).
	PromoterPollTries int // default: 8

	// ProjectsPerSecond paces visits between projects to respect server
	// load. Zero disables pacing.
	ProjectsPerSecond float64 // default: 0.5
}

// ExportConfig controls the spreadsheet output.
type ExportConfig struct {
	// Dir is the directory receiving the .xlsx file.
	Dir string // default: "."

	// FilePrefix is the filename prefix before the timestamp.
	FilePrefix string // default: "rera_projects"
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"

	// Dir is the directory receiving the timestamped log file.
	Dir string // default: "."
}

// Load reads configuration from environment variables with sane defaults.
// CLI flags override the fields they map to after Load returns.
func Load() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:     envBoolOr("RERASCAN_HEADLESS", true),
			NoSandbox:    envBoolOr("RERASCAN_NO_SANDBOX", false),
			BrowserBin:   os.Getenv("RERASCAN_BROWSER_BIN"),
			WindowWidth:  envIntOr("RERASCAN_WINDOW_WIDTH", 1920),
			WindowHeight: envIntOr("RERASCAN_WINDOW_HEIGHT", 1080),
		},
		Portal: PortalConfig{
			ListingURL:        envOr("RERASCAN_LISTING_URL", "https://rera.odisha.gov.in/projects/project-list"),
			MaxProjects:       envIntOr("RERASCAN_MAX_PROJECTS", 6),
			NavTimeout:        envDurationOr("RERASCAN_NAV_TIMEOUT", 20*time.Second),
			PollInterval:      envDurationOr("RERASCAN_POLL_INTERVAL", 500*time.Millisecond),
			SettleDelay:       envDurationOr("RERASCAN_SETTLE_DELAY", 2*time.Second),
			PromoterPollTries: envIntOr("RERASCAN_PROMOTER_POLL_TRIES", 8),
			ProjectsPerSecond: envFloatOr("RERASCAN_PROJECTS_PER_SECOND", 0.5),
		},
		Export: ExportConfig{
			Dir:        envOr("RERASCAN_EXPORT_DIR", "."),
			FilePrefix: envOr("RERASCAN_EXPORT_PREFIX", "rera_projects"),
		},
		Log: LogConfig{
			Level:  envOr("RERASCAN_LOG_LEVEL", "info"),
			Format: envOr("RERASCAN_LOG_FORMAT", "text"),
			Dir:    envOr("RERASCAN_LOG_DIR", "."),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
