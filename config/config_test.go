package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if !cfg.Browser.Headless {
		t.Error("Headless default = false, want true")
	}
	if cfg.Portal.MaxProjects != 6 {
		t.Errorf("MaxProjects = %d, want 6", cfg.Portal.MaxProjects)
	}
	if cfg.Portal.NavTimeout != 20*time.Second {
		t.Errorf("NavTimeout = %s, want 20s", cfg.Portal.NavTimeout)
	}
	if cfg.Portal.ListingURL == "" {
		t.Error("ListingURL default empty")
	}
	if cfg.Export.FilePrefix != "rera_projects" {
		t.Errorf("FilePrefix = %q", cfg.Export.FilePrefix)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RERASCAN_HEADLESS", "false")
	t.Setenv("RERASCAN_MAX_PROJECTS", "3")
	t.Setenv("RERASCAN_NAV_TIMEOUT", "45s")
	t.Setenv("RERASCAN_PROJECTS_PER_SECOND", "0.25")
	t.Setenv("RERASCAN_LISTING_URL", "https://example.com/list")

	cfg := Load()

	if cfg.Browser.Headless {
		t.Error("Headless override ignored")
	}
	if cfg.Portal.MaxProjects != 3 {
		t.Errorf("MaxProjects = %d, want 3", cfg.Portal.MaxProjects)
	}
	if cfg.Portal.NavTimeout != 45*time.Second {
		t.Errorf("NavTimeout = %s, want 45s", cfg.Portal.NavTimeout)
	}
	if cfg.Portal.ProjectsPerSecond != 0.25 {
		t.Errorf("ProjectsPerSecond = %f, want 0.25", cfg.Portal.ProjectsPerSecond)
	}
	if cfg.Portal.ListingURL != "https://example.com/list" {
		t.Errorf("ListingURL = %q", cfg.Portal.ListingURL)
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("RERASCAN_MAX_PROJECTS", "not-a-number")
	t.Setenv("RERASCAN_HEADLESS", "maybe")

	cfg := Load()

	if cfg.Portal.MaxProjects != 6 {
		t.Errorf("MaxProjects = %d, want default 6", cfg.Portal.MaxProjects)
	}
	if !cfg.Browser.Headless {
		t.Error("Headless fell through, want default true")
	}
}
