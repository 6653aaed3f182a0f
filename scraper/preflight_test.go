package scraper

import (
	"strings"
	"testing"
)

func TestNeedsBrowser(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			"empty SPA shell",
			`<html><head><script src="main.js"></script></head><body><app-root></app-root></body></html>`,
			true,
		},
		{
			"noscript warning",
			`<html><body>` + strings.Repeat("real visible content here ", 20) +
				`<noscript>Please enable JavaScript to continue.</noscript></body></html>`,
			true,
		},
		{
			"content-rich static page",
			`<html><body><p>` + strings.Repeat("plenty of server rendered text ", 30) + `</p></body></html>`,
			false,
		},
		{
			"script-heavy thin page",
			`<html><body>` + strings.Repeat(`<script>x()</script>`, 12) +
				`<p>` + strings.Repeat("some text ", 25) + `</p></body></html>`,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsBrowser([]byte(tt.body)); got != tt.want {
				t.Errorf("needsBrowser = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"present", `<html><head><title> RERA Odisha </title></head></html>`, "RERA Odisha"},
		{"absent", `<html><head></head><body>x</body></html>`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTitle([]byte(tt.body)); got != tt.want {
				t.Errorf("extractTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractVisibleText_SkipsScripts(t *testing.T) {
	body := `<html><body><script>var hidden = 1;</script><p>visible words</p><style>.x{}</style></body></html>`
	got := extractVisibleText([]byte(body))
	if !strings.Contains(got, "visible words") {
		t.Errorf("visible text missing: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("script text leaked: %q", got)
	}
}
