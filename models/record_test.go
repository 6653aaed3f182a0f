package models

import "testing"

func TestNewProjectRecord_SentinelFilled(t *testing.T) {
	rec := NewProjectRecord()

	row := rec.Row()
	// Every column except the timestamp starts as the sentinel.
	for i, v := range row[:len(row)-1] {
		if v != Sentinel {
			t.Errorf("column %d = %q, want %q", i, v, Sentinel)
		}
	}
	if row[len(row)-1] == "" {
		t.Error("ScrapedAt column empty")
	}
}

func TestRowMatchesColumns(t *testing.T) {
	rec := NewProjectRecord()
	rec.Basic = BasicInfo{
		RegistrationNo: "RP/01",
		ProjectName:    "Green Villa",
		ProjectType:    "Residential",
		ProjectStatus:  "Ongoing",
	}
	rec.Promoter = PromoterInfo{
		Name:    "Acme",
		Address: "Bhubaneswar",
		GSTNo:   "21AAAAA0000A1Z5",
	}

	cols := Columns()
	row := rec.Row()
	if len(cols) != len(row) {
		t.Fatalf("len(Columns) = %d, len(Row) = %d", len(cols), len(row))
	}

	want := map[string]string{
		"RERA Regd. No":    "RP/01",
		"Project Name":     "Green Villa",
		"Project Type":     "Residential",
		"Project Status":   "Ongoing",
		"Promoter Name":    "Acme",
		"Promoter Address": "Bhubaneswar",
		"GST No":           "21AAAAA0000A1Z5",
	}
	for i, col := range cols {
		if expected, ok := want[col]; ok && row[i] != expected {
			t.Errorf("column %q = %q, want %q", col, row[i], expected)
		}
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"browser crash", NewScrapeError(ErrCodeBrowserCrash, "gone", nil), true},
		{"nav timeout", NewScrapeError(ErrCodeNavTimeout, "slow", nil), false},
		{"element not found", NewScrapeError(ErrCodeElementNotFound, "missing", nil), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal = %v, want %v", got, tt.want)
			}
		})
	}
}
