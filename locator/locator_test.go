package locator

import (
	"errors"
	"testing"

	"github.com/go-rod/rod"
	"github.com/odisha-tools/rerascan/models"
)

// fakeQuerier records strategy evaluation order and serves canned results.
type fakeQuerier struct {
	calls   []string
	results map[string]rod.Elements
	errs    map[string]error
}

func (f *fakeQuerier) Elements(selector string) (rod.Elements, error) {
	return f.answer("css:" + selector)
}

func (f *fakeQuerier) ElementsX(xpath string) (rod.Elements, error) {
	return f.answer("xpath:" + xpath)
}

func (f *fakeQuerier) answer(key string) (rod.Elements, error) {
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return f.results[key], nil
}

func elements(n int) rod.Elements {
	els := make(rod.Elements, n)
	for i := range els {
		els[i] = &rod.Element{}
	}
	return els
}

func TestChain_PrimaryStrategyWins(t *testing.T) {
	chain := Chain{
		Target: "buttons",
		Strategies: []Strategy{
			{CSS, "a.primary"},
			{CSS, "a.secondary"},
		},
	}
	q := &fakeQuerier{results: map[string]rod.Elements{
		"css:a.primary":   elements(2),
		"css:a.secondary": elements(5),
	}}

	els, strat, err := chain.All(q)
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if strat.Expr != "a.primary" {
		t.Errorf("matched strategy = %q, want primary", strat.Expr)
	}
	if len(els) != 2 {
		t.Errorf("len(els) = %d, want 2", len(els))
	}
	if len(q.calls) != 1 {
		t.Errorf("evaluated %d strategies, want 1 (short-circuit)", len(q.calls))
	}
}

func TestChain_FallsBackInDeclarationOrder(t *testing.T) {
	chain := Chain{
		Target: "tab",
		Strategies: []Strategy{
			{CSS, "a.primary"},
			{XPath, "//a[contains(text(),'Promoter')]"},
			{CSS, "a.last"},
		},
	}
	q := &fakeQuerier{results: map[string]rod.Elements{
		"xpath://a[contains(text(),'Promoter')]": elements(1),
		"css:a.last":                             elements(1),
	}}

	_, strat, err := chain.All(q)
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if strat.Kind != XPath {
		t.Errorf("matched kind = %v, want XPath", strat.Kind)
	}
	want := []string{"css:a.primary", "xpath://a[contains(text(),'Promoter')]"}
	if len(q.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", q.calls, want)
	}
	for i := range want {
		if q.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, q.calls[i], want[i])
		}
	}
}

func TestChain_StrategyErrorTreatedAsNoMatch(t *testing.T) {
	chain := Chain{
		Target: "buttons",
		Strategies: []Strategy{
			{CSS, "a.broken"},
			{CSS, "a.good"},
		},
	}
	q := &fakeQuerier{
		errs:    map[string]error{"css:a.broken": errors.New("invalid selector")},
		results: map[string]rod.Elements{"css:a.good": elements(1)},
	}

	_, strat, err := chain.All(q)
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if strat.Expr != "a.good" {
		t.Errorf("matched strategy = %q, want a.good", strat.Expr)
	}
}

func TestChain_ExhaustedReturnsElementNotFound(t *testing.T) {
	chain := Chain{
		Target:     "buttons",
		Strategies: []Strategy{{CSS, "a.one"}, {CSS, "a.two"}},
	}
	q := &fakeQuerier{}

	_, _, err := chain.All(q)
	if err == nil {
		t.Fatal("All returned nil error for exhausted chain")
	}
	var se *models.ScrapeError
	if !errors.As(err, &se) || se.Code != models.ErrCodeElementNotFound {
		t.Errorf("error = %v, want code %s", err, models.ErrCodeElementNotFound)
	}
	if len(q.calls) != 2 {
		t.Errorf("evaluated %d strategies, want all 2", len(q.calls))
	}
}

func TestChain_FirstReturnsFirstElement(t *testing.T) {
	chain := Chain{
		Target:     "buttons",
		Strategies: []Strategy{{CSS, "a.btn"}},
	}
	els := elements(3)
	q := &fakeQuerier{results: map[string]rod.Elements{"css:a.btn": els}}

	el, _, err := chain.First(q)
	if err != nil {
		t.Fatalf("First returned error: %v", err)
	}
	if el != els[0] {
		t.Error("First did not return the first matched element")
	}
}

func TestPredefinedChains_AttributeSelectorFirst(t *testing.T) {
	tests := []struct {
		name  string
		chain Chain
	}{
		{"project buttons", ProjectButtons},
		{"promoter tab", PromoterTab},
		{"detail content", DetailContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.chain.Strategies) < 2 {
				t.Fatalf("chain %q has no fallbacks", tt.chain.Target)
			}
			seen := make(map[string]bool)
			for _, s := range tt.chain.Strategies {
				key := s.String()
				if seen[key] {
					t.Errorf("duplicate strategy %q", key)
				}
				seen[key] = true
			}
		})
	}
}
