// Package locator resolves semantic page targets ("the project open
// buttons", "the promoter tab") against an ordered list of location
// strategies, returning the first strategy that matches.
package locator

import (
	"fmt"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/odisha-tools/rerascan/models"
)

// Kind selects how a strategy expression is evaluated.
type Kind int

const (
	// CSS evaluates the expression as a CSS selector.
	CSS Kind = iota
	// XPath evaluates the expression as an XPath query.
	XPath
)

func (k Kind) String() string {
	switch k {
	case CSS:
		return "css"
	case XPath:
		return "xpath"
	default:
		return "unknown"
	}
}

// Strategy is one way of locating a target on the page.
type Strategy struct {
	Kind Kind
	Expr string
}

func (s Strategy) String() string {
	return fmt.Sprintf("%s:%s", s.Kind, s.Expr)
}

// Querier is the subset of *rod.Page (and *rod.Element) the chain needs.
type Querier interface {
	Elements(selector string) (rod.Elements, error)
	ElementsX(xpath string) (rod.Elements, error)
}

// Chain is an ordered list of strategies for one semantic target.
// Strategies are tried in declaration order; the first one yielding at
// least one element wins. A strategy error counts as no match.
type Chain struct {
	// Target names what the chain locates, for logs.
	Target string

	Strategies []Strategy
}

// All returns every element matched by the first succeeding strategy,
// along with the strategy that matched.
func (c Chain) All(q Querier) (rod.Elements, Strategy, error) {
	for i, s := range c.Strategies {
		var (
			els rod.Elements
			err error
		)
		switch s.Kind {
		case XPath:
			els, err = q.ElementsX(s.Expr)
		default:
			els, err = q.Elements(s.Expr)
		}
		if err != nil {
			slog.Debug("locator strategy errored",
				"target", c.Target, "strategy", s.String(), "error", err)
			continue
		}
		if len(els) > 0 {
			slog.Debug("locator strategy matched",
				"target", c.Target, "strategy", s.String(),
				"rank", i+1, "matches", len(els))
			return els, s, nil
		}
	}
	return nil, Strategy{}, models.NewScrapeError(
		models.ErrCodeElementNotFound,
		fmt.Sprintf("no strategy matched target %q (%d tried)", c.Target, len(c.Strategies)),
		nil,
	)
}

// First returns the first element matched by the first succeeding strategy.
func (c Chain) First(q Querier) (*rod.Element, Strategy, error) {
	els, s, err := c.All(q)
	if err != nil {
		return nil, Strategy{}, err
	}
	return els[0], s, nil
}

// Click scrolls the element into view and clicks it, falling back to a
// script-driven click when the standard interaction fails (overlapped or
// not-interactable elements on the portal).
func Click(el *rod.Element) error {
	if err := el.ScrollIntoView(); err != nil {
		slog.Debug("scroll into view failed, clicking anyway", "error", err)
	}
	err := el.Click(proto.InputMouseButtonLeft, 1)
	if err == nil {
		return nil
	}
	slog.Debug("standard click failed, retrying via script", "error", err)
	if _, err := el.Eval(`() => this.click()`); err != nil {
		return models.NewScrapeError(
			models.ErrCodeInteractionFailed,
			"element found but both click paths failed",
			err,
		)
	}
	return nil
}
