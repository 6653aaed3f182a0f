// Package fields extracts labeled field values from captured detail-page
// HTML. Extraction runs on a parsed snapshot rather than live element
// handles, so a slow portal page is read once per view.
package fields

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/odisha-tools/rerascan/models"
	"golang.org/x/net/html"
)

var (
	detailBlockSel = cascadia.MustCompile("div.details-project")
	labelSel       = cascadia.MustCompile("label")
	strongSel      = cascadia.MustCompile("strong")
	fileLinkSel    = cascadia.MustCompile("a[href*='fileId']")
)

// Extractor reads labeled fields out of one detail-page snapshot.
type Extractor struct {
	doc *goquery.Document
}

// Parse builds an Extractor from raw page HTML.
func Parse(rawHTML string) (*Extractor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeInvalidInput, "failed to parse page HTML", err)
	}
	return &Extractor{doc: doc}, nil
}

// Value returns the value of the first label variant that yields one, or
// the sentinel when every variant misses. One missing field never aborts
// the record.
func (e *Extractor) Value(labels ...string) string {
	for _, label := range labels {
		if v, ok := e.lookup(label); ok {
			return v
		}
	}
	return models.Sentinel
}

// lookup tries the detail-block structure first, then a page-wide sibling
// scan. A block whose label matches but holds no value is an authoritative
// miss; the sibling scan only runs when no block label matched at all.
func (e *Extractor) lookup(label string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(label))
	if want == "" {
		return "", false
	}

	var (
		value        string
		labelMatched bool
	)
	e.doc.FindMatcher(detailBlockSel).EachWithBreak(func(_ int, block *goquery.Selection) bool {
		lab := block.FindMatcher(labelSel).First()
		if lab.Length() == 0 {
			return true
		}
		labText := strings.TrimSpace(lab.Text())
		if !strings.Contains(strings.ToLower(labText), want) {
			return true
		}
		labelMatched = true

		// GST values are sometimes uploaded documents rather than text.
		if strings.Contains(want, "gst") {
			if link := block.FindMatcher(fileLinkSel).First(); link.Length() > 0 {
				if href, ok := link.Attr("href"); ok {
					if idx := strings.LastIndex(href, "fileId="); idx >= 0 {
						value = "PDF Document (ID: " + href[idx+len("fileId="):] + ")"
						return false
					}
				}
			}
		}

		if strong := block.FindMatcher(strongSel).First(); strong.Length() > 0 {
			if v := strings.TrimSpace(strong.Text()); v != "" {
				value = v
				return false
			}
		}

		// No <strong>: the value may be bare text after the label.
		blockText := strings.TrimSpace(block.Text())
		if strings.HasPrefix(blockText, labText) {
			v := strings.TrimLeft(blockText[len(labText):], ": \t\n")
			if v = strings.TrimSpace(v); v != "" {
				value = v
			}
		}
		return false
	})

	if value != "" {
		return value, true
	}
	if labelMatched {
		return "", false
	}
	if v := e.siblingScan(want); v != "" {
		return v, true
	}
	return "", false
}

// siblingScan finds any element whose own text contains the label and
// returns the text of its next element sibling. Last-resort strategy for
// layouts without detail blocks.
func (e *Extractor) siblingScan(want string) string {
	var result string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if result != "" {
			return
		}
		if n.Type == html.ElementNode && !skipTag(n.Data) {
			if strings.Contains(strings.ToLower(ownText(n)), want) {
				for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
					if sib.Type == html.ElementNode {
						result = strings.TrimSpace(subtreeText(sib))
						break
					}
				}
				if result != "" {
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range e.doc.Nodes {
		walk(root)
	}
	return result
}

func skipTag(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "title":
		return true
	}
	return false
}

// ownText concatenates the direct text children of n, ignoring descendants.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// subtreeText concatenates all text in n's subtree.
func subtreeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		if n.Type == html.ElementNode && skipTag(n.Data) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
