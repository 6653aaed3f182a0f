package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/odisha-tools/rerascan/models"
)

// Display renders the accumulated records as a console summary.
func Display(w io.Writer, records []models.ProjectRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No data to display")
		return
	}

	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "SCRAPED RERA PROJECT DATA (%d projects)\n", len(records))
	fmt.Fprintf(w, "%s\n", rule)

	columns := models.Columns()
	for i, rec := range records {
		fmt.Fprintf(w, "\nProject %d\n", i+1)
		fmt.Fprintln(w, strings.Repeat("-", 50))
		row := rec.Row()
		for c, col := range columns {
			if col == "Scraped At" {
				continue
			}
			fmt.Fprintf(w, "%s %s\n", pad(col, 25), row[c])
		}
		if len(rec.Promoter.Extra) > 0 {
			keys := make([]string, 0, len(rec.Promoter.Extra))
			for k := range rec.Promoter.Extra {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "%s %s\n", pad(k, 25), rec.Promoter.Extra[k])
			}
		}
	}
}

// pad right-pads s with dots to the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(".", width-len(s))
}
