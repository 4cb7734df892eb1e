// Package report renders a structure summary as human-readable text.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mcncl/jsonlens/internal/models"
)

// Render formats a summary as an aligned text block: the four headline
// metrics followed by the top-level key table.
func Render(summary models.StructureSummary) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Root Type:\t%s\n", summary.RootType)
	fmt.Fprintf(w, "Top-level Items:\t%d\n", summary.TopLevelCount)
	fmt.Fprintf(w, "Nesting Depth:\t%d\n", summary.NestingDepth)
	fmt.Fprintf(w, "Total Items:\t%d\n", summary.TotalItems)
	w.Flush()

	b.WriteByte('\n')
	if len(summary.TopLevelKeys) == 0 {
		b.WriteString("No keys found (empty structure)\n")
		return b.String()
	}

	b.WriteString("Top-level Keys and Types\n")
	kw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(kw, "Key\tType\n")
	for _, kt := range summary.TopLevelKeys {
		fmt.Fprintf(kw, "%s\t%s\n", kt.Key, kt.Type)
	}
	kw.Flush()

	return b.String()
}
