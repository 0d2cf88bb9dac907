package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/younsl/jaws/pkg/utils"
)

const timestampLayout = "2006-01-02 15:04:05"

// newTabWriter returns a kubectl style tabwriter
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

// printHeader prints the program, version and region above a table
func printHeader(w io.Writer, meta Meta, title string) {
	fmt.Fprintf(w, "%s %s - %s in %s (%s)\n\n",
		meta.Program,
		meta.Version,
		title,
		utils.GetRegionDescriptiveName(meta.Region),
		meta.Region,
	)
}

// printFooter prints when and by whom a report was generated
func printFooter(w io.Writer, meta Meta) {
	fmt.Fprintf(w, "\nGenerated at %s by %s\n", meta.Generated.Format(timestampLayout), meta.User)
}

func generated(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
