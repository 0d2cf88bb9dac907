package formatter

import (
	"fmt"
	"io"

	"github.com/younsl/jaws/pkg/aws"
)

// PrintCacheStats prints the provider calls and cache hits of each metadata
// lookup table
func PrintCacheStats(out io.Writer, lines []aws.StatLine) error {
	if len(lines) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\n## Metadata cache statistics")

	w := newTabWriter(out)
	fmt.Fprintln(w, "TABLE\tAPI CALLS\tCACHE HITS\tHIT RATE")

	for _, l := range lines {
		lookups := l.APICalls + l.CacheHits
		hitRate := 0.0
		if lookups > 0 {
			hitRate = float64(l.CacheHits) / float64(lookups) * 100.0
		}

		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n",
			l.Table,
			l.APICalls,
			l.CacheHits,
			hitRate,
		)
	}

	return w.Flush()
}
