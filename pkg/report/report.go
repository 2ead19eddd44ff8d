// Package report renders comparison results for people and for machines.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/base-media-cloud/s3-inventory-compare/pkg/compare"
)

// Summary carries the per-side context shown alongside a comparison
// result.
type Summary struct {
	Bucket1  string
	Bucket2  string
	Total1   int
	Total2   int
	Skipped1 int
	Skipped2 int
}

// Reporter writes the human-readable comparison report.
type Reporter struct {
	// Out receives the rendered report.
	Out io.Writer

	// MaxList caps how many keys each difference section lists. Zero
	// means no cap.
	MaxList int
}

const ruleWidth = 80

// Print renders the report for res.
func (r *Reporter) Print(res compare.Result, sum Summary) {
	w := r.Out

	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, "S3 INVENTORY COMPARISON REPORT")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(w, "Bucket 1: %s\n", sum.Bucket1)
	fmt.Fprintf(w, "Bucket 2: %s\n", sum.Bucket2)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "Total objects in %s: %s\n", sum.Bucket1, formatCount(sum.Total1))
	fmt.Fprintf(w, "Total objects in %s: %s\n", sum.Bucket2, formatCount(sum.Total2))
	fmt.Fprintf(w, "Common objects: %s\n", formatCount(res.CommonCount()))
	fmt.Fprintf(w, "Matched objects (size): %s\n", formatCount(len(res.Matched)))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Objects only in %s: %s\n", sum.Bucket1, formatCount(len(res.OnlyInFirst)))
	r.listKeys(w, res.OnlyInFirst)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Objects only in %s: %s\n", sum.Bucket2, formatCount(len(res.OnlyInSecond)))
	r.listKeys(w, res.OnlyInSecond)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Size mismatches: %s\n", formatCount(len(res.SizeMismatches)))
	r.listMismatches(w, res.SizeMismatches)
	fmt.Fprintln(w)
	if sum.Skipped1 > 0 || sum.Skipped2 > 0 {
		fmt.Fprintf(w, "Skipped malformed rows: %s=%s, %s=%s\n",
			sum.Bucket1, formatCount(sum.Skipped1), sum.Bucket2, formatCount(sum.Skipped2))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	if res.InSync() {
		fmt.Fprintln(w, "SUCCESS: all objects match between both buckets")
	} else {
		fmt.Fprintf(w, "DIFFERENCES FOUND: %s objects differ between the buckets\n", formatCount(res.DiffCount()))
	}
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

func (r *Reporter) listKeys(w io.Writer, keys []string) {
	n, truncated := r.limit(len(keys))
	if truncated {
		fmt.Fprintf(w, "  (showing first %d of %s)\n", n, formatCount(len(keys)))
	}
	for _, key := range keys[:n] {
		fmt.Fprintf(w, "  - %s\n", key)
	}
}

func (r *Reporter) listMismatches(w io.Writer, mismatches []compare.SizeMismatch) {
	n, truncated := r.limit(len(mismatches))
	if truncated {
		fmt.Fprintf(w, "  (showing first %d of %s)\n", n, formatCount(len(mismatches)))
	}
	for _, m := range mismatches[:n] {
		fmt.Fprintf(w, "  - %s: %d vs %d bytes\n", m.Key, m.Size1, m.Size2)
	}
}

// limit returns how many entries to list and whether the section is
// truncated.
func (r *Reporter) limit(total int) (int, bool) {
	if r.MaxList <= 0 || total <= r.MaxList {
		return total, false
	}
	return r.MaxList, true
}

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}
