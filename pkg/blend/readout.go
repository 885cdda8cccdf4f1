package blend

import (
	"fmt"
	"math"
	"strings"
)

const (
	// ReadoutThreshold hides entries at or below 5% from the live readout.
	ReadoutThreshold = 0.05

	// DescribeThreshold keeps only entries above 20% in a blend description.
	DescribeThreshold = 0.2
)

// Share is one formatted line of a readout.
type Share struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Percent int     `json:"percent"`
}

func (s Share) String() string { return fmt.Sprintf("%s: %d%%", s.Name, s.Percent) }

// Shares returns the entries of d whose weight exceeds min, ordered by
// descending weight then name, with weights rounded to whole percents.
func Shares(d Distribution, min float64) []Share {
	var out []Share
	for _, name := range d.Names() {
		w := d[name]
		if w <= min {
			continue
		}
		out = append(out, Share{Name: name, Weight: w, Percent: int(math.Round(w * 100))})
	}
	return out
}

// Readout renders the live readout for d: one "Name: NN%" line per entry
// above [ReadoutThreshold].
func Readout(d Distribution) string {
	shares := Shares(d, ReadoutThreshold)
	lines := make([]string, len(shares))
	for i, s := range shares {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

// Describe summarizes d in prose for a generation request, e.g.
// "Spooky (62%) blended with Default (38%)". Only entries above
// [DescribeThreshold] are mentioned. label maps a style name to its display
// name and may be nil. Percentages are truncated, not rounded.
func Describe(d Distribution, label func(string) string) string {
	var parts []string
	for _, name := range d.Names() {
		w := d[name]
		if w <= DescribeThreshold {
			continue
		}
		display := name
		if label != nil {
			if l := label(name); l != "" {
				display = l
			}
		}
		parts = append(parts, fmt.Sprintf("%s (%d%%)", display, int(w*100)))
	}
	if len(parts) == 0 {
		return "Default style"
	}
	return strings.Join(parts, " blended with ")
}
