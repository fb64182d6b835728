package report

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// TextTabWidth is the tab stop used by TextWriter.
const TextTabWidth = 30

// Column headers.
var (
	csvHeader  = []string{"Vertices", "Edges_Prob", "Max_Weight", "Ops_Count", "Tested_Solutions", "Search_Time"}
	textHeader = []string{"Vertices", "Edges_Prob.", "Max_Weight", "Ops._Count", "Tested_Solutions", "Search_Time"}
)

// CSVFileName returns "<algorithm>_results.csv".
func CSVFileName(algorithm string) string { return algorithm + "_results.csv" }

// TextFileName returns "<algorithm>_results.txt".
func TextFileName(algorithm string) string { return algorithm + "_results.txt" }

// formatProb prints the shortest representation, e.g. 0.125 or 0.5.
func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// formatSeconds prints d in seconds with full precision.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', -1, 64)
}

func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return time.Duration(math.Round(f * float64(time.Second))), nil
}

// expandTabs replaces each tab with spaces up to the next multiple of width.
func expandTabs(s string, width int) string {
	var (
		b   strings.Builder
		col int
	)
	for _, r := range s {
		switch r {
		case '\t':
			pad := width - col%width
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}

	return b.String()
}
