package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MrLoydHD/mei-aa-p1/experiment"
)

// ComparisonRow pairs a heuristic and an exact result on one instance.
type ComparisonRow struct {
	Vertices     int
	EdgeProb     float64
	Weight       int64 // heuristic
	ExactWeight  int64
	Accuracy     float64 // Weight / ExactWeight; 1 when both are 0
	ExactlyEqual bool
}

// Comparison summarizes a heuristic run against an exact run.
type Comparison struct {
	Rows []ComparisonRow
	// MeanAccuracy averages Accuracy over Rows.
	MeanAccuracy float64
	// ExactShare is the fraction of rows where the heuristic was optimal.
	ExactShare float64
	// Unmatched counts exact records with no heuristic counterpart, which
	// happens when one run was abandoned earlier than the other.
	Unmatched int
}

type instanceKey struct {
	vertices int
	permille int
}

func keyOf(r experiment.Record) instanceKey {
	return instanceKey{vertices: r.Vertices, permille: int(math.Round(r.EdgeProb * 1000))}
}

// Compare joins heuristic and exact records on (vertices, edge probability),
// in the order of exact.
func Compare(heuristic, exact []experiment.Record) Comparison {
	byKey := make(map[instanceKey]experiment.Record, len(heuristic))
	for _, r := range heuristic {
		byKey[keyOf(r)] = r
	}

	var (
		c       Comparison
		sum     float64
		matches int
	)
	for _, e := range exact {
		h, ok := byKey[keyOf(e)]
		if !ok {
			c.Unmatched++
			continue
		}
		row := ComparisonRow{
			Vertices:     e.Vertices,
			EdgeProb:     e.EdgeProb,
			Weight:       h.MaxWeight,
			ExactWeight:  e.MaxWeight,
			Accuracy:     1,
			ExactlyEqual: h.MaxWeight == e.MaxWeight,
		}
		if e.MaxWeight != 0 {
			row.Accuracy = float64(h.MaxWeight) / float64(e.MaxWeight)
		}
		sum += row.Accuracy
		if row.ExactlyEqual {
			matches++
		}
		c.Rows = append(c.Rows, row)
	}
	if n := len(c.Rows); n > 0 {
		c.MeanAccuracy = sum / float64(n)
		c.ExactShare = float64(matches) / float64(n)
	}

	return c
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	missStyle   = cellStyle.Foreground(lipgloss.Color("#E74C3C"))
)

// Table renders the rows and a summary line as a terminal table.
func (c Comparison) Table() string {
	rows := make([][]string, 0, len(c.Rows))
	for _, r := range c.Rows {
		rows = append(rows, []string{
			strconv.Itoa(r.Vertices),
			formatProb(r.EdgeProb),
			strconv.FormatInt(r.Weight, 10),
			strconv.FormatInt(r.ExactWeight, 10),
			formatPercent(r.Accuracy),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Vertices", "Edges_Prob", "Greedy", "Exact", "Accuracy").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(c.Rows) && !c.Rows[row].ExactlyEqual:
				return missStyle
			default:
				return cellStyle
			}
		})

	return fmt.Sprintf("%s\nmean accuracy %s, optimal on %s of %d instances\n",
		t.String(), formatPercent(c.MeanAccuracy), formatPercent(c.ExactShare), len(c.Rows))
}

// WriteCSV writes the rows with header
// Vertices,Edges_Prob,Greedy_Weight,Exact_Weight,Accuracy.
func (c Comparison) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Vertices", "Edges_Prob", "Greedy_Weight", "Exact_Weight", "Accuracy"}); err != nil {
		return err
	}
	for _, r := range c.Rows {
		if err := cw.Write([]string{
			strconv.Itoa(r.Vertices),
			formatProb(r.EdgeProb),
			strconv.FormatInt(r.Weight, 10),
			strconv.FormatInt(r.ExactWeight, 10),
			strconv.FormatFloat(r.Accuracy, 'f', 4, 64),
		}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 2, 64) + "%"
}
