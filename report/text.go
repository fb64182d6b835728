package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MrLoydHD/mei-aa-p1/experiment"
)

// TextWriter writes records as tab-stop aligned lines for reading in a
// terminal. It implements experiment.Sink.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter writes the header line to w.
func NewTextWriter(w io.Writer) (*TextWriter, error) {
	tw := &TextWriter{w: w}
	if err := tw.line(textHeader); err != nil {
		return nil, err
	}

	return tw, nil
}

// Write implements experiment.Sink.
func (t *TextWriter) Write(r experiment.Record) error {
	return t.line([]string{
		strconv.Itoa(r.Vertices),
		formatProb(r.EdgeProb),
		strconv.FormatInt(r.MaxWeight, 10),
		strconv.FormatInt(r.Operations, 10),
		strconv.FormatInt(r.TestedSolutions, 10),
		formatSeconds(r.Duration),
	})
}

func (t *TextWriter) line(cols []string) error {
	if _, err := io.WriteString(t.w, expandTabs(strings.Join(cols, "\t"), TextTabWidth)+"\n"); err != nil {
		return fmt.Errorf("report: text line: %w", err)
	}

	return nil
}
