package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MrLoydHD/mei-aa-p1/experiment"
)

// ErrBadHeader is returned by ReadCSV when the header row does not match.
var ErrBadHeader = errors.New("report: unexpected CSV header")

// CSVWriter writes records as CSV rows. It implements experiment.Sink.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter writes the header to w and returns the writer.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{w: csv.NewWriter(w)}
	if err := cw.w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("report: csv header: %w", err)
	}

	return cw, nil
}

// Write appends one row and flushes it, so partial runs leave a usable file.
func (c *CSVWriter) Write(r experiment.Record) error {
	row := []string{
		strconv.Itoa(r.Vertices),
		formatProb(r.EdgeProb),
		strconv.FormatInt(r.MaxWeight, 10),
		strconv.FormatInt(r.Operations, 10),
		strconv.FormatInt(r.TestedSolutions, 10),
		formatSeconds(r.Duration),
	}
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("report: csv row: %w", err)
	}
	c.w.Flush()

	return c.w.Error()
}

// ReadCSV parses a file produced by CSVWriter. Records carry no Clique and
// take algorithm as their Algorithm.
func ReadCSV(r io.Reader, algorithm string) ([]experiment.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: header: %w", err)
	}
	for i, h := range csvHeader {
		if head[i] != h {
			return nil, fmt.Errorf("ReadCSV: column %d is %q, want %q: %w", i, head[i], h, ErrBadHeader)
		}
	}

	var out []experiment.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: %w", line, err)
		}
		rec.Algorithm = algorithm
		out = append(out, rec)
	}
}

func parseRow(row []string) (experiment.Record, error) {
	var (
		rec experiment.Record
		err error
	)
	if rec.Vertices, err = strconv.Atoi(row[0]); err != nil {
		return rec, err
	}
	if rec.EdgeProb, err = strconv.ParseFloat(row[1], 64); err != nil {
		return rec, err
	}
	if rec.MaxWeight, err = strconv.ParseInt(row[2], 10, 64); err != nil {
		return rec, err
	}
	if rec.Operations, err = strconv.ParseInt(row[3], 10, 64); err != nil {
		return rec, err
	}
	if rec.TestedSolutions, err = strconv.ParseInt(row[4], 10, 64); err != nil {
		return rec, err
	}
	if rec.Duration, err = parseSeconds(row[5]); err != nil {
		return rec, err
	}

	return rec, nil
}
