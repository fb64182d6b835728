package experiment

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrLoydHD/mei-aa-p1/clique"
)

// Record is the outcome of one search over one instance.
type Record struct {
	RunID           uuid.UUID
	Algorithm       string
	Vertices        int
	EdgeProb        float64
	MaxWeight       int64 // 0 when no clique was found
	Operations      int64
	TestedSolutions int64
	Duration        time.Duration
	Clique          *clique.Clique // nil when loaded from a results file
}

// Sink consumes records as they are produced.
type Sink interface {
	Write(Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Record) error

// Write calls f(r).
func (f SinkFunc) Write(r Record) error { return f(r) }

// MultiSink writes every record to each sink in order, stopping at the
// first error.
type MultiSink []Sink

// Write implements Sink.
func (m MultiSink) Write(r Record) error {
	for _, s := range m {
		if err := s.Write(r); err != nil {
			return err
		}
	}

	return nil
}

// Collector is a Sink that keeps records in memory.
type Collector struct {
	Records []Record
}

// Write implements Sink.
func (c *Collector) Write(r Record) error {
	c.Records = append(c.Records, r)

	return nil
}
