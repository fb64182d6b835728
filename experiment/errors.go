package experiment

import "errors"

var (
	// ErrInvalidSweep is returned by Sweep for an empty or inverted range.
	ErrInvalidSweep = errors.New("experiment: invalid sweep")

	// ErrInvalidResult is returned when an engine reports a clique that
	// does not validate against its graph.
	ErrInvalidResult = errors.New("experiment: engine returned an invalid clique")

	// ErrNilSink is returned by Run when no sink is supplied.
	ErrNilSink = errors.New("experiment: nil sink")
)
