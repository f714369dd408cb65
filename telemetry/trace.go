// Package telemetry writes a per-tick CSV trace of a session.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// TickRecord is one row of the trace.
type TickRecord struct {
	Session  string `csv:"session"`
	Tick     int    `csv:"tick"`
	Status   string `csv:"status"`
	Heading  string `csv:"heading"`
	HeadRow  int    `csv:"head_row"`
	HeadCol  int    `csv:"head_col"`
	Length   int    `csv:"length"`
	FoodLeft int    `csv:"food_left"`
	Ate      int    `csv:"ate"` // Food kind eaten this tick, 0 for none
	Grew     int    `csv:"grew"`
}

// Trace appends tick records to a CSV stream.
// A nil *Trace is valid and discards everything.
type Trace struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewTrace writes records to w.
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// Create opens a trace file. Returns nil if path is empty (trace disabled).
func Create(path string) (*Trace, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &Trace{w: f, closer: f}, nil
}

// Record writes one row; the first write includes the header.
func (t *Trace) Record(rec TickRecord) error {
	if t == nil {
		return nil
	}

	records := []TickRecord{rec}
	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		t.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the trace opened one.
func (t *Trace) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
