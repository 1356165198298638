// Package report assembles the collectors' counters into the final
// statistics document and renders it.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"pystats/internal/collector"
)

// Report is the top-level statistics document: one flat counter mapping per
// collector, under fixed keys. Immutable after assembly.
type Report struct {
	Annotations map[string]int `json:"annotations"`
	Fixmes      map[string]int `json:"fixmes"`
}

// Assemble combines the two collectors' serialized counters without
// transforming them.
func Assemble(annotations, fixmes collector.Collector) *Report {
	return &Report{
		Annotations: annotations.Report(),
		Fixmes:      fixmes.Report(),
	}
}

// Sink renders one assembled report.
type Sink interface {
	Emit(*Report) error
}

// JSONSink writes the report as a single JSON line. Map keys are sorted by
// the encoder, so identical input produces byte-identical output.
type JSONSink struct {
	w io.Writer
}

// NewJSONSink creates a sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) Emit(r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := fmt.Fprintln(s.w, string(data)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
