//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records operation timing samples and renders
// profiling reports.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// New creates a new Timing instance.
func New() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label, operation count, and data
// columns. The sample starts where the previous sample ended.
func (t *Timing) Sample(label string, ops int, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Ops:   ops,
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the duration from the start to the end of the last
// sample.
func (t *Timing) Total() time.Duration {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start)
}

// Print prints the profiling report to the writer. The headers name
// the extra data columns of the samples.
func (t *Timing) Print(w io.Writer, headers ...string) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("ns/op").SetAlign(tabulate.MR)
	for _, h := range headers {
		tab.Header(h).SetAlign(tabulate.MR)
	}

	total := t.Total()
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(total)*100))
		row.Column(fmt.Sprintf("%.1f", sample.NsPerOp()))

		for _, col := range sample.Cols {
			row.Column(col)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Ops   int
	Cols  []string
}

// Duration returns the duration of the sample.
func (s *Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// NsPerOp returns the average duration of one operation in
// nanoseconds.
func (s *Sample) NsPerOp() float64 {
	if s.Ops <= 0 {
		return 0
	}
	return float64(s.Duration().Nanoseconds()) / float64(s.Ops)
}
