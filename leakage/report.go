//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package leakage

import (
	"fmt"
	"io"
	"math"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Result holds the t statistic of one intermediate value.
type Result struct {
	Step  string
	Name  string
	Round int
	T     float64
	N     [2]int
}

// Label returns the intermediate value label. The carry round is
// rendered as a superscript.
func (r *Result) Label() string {
	label := r.Step + ":" + r.Name
	if r.Round > 0 {
		label += superscript.Itoa(r.Round)
	}
	return label
}

// Leaks tests if the |t| of the result exceeds the threshold.
func (r *Result) Leaks(threshold float64) bool {
	return math.Abs(r.T) > threshold
}

// Report holds the assessment results of one algorithm.
type Report struct {
	Name      string
	Width     int
	Threshold float64
	Results   []*Result
}

// Leaking returns the results exceeding the threshold.
func (r *Report) Leaking() []*Result {
	var result []*Result
	for _, res := range r.Results {
		if res.Leaks(r.Threshold) {
			result = append(result, res)
		}
	}
	return result
}

// Max returns the result with the largest |t| or nil if the report is
// empty.
func (r *Report) Max() *Result {
	var best *Result
	for _, res := range r.Results {
		if best == nil || math.Abs(res.T) > math.Abs(best.T) {
			best = res
		}
	}
	return best
}

// Find returns the result of the intermediate value or nil if the
// value was not probed.
func (r *Report) Find(step, name string, round int) *Result {
	for _, res := range r.Results {
		if res.Step == step && res.Name == name && res.Round == round {
			return res
		}
	}
	return nil
}

// Print prints the report to the writer. If all is false, only the
// leaking values and the summary are printed.
func (r *Report) Print(w io.Writer, all bool) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Intermediate").SetAlign(tabulate.ML)
	tab.Header("N").SetAlign(tabulate.MR)
	tab.Header("t").SetAlign(tabulate.MR)
	tab.Header("").SetAlign(tabulate.ML)

	for _, res := range r.Results {
		leaks := res.Leaks(r.Threshold)
		if !all && !leaks {
			continue
		}
		row := tab.Row()
		row.Column(res.Label())
		row.Column(fmt.Sprintf("%d", res.N[0]+res.N[1]))
		if leaks {
			row.Column(fmt.Sprintf("%.2f", res.T)).SetFormat(tabulate.FmtBold)
			row.Column("LEAK").SetFormat(tabulate.FmtBold)
		} else {
			row.Column(fmt.Sprintf("%.2f", res.T))
			row.Column("")
		}
	}

	row := tab.Row()
	row.Column(fmt.Sprintf("%s (%d-bit)", r.Name, r.Width)).
		SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", len(r.Results))).SetFormat(tabulate.FmtItalic)
	if best := r.Max(); best != nil {
		row.Column(fmt.Sprintf("%.2f", best.T)).SetFormat(tabulate.FmtItalic)
	} else {
		row.Column("")
	}
	row.Column(fmt.Sprintf("%d leaking", len(r.Leaking()))).
		SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
