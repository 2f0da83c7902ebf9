//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package leakage

import (
	"fmt"
	"math/bits"

	"github.com/markkurossi/masking/mask"
	wmath "github.com/markkurossi/masking/pkg/math"
	"github.com/montanaflynn/stats"
)

// Class identifies the fixed and random trace classes.
type Class int

// Trace classes.
const (
	Fixed Class = iota
	Random
)

type point struct {
	step  string
	name  string
	round int
}

// Collector collects the Hamming weights of probed intermediate
// values for the two trace classes. A Collector is not safe for
// concurrent use.
type Collector[W wmath.Word] struct {
	points  []point
	samples map[point]*[2]stats.Float64Data
}

// NewCollector creates a new collector.
func NewCollector[W wmath.Word]() *Collector[W] {
	return &Collector[W]{
		samples: make(map[point]*[2]stats.Float64Data),
	}
}

// Probe returns a probe recording values into the trace class.
func (c *Collector[W]) Probe(class Class) mask.Probe[W] {
	return func(step, name string, round int, v W) {
		pt := point{
			step:  step,
			name:  name,
			round: round,
		}
		s, ok := c.samples[pt]
		if !ok {
			s = new([2]stats.Float64Data)
			c.samples[pt] = s
			c.points = append(c.points, pt)
		}
		s[class] = append(s[class], float64(bits.OnesCount64(uint64(v))))
	}
}

// Report computes the t statistic of every probed intermediate value
// in the order the values were first observed.
func (c *Collector[W]) Report(name string, threshold float64) (
	*Report, error) {

	report := &Report{
		Name:      name,
		Width:     wmath.Bits[W](),
		Threshold: threshold,
	}
	for _, pt := range c.points {
		s := c.samples[pt]
		t, err := WelchT(s[Fixed], s[Random])
		if err != nil {
			return nil, fmt.Errorf("%s.%s[%d]: %w",
				pt.step, pt.name, pt.round, err)
		}
		report.Results = append(report.Results, &Result{
			Step:  pt.step,
			Name:  pt.name,
			Round: pt.round,
			T:     t,
			N:     [2]int{len(s[Fixed]), len(s[Random])},
		})
	}
	return report, nil
}
