//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package leakage implements a first-order leakage assessment of the
// masking algorithms. The assessment runs an algorithm with a fixed
// secret and with random secrets, records the Hamming weight of every
// intermediate value, and compares the two classes with Welch's
// t-test. A first-order secure algorithm keeps |t| below the
// threshold for every intermediate.
package leakage

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

var (
	ErrSamples = errors.New("leakage: not enough samples")
)

// Params define the assessment parameters.
type Params struct {
	// Traces specifies the total number of traces. The traces are
	// split evenly between the fixed and random classes.
	Traces int

	// Threshold specifies the |t| limit above which an intermediate
	// value is reported as leaking.
	Threshold float64

	// Fixed specifies the secret of the fixed class. It is truncated
	// to the word width.
	Fixed uint64

	Verbose bool
}

// NewParams returns new assessment params, initialized with the
// default values.
func NewParams() *Params {
	return &Params{
		Traces:    10000,
		Threshold: 4.5,
	}
}

// Debugf prints debugging message if Verbose debugging is enabled.
func (p *Params) Debugf(format string, a ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// WelchT computes Welch's t statistic for the samples a and b. It
// returns ±Inf if both samples are constant with different values.
func WelchT(a, b stats.Float64Data) (float64, error) {
	if len(a) < 2 || len(b) < 2 {
		return 0, fmt.Errorf("%w: %d, %d", ErrSamples, len(a), len(b))
	}
	ma, err := stats.Mean(a)
	if err != nil {
		return 0, err
	}
	mb, err := stats.Mean(b)
	if err != nil {
		return 0, err
	}
	va, err := stats.SampleVariance(a)
	if err != nil {
		return 0, err
	}
	vb, err := stats.SampleVariance(b)
	if err != nil {
		return 0, err
	}

	d := math.Sqrt(va/float64(len(a)) + vb/float64(len(b)))
	if d == 0 {
		switch {
		case ma == mb:
			return 0, nil
		case ma > mb:
			return math.Inf(1), nil
		default:
			return math.Inf(-1), nil
		}
	}
	return (ma - mb) / d, nil
}
