//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package leakage

import (
	"fmt"

	"github.com/markkurossi/masking/mask"
	wmath "github.com/markkurossi/masking/pkg/math"
	"github.com/markkurossi/masking/prng"
)

// Target identifies the assessed algorithm.
type Target int

// Assessment targets.
const (
	TargetArithToBool Target = iota
	TargetBoolToArith
	TargetKoggeStone
	TargetMaskedAdd
)

// Targets lists all assessment targets.
var Targets = []Target{
	TargetArithToBool,
	TargetBoolToArith,
	TargetKoggeStone,
	TargetMaskedAdd,
}

var targetNames = map[Target]string{
	TargetArithToBool: "ArithToBool",
	TargetBoolToArith: "BoolToArith",
	TargetKoggeStone:  "KoggeStoneArithToBool",
	TargetMaskedAdd:   "MaskedAdd",
}

func (t Target) String() string {
	name, ok := targetNames[t]
	if ok {
		return name
	}
	return fmt.Sprintf("{Target %d}", t)
}

// Assess runs the first-order leakage assessment of the target
// algorithm. All secrets and masks are sampled from src. The traces
// alternate between the fixed and random classes.
func Assess[W wmath.Word](src prng.Source, target Target, params *Params) (
	*Report, error) {

	if params == nil {
		params = NewParams()
	}
	if params.Traces < 4 {
		return nil, fmt.Errorf("%w: %d traces", ErrSamples, params.Traces)
	}
	if _, ok := targetNames[target]; !ok {
		return nil, fmt.Errorf("leakage: unknown target %v", target)
	}

	c := NewCollector[W]()
	for i := 0; i < params.Traces; i++ {
		class := Class(i & 1)
		secrets := [2]W{W(params.Fixed), W(params.Fixed)}
		if class == Random {
			for j := range secrets {
				v, err := prng.Sample[W](src)
				if err != nil {
					return nil, err
				}
				secrets[j] = v
			}
		}
		err := trace(src, target, secrets, c.Probe(class))
		if err != nil {
			return nil, err
		}
	}

	report, err := c.Report(target.String(), params.Threshold)
	if err != nil {
		return nil, err
	}
	params.Debugf("%v: %d-bit: %d traces, %d intermediates, %d leaking\n",
		target, report.Width, params.Traces, len(report.Results),
		len(report.Leaking()))

	return report, nil
}

// trace runs one trace of the target with the secrets. The input
// shares are reported to the probe before running the algorithm.
func trace[W wmath.Word](src prng.Source, target Target, secrets [2]W,
	p mask.Probe[W]) error {

	m, err := mask.NewMasks[W](src)
	if err != nil {
		return err
	}
	r, err := prng.Sample[W](src)
	if err != nil {
		return err
	}

	switch target {
	case TargetArithToBool:
		a := secrets[0] - r
		p("input", "A", 0, a)
		p("input", "r", 0, r)
		mask.TraceArithToBool(a, r, m.S, p)

	case TargetBoolToArith:
		x1 := secrets[0] ^ r
		p("input", "x1", 0, x1)
		p("input", "r", 0, r)
		mask.TraceBoolToArith(x1, r, m.S, p)

	case TargetKoggeStone:
		a := secrets[0] - r
		p("input", "A", 0, a)
		p("input", "r", 0, r)
		mask.TraceKoggeStoneArithToBool(a, r, m.S, m.T, m.U, p)

	case TargetMaskedAdd:
		x1 := secrets[0] ^ m.S
		y1 := secrets[1] ^ r
		p("input", "x1", 0, x1)
		p("input", "y1", 0, y1)
		mask.TraceMaskedAdd(x1, m.S, y1, r, m.T, m.U, p)

	default:
		return fmt.Errorf("leakage: unknown target %v", target)
	}
	return nil
}
