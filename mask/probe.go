//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mask

import (
	"github.com/markkurossi/masking/pkg/math"
)

// Probe observes the intermediate values of a masked computation. The
// step names the algorithm step or gate instance, name the
// intermediate variable inside the step, and round the carry round
// (0 outside round loops). Every intermediate that a first-order
// adversary could observe is reported once.
type Probe[W math.Word] func(step, name string, round int, v W)

func (p Probe[W]) observe(step, name string, round int, v W) W {
	if p != nil {
		p(step, name, round, v)
	}
	return v
}
