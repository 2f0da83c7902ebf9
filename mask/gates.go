//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mask

import (
	"github.com/markkurossi/masking/pkg/math"
)

// SecAnd computes a Boolean share of x&y from the shares x1=x^s and
// y1=y^t. The result is masked by u:
//
//	z1 = (x1&y1) ^ u ^ (x1&t) ^ (y1&s) ^ (s&t) = (x&y) ^ u
//
// The terms are accumulated left to right so that every partial
// result stays masked by u. The masks s, t, and u must be independent
// of each other and of x and y.
func SecAnd[W math.Word](x1, y1, s, t, u W) W {
	return secAnd(x1, y1, s, t, u, nil, "and", 0)
}

func secAnd[W math.Word](x1, y1, s, t, u W, p Probe[W], step string,
	round int) W {

	z := p.observe(step, "x1&y1", round, x1&y1)
	z = p.observe(step, "z^u", round, z^u)

	xt := p.observe(step, "x1&t", round, x1&t)
	z = p.observe(step, "z^x1&t", round, z^xt)

	ys := p.observe(step, "y1&s", round, y1&s)
	z = p.observe(step, "z^y1&s", round, z^ys)

	st := p.observe(step, "s&t", round, s&t)
	return p.observe(step, "z1", round, z^st)
}

// SecXor computes a Boolean share of x^y from the shares x1 and y1,
// re-masked by u. XOR is linear in the masks, so no cross terms are
// needed: z1 = x1^y1^u.
func SecXor[W math.Word](x1, y1, u W) W {
	return secXor(x1, y1, u, nil, "xor", 0)
}

func secXor[W math.Word](x1, y1, u W, p Probe[W], step string, round int) W {
	z := p.observe(step, "x1^y1", round, x1^y1)
	return p.observe(step, "z1", round, z^u)
}

// SecShift computes a Boolean share of x<<j from the share x1=x^s.
// The fresh mask t decouples the result from the shifted mask:
//
//	z1 = (x1<<j) ^ t ^ (s<<j) = (x<<j) ^ t
func SecShift[W math.Word](x1, s, t W, j uint) W {
	return secShift(x1, s, t, j, nil, "shift", 0)
}

func secShift[W math.Word](x1, s, t W, j uint, p Probe[W], step string,
	round int) W {

	z := p.observe(step, "x1<<j", round, x1<<j)
	z = p.observe(step, "z^t", round, z^t)
	sj := p.observe(step, "s<<j", round, s<<j)
	return p.observe(step, "z1", round, z^sj)
}
