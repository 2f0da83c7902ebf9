//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mask

import (
	"math/bits"

	"github.com/markkurossi/masking/pkg/math"
	"github.com/markkurossi/masking/prng"
)

// KoggeStoneRounds returns the number of carry rounds of the
// Kogge-Stone conversion and addition for width-bit words:
// ceil(log2(width)).
func KoggeStoneRounds(width int) int {
	return bits.Len(uint(width - 1))
}

// KoggeStoneArithToBool converts the arithmetic share a of the secret
// x=a+r into a Boolean share x1 such that x1^r = x. The masks s, t,
// and u must be fresh for each conversion. The operation count
// depends only on the width of W.
func KoggeStoneArithToBool[W math.Word](a, r, s, t, u W) W {
	return ksArithToBool(a, r, s, t, u, nil)
}

// TraceKoggeStoneArithToBool runs KoggeStoneArithToBool and reports
// all intermediate values to the probe p.
func TraceKoggeStoneArithToBool[W math.Word](a, r, s, t, u W, p Probe[W]) W {
	return ksArithToBool(a, r, s, t, u, p)
}

// KoggeStoneArithToBoolRand runs KoggeStoneArithToBool with a fresh
// mask set sampled from src.
func KoggeStoneArithToBoolRand[W math.Word](src prng.Source, a, r W) (
	W, error) {

	m, err := NewMasks[W](src)
	if err != nil {
		return 0, err
	}
	return ksArithToBool(a, r, m.S, m.T, m.U, nil), nil
}

func ksArithToBool[W math.Word](a, r, s, t, u W, p Probe[W]) W {
	const step = "ks.a2b"

	// Propagate P = a^r and generate G = a&r, both masked by s.
	pp := p.observe(step, "A^s", 0, a^s)
	pp = p.observe(step, "P1", 0, pp^r)

	g := p.observe(step, "A^t", 0, a^t)
	g = p.observe(step, "(A^t)&r", 0, g&r)
	g = p.observe(step, "s^(A^t)&r", 0, s^g)
	g = p.observe(step, "G1", 0, g^p.observe(step, "t&r", 0, t&r))

	g = koggeStone(pp, g, s, t, u, p)

	// x1 = 2G ^ a so that x1^r = a^r^2G = a+r.
	x1 := p.observe(step, "2G1^A", 0, p.observe(step, "2G1", 0, g<<1)^a)
	return p.observe(step, "x1", 0, x1^p.observe(step, "2s", 0, s<<1))
}

// MaskedAdd adds the secrets x=x1^s and y=y1^r without unmasking
// them. It returns the Boolean shares z1 and z2 of x+y:
// z1^z2 = x+y. The second share z2 is the mask r. The masks t and u
// must be fresh for each addition.
func MaskedAdd[W math.Word](x1, s, y1, r, t, u W) (z1, z2 W) {
	return maskedAdd(x1, s, y1, r, t, u, nil)
}

// TraceMaskedAdd runs MaskedAdd and reports all intermediate values
// to the probe p.
func TraceMaskedAdd[W math.Word](x1, s, y1, r, t, u W, p Probe[W]) (
	z1, z2 W) {

	return maskedAdd(x1, s, y1, r, t, u, p)
}

// MaskedAddRand runs MaskedAdd with fresh masks sampled from src. The
// result is masked with the mask of y.
func MaskedAddRand[W math.Word](src prng.Source, x, y BoolShare[W]) (
	BoolShare[W], error) {

	m, err := NewMasks[W](src)
	if err != nil {
		return BoolShare[W]{}, err
	}
	z1, z2 := maskedAdd(x.X, x.R, y.X, y.R, m.T, m.U, nil)
	return BoolShare[W]{
		X: z1,
		R: z2,
	}, nil
}

func maskedAdd[W math.Word](x1, s, y1, r, t, u W, p Probe[W]) (W, W) {
	const step = "ks.add"

	// P = x^y and G = x&y, both masked by s.
	pp := secXor(x1, y1, r, p, "P.xor", 0)
	g := secAnd(x1, y1, s, r, u, p, "G.and", 0)
	g = p.observe(step, "G^s", 0, g^s)
	g = p.observe(step, "G1", 0, g^u)

	g = koggeStone(pp, g, s, t, u, p)

	// The sum x^y^2G is folded into the r-masked x^y^r first. Adding
	// 2*G1 and 2*s the other way round would expose the carries 2G.
	z1 := secXor(y1, x1, s, p, "z.xor", 0)
	z1 = p.observe(step, "z1^2G1", 0, z1^p.observe(step, "2G1", 0, g<<1))
	z1 = p.observe(step, "z1", 0, z1^p.observe(step, "2s", 0, s<<1))

	return z1, r
}

// koggeStone runs the masked parallel-prefix carry computation on the
// propagate and generate shares pp=P^s and g=G^s. It returns the
// final generate share G^s. The round count depends only on the width
// of W.
func koggeStone[W math.Word](pp, g, s, t, u W, p Probe[W]) W {
	rounds := KoggeStoneRounds(math.Bits[W]())

	var i uint = 1
	for round := 1; round < rounds; round++ {
		// G = G ^ P&(G<<i)
		h := secShift(g, s, t, i, p, "G.shift", round)
		g2 := secAnd(pp, h, s, t, u, p, "G.and", round)
		g = secXor(g2, g, u, p, "G.xor", round)

		// P = P&(P<<i)
		h = secShift(pp, s, t, i, p, "P.shift", round)
		pp = secAnd(pp, h, s, t, u, p, "P.and", round)
		pp = p.observe("P.remask", "P^s", round, pp^s)
		pp = p.observe("P.remask", "P1", round, pp^u)

		i <<= 1
	}

	h := secShift(g, s, t, i, p, "G.shift", rounds)
	g2 := secAnd(pp, h, s, t, u, p, "G.and", rounds)

	return secXor(g2, g, u, p, "G.xor", rounds)
}
