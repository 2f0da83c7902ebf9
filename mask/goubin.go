//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mask

import (
	"github.com/markkurossi/masking/pkg/math"
	"github.com/markkurossi/masking/prng"
)

// GoubinRounds returns the number of carry rounds of the Goubin
// arithmetic to Boolean conversion for width-bit words.
func GoubinRounds(width int) int {
	return width - 1
}

// ArithToBool converts the arithmetic share a of the secret x=a+r
// into a Boolean share x1 such that x1^r = x. The conversion samples
// one random word from src and runs GoubinRounds carry rounds.
func ArithToBool[W math.Word](src prng.Source, a, r W) (W, error) {
	gamma, err := prng.Sample[W](src)
	if err != nil {
		return 0, err
	}
	return arithToBool(a, r, gamma, nil), nil
}

// TraceArithToBool runs ArithToBool with the random word gamma and
// reports all intermediate values to the probe p.
func TraceArithToBool[W math.Word](a, r, gamma W, p Probe[W]) W {
	return arithToBool(a, r, gamma, p)
}

// arithToBool implements Goubin's conversion (CHES 2001). Each round
// propagates the carry of a+r one bit further. The partial carries
// are kept blinded by the random Γ through the constant Ω.
func arithToBool[W math.Word](a, r, gamma W, p Probe[W]) W {
	const step = "a2b"

	t := p.observe(step, "T", 0, gamma<<1)
	x := p.observe(step, "G^r", 0, gamma^r)
	omega := p.observe(step, "O", 0, gamma&x)
	x = p.observe(step, "T^A", 0, t^a)
	gamma = p.observe(step, "G^x", 0, gamma^x)
	gamma = p.observe(step, "G&r", 0, gamma&r)
	omega = p.observe(step, "O^G", 0, omega^gamma)
	gamma = p.observe(step, "T&A", 0, t&a)
	omega = p.observe(step, "O^T&A", 0, omega^gamma)

	rounds := GoubinRounds(math.Bits[W]())
	for k := 1; k <= rounds; k++ {
		gamma = p.observe(step, "T&r", k, t&r)
		gamma = p.observe(step, "G^O", k, gamma^omega)
		t = p.observe(step, "T&A", k, t&a)
		gamma = p.observe(step, "G^T", k, gamma^t)
		t = p.observe(step, "T", k, gamma<<1)
	}

	return p.observe(step, "x1", 0, x^t)
}

// BoolToArith converts the Boolean share x1 of the secret x=x1^r into
// an arithmetic share a such that a+r = x. The conversion samples one
// random word from src and runs in a constant number of operations.
func BoolToArith[W math.Word](src prng.Source, x1, r W) (W, error) {
	gamma, err := prng.Sample[W](src)
	if err != nil {
		return 0, err
	}
	return boolToArith(x1, r, gamma, nil), nil
}

// TraceBoolToArith runs BoolToArith with the random word gamma and
// reports all intermediate values to the probe p.
func TraceBoolToArith[W math.Word](x1, r, gamma W, p Probe[W]) W {
	return boolToArith(x1, r, gamma, p)
}

// boolToArith uses the affinity of f(x1, g) = ((x1^g)-g)^x1 in g over
// GF(2): a = f(x1, Γ) ^ f(x1, Γ^r) ^ x1 = x1^r - r. Both evaluations
// of f are blinded by Γ.
func boolToArith[W math.Word](x1, r, gamma W, p Probe[W]) W {
	const step = "b2a"

	t := p.observe(step, "x1^G", 0, x1^gamma)
	t = p.observe(step, "T-G", 0, t-gamma)
	t = p.observe(step, "T", 0, t^x1)
	gamma = p.observe(step, "G^r", 0, gamma^r)
	a := p.observe(step, "x1^G'", 0, x1^gamma)
	a = p.observe(step, "A-G'", 0, a-gamma)

	return p.observe(step, "A", 0, a^t)
}
