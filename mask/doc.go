//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mask implements first-order secure conversions between
// arithmetic masking (x = A+R mod 2^n) and Boolean masking
// (x = x1^R), and the addition of Boolean masked values.
//
// Two conversion families are provided. The Goubin conversions
// (ArithToBool, BoolToArith) sample one random word from a
// prng.Source. The Kogge-Stone conversion and addition
// (KoggeStoneArithToBool, MaskedAdd) take their auxiliary masks from
// the caller and compute the carries with a masked parallel-prefix
// network of SecAnd, SecXor, and SecShift gates.
//
// No function reconstructs a secret in any intermediate variable, and
// the control flow depends only on the word width, never on the
// values. The first-order guarantee holds only if every mask is
// uniformly random and independent of the secret and of the other
// masks. This precondition cannot be checked at runtime; functional
// tests pass with reused masks. Sample masks with NewMasks from a
// cryptographically secure prng.Source for every call.
//
// Example:
//
//	src := prng.NewReader(nil)
//	x, err := mask.NewArithShare[uint32](src, 0x12345678)
//	if err != nil {
//		log.Fatal(err)
//	}
//	b, err := x.ToBool(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	y, err := mask.NewBoolShare[uint32](src, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sum, err := mask.MaskedAddRand(src, b, y)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The generic functions operate on the word type W; the Width type
// provides the same operations for uint64 words with a runtime word
// width.
package mask
