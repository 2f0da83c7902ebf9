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

// ArithShare holds an arithmetic masking A+R of a secret.
type ArithShare[W math.Word] struct {
	A W
	R W
}

// NewArithShare splits the secret into an arithmetic share with a
// fresh mask from src.
func NewArithShare[W math.Word](src prng.Source, secret W) (
	ArithShare[W], error) {

	r, err := prng.Sample[W](src)
	if err != nil {
		return ArithShare[W]{}, err
	}
	return ArithShare[W]{
		A: secret - r,
		R: r,
	}, nil
}

// Value recombines the secret. It must only be used where the secret
// may be observed.
func (s ArithShare[W]) Value() W {
	return s.A + s.R
}

// ToBool converts the share into a Boolean share with the same mask.
func (s ArithShare[W]) ToBool(src prng.Source) (BoolShare[W], error) {
	x1, err := ArithToBool(src, s.A, s.R)
	if err != nil {
		return BoolShare[W]{}, err
	}
	return BoolShare[W]{
		X: x1,
		R: s.R,
	}, nil
}

// BoolShare holds a Boolean masking X^R of a secret.
type BoolShare[W math.Word] struct {
	X W
	R W
}

// NewBoolShare splits the secret into a Boolean share with a fresh
// mask from src.
func NewBoolShare[W math.Word](src prng.Source, secret W) (
	BoolShare[W], error) {

	r, err := prng.Sample[W](src)
	if err != nil {
		return BoolShare[W]{}, err
	}
	return BoolShare[W]{
		X: secret ^ r,
		R: r,
	}, nil
}

// Value recombines the secret. It must only be used where the secret
// may be observed.
func (s BoolShare[W]) Value() W {
	return s.X ^ s.R
}

// ToArith converts the share into an arithmetic share with the same
// mask.
func (s BoolShare[W]) ToArith(src prng.Source) (ArithShare[W], error) {
	a, err := BoolToArith(src, s.X, s.R)
	if err != nil {
		return ArithShare[W]{}, err
	}
	return ArithShare[W]{
		A: a,
		R: s.R,
	}, nil
}

// Masks holds the auxiliary masks of one Kogge-Stone conversion or
// addition. A mask set must not be reused across calls.
type Masks[W math.Word] struct {
	S W
	T W
	U W
}

// NewMasks samples a fresh mask set from src.
func NewMasks[W math.Word](src prng.Source) (Masks[W], error) {
	var m Masks[W]
	var err error

	m.S, err = prng.Sample[W](src)
	if err != nil {
		return m, err
	}
	m.T, err = prng.Sample[W](src)
	if err != nil {
		return m, err
	}
	m.U, err = prng.Sample[W](src)
	if err != nil {
		return m, err
	}
	return m, nil
}
