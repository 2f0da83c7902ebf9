//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mask

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/markkurossi/masking/pkg/math"
	"github.com/markkurossi/masking/prng"
)

var (
	ErrInvalidWidth = errors.New("mask: invalid width")
	ErrWordRange    = errors.New("mask: word out of range")
)

// Width specifies the word size in bits for the uint64 entry points.
type Width int

// Supported word widths.
const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

// Widths lists all supported word widths.
var Widths = []Width{W8, W16, W32, W64}

// ParseWidth parses the word width from its decimal string
// representation.
func ParseWidth(s string) (Width, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, s)
	}
	w := Width(v)
	return w, w.Validate()
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", int(w))
}

// Validate checks that the width is supported.
func (w Width) Validate() error {
	_, ok := widthOps[w]
	if !ok {
		return fmt.Errorf("%w: %d: expected 8, 16, 32, or 64",
			ErrInvalidWidth, int(w))
	}
	return nil
}

// Mask returns the bitmask of all word bits. It returns 0 for
// unsupported widths.
func (w Width) Mask() uint64 {
	switch w {
	case W8:
		return math.MaxUint8
	case W16:
		return math.MaxUint16
	case W32:
		return math.MaxUint32
	case W64:
		return math.MaxUint64
	default:
		return 0
	}
}

// ArithToBool runs ArithToBool on w-bit words.
func (w Width) ArithToBool(src prng.Source, a, r uint64) (uint64, error) {
	o, err := w.dispatch(a, r)
	if err != nil {
		return 0, err
	}
	return o.arithToBool(src, a, r)
}

// BoolToArith runs BoolToArith on w-bit words.
func (w Width) BoolToArith(src prng.Source, x1, r uint64) (uint64, error) {
	o, err := w.dispatch(x1, r)
	if err != nil {
		return 0, err
	}
	return o.boolToArith(src, x1, r)
}

// KoggeStoneArithToBool runs KoggeStoneArithToBool on w-bit words.
func (w Width) KoggeStoneArithToBool(a, r, s, t, u uint64) (uint64, error) {
	o, err := w.dispatch(a, r, s, t, u)
	if err != nil {
		return 0, err
	}
	return o.ksArithToBool(a, r, s, t, u), nil
}

// MaskedAdd runs MaskedAdd on w-bit words.
func (w Width) MaskedAdd(x1, s, y1, r, t, u uint64) (z1, z2 uint64,
	err error) {

	o, err := w.dispatch(x1, s, y1, r, t, u)
	if err != nil {
		return 0, 0, err
	}
	z1, z2 = o.maskedAdd(x1, s, y1, r, t, u)
	return z1, z2, nil
}

// dispatch returns the operations of the width w. It fails if the
// width is unsupported or if any of the words does not fit into a
// w-bit word.
func (w Width) dispatch(words ...uint64) (*ops, error) {
	o, ok := widthOps[w]
	if !ok {
		return nil, w.Validate()
	}
	mask := w.Mask()
	for _, v := range words {
		if v&^mask != 0 {
			return nil, fmt.Errorf("%w: %#x does not fit %v word",
				ErrWordRange, v, w)
		}
	}
	return o, nil
}

type ops struct {
	arithToBool   func(src prng.Source, a, r uint64) (uint64, error)
	boolToArith   func(src prng.Source, x1, r uint64) (uint64, error)
	ksArithToBool func(a, r, s, t, u uint64) uint64
	maskedAdd     func(x1, s, y1, r, t, u uint64) (uint64, uint64)
}

var widthOps = map[Width]*ops{
	W8:  newOps[uint8](),
	W16: newOps[uint16](),
	W32: newOps[uint32](),
	W64: newOps[uint64](),
}

func newOps[W math.Word]() *ops {
	return &ops{
		arithToBool: func(src prng.Source, a, r uint64) (uint64, error) {
			x1, err := ArithToBool(src, W(a), W(r))
			return uint64(x1), err
		},
		boolToArith: func(src prng.Source, x1, r uint64) (uint64, error) {
			a, err := BoolToArith(src, W(x1), W(r))
			return uint64(a), err
		},
		ksArithToBool: func(a, r, s, t, u uint64) uint64 {
			return uint64(KoggeStoneArithToBool(W(a), W(r), W(s), W(t),
				W(u)))
		},
		maskedAdd: func(x1, s, y1, r, t, u uint64) (uint64, uint64) {
			z1, z2 := MaskedAdd(W(x1), W(s), W(y1), W(r), W(t), W(u))
			return uint64(z1), uint64(z2)
		},
	}
}
