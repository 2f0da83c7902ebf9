//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package math defines the fixed-width word types of the masking
// algorithms.
package math

import (
	"math/bits"
)

const (
	MaxUint8  = 0xff
	MaxUint16 = 0xffff
	MaxUint32 = 0xffffffff
	MaxUint64 = 0xffffffffffffffff
)

// Word defines the unsigned integer types that hold masked values. All
// arithmetic on a Word is modulo 2^Bits.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of the word type W in bits.
func Bits[W Word]() int {
	return bits.OnesCount64(uint64(^W(0)))
}
