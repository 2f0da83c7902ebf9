//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package math

import (
	"testing"
)

type myWord uint16

func TestBits(t *testing.T) {
	if b := Bits[uint8](); b != 8 {
		t.Errorf("Bits[uint8]=%v, expected 8", b)
	}
	if b := Bits[uint16](); b != 16 {
		t.Errorf("Bits[uint16]=%v, expected 16", b)
	}
	if b := Bits[uint32](); b != 32 {
		t.Errorf("Bits[uint32]=%v, expected 32", b)
	}
	if b := Bits[uint64](); b != 64 {
		t.Errorf("Bits[uint64]=%v, expected 64", b)
	}
	if b := Bits[myWord](); b != 16 {
		t.Errorf("Bits[myWord]=%v, expected 16", b)
	}
	if uint64(^uint32(0)) != MaxUint32 {
		t.Errorf("MaxUint32 mismatch")
	}
}
