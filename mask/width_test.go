//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mask

import (
	"errors"
	"testing"
)

func TestWidthValidate(t *testing.T) {
	for _, w := range Widths {
		if err := w.Validate(); err != nil {
			t.Errorf("%v: %v", w, err)
		}
	}
	for _, w := range []Width{0, 1, 7, 12, 24, 31, 128, -8} {
		if err := w.Validate(); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("Width(%d).Validate: got %v", int(w), err)
		}
		if w.Mask() != 0 {
			t.Errorf("Width(%d).Mask=%x", int(w), w.Mask())
		}
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in    string
		width Width
		valid bool
	}{
		{"8", W8, true},
		{"16", W16, true},
		{"32", W32, true},
		{"64", W64, true},
		{"12", 0, false},
		{"", 0, false},
		{"eight", 0, false},
	}
	for idx, test := range tests {
		w, err := ParseWidth(test.in)
		if test.valid {
			if err != nil || w != test.width {
				t.Errorf("TestParseWidth-%d: %q: %v %v", idx, test.in, w, err)
			}
		} else if !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("TestParseWidth-%d: %q: got error %v", idx, test.in, err)
		}
	}
}

func TestWidthDispatch(t *testing.T) {
	src := newTestSource(t)

	for _, w := range Widths {
		m := w.Mask()
		for i := 0; i < 1000; i++ {
			v := randWords[uint64](t, src, 6)
			for j := range v {
				v[j] &= m
			}
			a, r := v[0], v[1]

			x1, err := w.ArithToBool(src, a, r)
			if err != nil {
				t.Fatalf("%v ArithToBool: %v", w, err)
			}
			if x1^r != (a+r)&m {
				t.Fatalf("%v ArithToBool(%x, %x)=%x", w, a, r, x1)
			}
			a2, err := w.BoolToArith(src, x1, r)
			if err != nil {
				t.Fatalf("%v BoolToArith: %v", w, err)
			}
			if a2 != a {
				t.Fatalf("%v BoolToArith(%x, %x)=%x, expected %x",
					w, x1, r, a2, a)
			}
			x1, err = w.KoggeStoneArithToBool(a, r, v[2], v[3], v[4])
			if err != nil {
				t.Fatalf("%v KoggeStoneArithToBool: %v", w, err)
			}
			if x1^r != (a+r)&m {
				t.Fatalf("%v KoggeStoneArithToBool(%x, %x)=%x", w, a, r, x1)
			}
			z1, z2, err := w.MaskedAdd(a, v[2], r, v[3], v[4], v[5])
			if err != nil {
				t.Fatalf("%v MaskedAdd: %v", w, err)
			}
			if z1^z2 != ((a^v[2])+(r^v[3]))&m {
				t.Fatalf("%v MaskedAdd: %x^%x", w, z1, z2)
			}
		}
	}
}

func TestWidthErrors(t *testing.T) {
	src := newTestSource(t)

	var w Width = 24
	if _, err := w.ArithToBool(src, 1, 2); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("ArithToBool: %v", err)
	}
	if _, err := w.BoolToArith(src, 1, 2); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("BoolToArith: %v", err)
	}
	_, err := w.KoggeStoneArithToBool(1, 2, 3, 4, 5)
	if !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("KoggeStoneArithToBool: %v", err)
	}
	if _, _, err := w.MaskedAdd(1, 2, 3, 4, 5, 6); !errors.Is(err,
		ErrInvalidWidth) {
		t.Errorf("MaskedAdd: %v", err)
	}

	if _, err := W8.ArithToBool(src, 0x100, 2); !errors.Is(err,
		ErrWordRange) {
		t.Errorf("W8.ArithToBool(0x100): %v", err)
	}
	if _, _, err := W16.MaskedAdd(1, 2, 3, 4, 5, 0x10000); !errors.Is(err,
		ErrWordRange) {
		t.Errorf("W16.MaskedAdd(u=0x10000): %v", err)
	}
	if _, err := W32.KoggeStoneArithToBool(1, 1<<32, 3, 4, 5); !errors.Is(err,
		ErrWordRange) {
		t.Errorf("W32.KoggeStoneArithToBool(r=1<<32): %v", err)
	}
}
