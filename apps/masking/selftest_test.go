//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"testing"

	"github.com/markkurossi/masking/mask"
	"github.com/markkurossi/masking/prng"
)

func TestSelfTests(t *testing.T) {
	src, err := prng.NewChaCha20([]byte("self-test key 0123456789abcdef!!"))
	if err != nil {
		t.Fatalf("NewChaCha20: %v", err)
	}
	for _, width := range mask.Widths {
		for _, test := range selfTests {
			err := runSelfTest(src, width, test, 1001, 3)
			if err != nil {
				t.Errorf("%v %s: %v", width, test.name, err)
			}
		}
	}
}

func TestSelfTestSharedSource(t *testing.T) {
	src := prng.NewReader(nil)
	for _, test := range selfTests {
		err := runSelfTest(src, mask.W16, test, 100, 4)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
		}
	}
}

func TestWorkerSource(t *testing.T) {
	src, err := prng.NewChaCha20([]byte("self-test key 0123456789abcdef!!"))
	if err != nil {
		t.Fatalf("NewChaCha20: %v", err)
	}
	w0, err := workerSource(src, "test", 0)
	if err != nil {
		t.Fatalf("workerSource: %v", err)
	}
	w1, err := workerSource(src, "test", 1)
	if err != nil {
		t.Fatalf("workerSource: %v", err)
	}
	v0, _ := w0.Uint64()
	v1, _ := w1.Uint64()
	if v0 == v1 {
		t.Errorf("worker sources are not independent")
	}

	shared := prng.NewReader(nil)
	w, err := workerSource(shared, "test", 0)
	if err != nil {
		t.Fatalf("workerSource: %v", err)
	}
	if w != prng.Source(shared) {
		t.Errorf("shared source was not reused")
	}
}

func TestAssessInvalidWidth(t *testing.T) {
	_, err := assess(prng.NewReader(nil), mask.Width(24), 0, nil)
	if err == nil {
		t.Errorf("assess accepted an invalid width")
	}
}
