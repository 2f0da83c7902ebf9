//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mask

import (
	"errors"
	"testing"

	"github.com/markkurossi/masking/pkg/math"
	"github.com/markkurossi/masking/prng"
)

var errSource = errors.New("source failed")

type failingSource struct{}

func (f failingSource) Uint64() (uint64, error) {
	return 0, errSource
}

func newTestSource(t testing.TB) *prng.ChaCha20 {
	src, err := prng.NewChaCha20([]byte("mask test key 0123456789abcdef!!"))
	if err != nil {
		t.Fatalf("NewChaCha20: %v", err)
	}
	return src
}

func randWords[W math.Word](t testing.TB, src prng.Source, n int) []W {
	result := make([]W, n)
	for i := range result {
		v, err := prng.Sample[W](src)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		result[i] = v
	}
	return result
}

// maxRound returns the largest carry round reported to the probe.
func maxRound[W math.Word](run func(p Probe[W])) int {
	var result int
	run(func(step, name string, round int, v W) {
		if round > result {
			result = round
		}
	})
	return result
}
