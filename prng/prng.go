//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prng implements the random sources that provide masks for
// the masking algorithms. A Source must return independent, uniformly
// distributed words. The keyed sources are deterministic and intended
// for reproducible tests and demonstrations; production use requires
// a Source over a cryptographically secure entropy source such as
// crypto/rand.
package prng

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"github.com/markkurossi/masking/pkg/math"
)

// Source provides independent, uniformly distributed 64-bit random
// words. Implementations must be safe for concurrent use so that two
// callers never observe the same word.
type Source interface {
	Uint64() (uint64, error)
}

// Sample returns a uniformly distributed random word of the width of
// the word type W.
func Sample[W math.Word](src Source) (W, error) {
	v, err := src.Uint64()
	if err != nil {
		return 0, err
	}
	return W(v), nil
}

// Reader implements Source over an io.Reader.
type Reader struct {
	m   sync.Mutex
	r   io.Reader
	buf [8]byte
}

// NewReader creates a new Source reading random bytes from r. If r is
// nil, the source reads from crypto/rand.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		r = rand.Reader
	}
	return &Reader{
		r: r,
	}
}

// Uint64 implements Source.Uint64.
func (rd *Reader) Uint64() (uint64, error) {
	rd.m.Lock()
	defer rd.m.Unlock()

	_, err := io.ReadFull(rd.r, rd.buf[:])
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(rd.buf[:]), nil
}
