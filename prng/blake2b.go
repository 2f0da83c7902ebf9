//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prng

import (
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Blake2b implements a deterministic keyed Source over the BLAKE2b
// extendable output function. A nil key gives a fixed, public stream.
type Blake2b struct {
	m   sync.Mutex
	xof blake2b.XOF
	buf [8]byte
}

// NewBlake2b creates a new BLAKE2b source. The key can be at most 64
// bytes long.
func NewBlake2b(key []byte) (*Blake2b, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	return &Blake2b{
		xof: xof,
	}, nil
}

// Uint64 implements Source.Uint64.
func (b *Blake2b) Uint64() (uint64, error) {
	b.m.Lock()
	defer b.m.Unlock()

	_, err := io.ReadFull(b.xof, b.buf[:])
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b.buf[:]), nil
}

// Reset resets the source to the beginning of its stream.
func (b *Blake2b) Reset() {
	b.m.Lock()
	defer b.m.Unlock()
	b.xof.Reset()
}
