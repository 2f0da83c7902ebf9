//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package prng

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
)

// stream implements Source over a keystream. The keystream is
// consumed in blocks of len(buf) bytes.
type stream struct {
	m   sync.Mutex
	s   cipher.Stream
	buf [512]byte
	pos int
}

func newStream(s cipher.Stream) *stream {
	st := &stream{
		s: s,
	}
	st.pos = len(st.buf)
	return st
}

// Uint64 implements Source.Uint64.
func (st *stream) Uint64() (uint64, error) {
	st.m.Lock()
	defer st.m.Unlock()

	if st.pos+8 > len(st.buf) {
		// Stream XOR of zeros gives the keystream.
		clear(st.buf[:])
		st.s.XORKeyStream(st.buf[:], st.buf[:])
		st.pos = 0
	}
	v := binary.LittleEndian.Uint64(st.buf[st.pos:])
	clear(st.buf[st.pos : st.pos+8])
	st.pos += 8

	return v, nil
}

// ChaCha20 implements a deterministic Source over the ChaCha20
// keystream. The nonce is zero so each key must be used for one stream
// only; use Fork to derive independent streams.
type ChaCha20 struct {
	*stream
	key [chacha20.KeySize]byte
}

// NewChaCha20 creates a new ChaCha20 source with the 32-byte key.
func NewChaCha20(key []byte) (*ChaCha20, error) {
	if len(key) != chacha20.KeySize {
		return nil, fmt.Errorf("prng: invalid ChaCha20 key size %d: "+
			"expected %d", len(key), chacha20.KeySize)
	}
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return nil, err
	}
	result := &ChaCha20{
		stream: newStream(c),
	}
	copy(result.key[:], key)

	return result, nil
}

// Fork derives a new ChaCha20 source whose key is BLAKE3(key||label).
// Sources forked with different labels produce independent streams
// which can be handed to concurrent callers.
func (c *ChaCha20) Fork(label string) (*ChaCha20, error) {
	hasher := blake3.New()
	hasher.Write(c.key[:])
	hasher.Write([]byte(label))
	return NewChaCha20(hasher.Sum(nil)[:chacha20.KeySize])
}

// AESCTR implements a deterministic Source over the AES-CTR keystream
// with a zero IV.
type AESCTR struct {
	*stream
}

// NewAESCTR creates a new AES-CTR source. The key must be 16, 24, or
// 32 bytes long.
func NewAESCTR(key []byte) (*AESCTR, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	var iv [aes.BlockSize]byte

	return &AESCTR{
		stream: newStream(cipher.NewCTR(block, iv[:])),
	}, nil
}
