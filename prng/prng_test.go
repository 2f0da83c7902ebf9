//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prng

import (
	"bytes"
	"sync"
	"testing"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func sequence(t *testing.T, src Source, n int) []uint64 {
	var result []uint64
	for i := 0; i < n; i++ {
		v, err := src.Uint64()
		if err != nil {
			t.Fatalf("Uint64: %v", err)
		}
		result = append(result, v)
	}
	return result
}

func equal(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestChaCha20Deterministic(t *testing.T) {
	a, err := NewChaCha20(testKey)
	if err != nil {
		t.Fatalf("NewChaCha20: %v", err)
	}
	b, err := NewChaCha20(testKey)
	if err != nil {
		t.Fatalf("NewChaCha20: %v", err)
	}
	// Cross the keystream block boundary.
	sa := sequence(t, a, 200)
	sb := sequence(t, b, 200)
	if !equal(sa, sb) {
		t.Errorf("same key produced different streams")
	}
	if sa[0] == sa[1] && sa[1] == sa[2] {
		t.Errorf("stream is constant: %x", sa[:3])
	}
}

func TestChaCha20Fork(t *testing.T) {
	parent, err := NewChaCha20(testKey)
	if err != nil {
		t.Fatalf("NewChaCha20: %v", err)
	}
	c1, err := parent.Fork("worker-1")
	if err != nil {
		t.Fatalf("Fork: %v", err)
	}
	c2, err := parent.Fork("worker-2")
	if err != nil {
		t.Fatalf("Fork: %v", err)
	}
	c1b, err := parent.Fork("worker-1")
	if err != nil {
		t.Fatalf("Fork: %v", err)
	}
	s1 := sequence(t, c1, 16)
	s2 := sequence(t, c2, 16)
	s1b := sequence(t, c1b, 16)
	sp := sequence(t, parent, 16)

	if equal(s1, s2) {
		t.Errorf("forks with different labels produced the same stream")
	}
	if equal(s1, sp) {
		t.Errorf("fork produced the parent stream")
	}
	if !equal(s1, s1b) {
		t.Errorf("forks with the same label differ")
	}
}

func TestKeySizes(t *testing.T) {
	_, err := NewChaCha20(testKey[:16])
	if err == nil {
		t.Errorf("NewChaCha20 accepted a 16-byte key")
	}
	_, err = NewAESCTR(testKey[:15])
	if err == nil {
		t.Errorf("NewAESCTR accepted a 15-byte key")
	}
	_, err = NewBlake2b(make([]byte, 65))
	if err == nil {
		t.Errorf("NewBlake2b accepted a 65-byte key")
	}
}

func TestAESCTR(t *testing.T) {
	a, err := NewAESCTR(testKey[:16])
	if err != nil {
		t.Fatalf("NewAESCTR: %v", err)
	}
	b, err := NewAESCTR(testKey[:16])
	if err != nil {
		t.Fatalf("NewAESCTR: %v", err)
	}
	if !equal(sequence(t, a, 100), sequence(t, b, 100)) {
		t.Errorf("same key produced different streams")
	}
}

func TestBlake2bReset(t *testing.T) {
	b, err := NewBlake2b(testKey)
	if err != nil {
		t.Fatalf("NewBlake2b: %v", err)
	}
	s1 := sequence(t, b, 10)
	b.Reset()
	s2 := sequence(t, b, 10)
	if !equal(s1, s2) {
		t.Errorf("Reset did not restart the stream")
	}
}

func TestReader(t *testing.T) {
	data := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0xff, 0xee,
	}
	src := NewReader(bytes.NewReader(data))

	v, err := src.Uint64()
	if err != nil {
		t.Fatalf("Uint64: %v", err)
	}
	if v != 0x0807060504030201 {
		t.Errorf("Uint64=%x, expected 0807060504030201", v)
	}
	_, err = src.Uint64()
	if err == nil {
		t.Errorf("short read did not fail")
	}

	_, err = NewReader(nil).Uint64()
	if err != nil {
		t.Errorf("crypto/rand reader: %v", err)
	}
}

func TestSample(t *testing.T) {
	data := []byte{0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89}

	v8, err := Sample[uint8](NewReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if v8 != 0xab {
		t.Errorf("Sample[uint8]=%x, expected ab", v8)
	}
	v16, err := Sample[uint16](NewReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if v16 != 0xcdab {
		t.Errorf("Sample[uint16]=%x, expected cdab", v16)
	}
	_, err = Sample[uint32](NewReader(bytes.NewReader(nil)))
	if err == nil {
		t.Errorf("Sample from empty reader did not fail")
	}
}

func TestConcurrent(t *testing.T) {
	src, err := NewChaCha20(testKey)
	if err != nil {
		t.Fatalf("NewChaCha20: %v", err)
	}
	const workers = 4
	const count = 1000

	var wg sync.WaitGroup
	results := make([][]uint64, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < count; i++ {
				v, err := src.Uint64()
				if err != nil {
					return
				}
				results[w] = append(results[w], v)
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	for w, r := range results {
		if len(r) != count {
			t.Fatalf("worker %d: got %d words", w, len(r))
		}
		for _, v := range r {
			if seen[v] {
				t.Fatalf("word %x observed twice", v)
			}
			seen[v] = true
		}
	}
}

func BenchmarkChaCha20(b *testing.B) {
	src, err := NewChaCha20(testKey)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Uint64()
	}
}

func BenchmarkAESCTR(b *testing.B) {
	src, err := NewAESCTR(testKey)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Uint64()
	}
}

func BenchmarkReader(b *testing.B) {
	src := NewReader(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Uint64()
	}
}
