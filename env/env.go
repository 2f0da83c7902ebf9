//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the masking system.
package env

import (
	"crypto/rand"
	"io"

	"github.com/markkurossi/masking/prng"
)

// Config defines the global system configuration. Config must not be
// modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	// Rand specifies the entropy source for masks. If unset,
	// crypto/rand is used.
	Rand io.Reader

	// Seed specifies a 32-byte key for a deterministic ChaCha20 mask
	// source. The seed overrides Rand. Seeded sources are for tests
	// and reproducible demonstrations only.
	Seed []byte

	Verbose bool
}

// GetRandom returns the source of entropy for masks.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// NewSource creates a new mask source for the configuration.
func (config *Config) NewSource() (prng.Source, error) {
	if len(config.Seed) > 0 {
		src, err := prng.NewChaCha20(config.Seed)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return prng.NewReader(config.GetRandom()), nil
}
