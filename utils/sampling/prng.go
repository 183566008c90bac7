// Package sampling provides a deterministic, seedable source of float64
// samples backed by a blake2b XOF, so that randomized checks are reproducible
// from a fixed key.
package sampling

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG is a deterministic byte stream: two instances created with the
// same key produce the same sequence.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a KeyedPRNG from the given key. A nil key is valid and
// yields the unkeyed blake2b stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	return &KeyedPRNG{key: key, xof: xof}, nil
}

// Key returns the key this stream was created with.
func (p *KeyedPRNG) Key() []byte {
	return p.key
}

// Read fills b with the next bytes of the stream.
func (p *KeyedPRNG) Read(b []byte) (int, error) {
	return p.xof.Read(b)
}

// Uint64 returns the next 8 bytes of the stream as a uint64.
func (p *KeyedPRNG) Uint64() uint64 {
	var b [8]byte
	if _, err := p.xof.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b[:])
}

// Float64 returns a sample in [min, max) derived from the next stream bytes.
func (p *KeyedPRNG) Float64(min, max float64) float64 {
	f := float64(p.Uint64()) / 1.8446744073709552e+19
	return min + f*(max-min)
}
