package domain

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is the digest dnf uses for the rpmdb version; it is not a security boundary.
	"encoding/hex"
	"hash"
)

// Accumulator is a streaming, order-dependent checksum.
//
// Successive updates are equivalent to hashing the concatenation of every
// input in call order. Reading the digest does not reset the state.
type Accumulator struct {
	h hash.Hash
}

// NewAccumulator returns an accumulator over SHA-1.
func NewAccumulator() *Accumulator {
	return &Accumulator{h: sha1.New()} //nolint:gosec // see import
}

// Update folds b into the running state.
func (a *Accumulator) Update(b []byte) {
	if len(b) == 0 {
		return
	}
	// hash.Hash.Write never returns an error.
	_, _ = a.h.Write(b)
}

// UpdateString folds s into the running state.
func (a *Accumulator) UpdateString(s string) {
	if s == "" {
		return
	}
	_, _ = a.h.Write([]byte(s))
}

// Digest returns the raw digest of everything fed so far.
func (a *Accumulator) Digest() []byte {
	return a.h.Sum(nil)
}

// HexDigest returns the digest as lowercase hex.
func (a *Accumulator) HexDigest() string {
	return hex.EncodeToString(a.Digest())
}
