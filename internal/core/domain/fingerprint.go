package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Fingerprint summarizes an ordered package set as "<count>:<hexdigest>".
//
// The digest covers, in order, each package's canonical string followed by
// its checksum type and data when present. Packages are not sorted: the
// value depends on the order they are fed in, so it is only reproducible
// across processes when the producing enumeration order is stable.
//
// A Fingerprint is owned by a single caller and is not safe for concurrent updates.
type Fingerprint struct {
	count uint64
	acc   *Accumulator
}

// NewFingerprint returns an empty fingerprint.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{acc: NewAccumulator()}
}

// Update folds one package and its optional checksum into the fingerprint.
func (f *Fingerprint) Update(pkg fmt.Stringer, csum *ChecksumEntry) {
	f.count++
	f.acc.UpdateString(pkg.String())
	if csum != nil {
		f.acc.UpdateString(csum.Type)
		f.acc.UpdateString(csum.Data)
	}
}

// Count returns the number of packages folded in.
func (f *Fingerprint) Count() uint64 {
	return f.count
}

// Digest returns the raw digest bytes.
func (f *Fingerprint) Digest() []byte {
	return f.acc.Digest()
}

// HexDigest returns the digest as lowercase hex.
func (f *Fingerprint) HexDigest() string {
	return f.acc.HexDigest()
}

// String renders the external token "<count>:<hexdigest>".
func (f *Fingerprint) String() string {
	return strconv.FormatUint(f.count, 10) + ":" + f.acc.HexDigest()
}

// Equal compares count and raw digest bytes.
func (f *Fingerprint) Equal(other *Fingerprint) bool {
	if f == nil || other == nil {
		return false
	}
	if f.count != other.count {
		return false
	}
	return bytes.Equal(f.Digest(), other.Digest())
}

// EqualString compares against a rendered token.
func (f *Fingerprint) EqualString(token string) bool {
	if f == nil {
		return false
	}
	return f.String() == token
}

// FingerprintRecord is a fingerprint saved for later drift checks.
type FingerprintRecord struct {
	InstallRoot string    `json:"install_root,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Count       uint64    `json:"count,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
