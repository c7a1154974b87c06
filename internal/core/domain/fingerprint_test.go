package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sack/internal/core/domain"
)

const emptySHA1 = "da39a3ee5e6b4b0d3255bfef95601890afd80709"

func newPkg(name string, epoch uint64, version, release, arch string) *domain.Package {
	return &domain.Package{
		Name:    name,
		Epoch:   epoch,
		Version: version,
		Release: release,
		Arch:    domain.NewInternedString(arch),
		Repo:    domain.NewInternedString(domain.SystemRepoID),
	}
}

type step struct {
	pkg  *domain.Package
	csum *domain.ChecksumEntry
}

func feed(steps ...step) *domain.Fingerprint {
	fp := domain.NewFingerprint()
	for _, s := range steps {
		fp.Update(s.pkg, s.csum)
	}
	return fp
}

func TestFingerprint_Empty(t *testing.T) {
	fp := domain.NewFingerprint()

	assert.Equal(t, uint64(0), fp.Count())
	assert.Equal(t, "0:"+emptySHA1, fp.String())
}

func TestFingerprint_KnownVectors(t *testing.T) {
	foo := newPkg("foo", 0, "1.0", "1", "x86_64")
	bar := newPkg("bar", 2, "3.1", "4", "noarch")

	tests := []struct {
		name  string
		steps []step
		want  string
	}{
		{
			name:  "single package without checksum",
			steps: []step{{pkg: foo}},
			want:  "1:36e03ee2b1bfee68d5b824a37028d04fd966474c",
		},
		{
			name:  "checksum type and data follow the package string",
			steps: []step{{pkg: foo, csum: &domain.ChecksumEntry{Type: "sha256", Data: "abc"}}},
			want:  "1:5a87a7880b578f89b7eba05f202c2146c68cdd70",
		},
		{
			name:  "epoch is part of the package string",
			steps: []step{{pkg: foo}, {pkg: bar}},
			want:  "2:091db7d5775e7919ab3ba4181b80869896b02cc0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, feed(tt.steps...).String())
		})
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	steps := []step{
		{pkg: newPkg("glibc", 0, "2.39", "17.fc40", "x86_64"), csum: &domain.ChecksumEntry{Type: "sha256", Data: "0ff1ce"}},
		{pkg: newPkg("bash", 0, "5.2.26", "3.fc40", "x86_64")},
		{pkg: newPkg("tzdata", 0, "2024a", "5.fc40", "noarch"), csum: &domain.ChecksumEntry{Type: "md5", Data: "beef"}},
	}

	first := feed(steps...)
	second := feed(steps...)

	assert.Equal(t, first.String(), second.String())
	assert.True(t, first.Equal(second))
	assert.Equal(t, uint64(3), first.Count())
}

func TestFingerprint_OrderSensitive(t *testing.T) {
	a := newPkg("a", 0, "1", "1", "noarch")
	b := newPkg("b", 0, "1", "1", "noarch")

	ab := feed(step{pkg: a}, step{pkg: b})
	ba := feed(step{pkg: b}, step{pkg: a})

	assert.Equal(t, ab.Count(), ba.Count())
	assert.False(t, ab.Equal(ba))
	assert.NotEqual(t, ab.String(), ba.String())
}

func TestFingerprint_ChecksumChangesDigest(t *testing.T) {
	pkg := newPkg("openssl", 1, "3.2.1", "2.fc40", "x86_64")

	without := feed(step{pkg: pkg})
	with := feed(step{pkg: pkg, csum: &domain.ChecksumEntry{Type: "sha256", Data: "aa"}})
	other := feed(step{pkg: pkg, csum: &domain.ChecksumEntry{Type: "sha256", Data: "ab"}})

	assert.False(t, without.Equal(with))
	assert.False(t, with.Equal(other))
}

func TestFingerprint_EqualString(t *testing.T) {
	fp := feed(step{pkg: newPkg("foo", 0, "1.0", "1", "x86_64")})
	token := fp.String()

	t.Run("matches its own rendering", func(t *testing.T) {
		assert.True(t, fp.EqualString(token))
	})

	t.Run("differs only in count", func(t *testing.T) {
		assert.False(t, fp.EqualString("2:"+fp.HexDigest()))
	})

	t.Run("differs in digest", func(t *testing.T) {
		assert.False(t, fp.EqualString("1:"+emptySHA1))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.False(t, fp.EqualString(""))
	})
}

func TestFingerprint_EqualNil(t *testing.T) {
	fp := domain.NewFingerprint()

	assert.False(t, fp.Equal(nil))

	var missing *domain.Fingerprint
	assert.False(t, missing.Equal(fp))
	assert.False(t, missing.EqualString("0:"+emptySHA1))
}

func TestFingerprint_ReadDoesNotReset(t *testing.T) {
	fp := domain.NewFingerprint()
	fp.Update(newPkg("foo", 0, "1.0", "1", "x86_64"), nil)

	first := fp.String()
	require.Equal(t, first, fp.String())
	assert.Equal(t, first, fp.String())
}
