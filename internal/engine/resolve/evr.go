package resolve

import (
	"cmp"

	rpmutils "github.com/sassoftware/go-rpmutils"
	"go.trai.ch/sack/internal/core/domain"
)

// CompareEVR orders two packages by epoch, then version, then release, using rpm version comparison.
func CompareEVR(a, b *domain.Package) int {
	if c := cmp.Compare(a.Epoch, b.Epoch); c != 0 {
		return c
	}
	if c := rpmutils.Vercmp(a.Version, b.Version); c != 0 {
		return c
	}
	return rpmutils.Vercmp(a.Release, b.Release)
}
