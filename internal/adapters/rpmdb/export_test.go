// export_test.go exports private functions for white-box testing.
package rpmdb

import (
	rpmutils "github.com/sassoftware/go-rpmutils"
	"go.trai.ch/sack/internal/core/domain"
)

// Header mirrors the private header interface for test fakes.
type Header interface {
	GetNEVRA() (*rpmutils.NEVRA, error)
	GetStrings(tag int) ([]string, error)
	GetUint32s(tag int) ([]uint32, error)
}

// Convert exposes convert.
func Convert(hdr Header) (*domain.Package, error) {
	return convert(hdr)
}

// WithJobs overrides the parallelism of a Reader.
func (r *Reader) WithJobs(n int) *Reader {
	r.jobs = n
	return r
}
