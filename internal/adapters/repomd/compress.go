package repomd

import (
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// decompress wraps r in a decoder chosen by the file extension of name.
// Unknown extensions are read as plain XML.
func decompress(r io.Reader, name string) (io.ReadCloser, error) {
	switch filepath.Ext(name) {
	case ".gz":
		dec, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case ".xz":
		dec, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(dec), nil
	default:
		return io.NopCloser(r), nil
	}
}
