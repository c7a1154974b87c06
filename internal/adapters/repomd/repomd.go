// Package repomd loads repository packages from rpm-md metadata on the local filesystem.
package repomd

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/zerr"
)

const primaryType = "primary"

type repoMD struct {
	Data []repoData `xml:"data"`
}

type repoData struct {
	Type     string `xml:"type,attr"`
	Checksum struct {
		Type  string `xml:"type,attr"`
		Value string `xml:",chardata"`
	} `xml:"checksum"`
	Location struct {
		Href string `xml:"href,attr"`
	} `xml:"location"`
}

// BaseDir turns a repository base URL into a local directory.
// Only file:// URLs and plain paths are supported.
func BaseDir(baseURL string) (string, error) {
	switch {
	case strings.HasPrefix(baseURL, "file://"):
		return strings.TrimPrefix(baseURL, "file://"), nil
	case strings.Contains(baseURL, "://"):
		return "", zerr.With(zerr.New("only local repositories are supported"), "baseurl", baseURL)
	default:
		return baseURL, nil
	}
}

// Loader reads the packages of a repository.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the packages listed in the repository's primary metadata, in document order.
func (l *Loader) Load(repo domain.Repo) ([]*domain.Package, error) {
	base, err := BaseDir(repo.BaseURL)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRepoLoadFailed.Error())
	}

	primary, err := findPrimary(domain.RepoMDPath(base))
	if err != nil {
		return nil, err
	}

	path := filepath.Join(base, filepath.FromSlash(primary.Location.Href))
	if err := verifyChecksum(path, primary.Checksum.Type, primary.Checksum.Value); err != nil {
		return nil, err
	}

	//nolint:gosec // Path comes from the configured repository metadata
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoLoadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	r, err := decompress(f, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoLoadFailed.Error()), "path", path)
	}
	defer func() { _ = r.Close() }()

	pkgs, err := parsePrimary(r, repo.ID)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoLoadFailed.Error()), "path", path)
	}
	return pkgs, nil
}

func findPrimary(path string) (*repoData, error) {
	//nolint:gosec // Path is built from the configured repository base
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoLoadFailed.Error()), "path", path)
	}

	var md repoMD
	if err := xml.Unmarshal(data, &md); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoLoadFailed.Error()), "path", path)
	}

	for i := range md.Data {
		if md.Data[i].Type == primaryType && md.Data[i].Location.Href != "" {
			return &md.Data[i], nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrRepoPrimaryNotFound, domain.ErrRepoLoadFailed.Error()), "path", path)
}

// verifyChecksum checks sha256 checksums; other checksum types are not verified.
func verifyChecksum(path, typ, want string) error {
	if typ != "sha256" || want == "" {
		return nil
	}

	//nolint:gosec // Path comes from the configured repository metadata
	f, err := os.Open(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRepoLoadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRepoLoadFailed.Error()), "path", path)
	}

	if got := hex.EncodeToString(h.Sum(nil)); got != strings.TrimSpace(want) {
		err := zerr.With(errors.New("checksum mismatch"), "path", path)
		err = zerr.With(err, "expected", want)
		err = zerr.With(err, "actual", got)
		return zerr.Wrap(err, domain.ErrRepoLoadFailed.Error())
	}
	return nil
}
