// Package keyring reads the OpenPGP keys a repository is configured to trust.
package keyring

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	armorPrefix = []byte("-----BEGIN ")
	errNoKeys   = errors.New("no keys found")
)

// KeyRing implements ports.KeyRing on local key files.
type KeyRing struct{}

// New creates a KeyRing.
func New() *KeyRing {
	return &KeyRing{}
}

// Keys reads every gpgkey location of repo. Remote and missing locations are skipped.
func (k *KeyRing) Keys(ctx context.Context, repo domain.Repo) ([]domain.TrustedKey, error) {
	var keys []domain.TrustedKey
	for _, loc := range repo.GPGKeys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, ok := localPath(loc)
		if !ok {
			continue
		}

		//nolint:gosec // Path comes from the repository configuration
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrKeyReadFailed.Error()), "path", path)
		}

		entities, err := parse(data)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrKeyReadFailed.Error()), "path", path)
			return nil, zerr.With(err, "repo", repo.ID)
		}

		for _, e := range entities {
			keys = append(keys, toTrustedKey(e, path))
		}
	}
	return keys, nil
}

func localPath(loc string) (string, bool) {
	switch {
	case strings.HasPrefix(loc, "file://"):
		return strings.TrimPrefix(loc, "file://"), true
	case strings.Contains(loc, "://"):
		return "", false
	default:
		return loc, loc != ""
	}
}

func parse(data []byte) (openpgp.EntityList, error) {
	var (
		el  openpgp.EntityList
		err error
	)
	if bytes.HasPrefix(bytes.TrimSpace(data), armorPrefix) {
		el, err = openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	} else {
		el, err = openpgp.ReadKeyRing(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	if len(el) == 0 {
		return nil, errNoKeys
	}
	return el, nil
}

func toTrustedKey(e *openpgp.Entity, source string) domain.TrustedKey {
	ids := make([]string, 0, len(e.Identities))
	for name := range e.Identities {
		ids = append(ids, name)
	}
	slices.Sort(ids)

	return domain.TrustedKey{
		ID:      e.PrimaryKey.KeyIdString(),
		UserIDs: ids,
		Source:  source,
	}
}
