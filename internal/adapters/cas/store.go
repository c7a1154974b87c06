// Package cas persists saved fingerprints, one JSON file per install root.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.FingerprintStore using a file-per-install-root strategy.
type Store struct{}

// NewStore creates a new FingerprintStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the record saved for an install root.
func (s *Store) Get(cacheDir, installRoot string) (*domain.FingerprintRecord, error) {
	filename := s.getFilename(cacheDir, installRoot)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var record domain.FingerprintRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	return &record, nil
}

// Put stores the record, replacing the previous one for the same install root.
func (s *Store) Put(cacheDir string, record domain.FingerprintRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(cacheDir, record.InstallRoot)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Clean removes every saved record below cacheDir.
func (s *Store) Clean(cacheDir string) error {
	if err := os.RemoveAll(domain.StorePath(cacheDir)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", domain.StorePath(cacheDir))
	}
	return nil
}

func (s *Store) getFilename(cacheDir, installRoot string) string {
	hash := sha256.Sum256([]byte(installRoot))
	return filepath.Join(domain.StorePath(cacheDir), hex.EncodeToString(hash[:])+".json")
}
