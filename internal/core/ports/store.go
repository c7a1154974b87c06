package ports

import "go.trai.ch/sack/internal/core/domain"

// FingerprintStore defines the interface for persisting fingerprints between runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get retrieves the record saved for an install root below cacheDir.
	// Returns nil, nil if not found.
	Get(cacheDir, installRoot string) (*domain.FingerprintRecord, error)

	// Put stores the record below cacheDir, replacing any previous one for the same install root.
	Put(cacheDir string, record domain.FingerprintRecord) error

	// Clean removes every saved record below cacheDir.
	Clean(cacheDir string) error
}
