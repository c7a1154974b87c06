package ports

import (
	"context"

	"go.trai.ch/sack/internal/core/domain"
)

// KeyRing looks up the trusted signing keys configured for a repository.
//
//go:generate mockgen -source=keyring.go -destination=mocks/mock_keyring.go -package=mocks
type KeyRing interface {
	// Keys returns the keys that can be read from the repository's gpgkey locations.
	// Unreadable or missing key files yield no keys rather than an error;
	// only a malformed key file is reported as ErrKeyReadFailed.
	Keys(ctx context.Context, repo domain.Repo) ([]domain.TrustedKey, error)
}
