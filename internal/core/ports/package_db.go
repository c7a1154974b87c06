package ports

import (
	"context"

	"go.trai.ch/sack/internal/core/domain"
)

// PackageDB is the per-package metadata store kept alongside the installed database.
//
//go:generate mockgen -source=package_db.go -destination=mocks/mock_package_db.go -package=mocks
type PackageDB interface {
	// Checksum reports the recorded checksum of an installed package.
	// A missing record is ChecksumAbsent; only an unreadable store is ChecksumLookupFailed.
	Checksum(ctx context.Context, pkg *domain.Package) domain.ChecksumResult

	// FromRepo returns the repository an installed package was installed from,
	// or "" when the store does not know.
	FromRepo(ctx context.Context, pkg *domain.Package) (string, error)

	// Record writes metadata fields for an installed package.
	Record(ctx context.Context, pkg *domain.Package, fields map[string]string) error
}

// PackageDBProvider opens the metadata store of a configuration.
type PackageDBProvider interface {
	NewPackageDB(cfg *domain.Config) PackageDB
}
