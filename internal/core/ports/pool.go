package ports

import (
	"context"

	"go.trai.ch/sack/internal/core/domain"
)

// PackagePool is the native package collection a sack forwards into.
// It owns loading; callers only read from it.
//
//go:generate mockgen -source=pool.go -destination=mocks/mock_pool.go -package=mocks
type PackagePool interface {
	// LoadSystemRepo loads the installed package set as the @System repository.
	LoadSystemRepo(ctx context.Context) error

	// LoadRepo loads the metadata of a configured repository.
	LoadRepo(ctx context.Context, repo domain.Repo) error

	// Packages returns every loaded package in enumeration order.
	// Installed packages come first, in the order the installed database yields them,
	// followed by each repository in load order.
	Packages(ctx context.Context) ([]*domain.Package, error)

	// AddCmdlinePackage reads a local package file into the @commandline repository.
	AddCmdlinePackage(ctx context.Context, path string) (*domain.Package, error)
}

// PoolProvider creates empty pools for a configuration.
type PoolProvider interface {
	NewPool(cfg *domain.Config) PackagePool
}
