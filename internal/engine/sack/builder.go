package sack

import (
	"context"
	"os"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder assembles sacks from a configuration.
type Builder struct {
	cfg      *domain.Config
	provider ports.PoolProvider
}

// NewBuilder creates a Builder.
func NewBuilder(cfg *domain.Config, provider ports.PoolProvider) *Builder {
	return &Builder{cfg: cfg, provider: provider}
}

// Build prepares the cache directory and returns an empty, configured sack.
func (b *Builder) Build(_ context.Context) (*Sack, error) {
	if err := os.MkdirAll(b.cfg.CacheDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", b.cfg.CacheDir)
	}

	s := New(b.provider.NewPool(b.cfg))
	s.Configure(b.cfg.InstallOnly, b.cfg.InstallOnlyLimit)
	return s, nil
}

// RPMDBSack returns a sack holding only the installed package set.
func (b *Builder) RPMDBSack(ctx context.Context) (*Sack, error) {
	s, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.pool.LoadSystemRepo(ctx); err != nil {
		return nil, zerr.Wrap(err, "failed to load installed packages")
	}
	return s, nil
}

// FullSack returns a sack holding the installed package set and every enabled repository.
func (b *Builder) FullSack(ctx context.Context) (*Sack, error) {
	s, err := b.RPMDBSack(ctx)
	if err != nil {
		return nil, err
	}

	for _, repo := range b.cfg.EnabledRepos() {
		if err := s.pool.LoadRepo(ctx, repo); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to load repository"), "repo", repo.ID)
		}
	}
	return s, nil
}
