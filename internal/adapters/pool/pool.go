// Package pool holds the loaded package universe: the installed set followed by each repository.
package pool

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/sack/internal/adapters/repomd"
	"go.trai.ch/sack/internal/adapters/rpmdb"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/zerr"
)

// SystemLoader reads the installed package set.
type SystemLoader interface {
	Load(ctx context.Context) ([]*domain.Package, error)
}

// RepoLoader reads the packages of a repository.
type RepoLoader interface {
	Load(repo domain.Repo) ([]*domain.Package, error)
}

// FileReader reads a single package file. A SystemLoader implementing it
// enables AddCmdlinePackage.
type FileReader interface {
	ReadFile(path string) (*domain.Package, error)
}

type repoPackages struct {
	id   string
	pkgs []*domain.Package
}

// Pool implements ports.PackagePool. It is safe for concurrent readers.
type Pool struct {
	system SystemLoader
	loader RepoLoader

	mu        sync.RWMutex
	installed []*domain.Package
	repos     []repoPackages
	cmdline   []*domain.Package
}

// New creates an empty pool.
func New(system SystemLoader, loader RepoLoader) *Pool {
	return &Pool{system: system, loader: loader}
}

// LoadSystemRepo replaces the installed set.
func (p *Pool) LoadSystemRepo(ctx context.Context) error {
	pkgs, err := p.system.Load(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.installed = pkgs
	return nil
}

// LoadRepo loads a repository. Loading an id again replaces its packages in place.
func (p *Pool) LoadRepo(ctx context.Context, repo domain.Repo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if repo.ID == domain.SystemRepoID || repo.ID == domain.CmdlineRepoID {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRepoID, "reserved repository id"), "repo", repo.ID)
	}

	pkgs, err := p.loader.Load(repo)
	if err != nil {
		return zerr.With(err, "repo", repo.ID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.repos {
		if p.repos[i].id == repo.ID {
			p.repos[i].pkgs = pkgs
			return nil
		}
	}
	p.repos = append(p.repos, repoPackages{id: repo.ID, pkgs: pkgs})
	return nil
}

// AddCmdlinePackage reads a local package file into the @commandline repository.
// Adding the same path twice yields the package already added.
func (p *Pool) AddCmdlinePackage(ctx context.Context, path string) (*domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fr, ok := p.system.(FileReader)
	if !ok {
		return nil, zerr.With(zerr.New("package files are not supported by this pool"), "path", path)
	}

	p.mu.RLock()
	for _, pkg := range p.cmdline {
		if pkg.Location == path {
			p.mu.RUnlock()
			return pkg, nil
		}
	}
	p.mu.RUnlock()

	pkg, err := fr.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pkg.Repo = domain.NewInternedString(domain.CmdlineRepoID)
	pkg.Location = path

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cmdline = append(p.cmdline, pkg)
	return pkg, nil
}

// Packages returns the installed packages, then each repository in load order,
// then the command line packages.
func (p *Pool) Packages(ctx context.Context) ([]*domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	n := len(p.installed) + len(p.cmdline)
	for _, r := range p.repos {
		n += len(r.pkgs)
	}
	out := make([]*domain.Package, 0, n)
	out = append(out, p.installed...)
	for _, r := range p.repos {
		out = append(out, r.pkgs...)
	}
	out = append(out, p.cmdline...)
	return out, nil
}

// RepoIDs returns the ids of the loaded repositories in load order.
func (p *Pool) RepoIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.repos))
	for _, r := range p.repos {
		ids = append(ids, r.id)
	}
	return slices.Clip(ids)
}

// Provider implements ports.PoolProvider on the on-disk installed database and local rpm-md repositories.
type Provider struct{}

// NewProvider creates a Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// NewPool creates an empty pool reading the installed database configured in cfg.
func (Provider) NewPool(cfg *domain.Config) ports.PackagePool {
	return New(rpmdb.NewReader(cfg.RPMDBDir), repomd.NewLoader())
}
