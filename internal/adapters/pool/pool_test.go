package pool_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sack/internal/adapters/pool"
	"go.trai.ch/sack/internal/core/domain"
)

type systemFunc func(ctx context.Context) ([]*domain.Package, error)

func (f systemFunc) Load(ctx context.Context) ([]*domain.Package, error) { return f(ctx) }

type repoFunc func(repo domain.Repo) ([]*domain.Package, error)

func (f repoFunc) Load(repo domain.Repo) ([]*domain.Package, error) { return f(repo) }

func pkg(name, repo string) *domain.Package {
	return &domain.Package{
		Name:    name,
		Version: "1",
		Release: "1",
		Arch:    domain.NewInternedString("noarch"),
		Repo:    domain.NewInternedString(repo),
	}
}

func names(pkgs []*domain.Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.Repo.String()+"/"+p.Name)
	}
	return out
}

func newPool() *pool.Pool {
	system := systemFunc(func(context.Context) ([]*domain.Package, error) {
		return []*domain.Package{pkg("bash", domain.SystemRepoID), pkg("glibc", domain.SystemRepoID)}, nil
	})
	repos := repoFunc(func(repo domain.Repo) ([]*domain.Package, error) {
		return []*domain.Package{pkg(repo.ID+"-pkg", repo.ID)}, nil
	})
	return pool.New(system, repos)
}

func TestPool_PackagesOrder(t *testing.T) {
	ctx := context.Background()
	p := newPool()

	require.NoError(t, p.LoadRepo(ctx, domain.Repo{ID: "updates"}))
	require.NoError(t, p.LoadSystemRepo(ctx))
	require.NoError(t, p.LoadRepo(ctx, domain.Repo{ID: "fedora"}))

	pkgs, err := p.Packages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"@System/bash",
		"@System/glibc",
		"updates/updates-pkg",
		"fedora/fedora-pkg",
	}, names(pkgs))
	assert.Equal(t, []string{"updates", "fedora"}, p.RepoIDs())
}

func TestPool_ReloadReplaces(t *testing.T) {
	ctx := context.Background()
	p := newPool()

	require.NoError(t, p.LoadRepo(ctx, domain.Repo{ID: "a"}))
	require.NoError(t, p.LoadRepo(ctx, domain.Repo{ID: "b"}))
	require.NoError(t, p.LoadRepo(ctx, domain.Repo{ID: "a"}))
	require.NoError(t, p.LoadSystemRepo(ctx))
	require.NoError(t, p.LoadSystemRepo(ctx))

	pkgs, err := p.Packages(ctx)
	require.NoError(t, err)
	assert.Len(t, pkgs, 4)
	assert.Equal(t, []string{"a", "b"}, p.RepoIDs())
}

func TestPool_Errors(t *testing.T) {
	ctx := context.Background()
	errLoad := errors.New("boom")

	failing := pool.New(
		systemFunc(func(context.Context) ([]*domain.Package, error) { return nil, errLoad }),
		repoFunc(func(domain.Repo) ([]*domain.Package, error) { return nil, errLoad }),
	)

	t.Run("system", func(t *testing.T) {
		assert.ErrorIs(t, failing.LoadSystemRepo(ctx), errLoad)
	})

	t.Run("repo", func(t *testing.T) {
		err := failing.LoadRepo(ctx, domain.Repo{ID: "fedora"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("reserved id", func(t *testing.T) {
		err := newPool().LoadRepo(ctx, domain.Repo{ID: domain.SystemRepoID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInvalidRepoID.Error())
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := newPool().Packages(cctx)
		require.ErrorIs(t, err, context.Canceled)
		require.ErrorIs(t, newPool().LoadRepo(cctx, domain.Repo{ID: "x"}), context.Canceled)
	})
}

func TestProvider_NewPool(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig(root)

	rpmdbDir := cfg.RPMDBDir
	require.NoError(t, os.MkdirAll(rpmdbDir, domain.DirPerm))
	fixture, err := os.ReadFile(filepath.Join("..", "rpmdb", "testdata", "zero-epoch-0.1-1.x86_64.rpm"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(rpmdbDir, "zero-epoch-0.1-1.x86_64.rpm"), fixture, domain.FilePerm))

	p := pool.NewProvider().NewPool(cfg)
	require.NoError(t, p.LoadSystemRepo(context.Background()))

	pkgs, err := p.Packages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "zero-epoch-0.1-1.x86_64", pkgs[0].String())
	assert.True(t, pkgs[0].Installed())
}

type fileSystem struct {
	systemFunc
	reads int
}

func (f *fileSystem) ReadFile(path string) (*domain.Package, error) {
	f.reads++
	if filepath.Ext(path) != ".rpm" {
		return nil, errors.New("not a package")
	}
	return pkg(filepath.Base(path), domain.SystemRepoID), nil
}

func TestPool_AddCmdlinePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("appended after repositories", func(t *testing.T) {
		system := &fileSystem{systemFunc: func(context.Context) ([]*domain.Package, error) {
			return []*domain.Package{pkg("bash", domain.SystemRepoID)}, nil
		}}
		p := pool.New(system, repoFunc(func(repo domain.Repo) ([]*domain.Package, error) {
			return []*domain.Package{pkg(repo.ID+"-pkg", repo.ID)}, nil
		}))

		added, err := p.AddCmdlinePackage(ctx, "/tmp/foo.rpm")
		require.NoError(t, err)
		assert.Equal(t, domain.CmdlineRepoID, added.Repo.String())
		assert.Equal(t, "/tmp/foo.rpm", added.Location)
		assert.False(t, added.Installed())

		again, err := p.AddCmdlinePackage(ctx, "/tmp/foo.rpm")
		require.NoError(t, err)
		assert.Same(t, added, again)
		assert.Equal(t, 1, system.reads)

		require.NoError(t, p.LoadSystemRepo(ctx))
		require.NoError(t, p.LoadRepo(ctx, domain.Repo{ID: "fedora"}))

		pkgs, err := p.Packages(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"@System/bash", "fedora/fedora-pkg", "@commandline/foo.rpm"}, names(pkgs))
	})

	t.Run("read error", func(t *testing.T) {
		p := pool.New(&fileSystem{}, repoFunc(nil))

		_, err := p.AddCmdlinePackage(ctx, "/tmp/foo.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a package")
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := newPool().AddCmdlinePackage(ctx, "/tmp/foo.rpm")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not supported")
	})

	t.Run("reserved id", func(t *testing.T) {
		err := newPool().LoadRepo(ctx, domain.Repo{ID: domain.CmdlineRepoID})
		assert.Contains(t, err.Error(), domain.ErrInvalidRepoID.Error())
	})
}

func TestProvider_CmdlinePackage(t *testing.T) {
	cfg := domain.DefaultConfig(t.TempDir())
	path, err := filepath.Abs(filepath.Join("..", "rpmdb", "testdata", "zero-epoch-0.1-1.x86_64.rpm"))
	require.NoError(t, err)

	p := pool.NewProvider().NewPool(cfg)
	added, err := p.AddCmdlinePackage(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "zero-epoch-0.1-1.x86_64", added.String())
	assert.Equal(t, domain.CmdlineRepoID, added.Repo.String())
}
