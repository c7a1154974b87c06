package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sack/internal/app"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const configPath = "/etc/sack/sack.yaml"

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type fixture struct {
	cfg     *domain.Config
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	store   *mocks.MockFingerprintStore
	pools   *mocks.MockPoolProvider
	pool    *mocks.MockPackagePool
	dbs     *mocks.MockPackageDBProvider
	db      *mocks.MockPackageDB
	keys    *mocks.MockKeyRing
	watcher *mocks.MockWatcher
	app     *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := domain.DefaultConfig(t.TempDir())
	cfg.Repos = []domain.Repo{
		{ID: "fedora", Name: "Fedora", BaseURL: "/srv/fedora", Enabled: true},
		{ID: "debug", Name: "Debug", BaseURL: "/srv/debug"},
	}

	f := &fixture{
		cfg:     cfg,
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		store:   mocks.NewMockFingerprintStore(ctrl),
		pools:   mocks.NewMockPoolProvider(ctrl),
		pool:    mocks.NewMockPackagePool(ctrl),
		dbs:     mocks.NewMockPackageDBProvider(ctrl),
		db:      mocks.NewMockPackageDB(ctrl),
		keys:    mocks.NewMockKeyRing(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
	}
	f.app = app.New(f.loader, f.logger, f.store, f.pools, f.dbs, f.keys, f.watcher).
		WithClock(func() time.Time { return fixedTime })

	f.loader.EXPECT().LoadFile(configPath).Return(cfg, nil).AnyTimes()
	return f
}

// expectInstalled sets up a pool holding pkgs after the installed set is loaded.
func (f *fixture) expectInstalled(pkgs ...*domain.Package) {
	f.pools.EXPECT().NewPool(f.cfg).Return(f.pool)
	f.pool.EXPECT().LoadSystemRepo(gomock.Any()).Return(nil)
	f.pool.EXPECT().Packages(gomock.Any()).Return(pkgs, nil).AnyTimes()
}

// expectFull sets up a pool holding pkgs after the installed set and every enabled repository are loaded.
func (f *fixture) expectFull(pkgs ...*domain.Package) {
	f.pools.EXPECT().NewPool(f.cfg).Return(f.pool)
	f.pool.EXPECT().LoadSystemRepo(gomock.Any()).Return(nil)
	for _, repo := range f.cfg.EnabledRepos() {
		f.pool.EXPECT().LoadRepo(gomock.Any(), repo).Return(nil)
	}
	f.pool.EXPECT().Packages(gomock.Any()).Return(pkgs, nil).AnyTimes()
}

func installed(name string, epoch uint64, version, release, arch string) *domain.Package {
	return &domain.Package{
		Name:    name,
		Epoch:   epoch,
		Version: version,
		Release: release,
		Arch:    domain.NewInternedString(arch),
		Repo:    domain.NewInternedString(domain.SystemRepoID),
	}
}

func available(repo, name string, epoch uint64, version, release, arch string) *domain.Package {
	pkg := installed(name, epoch, version, release, arch)
	pkg.Repo = domain.NewInternedString(repo)
	return pkg
}

func TestApp_Clean(t *testing.T) {
	t.Run("removes the store", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.logger.EXPECT().Info("removing fingerprint store..."),
			f.store.EXPECT().Clean(f.cfg.CacheDir).Return(nil),
			f.logger.EXPECT().Info("removed fingerprint store"),
		)

		require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: configPath}))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)

		f.logger.EXPECT().Info("removing fingerprint store...")
		f.store.EXPECT().Clean(f.cfg.CacheDir).Return(errors.New("read-only file system"))

		err := f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: configPath})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to remove fingerprint store")
		assert.Contains(t, err.Error(), "read-only file system")
	})
}

func TestApp_ConfigDiscovery(t *testing.T) {
	t.Run("falls back to the working directory", func(t *testing.T) {
		f := newFixture(t)
		t.Chdir(t.TempDir())

		notFound := zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to locate configuration"), "cwd", "/x")
		f.loader.EXPECT().Load(gomock.Any()).Return(nil, notFound)
		f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
			assert.Contains(t, msg, "no sack.yaml found")
		})
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		var cacheDir string
		f.store.EXPECT().Clean(gomock.Any()).DoAndReturn(func(dir string) error {
			cacheDir = dir
			return nil
		})

		require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{}))
		assert.Contains(t, cacheDir, domain.DefaultCachePath())
	})

	t.Run("other load errors abort", func(t *testing.T) {
		f := newFixture(t)
		t.Chdir(t.TempDir())

		f.loader.EXPECT().Load(gomock.Any()).Return(nil, zerr.Wrap(domain.ErrConfigParseFailed, "bad yaml"))

		err := f.app.Clean(context.Background(), app.CleanOptions{})
		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	t.Run("explicit path errors abort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockConfigLoader(ctrl)
		a := app.New(loader, mocks.NewMockLogger(ctrl), nil, nil, nil, nil, nil)

		loader.EXPECT().LoadFile("missing.yaml").Return(nil, zerr.Wrap(domain.ErrConfigNotFound, "failed to read config file"))

		err := a.Clean(context.Background(), app.CleanOptions{ConfigPath: "missing.yaml"})
		require.ErrorIs(t, err, domain.ErrConfigNotFound)
	})
}
