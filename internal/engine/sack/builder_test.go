package sack_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports/mocks"
	"go.trai.ch/sack/internal/engine/sack"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) *domain.Config {
	t.Helper()
	cfg := domain.DefaultConfig(t.TempDir())
	cfg.Repos = []domain.Repo{
		{ID: "fedora", Enabled: true},
		{ID: "debug", Enabled: false},
		{ID: "updates", Enabled: true},
	}
	return cfg
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockPoolProvider(ctrl)
	pool := mocks.NewMockPackagePool(ctrl)

	cfg := testConfig(t)
	cfg.InstallOnlyLimit = 5
	provider.EXPECT().NewPool(cfg).Return(pool)

	s, err := sack.NewBuilder(cfg, provider).Build(context.Background())
	require.NoError(t, err)

	info, err := os.Stat(cfg.CacheDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, domain.DefaultInstallOnly(), s.InstallOnly())
	assert.Equal(t, uint(5), s.InstallOnlyLimit())
}

func TestBuilder_Build_ExistingCacheDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockPoolProvider(ctrl)

	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.CacheDir, domain.DirPerm))
	provider.EXPECT().NewPool(cfg).Return(mocks.NewMockPackagePool(ctrl))

	_, err := sack.NewBuilder(cfg, provider).Build(context.Background())
	require.NoError(t, err)
}

func TestBuilder_Build_CacheDirFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockPoolProvider(ctrl)

	cfg := testConfig(t)
	blocker := filepath.Join(cfg.InstallRoot, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))
	cfg.CacheDir = filepath.Join(blocker, "cache")

	_, err := sack.NewBuilder(cfg, provider).Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCacheDirCreateFailed.Error())
}

func TestBuilder_RPMDBSack(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockPoolProvider(ctrl)
	pool := mocks.NewMockPackagePool(ctrl)

	cfg := testConfig(t)
	provider.EXPECT().NewPool(cfg).Return(pool)
	pool.EXPECT().LoadSystemRepo(gomock.Any()).Return(nil)

	_, err := sack.NewBuilder(cfg, provider).RPMDBSack(context.Background())
	require.NoError(t, err)
}

func TestBuilder_FullSack(t *testing.T) {
	t.Run("loads enabled repositories in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockPoolProvider(ctrl)
		pool := mocks.NewMockPackagePool(ctrl)

		cfg := testConfig(t)
		provider.EXPECT().NewPool(cfg).Return(pool)
		gomock.InOrder(
			pool.EXPECT().LoadSystemRepo(gomock.Any()).Return(nil),
			pool.EXPECT().LoadRepo(gomock.Any(), cfg.Repos[0]).Return(nil),
			pool.EXPECT().LoadRepo(gomock.Any(), cfg.Repos[2]).Return(nil),
		)

		_, err := sack.NewBuilder(cfg, provider).FullSack(context.Background())
		require.NoError(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockPoolProvider(ctrl)
		pool := mocks.NewMockPackagePool(ctrl)

		cfg := testConfig(t)
		cause := errors.New("broken primary.xml")
		provider.EXPECT().NewPool(cfg).Return(pool)
		pool.EXPECT().LoadSystemRepo(gomock.Any()).Return(nil)
		pool.EXPECT().LoadRepo(gomock.Any(), cfg.Repos[0]).Return(cause)

		s, err := sack.NewBuilder(cfg, provider).FullSack(context.Background())
		require.ErrorIs(t, err, cause)
		assert.Nil(t, s)
	})

	t.Run("installed database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockPoolProvider(ctrl)
		pool := mocks.NewMockPackagePool(ctrl)

		cfg := testConfig(t)
		provider.EXPECT().NewPool(cfg).Return(pool)
		pool.EXPECT().LoadSystemRepo(gomock.Any()).Return(errors.New("no rpmdb"))

		_, err := sack.NewBuilder(cfg, provider).FullSack(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load installed packages")
	})
}
