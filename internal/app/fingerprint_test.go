package app_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sack/internal/app"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/sack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	fooFingerprint    = "1:36e03ee2b1bfee68d5b824a37028d04fd966474c"
	fooBarFingerprint = "2:091db7d5775e7919ab3ba4181b80869896b02cc0"
)

func (f *fixture) expectNoChecksums() {
	f.dbs.EXPECT().NewPackageDB(f.cfg).Return(f.db).AnyTimes()
	f.db.EXPECT().Checksum(gomock.Any(), gomock.Any()).Return(domain.ChecksumAbsentResult()).AnyTimes()
}

func TestApp_Fingerprint(t *testing.T) {
	foo := installed("foo", 0, "1.0", "1", "x86_64")
	opts := app.FingerprintOptions{ConfigPath: configPath}

	t.Run("prints the fingerprint", func(t *testing.T) {
		f := newFixture(t)
		f.expectInstalled(foo)
		f.expectNoChecksums()

		var out bytes.Buffer
		require.NoError(t, f.app.Fingerprint(context.Background(), &out, opts))
		assert.Equal(t, fooFingerprint+"\n", out.String())
	})

	t.Run("save", func(t *testing.T) {
		f := newFixture(t)
		f.expectInstalled(foo)
		f.expectNoChecksums()

		f.store.EXPECT().Put(f.cfg.CacheDir, domain.FingerprintRecord{
			InstallRoot: f.cfg.InstallRoot,
			Fingerprint: fooFingerprint,
			Count:       1,
			Timestamp:   fixedTime,
		}).Return(nil)
		f.logger.EXPECT().Info("saved fingerprint for " + f.cfg.InstallRoot)

		var out bytes.Buffer
		save := opts
		save.Save = true
		require.NoError(t, f.app.Fingerprint(context.Background(), &out, save))
	})

	t.Run("check unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.expectInstalled(foo)
		f.expectNoChecksums()

		f.store.EXPECT().Get(f.cfg.CacheDir, f.cfg.InstallRoot).
			Return(&domain.FingerprintRecord{Fingerprint: fooFingerprint, Timestamp: fixedTime}, nil)
		f.logger.EXPECT().Info("fingerprint unchanged since 2026-03-14 09:26:53 UTC")

		check := opts
		check.Check = true
		require.NoError(t, f.app.Fingerprint(context.Background(), &bytes.Buffer{}, check))
	})

	t.Run("check drift", func(t *testing.T) {
		f := newFixture(t)
		f.expectInstalled(foo)
		f.expectNoChecksums()

		f.store.EXPECT().Get(f.cfg.CacheDir, f.cfg.InstallRoot).
			Return(&domain.FingerprintRecord{Fingerprint: fooBarFingerprint}, nil)

		check := opts
		check.Check = true
		var out bytes.Buffer
		err := f.app.Fingerprint(context.Background(), &out, check)
		require.ErrorIs(t, err, domain.ErrFingerprintDrift)
		assert.Equal(t, fooFingerprint+"\n", out.String())
	})

	t.Run("check without saved fingerprint", func(t *testing.T) {
		f := newFixture(t)
		f.expectInstalled(foo)
		f.expectNoChecksums()

		f.store.EXPECT().Get(f.cfg.CacheDir, f.cfg.InstallRoot).Return(nil, nil)

		check := opts
		check.Check = true
		err := f.app.Fingerprint(context.Background(), &bytes.Buffer{}, check)
		require.ErrorIs(t, err, domain.ErrNoSavedFingerprint)
	})

	t.Run("checksum lookup failure prints nothing", func(t *testing.T) {
		f := newFixture(t)
		f.expectInstalled(foo)

		f.dbs.EXPECT().NewPackageDB(f.cfg).Return(f.db)
		f.db.EXPECT().Checksum(gomock.Any(), foo).Return(domain.ChecksumFailedResult(errors.New("permission denied")))

		var out bytes.Buffer
		err := f.app.Fingerprint(context.Background(), &out, opts)
		require.ErrorIs(t, err, domain.ErrChecksumLookupFailed)
		assert.Empty(t, out.String())
	})

	t.Run("installed database failure", func(t *testing.T) {
		f := newFixture(t)

		f.pools.EXPECT().NewPool(f.cfg).Return(f.pool)
		f.pool.EXPECT().LoadSystemRepo(gomock.Any()).Return(domain.ErrRPMDBReadFailed)

		err := f.app.Fingerprint(context.Background(), &bytes.Buffer{}, opts)
		require.ErrorIs(t, err, domain.ErrRPMDBReadFailed)
	})
}

func events(paths ...string) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, p := range paths {
			if !yield(ports.WatchEvent{Path: p, Operation: ports.OpWrite}) {
				return
			}
		}
	}
}

func TestApp_Watch(t *testing.T) {
	foo := installed("foo", 0, "1.0", "1", "x86_64")
	bar := installed("bar", 2, "3.1", "4", "noarch")
	opts := app.WatchOptions{ConfigPath: configPath}

	// newPools hands out a fresh pool per computation, holding the given package sets in turn.
	newPools := func(t *testing.T, f *fixture, sets ...[]*domain.Package) {
		t.Helper()
		ctrl := gomock.NewController(t)
		calls := make([]any, 0, len(sets))
		for _, set := range sets {
			p := mocks.NewMockPackagePool(ctrl)
			p.EXPECT().LoadSystemRepo(gomock.Any()).Return(nil)
			p.EXPECT().Packages(gomock.Any()).Return(set, nil)
			calls = append(calls, f.pools.EXPECT().NewPool(f.cfg).Return(p))
		}
		gomock.InOrder(calls...)
	}

	t.Run("prints changes", func(t *testing.T) {
		f := newFixture(t)
		f.app.WithWatchWindow(time.Hour)
		f.expectNoChecksums()
		newPools(t, f, []*domain.Package{foo}, []*domain.Package{foo, bar})

		f.watcher.EXPECT().Start(gomock.Any(), f.cfg.RPMDBDir).Return(nil)
		f.watcher.EXPECT().Events().Return(events(f.cfg.RPMDBDir+"/bar.rpm", f.cfg.RPMDBDir+"/bar.rpm"))
		f.watcher.EXPECT().Stop().Return(nil)

		var out bytes.Buffer
		require.NoError(t, f.app.Watch(context.Background(), &out, opts))
		assert.Equal(t, fooFingerprint+"\n→ "+fooBarFingerprint+"\n", out.String())
	})

	t.Run("unchanged fingerprint prints nothing", func(t *testing.T) {
		f := newFixture(t)
		f.app.WithWatchWindow(time.Hour)
		f.expectNoChecksums()
		newPools(t, f, []*domain.Package{foo}, []*domain.Package{foo})

		f.watcher.EXPECT().Start(gomock.Any(), f.cfg.RPMDBDir).Return(nil)
		f.watcher.EXPECT().Events().Return(events(f.cfg.RPMDBDir + "/foo.rpm"))
		f.watcher.EXPECT().Stop().Return(nil)

		var out bytes.Buffer
		require.NoError(t, f.app.Watch(context.Background(), &out, opts))
		assert.Equal(t, fooFingerprint+"\n", out.String())
	})

	t.Run("waits for a change still being computed", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			const window = 10 * time.Millisecond
			f := newFixture(t)
			f.app.WithWatchWindow(window)
			f.expectNoChecksums()

			ctrl := gomock.NewController(t)
			first := mocks.NewMockPackagePool(ctrl)
			first.EXPECT().LoadSystemRepo(gomock.Any()).Return(nil)
			first.EXPECT().Packages(gomock.Any()).Return([]*domain.Package{foo}, nil)
			slow := mocks.NewMockPackagePool(ctrl)
			slow.EXPECT().LoadSystemRepo(gomock.Any()).DoAndReturn(func(context.Context) error {
				time.Sleep(time.Second)
				return nil
			})
			slow.EXPECT().Packages(gomock.Any()).Return([]*domain.Package{foo, bar}, nil)
			gomock.InOrder(
				f.pools.EXPECT().NewPool(f.cfg).Return(first),
				f.pools.EXPECT().NewPool(f.cfg).Return(slow),
			)

			// The timer fires while events are still being read, so the recompute runs on its own goroutine.
			f.watcher.EXPECT().Start(gomock.Any(), f.cfg.RPMDBDir).Return(nil)
			f.watcher.EXPECT().Events().Return(func(yield func(ports.WatchEvent) bool) {
				if !yield(ports.WatchEvent{Path: f.cfg.RPMDBDir + "/bar.rpm", Operation: ports.OpCreate}) {
					return
				}
				time.Sleep(2 * window)
			})
			f.watcher.EXPECT().Stop().Return(nil)

			var out bytes.Buffer
			require.NoError(t, f.app.Watch(context.Background(), &out, opts))
			assert.Equal(t, fooFingerprint+"\n→ "+fooBarFingerprint+"\n", out.String())
		})
	})

	t.Run("start failure", func(t *testing.T) {
		f := newFixture(t)
		f.expectNoChecksums()
		newPools(t, f, []*domain.Package{foo})

		f.watcher.EXPECT().Start(gomock.Any(), f.cfg.RPMDBDir).Return(domain.ErrWatchFailed)

		err := f.app.Watch(context.Background(), &bytes.Buffer{}, opts)
		require.ErrorIs(t, err, domain.ErrWatchFailed)
	})
}
