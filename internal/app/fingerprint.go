package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/sack/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in app layer
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/engine/sack"
	"go.trai.ch/sack/internal/ui/style"
	"go.trai.ch/zerr"
)

// DefaultWatchWindow is the quiet period Watch waits for before recomputing.
const DefaultWatchWindow = watcher.DefaultDebounceWindow

// FingerprintOptions configuration for the Fingerprint method.
type FingerprintOptions struct {
	ConfigPath string
	// Save persists the fingerprint for later checks.
	Save bool
	// Check compares the fingerprint with the saved one.
	Check bool
}

// Fingerprint prints the rpmdb version of the configured install root.
func (a *App) Fingerprint(ctx context.Context, w io.Writer, opts FingerprintOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	fp, err := a.computeFingerprint(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, fp.String()); err != nil {
		return zerr.Wrap(err, "failed to write fingerprint")
	}

	if opts.Check {
		if err := a.checkFingerprint(cfg, fp); err != nil {
			return err
		}
	}

	if opts.Save {
		record := domain.FingerprintRecord{
			InstallRoot: cfg.InstallRoot,
			Fingerprint: fp.String(),
			Count:       fp.Count(),
			Timestamp:   a.now().UTC(),
		}
		if err := a.store.Put(cfg.CacheDir, record); err != nil {
			return zerr.Wrap(err, "failed to save fingerprint")
		}
		a.logger.Info(fmt.Sprintf("saved fingerprint for %s", cfg.InstallRoot))
	}

	return nil
}

func (a *App) checkFingerprint(cfg *domain.Config, fp *domain.Fingerprint) error {
	saved, err := a.store.Get(cfg.CacheDir, cfg.InstallRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to check fingerprint")
	}
	if saved == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoSavedFingerprint, "cannot check fingerprint"), "installroot", cfg.InstallRoot)
	}

	if !fp.EqualString(saved.Fingerprint) {
		err := zerr.Wrap(domain.ErrFingerprintDrift, "fingerprint check failed")
		err = zerr.With(err, "saved", saved.Fingerprint)
		return zerr.With(err, "current", fp.String())
	}

	a.logger.Info(fmt.Sprintf("fingerprint unchanged since %s", saved.Timestamp.Format("2006-01-02 15:04:05 MST")))
	return nil
}

func (a *App) computeFingerprint(ctx context.Context, cfg *domain.Config) (*domain.Fingerprint, error) {
	s, err := sack.NewBuilder(cfg, a.pools).RPMDBSack(ctx)
	if err != nil {
		return nil, err
	}
	return s.RPMDBVersion(ctx, a.packageDBs.NewPackageDB(cfg))
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	ConfigPath string
}

// Watch prints the rpmdb version and then a new line every time it changes,
// until ctx is cancelled or the watcher stops.
func (a *App) Watch(ctx context.Context, w io.Writer, opts WatchOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	current, err := a.computeFingerprint(ctx, cfg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, current.String()); err != nil {
		return zerr.Wrap(err, "failed to write fingerprint")
	}

	dirs := []string{cfg.RPMDBDir}
	if info, err := os.Stat(cfg.YumDBDir); err == nil && info.IsDir() {
		dirs = append(dirs, cfg.YumDBDir)
	}
	if err := a.watcher.Start(ctx, dirs...); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	var mu sync.Mutex
	debouncer := watcher.NewDebouncer(a.watchWindow, func(_ []string) {
		mu.Lock()
		defer mu.Unlock()

		next, err := a.computeFingerprint(ctx, cfg)
		if err != nil {
			if ctx.Err() == nil {
				a.logger.Error(err)
			}
			return
		}
		if next.Equal(current) {
			return
		}
		current = next
		_, _ = fmt.Fprintf(w, "%s %s\n", style.Arrow, next.String())
	})

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	if ctx.Err() == nil {
		debouncer.Flush()
	}
	// A window that fired before the events ended may still be printing.
	debouncer.Stop()
	return nil
}
