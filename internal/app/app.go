// Package app implements the application layer for sack.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/sack/internal/engine/resolve"
	"go.trai.ch/sack/internal/engine/sack"
	"go.trai.ch/zerr"
)

// DowngraderFactory creates the planner used by Downgrade for a loaded sack.
type DowngraderFactory func(s *sack.Sack) ports.Downgrader

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	logger        ports.Logger
	store         ports.FingerprintStore
	pools         ports.PoolProvider
	packageDBs    ports.PackageDBProvider
	keys          ports.KeyRing
	watcher       ports.Watcher
	newDowngrader DowngraderFactory
	watchWindow   time.Duration
	now           func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.FingerprintStore,
	pools ports.PoolProvider,
	packageDBs ports.PackageDBProvider,
	keys ports.KeyRing,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		pools:        pools,
		packageDBs:   packageDBs,
		keys:         keys,
		watcher:      watcher,
		newDowngrader: func(s *sack.Sack) ports.Downgrader {
			return resolve.NewPlanner(s)
		},
		watchWindow: DefaultWatchWindow,
		now:         time.Now,
	}
}

// WithDowngrader replaces the planner used by Downgrade.
func (a *App) WithDowngrader(factory DowngraderFactory) *App {
	a.newDowngrader = factory
	return a
}

// WithWatchWindow sets how long Watch waits for the installed database to settle.
func (a *App) WithWatchWindow(window time.Duration) *App {
	a.watchWindow = window
	return a
}

// WithClock replaces the clock used to timestamp saved fingerprints.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// loadConfig reads the configuration at path, or discovers sack.yaml from the
// working directory when path is empty. Without a sack.yaml the working
// directory is used as a bare install root.
func (a *App) loadConfig(path string) (*domain.Config, error) {
	if path != "" {
		cfg, err := a.configLoader.LoadFile(path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, domain.ErrConfigNotFound) {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	a.logger.Warn(fmt.Sprintf("no %s found, using %s as install root", domain.ConfigFileName, cwd))
	return domain.DefaultConfig(cwd), nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the saved fingerprints of the configured cache directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	a.logger.Info("removing fingerprint store...")
	if err := a.store.Clean(cfg.CacheDir); err != nil {
		return zerr.Wrap(err, "failed to remove fingerprint store")
	}
	a.logger.Info("removed fingerprint store")
	return nil
}
