package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/engine/sack"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const checksumTypeSHA256 = "sha256"

// RecordOptions configuration for the RecordChecksums method.
type RecordOptions struct {
	ConfigPath string
}

// RecordChecksums hashes the file of every installed package and records the
// checksum in the package metadata store, so later fingerprints include it.
func (a *App) RecordChecksums(ctx context.Context, opts RecordOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	s, err := sack.NewBuilder(cfg, a.pools).RPMDBSack(ctx)
	if err != nil {
		return err
	}
	pkgs, err := s.Query().Installed().Run(ctx)
	if err != nil {
		return err
	}

	sums := make([]string, len(pkgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, pkg := range pkgs {
		if pkg.Location == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := fileSHA256(pkg.Location)
			if err != nil {
				return zerr.With(zerr.With(zerr.Wrap(err, "failed to hash package file"), "package", pkg.String()), "path", pkg.Location)
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	db := a.packageDBs.NewPackageDB(cfg)
	recorded := 0
	for i, pkg := range pkgs {
		if sums[i] == "" {
			a.logger.Warn(fmt.Sprintf("skipping %s: %s", pkg, domain.ErrPackageFileMissing.Error()))
			continue
		}
		fields := map[string]string{
			domain.FieldChecksumType: checksumTypeSHA256,
			domain.FieldChecksumData: sums[i],
		}
		if err := db.Record(ctx, pkg, fields); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to record checksum"), "package", pkg.String())
		}
		recorded++
	}

	a.logger.Info(fmt.Sprintf("recorded checksums for %d packages", recorded))
	return nil
}

func fileSHA256(path string) (string, error) {
	//nolint:gosec // Path comes from the installed package database
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
