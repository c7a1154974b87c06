// Package yumdb stores per-package metadata fields as small files next to the installed database.
//
// Each installed package owns a directory <dir>/<first letter>/<key>-<nevra>,
// where key is the xxhash of the NEVRA. Every field is one file inside it.
// Packages without a name share the "_" bucket.
package yumdb

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DB implements ports.PackageDB.
type DB struct {
	dir string
}

// New creates a DB rooted at dir.
func New(dir string) *DB {
	return &DB{dir: dir}
}

const unnamedBucket = "_"

// Path returns the record directory of a package.
func (d *DB) Path(pkg *domain.Package) string {
	nevra := pkg.String()
	key := strconv.FormatUint(xxhash.Sum64String(nevra), 16)
	key = strings.Repeat("0", 16-len(key)) + key

	bucket := unnamedBucket
	if pkg.Name != "" {
		bucket = pkg.Name[:1]
	}
	return filepath.Join(d.dir, bucket, key+"-"+nevra)
}

// Checksum reads the checksum fields of a package.
func (d *DB) Checksum(ctx context.Context, pkg *domain.Package) domain.ChecksumResult {
	if err := ctx.Err(); err != nil {
		return domain.ChecksumFailedResult(err)
	}
	if pkg.Name == "" {
		return domain.ChecksumAbsentResult()
	}

	fields, err := d.read(pkg, domain.FieldChecksumType, domain.FieldChecksumData)
	if err != nil {
		return domain.ChecksumFailedResult(err)
	}
	return domain.ChecksumFromFields(fields)
}

// FromRepo reads the repository a package was installed from.
func (d *DB) FromRepo(ctx context.Context, pkg *domain.Package) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fields, err := d.read(pkg, domain.FieldFromRepo)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(fields[domain.FieldFromRepo]), nil
}

func (d *DB) read(pkg *domain.Package, names ...string) (map[string]string, error) {
	dir := d.Path(pkg)
	fields := make(map[string]string, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		//nolint:gosec // Path is built from the configured store and the package NEVRA
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
		}
		fields[name] = string(data)
	}
	return fields, nil
}

// Record writes fields for a package in name order, replacing existing values.
func (d *DB) Record(ctx context.Context, pkg *domain.Package, fields map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pkg.Name == "" {
		return zerr.With(zerr.Wrap(domain.ErrMetadataWriteFailed, "package has no name"), "package", pkg.String())
	}

	dir := d.Path(pkg)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", dir)
	}

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrMetadataWriteFailed, "invalid field name"), "field", name), "package", pkg.String())
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(fields[name]), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", path)
		}
	}
	return nil
}

// Provider implements ports.PackageDBProvider.
type Provider struct{}

// NewProvider creates a Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// NewPackageDB opens the metadata store configured in cfg.
func (Provider) NewPackageDB(cfg *domain.Config) ports.PackageDB {
	return New(cfg.YumDBDir)
}
