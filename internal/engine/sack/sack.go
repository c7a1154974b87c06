// Package sack implements the package collection used to fingerprint the
// installed database and to export package relations as susetags text.
package sack

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Sack is a queryable collection of installed and repository packages.
// It forwards every read to the underlying pool and adds fingerprinting and export on top.
type Sack struct {
	pool             ports.PackagePool
	installOnly      []string
	installOnlyLimit uint
}

// New wraps a pool.
func New(pool ports.PackagePool) *Sack {
	return &Sack{pool: pool}
}

// Configure sets the install-only package patterns and how many of them may be installed in parallel.
// A limit of zero means unlimited.
func (s *Sack) Configure(installOnly []string, installOnlyLimit uint) {
	s.installOnly = slices.Clone(installOnly)
	s.installOnlyLimit = installOnlyLimit
}

// InstallOnly returns the configured install-only patterns.
func (s *Sack) InstallOnly() []string {
	return slices.Clone(s.installOnly)
}

// InstallOnlyLimit returns the configured install-only limit.
func (s *Sack) InstallOnlyLimit() uint {
	return s.installOnlyLimit
}

// Query starts a query over every package in the collection.
func (s *Sack) Query() *Query {
	return &Query{pool: s.pool}
}

// AddCmdlinePackage adds a local package file to the collection as an available package.
func (s *Sack) AddCmdlinePackage(ctx context.Context, path string) (*domain.Package, error) {
	pkg, err := s.pool.AddCmdlinePackage(ctx, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to add package file"), "path", path)
	}
	return pkg, nil
}

// RPMDBVersion computes the fingerprint of the installed package set.
//
// Installed packages are folded in the order the pool enumerates them,
// each followed by its recorded checksum when db has both checksum fields.
// A failed metadata lookup aborts the computation; no partial fingerprint is returned.
func (s *Sack) RPMDBVersion(ctx context.Context, db ports.PackageDB) (*domain.Fingerprint, error) {
	pkgs, err := s.Query().Installed().Run(ctx)
	if err != nil {
		return nil, err
	}

	fp := domain.NewFingerprint()
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := db.Checksum(ctx, pkg)
		switch res.State {
		case domain.ChecksumPresent:
			entry := res.Entry
			fp.Update(pkg, &entry)
		case domain.ChecksumAbsent:
			fp.Update(pkg, nil)
		default:
			cause := res.Err
			if cause == nil {
				cause = errors.New(res.State.String())
			}
			return nil, errors.Join(
				domain.ErrChecksumLookupFailed,
				zerr.With(zerr.Wrap(cause, "checksum lookup aborted the fingerprint"), "package", pkg.String()),
			)
		}
	}

	return fp, nil
}
