// Package rpmdb reads the installed package set from a directory of RPM headers.
package rpmdb

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	rpmutils "github.com/sassoftware/go-rpmutils"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PackageExt is the file extension of entries in the installed database.
const PackageExt = ".rpm"

// header is the subset of *rpmutils.RpmHeader the reader needs.
type header interface {
	GetNEVRA() (*rpmutils.NEVRA, error)
	GetStrings(tag int) ([]string, error)
	GetUint32s(tag int) ([]uint32, error)
}

type relationTags struct {
	kind                  domain.RelKind
	names, flags, version int
}

var relations = []relationTags{
	{domain.RelProvides, rpmutils.PROVIDENAME, rpmutils.PROVIDEFLAGS, rpmutils.PROVIDEVERSION},
	{domain.RelRequires, rpmutils.REQUIRENAME, rpmutils.REQUIREFLAGS, rpmutils.REQUIREVERSION},
	{domain.RelObsoletes, rpmutils.OBSOLETENAME, rpmutils.OBSOLETEFLAGS, rpmutils.OBSOLETEVERSION},
	{domain.RelConflicts, rpmutils.CONFLICTNAME, rpmutils.CONFLICTFLAGS, rpmutils.CONFLICTVERSION},
}

// Reader loads installed packages. Entries are enumerated in lexical file name
// order, which keeps the installed set, and so its fingerprint, stable across runs.
type Reader struct {
	dir  string
	jobs int
}

// NewReader creates a Reader for the installed database at dir.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir, jobs: runtime.NumCPU()}
}

// Load reads every package header. A missing database directory is an empty installed set.
func (r *Reader) Load(ctx context.Context) ([]*domain.Package, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRPMDBReadFailed.Error()), "path", r.dir)
	}

	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), PackageExt) {
			paths = append(paths, filepath.Join(r.dir, e.Name()))
		}
	}

	pkgs := make([]*domain.Package, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pkg, err := readFile(path)
			if err != nil {
				return err
			}
			pkgs[i] = pkg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pkgs, nil
}

// ReadFile reads a single package file. The package is tagged as installed;
// callers loading files from elsewhere retag it.
func (r *Reader) ReadFile(path string) (*domain.Package, error) {
	return readFile(path)
}

func readFile(path string) (*domain.Package, error) {
	//nolint:gosec // Path is an entry of the configured database directory
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRPMDBReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	hdr, err := rpmutils.ReadHeader(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRPMDBReadFailed.Error()), "path", path)
	}

	pkg, err := convert(hdr)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	pkg.Location = path
	return pkg, nil
}

func convert(hdr header) (*domain.Package, error) {
	nevra, err := hdr.GetNEVRA()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRPMHeaderInvalid.Error())
	}

	epoch, err := strconv.ParseUint(nevra.Epoch, 10, 64)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRPMHeaderInvalid.Error()), "epoch", nevra.Epoch)
	}

	pkg := &domain.Package{
		Name:    nevra.Name,
		Epoch:   epoch,
		Version: nevra.Version,
		Release: nevra.Release,
		Arch:    domain.NewInternedString(nevra.Arch),
		Repo:    domain.NewInternedString(domain.SystemRepoID),
	}

	for _, rel := range relations {
		deps, err := readRelations(hdr, rel)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRPMHeaderInvalid.Error()), "package", nevra.Name)
		}
		switch rel.kind {
		case domain.RelProvides:
			pkg.Provides = deps
		case domain.RelRequires:
			pkg.Requires = deps
		case domain.RelObsoletes:
			pkg.Obsoletes = deps
		case domain.RelConflicts:
			pkg.Conflicts = deps
		}
	}
	return pkg, nil
}

// readRelations zips the name, flags and version arrays of one relation kind.
// Requirements on rpmlib features are internal to rpm and dropped.
func readRelations(hdr header, rel relationTags) ([]domain.Reldep, error) {
	names, err := hdr.GetStrings(rel.names)
	if err != nil {
		if isNoSuchTag(err) {
			return nil, nil
		}
		return nil, err
	}

	flags, err := hdr.GetUint32s(rel.flags)
	if err != nil && !isNoSuchTag(err) {
		return nil, err
	}
	versions, err := hdr.GetStrings(rel.version)
	if err != nil && !isNoSuchTag(err) {
		return nil, err
	}

	deps := make([]domain.Reldep, 0, len(names))
	for i, name := range names {
		if rel.kind == domain.RelRequires && strings.HasPrefix(name, "rpmlib(") {
			continue
		}
		dep := domain.Reldep{Name: name}
		if i < len(flags) {
			dep.Flags = domain.RelFlags(flags[i])
		}
		if i < len(versions) {
			dep.EVR = versions[i]
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func isNoSuchTag(err error) bool {
	var nst rpmutils.NoSuchTagError
	return errors.As(err, &nst)
}
