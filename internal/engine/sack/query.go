package sack

import (
	"context"
	"errors"
	"path"
	"slices"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
)

// Filter selects packages.
type Filter func(pkg *domain.Package) bool

// Query is an immutable, chainable selection over the pool.
// Every builder method returns a new Query; the receiver is left untouched.
type Query struct {
	pool    ports.PackagePool
	filters []Filter
}

// Installed restricts the query to the installed package set.
func (q *Query) Installed() *Query {
	return q.Filter(func(pkg *domain.Package) bool { return pkg.Installed() })
}

// Available restricts the query to repository packages.
func (q *Query) Available() *Query {
	return q.Filter(func(pkg *domain.Package) bool { return !pkg.Installed() })
}

// Filter adds filters. A package must pass all of them.
func (q *Query) Filter(filters ...Filter) *Query {
	return &Query{
		pool:    q.pool,
		filters: append(slices.Clip(q.filters), filters...),
	}
}

// Run evaluates the query and returns the matches in pool enumeration order.
func (q *Query) Run(ctx context.Context) ([]*domain.Package, error) {
	all, err := q.pool.Packages(ctx)
	if err != nil {
		return nil, errors.Join(domain.ErrPackageQueryFailed, err)
	}

	out := make([]*domain.Package, 0, len(all))
	for _, pkg := range all {
		if q.matches(pkg) {
			out = append(out, pkg)
		}
	}
	return out, nil
}

func (q *Query) matches(pkg *domain.Package) bool {
	for _, f := range q.filters {
		if !f(pkg) {
			return false
		}
	}
	return true
}

// ByRepo matches packages from any of the given repository ids.
func ByRepo(ids ...string) Filter {
	return func(pkg *domain.Package) bool {
		return slices.Contains(ids, pkg.Repo.String())
	}
}

// ByArch matches packages built for any of the given architectures.
func ByArch(arches ...string) Filter {
	return func(pkg *domain.Package) bool {
		return slices.Contains(arches, pkg.Arch.String())
	}
}

// ByName matches package names against shell globs.
// A malformed glob only matches the identical name.
func ByName(patterns ...string) Filter {
	return func(pkg *domain.Package) bool {
		return MatchName(pkg.Name, patterns...)
	}
}

// MatchName reports whether name matches any of the globs.
func MatchName(name string, patterns ...string) bool {
	for _, p := range patterns {
		ok, err := path.Match(p, name)
		if err != nil {
			ok = p == name
		}
		if ok {
			return true
		}
	}
	return false
}
