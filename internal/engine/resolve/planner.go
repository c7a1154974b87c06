// Package resolve plans package transactions against a sack.
package resolve

import (
	"context"
	"fmt"
	"slices"

	"github.com/arbovm/levenshtein"
	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/engine/sack"
	"go.trai.ch/zerr"
)

// Planner plans downgrades. It never modifies the installed system.
type Planner struct {
	sack *sack.Sack
}

// NewPlanner creates a Planner over a loaded sack.
func NewPlanner(s *sack.Sack) *Planner {
	return &Planner{sack: s}
}

// Downgrade plans replacing every installed package matching specs with the
// highest available version below it.
//
// Install-only packages are not replaced: the lower version is installed next
// to the existing ones, and the oldest instances are removed when the sack's
// install-only limit would be exceeded.
func (p *Planner) Downgrade(ctx context.Context, specs []string) (*domain.Transaction, error) {
	installed, err := p.sack.Query().Installed().Run(ctx)
	if err != nil {
		return nil, err
	}
	available, err := p.sack.Query().Available().Run(ctx)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{}
	for _, spec := range specs {
		matches := filter(installed, sack.ByName(spec))
		if len(matches) == 0 {
			if len(filter(available, sack.ByName(spec))) > 0 {
				return nil, zerr.With(zerr.Wrap(domain.ErrNotInstalled, "cannot downgrade"), "spec", spec)
			}
			return nil, noMatch(spec, installed)
		}

		for _, group := range groupByNameArch(matches) {
			candidates := filter(available, sameNameArch(group[0]))
			if slices.ContainsFunc(group, p.installOnly) {
				p.planInstallOnly(tx, group, candidates)
			} else {
				planReplace(tx, group, candidates)
			}
		}
	}

	if tx.Empty() {
		names := make([]string, 0, len(tx.Skipped))
		for _, pkg := range tx.Skipped {
			names = append(names, pkg.String())
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrNothingToDowngrade, "nothing to do"), "packages", names)
	}
	return tx, nil
}

func planReplace(tx *domain.Transaction, group, candidates []*domain.Package) {
	current := slices.MaxFunc(group, CompareEVR)
	target := highestBelow(candidates, current, nil)
	if target == nil {
		tx.Skipped = append(tx.Skipped, current)
		return
	}
	tx.Add(domain.ActionDowngrade, target, current)
}

func (p *Planner) planInstallOnly(tx *domain.Transaction, group, candidates []*domain.Package) {
	newest := slices.MaxFunc(group, CompareEVR)
	target := highestBelow(candidates, newest, group)
	if target == nil {
		tx.Skipped = append(tx.Skipped, newest)
		return
	}
	tx.Add(domain.ActionInstall, target, nil)

	limit := int(p.sack.InstallOnlyLimit())
	excess := len(group) + 1 - limit
	if limit == 0 || excess <= 0 {
		return
	}

	oldest := slices.Clone(group)
	slices.SortStableFunc(oldest, CompareEVR)
	for _, pkg := range oldest[:min(excess, len(oldest))] {
		tx.Add(domain.ActionRemove, pkg, nil)
	}
}

// installOnly reports whether a package's name or one of its provides matches an install-only pattern.
func (p *Planner) installOnly(pkg *domain.Package) bool {
	patterns := p.sack.InstallOnly()
	if sack.MatchName(pkg.Name, patterns...) {
		return true
	}
	return slices.ContainsFunc(pkg.Provides, func(prov domain.Reldep) bool {
		return sack.MatchName(prov.Name, patterns...)
	})
}

// highestBelow picks the highest candidate lower than ref whose EVR is not already installed.
func highestBelow(candidates []*domain.Package, ref *domain.Package, installed []*domain.Package) *domain.Package {
	var best *domain.Package
	for _, c := range candidates {
		if CompareEVR(c, ref) >= 0 {
			continue
		}
		if slices.ContainsFunc(installed, func(i *domain.Package) bool { return CompareEVR(c, i) == 0 }) {
			continue
		}
		if best == nil || CompareEVR(c, best) > 0 {
			best = c
		}
	}
	return best
}

func noMatch(spec string, installed []*domain.Package) error {
	err := zerr.With(zerr.Wrap(domain.ErrNoMatch, fmt.Sprintf("no match for argument %q", spec)), "spec", spec)
	if hint := suggest(spec, installed); hint != "" {
		err = zerr.With(err, "did_you_mean", hint)
	}
	return err
}

// suggest returns the installed name closest to spec, if it is close enough to be a typo.
func suggest(spec string, installed []*domain.Package) string {
	best, bestDist := "", -1
	for _, pkg := range installed {
		d := levenshtein.Distance(spec, pkg.Name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = pkg.Name, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(spec)/3) {
		return ""
	}
	return best
}

func filter(pkgs []*domain.Package, f sack.Filter) []*domain.Package {
	var out []*domain.Package
	for _, pkg := range pkgs {
		if f(pkg) {
			out = append(out, pkg)
		}
	}
	return out
}

func sameNameArch(ref *domain.Package) sack.Filter {
	return func(pkg *domain.Package) bool {
		return pkg.Name == ref.Name && pkg.Arch == ref.Arch
	}
}

// groupByNameArch splits packages into name.arch groups, in order of first appearance.
func groupByNameArch(pkgs []*domain.Package) [][]*domain.Package {
	var groups [][]*domain.Package
	index := make(map[string]int)
	for _, pkg := range pkgs {
		key := pkg.Name + "." + pkg.Arch.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], pkg)
	}
	return groups
}
