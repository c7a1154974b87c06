package sack_test

import (
	"go.trai.ch/sack/internal/core/domain"
)

func installed(name string, epoch uint64, version, release, arch string) *domain.Package {
	return &domain.Package{
		Name:    name,
		Epoch:   epoch,
		Version: version,
		Release: release,
		Arch:    domain.NewInternedString(arch),
		Repo:    domain.NewInternedString(domain.SystemRepoID),
	}
}

func available(repo, name string, epoch uint64, version, release, arch string) *domain.Package {
	pkg := installed(name, epoch, version, release, arch)
	pkg.Repo = domain.NewInternedString(repo)
	return pkg
}

func selfProvide(pkg *domain.Package) domain.Reldep {
	return domain.Reldep{Name: pkg.Name, Flags: domain.RelEqual, EVR: pkg.EVR()}
}
