// Package domain holds the package, relation and fingerprint models of the sack.
package domain

import (
	"strconv"
	"strings"
)

// SystemRepoID is the repository id of the installed package set.
const SystemRepoID = "@System"

// CmdlineRepoID is the repository id of package files named on the command line.
const CmdlineRepoID = "@commandline"

// RelKind identifies one of the four relation sequences of a package.
type RelKind uint8

const (
	// RelProvides lists the capabilities a package provides.
	RelProvides RelKind = iota
	// RelRequires lists the capabilities a package requires.
	RelRequires
	// RelObsoletes lists the packages a package obsoletes.
	RelObsoletes
	// RelConflicts lists the packages a package conflicts with.
	RelConflicts
)

// RelKinds is the fixed order in which relation sequences are exported.
var RelKinds = [...]RelKind{RelProvides, RelRequires, RelObsoletes, RelConflicts}

// RelFlags holds the comparison bits of a relation (RPMSENSE_LESS, _GREATER, _EQUAL).
type RelFlags uint32

const (
	// RelLess matches versions lower than the relation's EVR.
	RelLess RelFlags = 1 << 1
	// RelGreater matches versions greater than the relation's EVR.
	RelGreater RelFlags = 1 << 2
	// RelEqual matches the relation's EVR.
	RelEqual RelFlags = 1 << 3

	relCompareMask = RelLess | RelGreater | RelEqual
)

// Operator renders the comparison as it appears in a relation string.
func (f RelFlags) Operator() string {
	switch f & relCompareMask {
	case RelLess:
		return "<"
	case RelGreater:
		return ">"
	case RelEqual:
		return "="
	case RelLess | RelEqual:
		return "<="
	case RelGreater | RelEqual:
		return ">="
	case RelLess | RelGreater:
		return "<>"
	default:
		return ""
	}
}

// ParseRelOperator converts the comparison names used in repository metadata
// (EQ, LT, GT, LE, GE) into flags. Unknown names yield no comparison.
func ParseRelOperator(op string) RelFlags {
	switch op {
	case "EQ":
		return RelEqual
	case "LT":
		return RelLess
	case "GT":
		return RelGreater
	case "LE":
		return RelLess | RelEqual
	case "GE":
		return RelGreater | RelEqual
	default:
		return 0
	}
}

// Reldep is a single relation statement, e.g. "foo >= 1.0-1".
type Reldep struct {
	Name  string
	Flags RelFlags
	EVR   string
}

// String renders the relation the way it is written in spec files.
func (r Reldep) String() string {
	op := r.Flags.Operator()
	if op == "" || r.EVR == "" {
		return r.Name
	}
	return r.Name + " " + op + " " + r.EVR
}

// Package is a read-only view of an installed or repository package.
type Package struct {
	Name    string
	Epoch   uint64
	Version string
	Release string
	Arch    InternedString
	Repo    InternedString

	// Location is the on-disk path or repository-relative href of the package file.
	Location string

	Provides  []Reldep
	Requires  []Reldep
	Obsoletes []Reldep
	Conflicts []Reldep
}

// String returns the canonical NEVRA form: name-[epoch:]version-release.arch.
// The epoch is omitted when it is zero.
func (p *Package) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte('-')
	b.WriteString(p.EVR())
	b.WriteByte('.')
	b.WriteString(p.Arch.String())
	return b.String()
}

// EVR returns [epoch:]version-release.
func (p *Package) EVR() string {
	vr := p.Version + "-" + p.Release
	if p.Epoch == 0 {
		return vr
	}
	return strconv.FormatUint(p.Epoch, 10) + ":" + vr
}

// Installed reports whether the package belongs to the installed package set.
func (p *Package) Installed() bool {
	return p.Repo.String() == SystemRepoID
}

// Relations returns the relation sequence of the given kind.
func (p *Package) Relations(kind RelKind) []Reldep {
	switch kind {
	case RelProvides:
		return p.Provides
	case RelRequires:
		return p.Requires
	case RelObsoletes:
		return p.Obsoletes
	case RelConflicts:
		return p.Conflicts
	default:
		return nil
	}
}

// FormatEVR joins epoch, version and release into [epoch:]version[-release].
// A zero or empty epoch and an empty release are omitted.
func FormatEVR(epoch, version, release string) string {
	if version == "" {
		return ""
	}
	evr := version
	if release != "" {
		evr += "-" + release
	}
	if epoch != "" && epoch != "0" {
		evr = epoch + ":" + evr
	}
	return evr
}
