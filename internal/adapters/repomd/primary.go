package repomd

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"

	"go.trai.ch/sack/internal/core/domain"
)

type xmlPackage struct {
	Name    string `xml:"name"`
	Arch    string `xml:"arch"`
	Version struct {
		Epoch string `xml:"epoch,attr"`
		Ver   string `xml:"ver,attr"`
		Rel   string `xml:"rel,attr"`
	} `xml:"version"`
	Location struct {
		Href string `xml:"href,attr"`
	} `xml:"location"`
	Format struct {
		Provides  xmlEntries `xml:"provides"`
		Requires  xmlEntries `xml:"requires"`
		Obsoletes xmlEntries `xml:"obsoletes"`
		Conflicts xmlEntries `xml:"conflicts"`
	} `xml:"format"`
}

type xmlEntries struct {
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Name  string `xml:"name,attr"`
	Flags string `xml:"flags,attr"`
	Epoch string `xml:"epoch,attr"`
	Ver   string `xml:"ver,attr"`
	Rel   string `xml:"rel,attr"`
}

// parsePrimary streams <package> elements so large repositories are never held as one document.
func parsePrimary(r io.Reader, repoID string) ([]*domain.Package, error) {
	dec := xml.NewDecoder(r)
	repo := domain.NewInternedString(repoID)

	var pkgs []*domain.Package
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return pkgs, nil
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "package" {
			continue
		}

		var xp xmlPackage
		if err := dec.DecodeElement(&xp, &start); err != nil {
			return nil, err
		}
		pkg, err := xp.toPackage(repo)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
}

func (xp *xmlPackage) toPackage(repo domain.InternedString) (*domain.Package, error) {
	var epoch uint64
	if xp.Version.Epoch != "" {
		e, err := strconv.ParseUint(xp.Version.Epoch, 10, 64)
		if err != nil {
			return nil, err
		}
		epoch = e
	}

	return &domain.Package{
		Name:      xp.Name,
		Epoch:     epoch,
		Version:   xp.Version.Ver,
		Release:   xp.Version.Rel,
		Arch:      domain.NewInternedString(xp.Arch),
		Repo:      repo,
		Location:  xp.Location.Href,
		Provides:  xp.Format.Provides.reldeps(),
		Requires:  xp.Format.Requires.reldeps(),
		Obsoletes: xp.Format.Obsoletes.reldeps(),
		Conflicts: xp.Format.Conflicts.reldeps(),
	}, nil
}

func (e xmlEntries) reldeps() []domain.Reldep {
	if len(e.Entries) == 0 {
		return nil
	}
	out := make([]domain.Reldep, 0, len(e.Entries))
	for _, x := range e.Entries {
		out = append(out, domain.Reldep{
			Name:  x.Name,
			Flags: domain.ParseRelOperator(x.Flags),
			EVR:   domain.FormatEVR(x.Epoch, x.Ver, x.Rel),
		})
	}
	return out
}
