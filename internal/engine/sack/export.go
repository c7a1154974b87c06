package sack

import (
	"bytes"
	"context"
	"errors"
	"io"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/zerr"
)

const tagsVersionLine = "=Ver: 2.0\n"

var relationTags = map[domain.RelKind]string{
	domain.RelProvides:  "=Prv: ",
	domain.RelRequires:  "=Req: ",
	domain.RelObsoletes: "=Obs: ",
	domain.RelConflicts: "=Con: ",
}

// ExportTags writes the packages matching filters to w in susetags format and returns w.
//
// Each package record is assembled in memory and handed to w in a single
// write, so a failing sink never receives half a record. Write errors are
// returned joined with ErrExportWriteFailed; nothing is retried.
func (s *Sack) ExportTags(ctx context.Context, w io.Writer, filters ...Filter) (io.Writer, error) {
	pkgs, err := s.Query().Filter(filters...).Run(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(w, tagsVersionLine); err != nil {
		return nil, errors.Join(domain.ErrExportWriteFailed, err)
	}

	var buf bytes.Buffer
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		buf.Reset()
		writeRecord(&buf, pkg)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return nil, errors.Join(domain.ErrExportWriteFailed, zerr.With(err, "package", pkg.String()))
		}
	}

	return w, nil
}

// SusetagsForRepo exports the packages of a single repository.
func (s *Sack) SusetagsForRepo(ctx context.Context, w io.Writer, reponame string) (io.Writer, error) {
	return s.ExportTags(ctx, w, ByRepo(reponame))
}

func writeRecord(buf *bytes.Buffer, pkg *domain.Package) {
	buf.WriteString("=Pkg: ")
	buf.WriteString(pkg.Name)
	buf.WriteByte(' ')
	buf.WriteString(pkg.Version)
	buf.WriteByte(' ')
	buf.WriteString(pkg.Release)
	buf.WriteByte(' ')
	buf.WriteString(pkg.Arch.String())
	buf.WriteByte('\n')

	for _, kind := range domain.RelKinds {
		tag := relationTags[kind]
		for _, rel := range pkg.Relations(kind) {
			buf.WriteString(tag)
			buf.WriteString(rel.String())
			buf.WriteByte('\n')
		}
	}
}
