package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/sack/internal/engine/sack"
	"go.trai.ch/zerr"
)

// ExportOptions configuration for the Export method.
type ExportOptions struct {
	ConfigPath string
	// Repo is the repository to export. @System exports the installed set.
	Repo string
	// Output is the file to write to. Empty means w.
	Output string
}

// Export writes the packages of one repository in susetags format.
func (a *App) Export(ctx context.Context, w io.Writer, opts ExportOptions) (err error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	builder := sack.NewBuilder(cfg, a.pools)
	var s *sack.Sack
	if opts.Repo == domain.SystemRepoID {
		s, err = builder.RPMDBSack(ctx)
	} else {
		repo, ok := cfg.Repo(opts.Repo)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrRepoNotFound, "cannot export"), "repo", opts.Repo)
		}
		if !repo.Enabled {
			return zerr.With(zerr.Wrap(domain.ErrRepoNotFound, "repository is disabled"), "repo", opts.Repo)
		}
		s, err = builder.FullSack(ctx)
	}
	if err != nil {
		return err
	}

	if opts.Output == "" {
		return writeTags(ctx, s, w, opts.Repo)
	}

	// The export goes to a temporary file next to the output, renamed into place on success.
	f, err := os.CreateTemp(filepath.Dir(opts.Output), "."+filepath.Base(opts.Output)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", opts.Output)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = writeTags(ctx, s, f, opts.Repo); err != nil {
		return err
	}
	if err = f.Chmod(domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", opts.Output)
	}
	if err = f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", opts.Output)
	}
	if err = os.Rename(tmp, opts.Output); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", opts.Output)
	}

	a.logger.Info(fmt.Sprintf("exported %s to %s", opts.Repo, opts.Output))
	return nil
}

func writeTags(ctx context.Context, s *sack.Sack, w io.Writer, repo string) error {
	buf := bufio.NewWriter(w)
	if _, err := s.SusetagsForRepo(ctx, buf, repo); err != nil {
		return zerr.With(err, "repo", repo)
	}
	if err := buf.Flush(); err != nil {
		return errors.Join(domain.ErrExportWriteFailed, err)
	}
	return nil
}

// QueryOptions configuration for the Query method.
type QueryOptions struct {
	ConfigPath string
	Installed  bool
	Available  bool
	Repos      []string
	Arches     []string
	// Patterns are name globs. No patterns match every package.
	Patterns []string
}

// Query lists matching packages with their repository.
// Installed packages show the repository they were installed from, prefixed with @,
// when the metadata store recorded it.
func (a *App) Query(ctx context.Context, w io.Writer, opts QueryOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	builder := sack.NewBuilder(cfg, a.pools)
	var s *sack.Sack
	if opts.Installed && !opts.Available {
		s, err = builder.RPMDBSack(ctx)
	} else {
		s, err = builder.FullSack(ctx)
	}
	if err != nil {
		return err
	}

	q := s.Query()
	switch {
	case opts.Installed && !opts.Available:
		q = q.Installed()
	case opts.Available && !opts.Installed:
		q = q.Available()
	}
	if len(opts.Repos) > 0 {
		q = q.Filter(sack.ByRepo(opts.Repos...))
	}
	if len(opts.Arches) > 0 {
		q = q.Filter(sack.ByArch(opts.Arches...))
	}
	if len(opts.Patterns) > 0 {
		q = q.Filter(sack.ByName(opts.Patterns...))
	}

	pkgs, err := q.Run(ctx)
	if err != nil {
		return err
	}

	var db ports.PackageDB
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, pkg := range pkgs {
		repo := pkg.Repo.String()
		if pkg.Installed() {
			if db == nil {
				db = a.packageDBs.NewPackageDB(cfg)
			}
			from, err := db.FromRepo(ctx, pkg)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to look up origin repository"), "package", pkg.String())
			}
			if from != "" {
				repo = "@" + from
			}
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", pkg, repo)
	}
	if err := tw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to write query result")
	}
	return nil
}
