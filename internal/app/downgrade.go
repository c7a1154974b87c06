package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/engine/sack"
	"go.trai.ch/sack/internal/ui/output"
	"go.trai.ch/sack/internal/ui/style"
	"go.trai.ch/zerr"
)

// DowngradeOptions configuration for the Downgrade method.
type DowngradeOptions struct {
	ConfigPath string
	// Specs are package name globs or paths of local package files.
	Specs []string
}

// Downgrade plans downgrading the packages matching opts.Specs and prints the plan.
// The plan is never executed.
func (a *App) Downgrade(ctx context.Context, w io.Writer, opts DowngradeOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	if err := a.checkDowngrade(ctx, cfg, opts.Specs); err != nil {
		return err
	}

	s, err := sack.NewBuilder(cfg, a.pools).FullSack(ctx)
	if err != nil {
		return err
	}

	specs := make([]string, 0, len(opts.Specs))
	for _, spec := range opts.Specs {
		if isLocalPackage(spec) {
			pkg, err := s.AddCmdlinePackage(ctx, spec)
			if err != nil {
				return err
			}
			spec = pkg.Name
		}
		specs = append(specs, spec)
	}

	tx, err := a.newDowngrader(s).Downgrade(ctx, specs)
	if err != nil {
		return err
	}

	for _, pkg := range tx.Skipped {
		a.logger.Warn(fmt.Sprintf("%s is already at the lowest available version", pkg))
	}
	return renderTransaction(w, tx)
}

// checkDowngrade verifies, in order, that every enabled repository with
// signature checks has trusted keys, that packages were named, and that
// there is somewhere to downgrade from.
func (a *App) checkDowngrade(ctx context.Context, cfg *domain.Config, specs []string) error {
	enabled := cfg.EnabledRepos()

	for _, repo := range enabled {
		if !repo.GPGCheck {
			continue
		}
		keys, err := a.keys.Keys(ctx, repo)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read trusted keys"), "repo", repo.ID)
		}
		if len(keys) == 0 {
			return errors.Join(
				domain.ErrPreconditionFailed,
				zerr.With(zerr.Wrap(domain.ErrNoTrustedKeys, "configure a gpgkey or disable gpgcheck"), "repo", repo.ID),
			)
		}
	}

	if len(specs) == 0 {
		return errors.Join(domain.ErrPreconditionFailed, zerr.Wrap(domain.ErrNoPackageArgs, "cannot downgrade"))
	}

	if len(enabled) == 0 && !allLocalPackages(specs) {
		return errors.Join(
			domain.ErrPreconditionFailed,
			zerr.Wrap(domain.ErrNoEnabledRepos, "enable a repository in "+domain.ConfigFileName),
		)
	}

	return nil
}

func isLocalPackage(spec string) bool {
	if !strings.HasSuffix(spec, ".rpm") {
		return false
	}
	info, err := os.Stat(spec)
	return err == nil && info.Mode().IsRegular()
}

func allLocalPackages(specs []string) bool {
	for _, spec := range specs {
		if !isLocalPackage(spec) {
			return false
		}
	}
	return true
}

func renderTransaction(w io.Writer, tx *domain.Transaction) error {
	out := output.New(w)

	var counts [3]int
	for _, item := range tx.Items {
		icon, color := actionIcon(item.Action)
		line := fmt.Sprintf("%s %-9s %s",
			out.String(icon).Foreground(out.Color(color)).String(), item.Action, item.Package)
		if item.Replaces != nil {
			line += fmt.Sprintf(" (replaces %s)", item.Replaces)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return zerr.Wrap(err, "failed to write transaction")
		}
		if int(item.Action) < len(counts) {
			counts[item.Action]++
		}
	}

	_, err := fmt.Fprintf(w, "\n%d to downgrade, %d to install, %d to remove (not executed)\n",
		counts[domain.ActionDowngrade], counts[domain.ActionInstall], counts[domain.ActionRemove])
	if err != nil {
		return zerr.Wrap(err, "failed to write transaction")
	}
	return nil
}

func actionIcon(action domain.Action) (string, string) {
	switch action {
	case domain.ActionInstall:
		return style.Plus, string(style.Green)
	case domain.ActionRemove:
		return style.Minus, string(style.Red)
	default:
		return style.Arrow, string(style.Yellow)
	}
}
