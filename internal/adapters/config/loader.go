// Package config loads sack.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/sack/internal/core/domain"
	"go.trai.ch/sack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validRepoIDRegex = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load finds sack.yaml in cwd or the nearest parent and resolves it.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path)
}

// DiscoverRoot returns the directory holding the sack.yaml that applies to cwd.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	path, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// LoadFile reads and resolves the configuration at path.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var sf Sackfile
	if err := l.readAndUnmarshalYAML(abs, &sf); err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	cfg, err := l.resolve(filepath.Dir(abs), &sf)
	if err != nil {
		return nil, zerr.With(err, "path", abs)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to locate configuration"), "cwd", cwd)
}

func (l *Loader) readAndUnmarshalYAML(path string, target *Sackfile) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(domain.ErrConfigNotFound, domain.ErrConfigReadFailed.Error())
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func (l *Loader) resolve(configDir string, sf *Sackfile) (*domain.Config, error) {
	installRoot := resolvePath(configDir, sf.InstallRoot)
	cfg := domain.DefaultConfig(installRoot)

	if sf.CacheDir != "" {
		cfg.CacheDir = resolvePath(configDir, sf.CacheDir)
	} else {
		cfg.CacheDir = filepath.Join(configDir, domain.DefaultCachePath())
	}
	if sf.RPMDB != "" {
		cfg.RPMDBDir = resolvePath(installRoot, sf.RPMDB)
	}
	if sf.YumDB != "" {
		cfg.YumDBDir = resolvePath(installRoot, sf.YumDB)
	}
	if sf.InstallOnly != nil {
		cfg.InstallOnly = sf.InstallOnly
	}
	if sf.InstallOnlyLimit != nil {
		cfg.InstallOnlyLimit = *sf.InstallOnlyLimit
	}

	seen := make(map[string]bool, len(sf.Repos))
	for _, dto := range sf.Repos {
		if err := validateRepoID(dto.ID); err != nil {
			return nil, err
		}
		if seen[dto.ID] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateRepoID, "invalid repository"), "repo", dto.ID)
		}
		seen[dto.ID] = true

		repo := buildRepo(configDir, dto)
		if repo.Enabled && repo.GPGCheck && len(repo.GPGKeys) == 0 && l.Logger != nil {
			l.Logger.Warn(fmt.Sprintf("repository %q has gpgcheck enabled but no gpgkey", repo.ID))
		}
		cfg.Repos = append(cfg.Repos, repo)
	}

	return cfg, nil
}

func validateRepoID(id string) error {
	if !validRepoIDRegex.MatchString(id) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRepoID, "invalid repository"), "repo", id)
	}
	return nil
}

func buildRepo(configDir string, dto RepoDTO) domain.Repo {
	repo := domain.Repo{
		ID:       dto.ID,
		Name:     dto.Name,
		BaseURL:  resolveLocation(configDir, dto.BaseURL),
		Enabled:  dto.Enabled == nil || *dto.Enabled,
		GPGCheck: dto.GPGCheck != nil && *dto.GPGCheck,
	}
	if repo.Name == "" {
		repo.Name = repo.ID
	}
	for _, key := range dto.GPGKey {
		repo.GPGKeys = append(repo.GPGKeys, resolveLocation(configDir, key))
	}
	return repo
}

// resolvePath makes p absolute against base. An empty p is base itself.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// resolveLocation resolves plain paths like resolvePath and leaves URLs untouched.
func resolveLocation(base, loc string) string {
	if loc == "" || strings.Contains(loc, "://") {
		return loc
	}
	return resolvePath(base, loc)
}
