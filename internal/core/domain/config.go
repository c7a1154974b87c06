package domain

import "path/filepath"

// DefaultInstallOnlyLimit is the number of parallel installs kept for install-only packages.
const DefaultInstallOnlyLimit = 3

// DefaultInstallOnly lists the package name patterns installed side by side instead of upgraded.
func DefaultInstallOnly() []string {
	return []string{"kernel", "kernel-core", "kernel-modules", "installonlypkg(kernel)"}
}

// Repo is a configured package repository.
type Repo struct {
	ID       string
	Name     string
	BaseURL  string
	Enabled  bool
	GPGCheck bool
	GPGKeys  []string
}

// Config is the resolved sack configuration. All paths are absolute.
type Config struct {
	InstallRoot      string
	CacheDir         string
	RPMDBDir         string
	YumDBDir         string
	InstallOnly      []string
	InstallOnlyLimit uint
	Repos            []Repo
}

// EnabledRepos returns the enabled repositories in configuration order.
func (c *Config) EnabledRepos() []Repo {
	var out []Repo
	for _, r := range c.Repos {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

// Repo returns the repository with the given id.
func (c *Config) Repo(id string) (Repo, bool) {
	for _, r := range c.Repos {
		if r.ID == id {
			return r, true
		}
	}
	return Repo{}, false
}

// StorePath returns the saved fingerprint store directory.
func (c *Config) StorePath() string {
	return StorePath(c.CacheDir)
}

// DefaultConfig returns the configuration used for a bare install root.
func DefaultConfig(installRoot string) *Config {
	return &Config{
		InstallRoot:      installRoot,
		CacheDir:         filepath.Join(installRoot, DefaultCachePath()),
		RPMDBDir:         filepath.Join(installRoot, DefaultRPMDBPath),
		YumDBDir:         filepath.Join(installRoot, DefaultYumDBPath),
		InstallOnly:      DefaultInstallOnly(),
		InstallOnlyLimit: DefaultInstallOnlyLimit,
	}
}
