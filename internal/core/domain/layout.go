package domain

import "path/filepath"

const (
	// SackDirName is the name of the internal workspace directory.
	SackDirName = ".sack"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// StoreDirName is the name of the saved fingerprint store directory below the cache directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sack.yaml"

	// DefaultRPMDBPath is the installed package database, relative to the install root.
	DefaultRPMDBPath = "var/lib/sack/rpmdb"

	// DefaultYumDBPath is the package metadata store, relative to the install root.
	DefaultYumDBPath = "var/lib/sack/yumdb"

	// RepoDataDirName is the directory holding repository metadata below a repository base.
	RepoDataDirName = "repodata"

	// RepoMDFileName is the repository metadata index file.
	RepoMDFileName = "repomd.xml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache directory.
// It joins .sack and cache.
func DefaultCachePath() string {
	return filepath.Join(SackDirName, CacheDirName)
}

// StorePath returns the saved fingerprint store below the given cache directory.
func StorePath(cacheDir string) string {
	return filepath.Join(cacheDir, StoreDirName)
}

// RepoMDPath returns the path of repomd.xml below a repository base directory.
func RepoMDPath(baseDir string) string {
	return filepath.Join(baseDir, RepoDataDirName, RepoMDFileName)
}
