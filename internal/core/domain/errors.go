package domain

import "go.trai.ch/zerr"

var (
	// ErrChecksumLookupFailed is returned when the package metadata store cannot be read for a package.
	ErrChecksumLookupFailed = zerr.New("failed to look up package checksum")

	// ErrPackageQueryFailed is returned when the package pool cannot enumerate its packages.
	ErrPackageQueryFailed = zerr.New("failed to query packages")

	// ErrRPMDBReadFailed is returned when the installed package database cannot be read.
	ErrRPMDBReadFailed = zerr.New("failed to read installed package database")

	// ErrRPMHeaderInvalid is returned when an installed package header is missing a required tag.
	ErrRPMHeaderInvalid = zerr.New("invalid package header")

	// ErrRepoLoadFailed is returned when repository metadata cannot be loaded.
	ErrRepoLoadFailed = zerr.New("failed to load repository metadata")

	// ErrRepoPrimaryNotFound is returned when repomd.xml does not reference primary metadata.
	ErrRepoPrimaryNotFound = zerr.New("primary metadata not found in repomd.xml")

	// ErrRepoNotFound is returned when a repository id is not configured.
	ErrRepoNotFound = zerr.New("repository not found")

	// ErrExportWriteFailed is returned when the export sink rejects a write.
	ErrExportWriteFailed = zerr.New("failed to write tag export")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrPreconditionFailed is returned when a command precondition is not met.
	ErrPreconditionFailed = zerr.New("precondition failed")

	// ErrNoTrustedKeys is returned when an enabled repository requires signature checks but no key is available.
	ErrNoTrustedKeys = zerr.New("no trusted GPG keys available for enabled repository")

	// ErrNoPackageArgs is returned when a command needs package arguments and none were given.
	ErrNoPackageArgs = zerr.New("need to pass a list of packages")

	// ErrNoEnabledRepos is returned when no repository is enabled.
	ErrNoEnabledRepos = zerr.New("there are no enabled repositories")

	// ErrNoMatch is returned when a package spec matches no installed package.
	ErrNoMatch = zerr.New("no package matched")

	// ErrNotInstalled is returned when a package spec matches only repository packages.
	ErrNotInstalled = zerr.New("packages for argument available, but not installed")

	// ErrNothingToDowngrade is returned when no lower version is available for an installed package.
	ErrNothingToDowngrade = zerr.New("package is already at the lowest available version")

	// ErrKeyReadFailed is returned when GPG key material cannot be read.
	ErrKeyReadFailed = zerr.New("failed to read GPG key")

	// ErrMetadataReadFailed is returned when a package metadata record cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read package metadata")

	// ErrMetadataWriteFailed is returned when a package metadata record cannot be written.
	ErrMetadataWriteFailed = zerr.New("failed to write package metadata")

	// ErrPackageFileMissing is returned when an installed package has no on-disk location.
	ErrPackageFileMissing = zerr.New("package file location unknown")

	// ErrFingerprintDrift is returned when the installed package set differs from the saved fingerprint.
	ErrFingerprintDrift = zerr.New("installed packages changed since the fingerprint was saved")

	// ErrNoSavedFingerprint is returned when a check is requested but no fingerprint was saved.
	ErrNoSavedFingerprint = zerr.New("no saved fingerprint")

	// ErrStoreCreateFailed is returned when the fingerprint store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create fingerprint store directory")

	// ErrStoreReadFailed is returned when a saved fingerprint cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read saved fingerprint")

	// ErrStoreUnmarshalFailed is returned when a saved fingerprint cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal saved fingerprint")

	// ErrStoreMarshalFailed is returned when a fingerprint cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal fingerprint")

	// ErrStoreWriteFailed is returned when a fingerprint cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write fingerprint")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find sack.yaml")

	// ErrInvalidRepoID is returned when a repository id is empty or contains invalid characters.
	ErrInvalidRepoID = zerr.New("repository id can only contain alphanumeric characters, '.', '-', '_' and ':'")

	// ErrDuplicateRepoID is returned when two repositories share the same id.
	ErrDuplicateRepoID = zerr.New("duplicate repository id")

	// ErrWatchFailed is returned when the installed package database cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch installed package database")
)
