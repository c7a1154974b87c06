package domain

// TrustedKey is an OpenPGP public key trusted for a repository.
type TrustedKey struct {
	// ID is the 16 hex digit key id of the primary key.
	ID string
	// UserIDs are the identity names bound to the key.
	UserIDs []string
	// Source is the file the key was read from.
	Source string
}
