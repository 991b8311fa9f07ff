// Package records implements the persistence boundary for user and project record
// sets. A Store encodes whole sets to JSON and hands the bytes to a Backend, which
// owns durability. Loads never fail the caller: a missing, empty or corrupt set reads
// as an empty set. Saves replace the full set and report every failure.
package records

import "context"

// Kind names a persisted record set.
type Kind string

const (
	// KindUsers is the registered user directory.
	KindUsers Kind = "users"
	// KindProjects is the project ledger.
	KindProjects Kind = "projects"
)

// Backend stores the encoded content of one record set per Kind.
type Backend interface {
	// Read returns the stored content of kind, or apperrors.ErrNotFound when the set
	// has never been written.
	Read(ctx context.Context, kind Kind) ([]byte, error)
	// Write replaces the stored content of kind. Readers must observe either the old
	// or the new content, never a mix.
	Write(ctx context.Context, kind Kind, data []byte) error
}
