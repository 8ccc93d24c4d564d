package tree

import "errors"

var (
	// ErrAllocationFailure is returned when a node or a level buffer cannot
	// be allocated within the configured limits.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrKeyNotFound is returned by lookups and deletions of absent keys.
	ErrKeyNotFound = errors.New("key not found")

	// ErrPartialRelease accompanies an ErrAllocationFailure raised while a
	// tree was being released. Some nodes have been released and some have
	// not; the tree must not be used again.
	ErrPartialRelease = errors.New("tree partially released")

	// ErrInvariant is wrapped by every error returned from Validate.
	ErrInvariant = errors.New("invariant violated")
)
