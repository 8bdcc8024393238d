package etree

import "github.com/pkg/errors"

var (
	ErrKeyNotFound = errors.New("key not found")

	// ErrOrderViolated is returned by Verify when a key sits on the wrong side
	// of one of its ancestors.
	ErrOrderViolated = errors.New("ordering invariant violated")
	// ErrRoleMismatch is returned by Verify when a node's role does not match
	// the slot that owns it.
	ErrRoleMismatch = errors.New("node role mismatch")
	// ErrSizeMismatch is returned by Verify when the number of reachable nodes
	// differs from Len.
	ErrSizeMismatch = errors.New("tree size mismatch")
)
