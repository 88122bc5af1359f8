package mesh

import "errors"

var (
	// ErrInvalidTopology reports a structurally broken face description,
	// such as a face run with fewer than three vertices or an index
	// referencing a vertex that does not exist.
	ErrInvalidTopology = errors.New("mesh: invalid topology")

	// ErrInvalidArgument reports a construction parameter outside its
	// valid range (non-positive capacity, mismatched vertex layout).
	ErrInvalidArgument = errors.New("mesh: invalid argument")

	// ErrIndexRangeExceeded reports a mesh whose vertices cannot be
	// addressed with 16-bit indices.
	ErrIndexRangeExceeded = errors.New("mesh: index exceeds 16-bit range")

	// ErrFinalized reports a second Finalize on the same builder, or use
	// of a disposed builder.
	ErrFinalized = errors.New("mesh: builder already finalized")
)
