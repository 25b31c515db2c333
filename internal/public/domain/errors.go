package domain

import "errors"

// Failure classes surfaced by the persistence gateway. Repositories wrap the
// driver error with one of these so callers can branch without importing the
// mongo driver.
var (
	// ErrNotFound reports that an id-addressed operation targeted a missing
	// entity. Absence on a list read is an empty result, not an error.
	ErrNotFound = errors.New("entity not found")

	// ErrStoreUnavailable reports that the backing store could not be
	// reached at all.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreQuery reports a malformed query or an unexpected response
	// shape on a read.
	ErrStoreQuery = errors.New("store query failed")

	// ErrStoreWrite reports a rejected create/update/delete.
	ErrStoreWrite = errors.New("store write failed")

	// ErrUpload reports a failed image upload. Callers degrade to keeping
	// the inline value instead of failing the owning write.
	ErrUpload = errors.New("image upload failed")
)
