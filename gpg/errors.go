package gpg

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedIdentity is returned when a user ID string can not be split
	// into its components, for example when a comment is not closed.
	ErrMalformedIdentity = errors.New("malformed identity")

	// ErrInvalidKeyRecord is returned when a backend record does not carry
	// the data required to build a Key.
	ErrInvalidKeyRecord = errors.New("invalid key record")

	// ErrInvalidExpiry is returned when an expiry value is neither empty,
	// an epoch number, nor a timestamp.
	ErrInvalidExpiry = errors.New("invalid expiry")
)
