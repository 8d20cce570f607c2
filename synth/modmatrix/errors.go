package modmatrix

import "errors"

var (
	// ErrInvalidSource is returned for an out-of-range source ID.
	ErrInvalidSource = errors.New("modmatrix: invalid source")
	// ErrInvalidDestination is returned for an out-of-range destination ID.
	ErrInvalidDestination = errors.New("modmatrix: invalid destination")
	// ErrInvalidBinding is returned for a nil port or bad channel.
	ErrInvalidBinding = errors.New("modmatrix: invalid binding")
)
