package namegen

import "errors"

var (
	// ErrUnknownStyle is returned by ParseStyle for values outside the four supported styles.
	ErrUnknownStyle = errors.New("unknown naming style")

	// ErrInvalidWordBank is returned when a word bank fails validation.
	ErrInvalidWordBank = errors.New("invalid word bank")

	// ErrLoadWordBank is returned when a word bank cannot be read or decoded.
	ErrLoadWordBank = errors.New("failed to load word bank")
)
