package wheel

import "errors"

var (
	// ErrEmptyWheel is returned when a spin or resolution needs at least one entry.
	ErrEmptyWheel = errors.New("wheel has no entries; add entries first")
	// ErrInvalidIndex is returned for an entry index outside [0, n).
	ErrInvalidIndex = errors.New("entry index out of range")
	// ErrSpinInProgress is returned when the entry list is changed mid-spin.
	ErrSpinInProgress = errors.New("wheel is spinning")
)
