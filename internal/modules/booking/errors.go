package booking

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrStudioNotFound = errors.New("studio not found")
	// ErrOwnerBlocked: the owner reserved the studio through a date on
	// or after the requested start.
	ErrOwnerBlocked = errors.New("studio reserved by owner")
	// ErrRangeConflict: an existing confirmed booking overlaps the
	// requested range under inclusive bounds.
	ErrRangeConflict = errors.New("booking range conflict")
)
