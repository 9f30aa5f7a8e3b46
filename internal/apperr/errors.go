package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrAlreadyAssigned indicates that the delivery already has a courier.
var ErrAlreadyAssigned = errors.New("delivery already assigned")

// ErrNoCourierAssigned indicates a rating attempt on a delivery without a courier.
var ErrNoCourierAssigned = errors.New("no courier assigned")
