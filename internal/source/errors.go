package source

import "errors"

var (
	// ErrMalformedDocument is returned when a document is not a flat mapping of scalar keys to scalar values.
	ErrMalformedDocument = errors.New("document must be a mapping of scalar keys to scalar values")
	// ErrAmbiguousOverride is returned by strict selection when more than one override candidate exists.
	ErrAmbiguousOverride = errors.New("more than one override document found")
)
