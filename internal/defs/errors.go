package defs

import "errors"

// ErrMissingKey is returned when a recognized key has no value in either document and no symbolic fallback.
var ErrMissingKey = errors.New("key missing from defaults and override documents")
