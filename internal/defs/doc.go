// Package defs turns the defaults and override documents into the ordered
// list of preprocessor constants written to the common Defs.h header.
package defs
