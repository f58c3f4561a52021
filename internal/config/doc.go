// Package config resolves the generator's paths and switches from CLI flags
// and the repository layout, with precedence: CLI flags > paths derived from
// the defaults document > layout discovery. No environment variables are read.
package config
