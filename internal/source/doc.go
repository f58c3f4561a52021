// Package source loads the key/value YAML documents that feed header
// generation and decides which sibling document, if any, overrides the
// bundled defaults.
package source
