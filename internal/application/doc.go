// Package application wires configuration, document loading, header
// construction and output into a single generation pass, plus a file-event
// watch mode that reruns the pass when input documents change.
package application
