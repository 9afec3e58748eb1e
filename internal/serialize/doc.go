// Package serialize renders a merged dictionary to its canonical JSON form.
//
// Output is deterministic: keys are emitted in ascending lexicographic order
// with 4-space indentation and a trailing newline, so two runs over the same
// merged contents produce byte-identical artifacts regardless of the order
// inputs were discovered.
package serialize
