// Package parse decodes a single translation artifact into a flat key/value
// map.
//
// JSON, YAML, and TOML documents are supported, selected by file extension.
// Nested tables are flattened into dot-joined keys, so
//
//	{"button": {"ok": "OK"}}
//
// yields the single entry button.ok = "OK". Scalar values are stringified;
// arrays are rejected.
package parse
