// Langmerge is a build-time CLI that aggregates per-module translation files
// into one combined language dictionary.
//
// Each input file's keys are namespaced with a dot-delimited prefix derived
// from the file's location relative to the application source root, so that
// modules can author small local lang files without coordinating key names.
//
// Usage:
//
//	langmerge build core/features/calendar addons/mod/forum   # merge listed candidates
//	langmerge build --manifest lang.list --out-dir build/i18n # candidates from a manifest
//	langmerge route src/core/features/calendar/strings.json   # show derived prefixes
//	langmerge config show                                     # effective configuration
//
// See https://github.com/dshills/langmerge for full documentation.
package main
