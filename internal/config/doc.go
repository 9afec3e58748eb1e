// Package config loads and merges langmerge configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (LANGMERGE_SOURCE_ROOTS, LANGMERGE_OUT_DIR, etc.),
//     with a project .env file folded in first via godotenv
//  3. Config file ($XDG_CONFIG_HOME/langmerge/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [LoadWithOrigins] to also learn
// which layer supplied each value, and [SetField] to update a single key by
// name.
package config
