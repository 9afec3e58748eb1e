// Package cli wires together the Cobra command tree for the langmerge binary.
//
// It defines the root command and all subcommands (build, route, config,
// version), binds flags, reads configuration, invokes the merge pipeline, and
// returns deterministic exit codes for build scripting.
package cli
