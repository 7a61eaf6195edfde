// Package cmd implements the command-line interface of kvwire. It is a
// consumer of the transport core, not part of it: the core packages never
// depend on cmd.
//
// The package is organized into subpackages:
//
//   - check: Command for dialing and validating a server connection
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See kvwire -help for a list of all commands.
package cmd
