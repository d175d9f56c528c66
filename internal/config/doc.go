// Package config holds the runtime configuration of the crucible command:
// logging, concurrency and the move profiles to solve. Values come from
// built-in defaults, optionally overridden by an HCL file and then by
// command-line flags.
package config
