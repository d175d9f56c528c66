// Package cli parses command-line arguments, merges them with the optional
// configuration file and maps usage problems to process exit codes.
package cli
