// Package app wires the crucible command together: it builds the logger,
// loads the grid, runs every configured profile and reports the answers.
package app
