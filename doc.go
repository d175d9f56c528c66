// Package crucible is the root of the crucible route finder: minimum
// heat-loss paths across a grid of digit costs for a crucible whose
// straight runs are bounded by a move profile.
//
// What lives where:
//
//	gridgraph/        — immutable CostGrid: parsing, bounds, row-major helpers
//	crucible/         — the search engine: Expand, Frontier, SettledSet, Search
//	internal/config/  — defaults + HCL configuration file
//	internal/cli/     — flag parsing, exit codes
//	internal/app/     — logger, grid loading, running every profile
//	cmd/crucible/     — the command
//
// Quick ASCII example (Profile A, runs of 1..3):
//
//	2 4 1 3        start top-left, finish bottom-right;
//	3 2 1 5        the entry cost of every cell on the
//	3 2 5 5        route is summed, the start cell is free.
//
//	go run ./cmd/crucible input.txt
package crucible
