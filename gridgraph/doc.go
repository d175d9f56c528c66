// Package gridgraph treats a 2D grid of single-digit cell costs as the
// implicit graph walked by the crucible search.
//
// What:
//
//   - CostGrid wraps a rectangular matrix of per-cell costs in [0,9].
//   - Built once from text rows (ParseRows, Read) or from [][]int (NewCostGrid).
//   - Immutable after construction; safe to share between concurrent readers.
//
// Why:
//
//   - The search engine only needs bounds checks and O(1) cost lookups.
//   - Keeping parsing here leaves the engine free of any text handling.
//
// Complexity:
//
//   - ParseRows / NewCostGrid: O(W×H) time and memory.
//   - CostAt, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrGridParse: umbrella sentinel; every construction failure matches it.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a cell is not a decimal digit (or an int outside [0,9]).
//   - ErrOutOfBounds: CostAt was asked for a cell outside the grid.
package gridgraph
