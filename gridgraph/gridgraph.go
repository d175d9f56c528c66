// Package gridgraph provides the immutable cost grid consumed by the
// crucible search: construction from digit rows, bounds checks and
// row-major index helpers.
package gridgraph

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice.
// It copies the input so later mutation of values has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrInvalidCell
// if any value lies outside [0,MaxCost]; all three match ErrGridParse.
// Complexity: O(W×H) time and memory.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, &ParseError{Row: 0, Col: -1, Err: ErrEmptyGrid}
	}
	h, w := len(values), len(values[0])
	costs := make([]uint8, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, &ParseError{Row: y, Col: -1, Err: ErrNonRectangular}
		}
		for x, v := range row {
			if v < 0 || v > MaxCost {
				return nil, &ParseError{Row: y, Col: x, Err: ErrInvalidCell}
			}
			costs = append(costs, uint8(v))
		}
	}

	return &CostGrid{Width: w, Height: h, costs: costs}, nil
}

// ParseRows constructs a CostGrid from equal-length rows of digit characters,
// one character per cell. Errors are the same as NewCostGrid.
// Complexity: O(W×H).
func ParseRows(rows []string) (*CostGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ParseError{Row: 0, Col: -1, Err: ErrEmptyGrid}
	}
	h, w := len(rows), len(rows[0])
	costs := make([]uint8, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, &ParseError{Row: y, Col: -1, Err: ErrNonRectangular}
		}
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c < '0' || c > '9' {
				return nil, &ParseError{Row: y, Col: x, Err: ErrInvalidCell}
			}
			costs = append(costs, c-'0')
		}
	}

	return &CostGrid{Width: w, Height: h, costs: costs}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CostAt returns the cost of entering cell (x,y).
// Returns ErrOutOfBounds if (x,y) is outside the grid.
// Complexity: O(1).
func (g *CostGrid) CostAt(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}

	return int(g.costs[g.Index(x, y)]), nil
}

// Cells returns the number of cells, Width×Height.
func (g *CostGrid) Cells() int {
	return len(g.costs)
}

// Origin is the top-left cell.
func (g *CostGrid) Origin() Point {
	return Point{X: 0, Y: 0}
}

// Destination is the bottom-right cell.
func (g *CostGrid) Destination() Point {
	return Point{X: g.Width - 1, Y: g.Height - 1}
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The caller guarantees (x,y) is in bounds.
// Complexity: O(1).
func (g *CostGrid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *CostGrid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Rows renders the grid back into digit rows, the inverse of ParseRows.
func (g *CostGrid) Rows() []string {
	rows := make([]string, g.Height)
	buf := make([]byte, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf[x] = '0' + g.costs[g.Index(x, y)]
		}
		rows[y] = string(buf)
	}

	return rows
}
