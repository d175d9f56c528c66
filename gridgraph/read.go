package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxRowBytes bounds the length of a single input row accepted by Read.
const MaxRowBytes = 1 << 20

// Read consumes r line by line and builds a CostGrid with ParseRows.
// Carriage returns are trimmed and trailing blank lines ignored; a blank
// line in the middle of the grid is reported as ErrNonRectangular.
// A row longer than MaxRowBytes fails with a wrapped bufio.ErrTooLong.
func Read(r io.Reader) (*CostGrid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowBytes)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return ParseRows(rows)
}
