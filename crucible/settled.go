package crucible

import "fmt"

// SettledSet records which states have had their minimal cost finalized.
// It is a dense bitmap indexed by (x, y, facing, run), sized
// Width×Height×4×(MaxRun+1), giving O(1) access without hashing.
type SettledSet struct {
	width  int
	height int
	runs   int
	bits  []bool
	n     int
}

// NewSettledSet allocates a set for a width×height grid and runs 0..maxRun.
func NewSettledSet(width, height, maxRun int) *SettledSet {
	runs := maxRun + 1

	return &SettledSet{
		width:  width,
		height: height,
		runs:   runs,
		bits:   make([]bool, width*height*numDirections*runs),
	}
}

// TryFinalize marks s settled and reports whether it was newly finalized.
// s must lie on the grid with Run ≤ maxRun; otherwise it panics.
func (ss *SettledSet) TryFinalize(s State) bool {
	i := ss.index(s)
	if ss.bits[i] {
		return false
	}
	ss.bits[i] = true
	ss.n++

	return true
}

// Contains reports whether s has been finalized.
func (ss *SettledSet) Contains(s State) bool {
	return ss.bits[ss.index(s)]
}

// Len returns the number of finalized states.
func (ss *SettledSet) Len() int { return ss.n }

func (ss *SettledSet) index(s State) int {
	if s.Run < 0 || s.Run >= ss.runs || s.Facing >= numDirections ||
		s.Pos.X < 0 || s.Pos.X >= ss.width || s.Pos.Y < 0 || s.Pos.Y >= ss.height {
		panic(fmt.Sprintf("crucible: state %v outside settled set", s))
	}
	cell := s.Pos.Y*ss.width + s.Pos.X

	return (cell*numDirections+int(s.Facing))*ss.runs + s.Run
}
