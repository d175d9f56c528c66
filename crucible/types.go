package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the crucible search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadProfile indicates a MoveProfile outside 1 ≤ MinRun ≤ MaxRun.
	ErrBadProfile = errors.New("crucible: profile must satisfy 1 <= MinRun <= MaxRun")

	// ErrOptionViolation indicates an invalid functional option argument.
	ErrOptionViolation = errors.New("crucible: invalid option supplied")

	// ErrNoPath indicates the frontier was exhausted before reaching the goal.
	ErrNoPath = errors.New("crucible: no path to destination")
)

// Direction is the facing of the crucible. The set is closed: any value
// other than the four constants is a precondition violation.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// numDirections sizes the dense SettledSet.
const numDirections = 4

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		panic(fmt.Sprintf("crucible: invalid direction %d", uint8(d)))
	}
}

// Delta returns the unit step (dx, dy) for d; Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		panic(fmt.Sprintf("crucible: invalid direction %d", uint8(d)))
	}
}

// Perpendicular returns the two directions a crucible facing d may turn into.
// The reverse of d is never among them.
func (d Direction) Perpendicular() [2]Direction {
	switch d {
	case Up, Down:
		return [2]Direction{Left, Right}
	case Left, Right:
		return [2]Direction{Up, Down}
	default:
		panic(fmt.Sprintf("crucible: invalid direction %d", uint8(d)))
	}
}

// State is a node of the augmented search graph. Run counts the consecutive
// cells already travelled in Facing when arriving at Pos; Run == 0 only for
// the two seed states at the origin. State is comparable and may be used as
// a map key.
type State struct {
	Pos    gridgraph.Point
	Facing Direction
	Run    int
}

// Less orders states by (Y, X, Facing, Run). The Frontier uses it to break
// cost ties so that every run is reproducible.
func (s State) Less(o State) bool {
	if s.Pos.Y != o.Pos.Y {
		return s.Pos.Y < o.Pos.Y
	}
	if s.Pos.X != o.Pos.X {
		return s.Pos.X < o.Pos.X
	}
	if s.Facing != o.Facing {
		return s.Facing < o.Facing
	}

	return s.Run < o.Run
}

// String formats s as "(x,y) facing×run".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d) %s×%d", s.Pos.X, s.Pos.Y, s.Facing, s.Run)
}

// Profile bounds the run length: a crucible must travel at least MinRun
// cells before turning or stopping, and at most MaxRun before turning.
type Profile struct {
	MinRun int
	MaxRun int
}

var (
	// ProfileA lets the crucible turn after any run of 1 to 3 cells.
	ProfileA = Profile{MinRun: 1, MaxRun: 3}
	// ProfileB is the ultra crucible: runs of 4 to 10 cells.
	ProfileB = Profile{MinRun: 4, MaxRun: 10}
)

// Validate returns ErrBadProfile unless 1 ≤ MinRun ≤ MaxRun.
func (p Profile) Validate() error {
	if p.MinRun < 1 || p.MaxRun < p.MinRun {
		return fmt.Errorf("%w: got MinRun=%d MaxRun=%d", ErrBadProfile, p.MinRun, p.MaxRun)
	}

	return nil
}

// String formats p as "min..max".
func (p Profile) String() string {
	return fmt.Sprintf("%d..%d", p.MinRun, p.MaxRun)
}

// Successor is a legal move out of a state together with its edge cost,
// the cost of the cell it enters.
type Successor struct {
	State State
	Cost  int
}

// Entry is a frontier element: a state and the total cost from the origin.
type Entry struct {
	State State
	Cost  int64
}

// Result is the outcome of a successful Search.
//
//   - Cost:    minimal total heat loss, origin cell excluded.
//   - Path:    states from a seed at the origin to the goal state, only
//     populated with WithReturnPath().
//   - Popped:  entries removed from the frontier, stale ones included.
//   - Pushed:  entries pushed, the two seeds included.
//   - Settled: distinct states finalized.
type Result struct {
	Cost    int64
	Path    []State
	Popped  int
	Pushed  int
	Settled int
}

// Options configures a Search.
//
// ReturnPath – if true, Result.Path holds the optimal state sequence.
// MaxCost    – entries costing more are never expanded. Default math.MaxInt64.
// OnPop      – called for every entry popped, stale ones included.
// OnFinalize – called once per state when it is settled.
type Options struct {
	ReturnPath bool
	MaxCost    int64
	OnPop      func(e Entry)
	OnFinalize func(s State)

	// err records the first invalid option; surfaced by Search.
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables reconstruction of the optimal path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops the search once the cheapest remaining entry costs more
// than max; Search then reports ErrNoPath. Negative values are recorded as
// ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnPop registers a callback invoked with every popped frontier entry.
func WithOnPop(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnFinalize registers a callback invoked once per settled state.
func WithOnFinalize(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}
