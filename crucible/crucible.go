package crucible

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// DefaultOptions returns the Options used when no Option is supplied:
// no path reconstruction, no cost cap, no-op hooks.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		OnPop:      func(Entry) {},
		OnFinalize: func(State) {},
	}
}

// Solve returns the minimal heat loss from the top-left to the bottom-right
// cell of g under profile p. It is Search without options, reduced to the cost.
func Solve(g *gridgraph.CostGrid, p Profile) (int64, error) {
	res, err := Search(g, p)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search runs Dijkstra over (position × facing × run) states of g under p.
//
// The frontier is seeded with (origin, Right, 0) and (origin, Down, 0) at
// cost 0, since the first move is not bound by any prior facing. Each pop:
//  1. skips the entry if its state is already settled,
//  2. settles it,
//  3. returns if it is the goal: destination reached with Run ≥ MinRun
//     (a seed counts, which only happens on a 1×1 grid),
//  4. otherwise pushes every unsettled successor at cost + edge cost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. p must satisfy 1 ≤ MinRun ≤ MaxRun (ErrBadProfile).
//  3. every Option must be valid (ErrOptionViolation).
//
// Returns ErrNoPath if the frontier empties first, or if every remaining
// entry exceeds MaxCost.
//
// Complexity: O(S log S) time, O(S) space, S = W×H×4×(MaxRun+1).
func Search(g *gridgraph.CostGrid, p Profile, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner{
		g:        g,
		profile:  p,
		options:  cfg,
		dest:     g.Destination(),
		frontier: NewFrontier(g.Cells()),
		settled:  NewSettledSet(g.Width, g.Height, p.MaxRun),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State)
	}

	return r.run()
}

// runner holds the mutable state of a single Search. Nothing in it is
// shared with other invocations.
type runner struct {
	g        *gridgraph.CostGrid
	profile  Profile
	options  Options
	dest     gridgraph.Point
	frontier *Frontier
	settled  *SettledSet
	prev     map[State]State // nil unless ReturnPath
	popped   int
	pushed   int
}

func (r *runner) run() (*Result, error) {
	origin := r.g.Origin()
	r.frontier.Push(State{Pos: origin, Facing: Right}, 0)
	r.frontier.Push(State{Pos: origin, Facing: Down}, 0)
	r.pushed = 2

	for {
		it, ok := r.frontier.pop()
		if !ok {
			return nil, fmt.Errorf("%w: frontier exhausted after settling %d states under profile %v",
				ErrNoPath, r.settled.Len(), r.profile)
		}
		r.popped++
		r.options.OnPop(it.Entry)

		if it.Cost > r.options.MaxCost {
			return nil, fmt.Errorf("%w: cheapest remaining cost %d exceeds MaxCost %d",
				ErrNoPath, it.Cost, r.options.MaxCost)
		}

		s := it.State
		if !r.settled.TryFinalize(s) {
			continue
		}
		r.options.OnFinalize(s)
		if r.prev != nil && !it.root {
			r.prev[s] = it.parent
		}

		if r.isGoal(s) {
			return r.result(it), nil
		}

		r.relax(it.Entry)
	}
}

// isGoal reports whether s ends a valid route. Run == 0 only holds for the
// seeds, so it only matches when origin and destination coincide.
func (r *runner) isGoal(s State) bool {
	return s.Pos == r.dest && (s.Run >= r.profile.MinRun || s.Run == 0)
}

// relax pushes the unsettled successors of e.
func (r *runner) relax(e Entry) {
	succ, n := Expand(r.g, e.State, r.profile)
	for _, nx := range succ[:n] {
		if r.settled.Contains(nx.State) {
			continue
		}
		r.frontier.pushFrom(nx.State, e.Cost+int64(nx.Cost), e.State)
		r.pushed++
	}
}

func (r *runner) result(goal item) *Result {
	res := &Result{
		Cost:    goal.Cost,
		Popped:  r.popped,
		Pushed:  r.pushed,
		Settled: r.settled.Len(),
	}
	if r.prev != nil {
		res.Path = r.path(goal.State)
	}

	return res
}

// path walks predecessors back from goal to the seed and reverses them.
func (r *runner) path(goal State) []State {
	path := []State{goal}
	for cur := goal; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
