// Package crucible finds the minimum heat-loss route for a crucible across a
// gridgraph.CostGrid, from the top-left cell to the bottom-right cell.
//
// The crucible may only turn left or right, never reverse, and a MoveProfile
// bounds how many consecutive cells it travels in one direction:
//
//	Profile A (ProfileA) – MinRun=1, MaxRun=3:  turn at will, at most 3 straight.
//	Profile B (ProfileB) – MinRun=4, MaxRun=10: at least 4 straight before turning
//	                       or stopping, at most 10.
//
// The search is Dijkstra over the augmented state space
// (position × facing × run length). The cost of a step is the cost of the
// cell entered; the origin cell is never counted.
//
// Components:
//
//   - Expand     – successors of a state under a profile, at most 3, no allocation.
//   - Frontier   – min-heap of (state, cumulative cost), ties broken by State.Less.
//   - SettledSet – dense bitmap of finalized states, O(1) TryFinalize.
//   - Search     – the driver loop; Solve wraps it and returns only the cost.
//   - SolveAll   – runs several profiles concurrently on one shared grid.
//
// Complexity:
//
//	– Time:  O(S log S) where S = W×H×4×(MaxRun+1) states.
//	   • Every state is finalized at most once.
//	   • Each finalization pushes at most 3 entries (lazy decrease-key).
//	– Space: O(S) for the SettledSet bitmap and the heap.
//
// Options:
//
//	– WithReturnPath():   reconstruct the optimal sequence of states.
//	– WithMaxCost(c):     give up once the cheapest frontier entry exceeds c.
//	– WithOnPop(fn):      observe every entry popped from the frontier.
//	– WithOnFinalize(fn): observe every state as it is settled.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrBadProfile      if the profile violates 1 ≤ MinRun ≤ MaxRun.
//	– ErrOptionViolation if an Option received an invalid argument.
//	– ErrNoPath          if the frontier empties (or MaxCost is exceeded) before
//	                     the goal is reached. Puzzle grids always admit a path,
//	                     so callers should treat this as fatal.
//
// Example usage:
//
//	g, _ := gridgraph.ParseRows(lines)
//	part1, err := crucible.Solve(g, crucible.ProfileA)
//	if err != nil {
//	    log.Fatal(err)
//	}
package crucible
