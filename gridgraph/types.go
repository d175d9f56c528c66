package gridgraph

// MaxCost is the largest cost a single cell may carry.
const MaxCost = 9

// Point is a cell coordinate; X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// CostGrid is an immutable rectangular grid of per-cell entry costs.
// costs is stored row-major: costs[y*Width+x].
type CostGrid struct {
	Width, Height int
	costs         []uint8
}
