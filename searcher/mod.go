package searcher

import "math"

// Explicit bounds of the search window
const (
	MaxScore = math.MaxInt
	MinScore = math.MinInt
)
