package builder

// Constructor names prefix every error a constructor returns.
const (
	MethodRandom       = "Random"
	MethodRandomSparse = "RandomSparse"
	MethodComplete     = "Complete"
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodEmpty        = "Empty"
)

// CenterVertexID is the hub of a Star.
const CenterVertexID = 0

// Smallest vertex count each constructor accepts.
const (
	// MinRandomNodes applies to Random and RandomSparse.
	MinRandomNodes = 1
	// MinCompleteNodes: K_1 is a single vertex and still a clique.
	MinCompleteNodes = 1
	// MinCycleNodes: a ring needs three vertices without loops or parallel edges.
	MinCycleNodes = 3
	// MinPathNodes: one edge.
	MinPathNodes = 2
	// MinStarNodes: the hub plus one leaf.
	MinStarNodes = 2
)

// DefaultSeed reproduces the graphs of the reference experiment.
const DefaultSeed int64 = 108215

// DefaultVertexWeight is used when neither an RNG nor a WeightFn is set.
const DefaultVertexWeight int64 = 1

// Seeded builds draw vertex weights uniformly from
// [DefaultMinWeight, DefaultMaxWeight].
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 49
)

// Seeded builds place vertices on the integer grid
// [DefaultMinCoord, DefaultMaxCoord]².
const (
	DefaultMinCoord = 1
	DefaultMaxCoord = 20
)

// Inclusive bounds of the edge probability p.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
