// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodCliques is the canonical name for the Cliques constructor.
	MethodCliques = "Cliques"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPartition is the smallest allowed side of a bipartite graph or clique.
const MinPartition = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for probability parameters, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for probability parameters, inclusive.
const MaxProbability = 1.0
