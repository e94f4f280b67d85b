// Package builder provides reusable "functional-options"-style generators for
// the unsigned acquaintance graphs (core.Graph) that seed a balance universe.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the vertex-ID scheme.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…); signed.FromGraph
//     orders these numerically.
//     – LetterIDFn:        spreadsheet columns ("A".."Z","AA",…).
//     – PrefixedIDFn(p):   p followed by the decimal index.
//   - Topologies (Constructor factories):
//     – RandomSparse(n,p):       Erdős–Rényi G(n,p).
//     – RandomRegular(n,d):      random d-regular graph (stub matching).
//     – BarabasiAlbert(n,m):     preferential attachment.
//     – WattsStrogatz(n,k,beta): small-world ring rewiring.
//     – Complete(n), Cycle(n), CompleteBipartite(n1,n2), Cliques(sizes...).
//
// Guarantees:
//
//   - Determinism: same constructor order, options and seed ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) so callers
//     branch with errors.Is.
//   - Documented complexity per constructor.
package builder
