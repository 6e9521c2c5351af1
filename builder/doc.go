// Package builder provides deterministic graph constructors used as fixtures
// by the isomorphism tests, examples, benchmarks and the isograph CLI.
//
// A Constructor appends one component to a *core.Graph; BuildGraph starts
// from an empty graph and applies constructors in order, so
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(6), builder.Cycle(6))
//
// is the disjoint union 2·C6 on vertices 0..11.
//
// Families:
//
//   - Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - PlatonicSolid (Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron),
//     optionally with a hub, and Petersen.
//   - RandomSparse (G(n,p)), RandomRegular (stub matching), RandomTree
//     (uniform Prüfer decoding).
//
// Options:
//
//   - WithSeed / WithRand supply the RNG that the random families require
//     (ErrNeedRandSource otherwise).
//   - WithShuffledLabels scrambles every component's numbering, which yields
//     isomorphic copies under unrelated labelings.
//
// Option constructors panic on nonsense values (WithRand(nil)); the
// constructors themselves only return sentinel errors:
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrOptionViolation.
package builder
