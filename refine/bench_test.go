package refine_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/isograph/refine"
)

// BenchmarkRefine_Random measures refinement of a sparse random graph from
// the uniform coloring.
func BenchmarkRefine_Random(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := randomGraph(b, rng, 400, 0.02)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.UniformColor()
		_, _ = refine.Refine(g)
	}
}

// BenchmarkRefine_Path measures the long split cascade of a path.
func BenchmarkRefine_Path(b *testing.B) {
	edges := make([][2]int, 0, 1999)
	for i := 0; i+1 < 2000; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := mustGraph(b, 2000, edges)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.UniformColor()
		_, _ = refine.Refine(g)
	}
}

// BenchmarkRefine_LongPath refines degree-colored paths of growing length;
// time per op should roughly double with n.
func BenchmarkRefine_LongPath(b *testing.B) {
	for _, n := range []int{5000, 10000, 20000, 40000} {
		edges := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		g := mustGraph(b, n, edges)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = refine.Refine(g, refine.WithDegreeSeed())
			}
		})
	}
}
