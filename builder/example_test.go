// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/isograph/builder"
)

// ExampleBuildGraph composes two constructors into a disjoint union.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Star(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Order(), g.EdgeCount())
	fmt.Println(g.Neighbors(4))
	// Output:
	// 7 6
	// [5 6]
}

// ExamplePetersen shows the fixed fixture sizes.
func ExamplePetersen() {
	g := builder.MustBuild(nil, builder.Petersen())
	fmt.Println(g.Order(), g.EdgeCount(), g.DegreeSequence()[0])
	// Output:
	// 10 15 3
}

// ExampleRandomTree draws a tree; without an RNG the constructor refuses.
func ExampleRandomTree() {
	_, err := builder.BuildGraph(nil, builder.RandomTree(8))
	fmt.Println(err)

	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomTree(8))
	fmt.Println(g.Order(), g.EdgeCount())
	// Output:
	// BuildGraph: RandomTree: builder: rng is required
	// 8 7
}
