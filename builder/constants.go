// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// constants.go - method tags for error context and parameter minimums.

package builder

// Method tags prefix every constructor error.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodRandomTree        = "RandomTree"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodPetersen          = "Petersen"
)

// Minimum sizes.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 1
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
	MinTreeNodes     = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
