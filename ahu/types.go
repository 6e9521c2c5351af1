// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: AHU result types and sentinel errors.

package ahu

import "github.com/pkg/errors"

// Sentinel errors for tree labeling.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ahu: graph is nil")

	// ErrNotTree is returned when an input is not a tree.
	ErrNotTree = errors.New("ahu: graph is not a tree")

	// ErrRootOutOfRange is returned for a root outside 0..n-1.
	ErrRootOutOfRange = errors.New("ahu: root out of range")
)

// LeafCode is the reserved code of every leaf.
const LeafCode = 0

// LevelTrace holds the sorted codes of one BFS level in both trees.
type LevelTrace struct {
	Level int
	X     []int
	Y     []int
}

// Result describes a rooted comparison.
type Result struct {
	// Isomorphic reports whether the rooted trees are isomorphic.
	Isomorphic bool
	// RootX and RootY are the roots used.
	RootX, RootY int
	// Levels lists the compared levels from deepest to shallowest. On a
	// mismatch the failing level is the last entry.
	Levels []LevelTrace
	// FailedLevel is the first level (deepest first) whose code multisets
	// differ, or -1.
	FailedLevel int
}
