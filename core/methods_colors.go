// SPDX-License-Identifier: MIT
//
// File: methods_colors.go
// Role: Per-vertex colors, the central color-id counter, and the color undo journal.
// Policy:
//   - NewColor is the only source of fresh color ids; the counter never goes
//     below (max color in use)+1, so a fresh id never collides with a live one.
//   - While the journal is active every effective color write records the
//     previous color; Rollback restores writes in LIFO order and rewinds the counter.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Mark is a journal position returned by Mark and consumed by Rollback.
type Mark struct {
	pos       int
	nextColor int
}

// Color returns the color of v. It panics on an out-of-range v, like a slice index.
func (g *Graph) Color(v int) int {
	return g.colors[v]
}

// SetColor assigns color c to v. Writes that do not change the color are
// not journaled. It panics on an out-of-range v.
//
// Complexity: O(1).
func (g *Graph) SetColor(v, c int) {
	old := g.colors[v]
	if old == c {
		return
	}
	if g.journal != nil {
		g.journal = append(g.journal, colorChange{v: v, old: old})
	}
	g.colors[v] = c
	if c >= g.nextColor {
		g.nextColor = c + 1
	}
}

// NewColor returns a color id that no vertex currently carries and advances
// the counter. Ids are handed out in strictly increasing order, so a smaller
// id always means an earlier-created color.
func (g *Graph) NewColor() int {
	c := g.nextColor
	g.nextColor++

	return c
}

// NextColor reports the id the next NewColor call would return.
func (g *Graph) NextColor() int {
	return g.nextColor
}

// Colors returns a copy of the vertex→color map.
func (g *Graph) Colors() []int {
	out := make([]int, len(g.colors))
	copy(out, g.colors)

	return out
}

// ColorByDegree recolors every vertex with its degree.
func (g *Graph) ColorByDegree() {
	for v := range g.adj {
		g.SetColor(v, len(g.adj[v]))
	}
}

// UniformColor recolors every vertex with color 0.
func (g *Graph) UniformColor() {
	for v := range g.colors {
		g.SetColor(v, 0)
	}
}

// ColorClasses groups vertices by color. Each class lists its vertices in
// ascending order.
//
// Complexity: O(n).
func (g *Graph) ColorClasses() map[int][]int {
	out := make(map[int][]int)
	for v, c := range g.colors {
		out[c] = append(out[c], v)
	}

	return out
}

// ColorCount returns the number of distinct colors in use.
func (g *Graph) ColorCount() int {
	seen := make(map[int]struct{}, len(g.colors))
	for _, c := range g.colors {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// ColorHistogram returns (color, multiplicity) pairs sorted by color.
func (g *Graph) ColorHistogram() [][2]int {
	counts := make(map[int]int)
	for _, c := range g.colors {
		counts[c]++
	}
	out := make([][2]int, 0, len(counts))
	for c, k := range counts {
		out = append(out, [2]int{c, k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// StartJournal turns on color journaling with an empty log. Calling it while
// already journaling discards the current log.
func (g *Graph) StartJournal() {
	g.journal = make([]colorChange, 0, 4*len(g.colors))
}

// StopJournal turns journaling off and drops the log. Colors are left as they are.
func (g *Graph) StopJournal() {
	g.journal = nil
}

// Journaling reports whether color writes are currently recorded.
func (g *Graph) Journaling() bool {
	return g.journal != nil
}

// Mark captures the current journal position and color counter.
// Without an active journal it returns a zero Mark that Rollback rejects.
func (g *Graph) Mark() Mark {
	if g.journal == nil {
		return Mark{pos: -1}
	}

	return Mark{pos: len(g.journal), nextColor: g.nextColor}
}

// Rollback undoes every color write made after m, newest first, and rewinds
// the color counter to its value at m. Every color created after m is
// unused once its writes are undone, so reusing those ids is safe.
//
// Complexity: O(k) for k journaled writes since m.
func (g *Graph) Rollback(m Mark) error {
	if g.journal == nil || m.pos < 0 {
		return ErrJournalInactive
	}
	if m.pos > len(g.journal) {
		return errors.Wrapf(ErrJournalInactive, "mark %d beyond journal length %d", m.pos, len(g.journal))
	}
	for i := len(g.journal) - 1; i >= m.pos; i-- {
		rec := g.journal[i]
		g.colors[rec.v] = rec.old
	}
	g.journal = g.journal[:m.pos]
	g.nextColor = m.nextColor

	return nil
}
