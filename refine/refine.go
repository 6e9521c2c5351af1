// SPDX-License-Identifier: MIT
//
// File: refine.go
// Role: Worklist color refinement (1-WL) over a core.Graph, in place.
// Determinism:
//   - The worklist is seeded with every class in ascending size, ties by
//     color id.
//   - Touched classes are split in ascending class index; within a split the
//     largest part keeps the old color (ties: smaller neighbor count) and the
//     others receive g.NewColor() in ascending count order.
//   - Hence equal inputs give equal color ids, which is what lets the search
//     compare the two halves of a union graph color by color.

package refine

import (
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isograph/core"
)

// refiner holds the mutable state of one run. Classes are addressed by a
// dense local index; color[k] is the graph color of class k.
type refiner struct {
	g    *core.Graph
	opts Options

	color   []int   // class index → graph color
	members [][]int // class index → vertices, in no particular order
	classOf []int   // vertex → class index
	pos     []int   // vertex → position inside members[classOf[v]]

	queue *linkedlistqueue.Queue

	count   []int   // vertex → neighbors inside the current splitter
	hits    [][]int // class index → members with count > 0
	touched []int   // class indices with non-empty hits

	res Result
}

// Refine replaces the coloring of g with the coarsest equitable coloring
// that refines it. Colors that never split keep their ids; new ids come
// from g.NewColor, so the call is journal-friendly.
//
// Errors: ErrGraphNil, ErrOptionViolation.
//
// Complexity: every vertex enters a splitter O(log n) times, and a split
// costs time proportional to the splitter's edges, so the total is
// O((n + m) log n) up to the sort of each touched set by neighbor count.
func Refine(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.DegreeSeed {
		g.ColorByDegree()
	}

	r := newRefiner(g, o)
	r.run()
	r.res.Classes = len(r.color)
	klog.V(4).Infof("refine: n=%d classes=%d splits=%d splitters=%d",
		g.Order(), r.res.Classes, r.res.Splits, r.res.Splitters)

	return &r.res, nil
}

// newRefiner indexes the current color classes and seeds the worklist.
func newRefiner(g *core.Graph, o Options) *refiner {
	n := g.Order()
	r := &refiner{
		g:       g,
		opts:    o,
		classOf: make([]int, n),
		pos:     make([]int, n),
		queue:   linkedlistqueue.New(),
		count:   make([]int, n),
	}

	byColor := g.ColorClasses()
	colors := make([]int, 0, len(byColor))
	for c := range byColor {
		colors = append(colors, c)
	}
	sort.Ints(colors)
	for k, c := range colors {
		r.color = append(r.color, c)
		r.members = append(r.members, byColor[c])
		r.hits = append(r.hits, nil)
		for i, v := range byColor[c] {
			r.classOf[v] = k
			r.pos[v] = i
		}
	}

	seed := make([]int, len(r.color))
	for k := range seed {
		seed[k] = k
	}
	// class index order equals color order, so the stable sort breaks ties by color
	sort.SliceStable(seed, func(i, j int) bool {
		return len(r.members[seed[i]]) < len(r.members[seed[j]])
	})
	for _, k := range seed {
		r.queue.Enqueue(k)
	}

	return r
}

// run pops splitters until the worklist is empty.
func (r *refiner) run() {
	for {
		v, ok := r.queue.Dequeue()
		if !ok {
			return
		}
		r.res.Splitters++
		r.splitBy(v.(int))
	}
}

// splitBy counts, for every vertex, its neighbors inside class s and
// splits each touched class by that count. Counting finishes before any
// split, so members[s] may be split itself.
func (r *refiner) splitBy(s int) {
	for _, x := range r.members[s] {
		for _, w := range r.g.Neighbors(x) {
			if r.count[w] == 0 {
				k := r.classOf[w]
				if len(r.hits[k]) == 0 {
					r.touched = append(r.touched, k)
				}
				r.hits[k] = append(r.hits[k], w)
			}
			r.count[w]++
		}
	}

	sort.Ints(r.touched)
	for _, k := range r.touched {
		r.splitClass(k, r.hits[k])
	}

	for _, k := range r.touched {
		for _, w := range r.hits[k] {
			r.count[w] = 0
		}
		r.hits[k] = r.hits[k][:0]
	}
	r.touched = r.touched[:0]
}

// part is one bucket of a split: the members of a class with the same
// neighbor count. The 0-bucket is implicit and carries no vertices until
// it has to move.
type part struct {
	count int
	size  int
	vs    []int
}

// splitClass buckets the touched members hit of class k by neighbor count;
// untouched members form the 0-bucket. Every bucket but the largest (ties:
// smaller count) is carved into a new class. Only moved vertices are
// visited, except that an evicted 0-bucket is collected by scanning class
// k, which is then at most twice the touched set.
func (r *refiner) splitClass(k int, hit []int) {
	size := len(r.members[k])
	sort.Slice(hit, func(i, j int) bool { return r.count[hit[i]] < r.count[hit[j]] })

	var parts []part
	if zero := size - len(hit); zero > 0 {
		parts = append(parts, part{size: zero})
	}
	for i := 0; i < len(hit); {
		j := i + 1
		for j < len(hit) && r.count[hit[j]] == r.count[hit[i]] {
			j++
		}
		parts = append(parts, part{count: r.count[hit[i]], size: j - i, vs: hit[i:j]})
		i = j
	}
	if len(parts) < 2 {
		return
	}

	keep := 0
	for p := 1; p < len(parts); p++ {
		if parts[p].size > parts[keep].size {
			keep = p
		}
	}
	if keep != 0 && parts[0].count == 0 {
		rest := make([]int, 0, parts[0].size)
		for _, v := range r.members[k] {
			if r.count[v] == 0 {
				rest = append(rest, v)
			}
		}
		parts[0].vs = rest
	}

	children := make([]int, 0, len(parts)-1)
	for p := range parts {
		if p == keep {
			continue
		}
		for _, v := range parts[p].vs {
			r.remove(k, v)
		}
		// a pending k still covers its kept part; every new part is queued
		children = append(children, r.newClass(parts[p].vs))
		r.res.Splits++
	}
	if r.opts.OnSplit != nil {
		r.opts.OnSplit(r.color[k], children)
	}
}

// remove takes v out of class k by swapping it with the last member.
func (r *refiner) remove(k, v int) {
	m := r.members[k]
	i, last := r.pos[v], len(m)-1
	m[i] = m[last]
	r.pos[m[i]] = i
	r.members[k] = m[:last]
}

// newClass gives vs a fresh color and a new class index, queues it and
// returns the color.
func (r *refiner) newClass(vs []int) int {
	nk := len(r.color)
	col := r.g.NewColor()
	own := append([]int(nil), vs...)
	r.color = append(r.color, col)
	r.members = append(r.members, own)
	r.hits = append(r.hits, nil)
	for i, v := range own {
		r.classOf[v] = nk
		r.pos[v] = i
		r.g.SetColor(v, col)
	}
	r.queue.Enqueue(nk)

	return col
}
