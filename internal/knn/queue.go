// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package knn

// Neighbor is one search result: a row of the index and its distance to the query.
type Neighbor struct {
	Row      int
	Distance float64
}

// before reports whether a ranks ahead of b: smaller distance, then lower row.
func before(a, b Neighbor) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Row < b.Row
}

// worstFirst is a bounded max-heap keeping the k best neighbors seen so far.
// The root is the worst kept neighbor.
type worstFirst struct {
	items []Neighbor
	limit int
}

func newWorstFirst(limit int) *worstFirst {
	return &worstFirst{items: make([]Neighbor, 0, limit), limit: limit}
}

// offer keeps n if the heap has room or n ranks ahead of the current worst.
func (h *worstFirst) offer(n Neighbor) {
	if len(h.items) < h.limit {
		h.items = append(h.items, n)
		h.siftUp(len(h.items) - 1)
		return
	}
	if before(n, h.items[0]) {
		h.items[0] = n
		h.siftDown(0)
	}
}

// drain empties the heap into best-first order.
func (h *worstFirst) drain() []Neighbor {
	out := make([]Neighbor, len(h.items))
	for i := len(h.items) - 1; i >= 0; i-- {
		out[i] = h.pop()
	}
	return out
}

func (h *worstFirst) pop() Neighbor {
	n := len(h.items)
	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return root
}

// worse is the heap order: the parent must rank behind its children.
func (h *worstFirst) worse(i, j int) bool {
	return before(h.items[j], h.items[i])
}

func (h *worstFirst) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.worse(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *worstFirst) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.worse(r, l) {
			best = r
		}
		if !h.worse(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
