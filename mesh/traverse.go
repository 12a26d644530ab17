// SPDX-License-Identifier: MIT
// Package: ccgeom/mesh
//
// traverse.go - breadth-first walks over the vertex/edge graph of a surface.
//
// The walker keeps a slice-backed FIFO queue and a visited set; vertices are
// 1-based, edges undirected. Out-of-range edge endpoints are ignored.

package mesh

// walker holds the mutable state of one breadth-first pass.
type walker struct {
	adj     [][]int
	queue   []int
	visited []bool
	depth   []int
}

func newWalker(n int, edges []Edge) *walker {
	adj := make([][]int, n+1)
	for _, e := range edges {
		if e.Source < 1 || e.Source > n || e.Target < 1 || e.Target > n {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	return &walker{
		adj:     adj,
		queue:   make([]int, 0, n),
		visited: make([]bool, n+1),
		depth:   make([]int, n+1),
	}
}

// walk visits everything reachable from start and returns the visit order.
func (w *walker) walk(start int) []int {
	order := make([]int, 0, len(w.adj))
	w.visited[start] = true
	w.queue = append(w.queue[:0], start)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, v)
		for _, u := range w.adj[v] {
			if w.visited[u] {
				continue
			}
			w.visited[u] = true
			w.depth[u] = w.depth[v] + 1
			w.queue = append(w.queue, u)
		}
	}

	return order
}

// Components labels each of the n vertices with a component number starting
// at 1 and returns the labels (index 0 unused) and the component count.
// Complexity: O(V + E).
func Components(n int, edges []Edge) ([]int, int) {
	if n <= 0 {
		return nil, 0
	}
	w := newWalker(n, edges)
	label := make([]int, n+1)
	count := 0
	for v := 1; v <= n; v++ {
		if w.visited[v] {
			continue
		}
		count++
		for _, u := range w.walk(v) {
			label[u] = count
		}
	}

	return label, count
}

// Distances returns the edge-hop distance from start to every vertex
// (index 0 unused); unreachable vertices get -1. start outside [1,n] yields
// nil.
// Complexity: O(V + E).
func Distances(n int, edges []Edge, start int) []int {
	if start < 1 || start > n {
		return nil
	}
	w := newWalker(n, edges)
	w.walk(start)
	dist := make([]int, n+1)
	dist[0] = -1
	for v := 1; v <= n; v++ {
		if w.visited[v] {
			dist[v] = w.depth[v]
		} else {
			dist[v] = -1
		}
	}

	return dist
}

// Components returns the number of connected pieces of s; a validated
// closed surface has exactly one.
func (s *Surface) Components() int {
	_, count := Components(len(s.vertices), s.edges)
	return count
}

// Diameter returns the largest edge-hop distance between two vertices of s,
// or -1 when s is disconnected.
// Complexity: O(V·(V + E)).
func (s *Surface) Diameter() int {
	n := len(s.vertices)
	best := 0
	for v := 1; v <= n; v++ {
		for _, d := range Distances(n, s.edges, v)[1:] {
			if d < 0 {
				return -1
			}
			if d > best {
				best = d
			}
		}
	}

	return best
}
