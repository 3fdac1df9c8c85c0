package graph

import "sort"

// ConnectedComponents partitions the graph's vertices into connected
// components via breadth-first search, each returned in ascending order.
// Components are themselves ordered by their smallest vertex, making the
// result deterministic for a given graph.
func (g *Graph) ConnectedComponents() [][]int {
	visited := make(map[int]bool, len(g.vertices))
	var comps [][]int

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var comp []int
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether g has at most one connected component
// (the empty graph counts as connected).
func (g *Graph) Connected() bool {
	return len(g.ConnectedComponents()) <= 1
}
