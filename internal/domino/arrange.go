package domino

import "slices"

type halfEdge struct {
	tile int
	to   int
}

type step struct {
	vertex int
	tile   int // tile used to reach vertex; -1 for the start
}

// Arrange returns one row that uses every tile, with each tile turned so that
// touching halves match. ok is false when no such row exists. The result is
// deterministic: the walk starts from the smallest odd value (or the smallest
// value when none is odd) and prefers tiles in input order.
func Arrange(tiles []Tile) (row []Tile, ok bool) {
	if len(tiles) == 0 {
		return []Tile{}, true
	}
	if !CanMakeRow(tiles) {
		return nil, false
	}

	adj := make(map[int][]halfEdge)
	degree := make(map[int]int)
	for i, t := range tiles {
		adj[t[0]] = append(adj[t[0]], halfEdge{tile: i, to: t[1]})
		if !t.Double() {
			adj[t[1]] = append(adj[t[1]], halfEdge{tile: i, to: t[0]})
		}
		degree[t[0]]++
		degree[t[1]]++
	}

	start := startValue(degree)

	// Hierholzer: walk unused tiles until stuck, then back out, emitting
	// vertices in reverse order.
	used := make([]bool, len(tiles))
	next := make(map[int]int)
	stack := []step{{vertex: start, tile: -1}}
	var path []step
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		edges := adj[top.vertex]
		i := next[top.vertex]
		for i < len(edges) && used[edges[i].tile] {
			i++
		}
		next[top.vertex] = i

		if i == len(edges) {
			path = append(path, top)
			stack = stack[:len(stack)-1]
			continue
		}
		e := edges[i]
		used[e.tile] = true
		stack = append(stack, step{vertex: e.to, tile: e.tile})
	}

	if len(path) != len(tiles)+1 {
		return nil, false
	}

	// Once reversed, path[k].tile joins path[k-1].vertex and path[k].vertex.
	slices.Reverse(path)
	row = make([]Tile, 0, len(tiles))
	for k := 1; k < len(path); k++ {
		row = append(row, Tile{path[k-1].vertex, path[k].vertex})
	}
	return row, true
}

func startValue(degree map[int]int) int {
	values := make([]int, 0, len(degree))
	for v := range degree {
		values = append(values, v)
	}
	slices.Sort(values)
	for _, v := range values {
		if degree[v]%2 == 1 {
			return v
		}
	}
	return values[0]
}
