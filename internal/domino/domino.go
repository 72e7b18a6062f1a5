// Package domino decides whether a set of domino tiles can be laid out in a
// single row.
//
// Tiles are unordered pairs: [1,2] may be placed as 1|2 or 2|1. The set is
// treated as an undirected multigraph whose vertices are pip values and whose
// edges are tiles; a row that uses every tile once is an Eulerian path.
package domino

import "fmt"

// Tile is one domino. The order of the two values does not matter.
type Tile [2]int

// Flip returns the tile turned around.
func (t Tile) Flip() Tile {
	return Tile{t[1], t[0]}
}

// Double reports whether both halves carry the same value.
func (t Tile) Double() bool {
	return t[0] == t[1]
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t[0], t[1])
}

// InvalidTileError reports a malformed entry in raw tile input.
type InvalidTileError struct {
	Index  int
	Value  []int
	Reason string
}

func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("invalid tile %d %v: %s", e.Index, e.Value, e.Reason)
}

// ParseTiles validates raw pairs. Every entry must hold exactly two
// non-negative values.
func ParseTiles(raw [][]int) ([]Tile, error) {
	tiles := make([]Tile, 0, len(raw))
	for i, r := range raw {
		if len(r) != 2 {
			return nil, &InvalidTileError{Index: i, Value: r, Reason: fmt.Sprintf("want 2 values, got %d", len(r))}
		}
		if r[0] < 0 || r[1] < 0 {
			return nil, &InvalidTileError{Index: i, Value: r, Reason: "values must be non-negative"}
		}
		tiles = append(tiles, Tile{r[0], r[1]})
	}
	return tiles, nil
}

// CanDominoesMakeRow validates raw pairs and reports whether they form a row.
func CanDominoesMakeRow(raw [][]int) (bool, error) {
	tiles, err := ParseTiles(raw)
	if err != nil {
		return false, err
	}
	return CanMakeRow(tiles), nil
}

// CanMakeRow reports whether every tile can be placed in one row with
// matching neighbours. That holds iff the tiles form one connected component
// and at most two values have an odd number of tile ends. Empty and
// single-tile sets always succeed.
func CanMakeRow(tiles []Tile) bool {
	if len(tiles) <= 1 {
		return true
	}

	degree := make(map[int]int)
	uf := newUnionFind()
	for _, t := range tiles {
		// A double adds two ends to the same value and never changes parity.
		degree[t[0]]++
		degree[t[1]]++
		uf.union(t[0], t[1])
	}

	odd := 0
	for _, d := range degree {
		if d%2 == 1 {
			odd++
		}
	}
	if odd != 0 && odd != 2 {
		return false
	}

	return uf.components() == 1
}

// unionFind tracks connected pip values.
type unionFind struct {
	parent map[int]int
	rank   map[int]int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[int]int), rank: make(map[int]int)}
}

func (u *unionFind) find(x int) int {
	p, ok := u.parent[x]
	if !ok {
		u.parent[x] = x
		return x
	}
	if p == x {
		return x
	}
	root := u.find(p)
	u.parent[x] = root
	return root
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}

func (u *unionFind) components() int {
	n := 0
	for x := range u.parent {
		if u.find(x) == x {
			n++
		}
	}
	return n
}
