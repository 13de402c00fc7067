package sim

import (
	"strings"
)

// Signature is the hashable class key of a path: the ordered sequence of
// (edge type, orientation) pairs along it. Distinct node sequences with the
// same edge kinds in the same order share a Signature.
type Signature string

var (
	edgeTypeCodes    = map[EdgeType]byte{EdgeCrossing: 'c', EdgeBlock: 'b'}
	orientationCodes = map[Orientation]byte{Vertical: 'v', Horizontal: 'h'}
)

// PathSignature encodes an edge signature list as a Signature.
func PathSignature(edges []EdgeSignature) Signature {
	var b strings.Builder
	b.Grow(2 * len(edges))
	for _, e := range edges {
		b.WriteByte(edgeTypeCodes[e.Type])
		b.WriteByte(orientationCodes[e.Orientation])
	}
	return Signature(b.String())
}

// Len returns the number of edges encoded in the signature.
func (s Signature) Len() int {
	return len(s) / 2
}

// Edges decodes the signature back into its edge signature list.
func (s Signature) Edges() []EdgeSignature {
	out := make([]EdgeSignature, 0, s.Len())
	for i := 0; i+1 < len(s); i += 2 {
		es := EdgeSignature{Type: EdgeBlock, Orientation: Horizontal}
		if s[i] == 'c' {
			es.Type = EdgeCrossing
		}
		if s[i+1] == 'v' {
			es.Orientation = Vertical
		}
		out = append(out, es)
	}
	return out
}

// Path is one monotone route from start to end.
type Path struct {
	Nodes []Node
	Edges []EdgeSignature
}

// Signature returns the class key of the path.
func (p Path) Signature() Signature {
	return PathSignature(p.Edges)
}

// EnumeratePaths returns every monotone (east/south only) path from start to
// end, each exactly once, in depth-first neighbor order. It uses the same
// movement rule as the simulator but never flips a coin, so the result does
// not depend on any strategy or seed.
func EnumeratePaths(g *Graph, start, end Node) []Path {
	if !g.HasNode(start) || !g.HasNode(end) {
		return nil
	}
	var paths []Path
	nodes := []Node{start}
	var edges []EdgeSignature

	var walk func(cur Node)
	walk = func(cur Node) {
		if cur == end {
			paths = append(paths, Path{
				Nodes: append([]Node(nil), nodes...),
				Edges: append([]EdgeSignature(nil), edges...),
			})
			return
		}
		for _, next := range monotoneSuccessors(g, cur) {
			e, _ := g.Edge(cur, next)
			nodes = append(nodes, next)
			edges = append(edges, e.Signature())
			walk(next)
			nodes = nodes[:len(nodes)-1]
			edges = edges[:len(edges)-1]
		}
	}
	walk(start)
	return paths
}

// CountPaths returns the number of monotone paths from start to end without
// materializing them. Useful to size a grid before enumerating it.
func CountPaths(g *Graph, start, end Node) int {
	if !g.HasNode(start) || !g.HasNode(end) {
		return 0
	}
	memo := make(map[Node]int)
	var count func(cur Node) int
	count = func(cur Node) int {
		if cur == end {
			return 1
		}
		if v, ok := memo[cur]; ok {
			return v
		}
		total := 0
		for _, next := range monotoneSuccessors(g, cur) {
			total += count(next)
		}
		memo[cur] = total
		return total
	}
	return count(start)
}
