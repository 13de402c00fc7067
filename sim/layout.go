package sim

import (
	"math"

	"github.com/tidwall/rtree"
)

// Point is a 2-D drawing coordinate. Larger Y is drawn higher.
type Point struct {
	X float64
	Y float64
}

// Layout maps every node to its drawing coordinate. It is consumed only by
// renderers; the simulation never reads it.
type Layout map[Node]Point

// Bounds returns the bounding box of all points in the layout.
func (l Layout) Bounds() (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range l {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// LayoutIndex is an R-tree over layout points for coordinate hit tests,
// e.g. mapping a cursor or an interpolated agent position back to a node.
// Its consumer is a renderer or animator drawing on Layout; the simulator
// itself never needs it.
type LayoutIndex struct {
	tr     *rtree.RTreeG[Node]
	layout Layout
}

// Index builds a spatial index over the layout.
func (l Layout) Index() *LayoutIndex {
	var tr rtree.RTreeG[Node]
	for nd, p := range l {
		pt := [2]float64{p.X, p.Y}
		tr.Insert(pt, pt, nd)
	}
	return &LayoutIndex{tr: &tr, layout: l}
}

// Len returns the number of indexed nodes.
func (li *LayoutIndex) Len() int {
	return li.tr.Len()
}

// NodesWithin returns all nodes whose point lies inside the box [min, max].
func (li *LayoutIndex) NodesWithin(min, max Point) []Node {
	var out []Node
	li.tr.Search([2]float64{min.X, min.Y}, [2]float64{max.X, max.Y},
		func(_, _ [2]float64, data Node) bool {
			out = append(out, data)
			return true
		})
	return out
}

// NearestNode returns the node closest to p among those within radius.
// Equidistant nodes resolve to the smaller node in Node.Less order.
func (li *LayoutIndex) NearestNode(p Point, radius float64) (Node, bool) {
	candidates := li.NodesWithin(
		Point{X: p.X - radius, Y: p.Y - radius},
		Point{X: p.X + radius, Y: p.Y + radius},
	)
	var best Node
	bestDist := math.Inf(1)
	found := false
	for _, nd := range candidates {
		q := li.layout[nd]
		d := math.Hypot(q.X-p.X, q.Y-p.Y)
		if d > radius {
			continue
		}
		if !found || d < bestDist || (d == bestDist && nd.Less(best)) {
			best, bestDist, found = nd, d, true
		}
	}
	return best, found
}
