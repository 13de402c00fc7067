package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned by BuildCityGraph for unusable dimensions or lengths.
var ErrInvalidGrid = errors.New("invalid city grid")

// Node is one corner of an intersection. Row and Col index the intersection
// in the coarse grid; X and Y (each 0 or 1) pick the corner inside it:
// (0,0) top-left, (1,0) top-right, (0,1) bottom-left, (1,1) bottom-right.
type Node struct {
	Row int
	Col int
	X   int
	Y   int
}

// Less orders nodes by (Row, Col, Y, X). Used for canonical edge keys and
// deterministic iteration.
func (n Node) Less(o Node) bool {
	if n.Row != o.Row {
		return n.Row < o.Row
	}
	if n.Col != o.Col {
		return n.Col < o.Col
	}
	if n.Y != o.Y {
		return n.Y < o.Y
	}
	return n.X < o.X
}

func (n Node) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", n.Row, n.Col, n.X, n.Y)
}

// EdgeType distinguishes signalized crossings from unsignalized block walks.
type EdgeType string

const (
	// EdgeCrossing lies inside one intersection and carries a traffic signal.
	EdgeCrossing EdgeType = "crossing"
	// EdgeBlock joins adjacent intersections and is always passable.
	EdgeBlock EdgeType = "block"
)

// Orientation is the axis an edge runs along.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// EdgeSignature is the (type, orientation) pair used to classify paths.
type EdgeSignature struct {
	Type        EdgeType
	Orientation Orientation
}

func (s EdgeSignature) String() string {
	return fmt.Sprintf("%s/%s", s.Type, s.Orientation)
}

// Edge is an undirected edge of the city graph. Length doubles as traversal
// time because walking speed is normalized to one unit per second.
type Edge struct {
	U           Node
	V           Node
	Type        EdgeType
	Orientation Orientation
	Length      float64
}

// Signature returns the classification pair of the edge.
func (e Edge) Signature() EdgeSignature {
	return EdgeSignature{Type: e.Type, Orientation: e.Orientation}
}

// Lengths holds one length per axis for an edge family.
type Lengths struct {
	Vertical   float64 `yaml:"vertical"`
	Horizontal float64 `yaml:"horizontal"`
}

// validate checks that both lengths are positive finite numbers.
func (l Lengths) validate(name string) error {
	for _, v := range []float64{l.Vertical, l.Horizontal} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s lengths must be positive and finite, got vertical=%v horizontal=%v",
				ErrInvalidGrid, name, l.Vertical, l.Horizontal)
		}
	}
	return nil
}

// Graph is the undirected movement graph of an n×m grid of 2×2 intersections.
// It is read-only after BuildCityGraph returns and may be shared by
// concurrent journeys.
type Graph struct {
	rows, cols int
	nodes      []Node
	adjacency  map[Node][]Node
	edges      map[EdgeKey]Edge
	edgeList   []Edge
}

func newGraph(rows, cols int) *Graph {
	return &Graph{
		rows:      rows,
		cols:      cols,
		nodes:     make([]Node, 0, 4*rows*cols),
		adjacency: make(map[Node][]Node, 4*rows*cols),
		edges:     make(map[EdgeKey]Edge),
	}
}

func (g *Graph) addNode(n Node) {
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = nil
	g.nodes = append(g.nodes, n)
}

func (g *Graph) addEdge(u, v Node, typ EdgeType, orient Orientation, length float64) {
	key := NewEdgeKey(u, v)
	if _, ok := g.edges[key]; ok {
		return
	}
	e := Edge{U: u, V: v, Type: typ, Orientation: orient, Length: length}
	g.edges[key] = e
	g.edgeList = append(g.edgeList, e)
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
}

// Dims returns the number of intersection rows and columns.
func (g *Graph) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Nodes returns all nodes in construction order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in construction order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeList))
	copy(out, g.edgeList)
	return out
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() int { return len(g.edgeList) }

// HasNode reports whether n belongs to the graph.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.adjacency[n]
	return ok
}

// Neighbors returns the neighbors of n in the order their edges were added.
// The returned slice must not be modified.
func (g *Graph) Neighbors(n Node) []Node {
	return g.adjacency[n]
}

// Edge returns the edge between u and v, in either direction.
func (g *Graph) Edge(u, v Node) (Edge, bool) {
	e, ok := g.edges[NewEdgeKey(u, v)]
	return e, ok
}

// BuildCityGraph constructs the movement graph of an n×m Manhattan grid in
// which every intersection is a 2×2 sub-grid, together with the drawing
// layout of every node. Each intersection gets four crossing edges around
// its boundary; adjacent intersections are joined by block edges between
// their facing corners. The result depends only on the arguments.
func BuildCityGraph(n, m int, crossing, block Lengths) (*Graph, Layout, error) {
	if n < 1 || m < 1 {
		return nil, nil, fmt.Errorf("%w: dimensions must be at least 1x1, got %dx%d", ErrInvalidGrid, n, m)
	}
	if err := crossing.validate("crossing"); err != nil {
		return nil, nil, err
	}
	if err := block.validate("block"); err != nil {
		return nil, nil, err
	}

	g := newGraph(n, m)
	layout := make(Layout, 4*n*m)

	xSpacing := block.Horizontal + crossing.Horizontal
	ySpacing := block.Vertical + crossing.Vertical

	for r := 0; r < n; r++ {
		for c := 0; c < m; c++ {
			baseX := float64(c) * xSpacing
			baseY := float64(n-1-r) * ySpacing // row 0 is drawn on top
			for _, corner := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				nd := Node{Row: r, Col: c, X: corner[0], Y: corner[1]}
				g.addNode(nd)
				layout[nd] = Point{
					X: baseX + float64(corner[0])*crossing.Horizontal,
					Y: baseY + float64(1-corner[1])*crossing.Vertical,
				}
			}

			tl := Node{r, c, 0, 0}
			tr := Node{r, c, 1, 0}
			bl := Node{r, c, 0, 1}
			br := Node{r, c, 1, 1}
			g.addEdge(tl, tr, EdgeCrossing, Horizontal, crossing.Horizontal)
			g.addEdge(bl, br, EdgeCrossing, Horizontal, crossing.Horizontal)
			g.addEdge(tl, bl, EdgeCrossing, Vertical, crossing.Vertical)
			g.addEdge(tr, br, EdgeCrossing, Vertical, crossing.Vertical)
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < m; c++ {
			if c < m-1 {
				g.addEdge(Node{r, c, 1, 0}, Node{r, c + 1, 0, 0}, EdgeBlock, Horizontal, block.Horizontal)
				g.addEdge(Node{r, c, 1, 1}, Node{r, c + 1, 0, 1}, EdgeBlock, Horizontal, block.Horizontal)
			}
			if r < n-1 {
				g.addEdge(Node{r, c, 0, 1}, Node{r + 1, c, 0, 0}, EdgeBlock, Vertical, block.Vertical)
				g.addEdge(Node{r, c, 1, 1}, Node{r + 1, c, 1, 0}, EdgeBlock, Vertical, block.Vertical)
			}
		}
	}

	return g, layout, nil
}
