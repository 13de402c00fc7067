package sim

import "math"

// NodeVisits counts how many successful journeys of an analysis passed
// through each node, using each record's representative node list.
func NodeVisits(pa *PathAnalysis) map[Node]int {
	visits := make(map[Node]int)
	for _, rec := range pa.Records {
		if rec.Frequency == 0 {
			continue
		}
		for _, n := range rec.Nodes {
			visits[n] += rec.Frequency
		}
	}
	return visits
}

// NodeVisitsFromResults counts node visits over raw journey results,
// following each journey's own nodes rather than its class representative.
func NodeVisitsFromResults(results []JourneyResult) map[Node]int {
	visits := make(map[Node]int)
	for _, r := range results {
		if !r.Success {
			continue
		}
		for _, n := range r.Nodes {
			visits[n]++
		}
	}
	return visits
}

// MirrorNode reflects a node across the grid's main diagonal.
func MirrorNode(n Node) Node {
	return Node{Row: n.Col, Col: n.Row, X: n.Y, Y: n.X}
}

// Asymmetry returns |va - vb| / max(va + vb, 1) for the visit counts of a and b.
func Asymmetry(visits map[Node]int, a, b Node) float64 {
	va, vb := visits[a], visits[b]
	return math.Abs(float64(va-vb)) / math.Max(float64(va+vb), 1)
}

// MirrorPairs returns every unordered pair {n, MirrorNode(n)} of distinct
// nodes that both belong to g, in graph node order.
func MirrorPairs(g *Graph) [][2]Node {
	var pairs [][2]Node
	for _, n := range g.Nodes() {
		m := MirrorNode(n)
		if m == n || !g.HasNode(m) || !n.Less(m) {
			continue
		}
		pairs = append(pairs, [2]Node{n, m})
	}
	return pairs
}

// MeanAsymmetry averages Asymmetry over pairs. It is 0 for no pairs.
func MeanAsymmetry(visits map[Node]int, pairs [][2]Node) float64 {
	if len(pairs) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range pairs {
		total += Asymmetry(visits, p[0], p[1])
	}
	return total / float64(len(pairs))
}
