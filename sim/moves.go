package sim

import "math/rand"

// Direction is the heading of a monotone move.
type Direction string

const (
	East  Direction = "E"
	South Direction = "S"
)

// Move is a monotone step from the current node to Next along Edge.
type Move struct {
	Next      Node
	Direction Direction
	Edge      Edge
}

// Candidate is a Move annotated with the signal state seen at decision time.
// Block edges are always green with zero wait.
type Candidate struct {
	Move
	Wait  float64
	Green bool
}

// moveDirections reports whether stepping from cur to next heads east, south,
// or both, in grid-global terms.
func moveDirections(cur, next Node) (east, south bool) {
	east = next.Col > cur.Col || (next.Col == cur.Col && next.X > cur.X)
	south = next.Row > cur.Row || (next.Row == cur.Row && next.Y > cur.Y)
	return east, south
}

// ValidMoves returns the monotone successors of cur in neighbor order.
// A neighbor that is both east and south is labeled by a fair coin flip
// drawn from rng so that no axis is systematically favored.
func ValidMoves(g *Graph, cur Node, rng *rand.Rand) []Move {
	var moves []Move
	for _, next := range g.Neighbors(cur) {
		east, south := moveDirections(cur, next)
		if !east && !south {
			continue
		}
		dir := South
		switch {
		case east && south:
			if rng.Intn(2) == 0 {
				dir = East
			}
		case east:
			dir = East
		}
		e, _ := g.Edge(cur, next)
		moves = append(moves, Move{Next: next, Direction: dir, Edge: e})
	}
	return moves
}

// monotoneSuccessors returns the monotone successors of cur without
// direction labels. Shared by enumeration and path counting, which must not
// depend on any random draw.
func monotoneSuccessors(g *Graph, cur Node) []Node {
	var out []Node
	for _, next := range g.Neighbors(cur) {
		if east, south := moveDirections(cur, next); east || south {
			out = append(out, next)
		}
	}
	return out
}

// EvaluateMoves annotates moves with their wait and green state at time now.
// Crossing offsets are drawn from (and cached in) offsets on first sight.
func EvaluateMoves(cur Node, moves []Move, offsets *SignalOffsets, now float64) []Candidate {
	cands := make([]Candidate, 0, len(moves))
	for _, mv := range moves {
		c := Candidate{Move: mv, Green: true}
		if mv.Edge.Type == EdgeCrossing {
			off := offsets.Offset(cur, mv.Next)
			c.Wait = WaitTime(now, off)
			c.Green = IsGreen(now, off)
		}
		cands = append(cands, c)
	}
	return cands
}

// RemainingMoves counts the coarse east and south moves still needed to get
// from cur to end. Inside the destination intersection the final local step
// on each axis counts as one move.
func RemainingMoves(cur, end Node) (east, south int) {
	east = max(0, end.Col-cur.Col)
	south = max(0, end.Row-cur.Row)
	if cur.Row == end.Row && cur.Col == end.Col {
		if end.X > cur.X {
			east++
		}
		if end.Y > cur.Y {
			south++
		}
	}
	return east, south
}
