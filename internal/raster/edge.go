package raster

import "math"

// edge is a non-horizontal segment prepared for scanline tests, stored
// with y0 < y1 and the pre-swap direction kept for the winding rule.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int
}

// newEdge creates an edge from two points. The direction is fixed
// before any swap so winding counts stay correct.
func newEdge(p0, p1 Point) edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dir: dir,
	}
}

// xAt returns the x coordinate where the edge crosses the given y.
func (e *edge) xAt(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// buildEdges converts a closed point loop into scanline edges,
// dropping horizontal segments (they never cross a scanline center).
func buildEdges(points []Point) []edge {
	edges := make([]edge, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		if math.Abs(p1.Y-p0.Y) < 0.001 {
			continue
		}
		edges = append(edges, newEdge(p0, p1))
	}
	return edges
}
