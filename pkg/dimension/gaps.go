// Package dimension computes the distance annotations shown while an
// object is dragged: edge-to-edge gaps to the nearest aligned neighbor
// on each side, and clearances to the nearest wall along each axis.
package dimension

import (
	"math"

	"github.com/planfab/goplan/pkg/plan"
)

// overlapEpsilon treats touching edges as overlapping so that objects
// sharing an edge line still count as aligned neighbors
const overlapEpsilon = 1e-6

// Side identifies which edge of the dragged object a gap is measured from
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Gap is one edge-to-edge dimension to the nearest aligned neighbor
type Gap struct {
	Side       Side
	Distance   float64 // edge-to-edge, meters, never negative
	Anchor     float64 // midpoint of the overlap range on the perpendicular axis
	NeighborID string
}

// WallClearances holds the distances from the dragged object to the
// nearest site boundary along each axis
type WallClearances struct {
	DistX    float64 // to the nearer of the left/right walls
	DistY    float64 // to the nearer of the top/bottom walls
	FromLeft bool    // measured from the left wall
	FromTop  bool    // measured from the top wall
}

// NeighborGaps finds, for each of the four sides of target, the
// aligned neighbor with the smallest non-negative edge-to-edge gap.
// Two objects are aligned on the horizontal axis when their Y ranges
// overlap (within overlapEpsilon), and symmetrically for the vertical
// axis. At most one gap per side is returned.
func NeighborGaps(target *plan.PlacedObject, objects []*plan.PlacedObject) []Gap {
	best := map[Side]*Gap{}

	a := target.Footprint()
	for _, other := range objects {
		if other.ID == target.ID {
			continue
		}
		b := other.Footprint()

		// Horizontally adjacent: Y ranges overlap, gap along X.
		if start, end := a.OverlapY(b); end-start >= -overlapEpsilon {
			anchor := (start + end) / 2
			if gap := b.X - a.Right(); gap >= -overlapEpsilon {
				consider(best, Gap{Side: SideRight, Distance: clampZero(gap), Anchor: anchor, NeighborID: other.ID})
			} else if gap := a.X - b.Right(); gap >= -overlapEpsilon {
				consider(best, Gap{Side: SideLeft, Distance: clampZero(gap), Anchor: anchor, NeighborID: other.ID})
			}
		}

		// Vertically adjacent: X ranges overlap, gap along Y.
		if start, end := a.OverlapX(b); end-start >= -overlapEpsilon {
			anchor := (start + end) / 2
			if gap := b.Y - a.Bottom(); gap >= -overlapEpsilon {
				consider(best, Gap{Side: SideBottom, Distance: clampZero(gap), Anchor: anchor, NeighborID: other.ID})
			} else if gap := a.Y - b.Bottom(); gap >= -overlapEpsilon {
				consider(best, Gap{Side: SideTop, Distance: clampZero(gap), Anchor: anchor, NeighborID: other.ID})
			}
		}
	}

	gaps := make([]Gap, 0, len(best))
	for _, side := range []Side{SideLeft, SideRight, SideTop, SideBottom} {
		if g := best[side]; g != nil {
			gaps = append(gaps, *g)
		}
	}
	return gaps
}

func consider(best map[Side]*Gap, candidate Gap) {
	if current := best[candidate.Side]; current == nil || candidate.Distance < current.Distance {
		g := candidate
		best[candidate.Side] = &g
	}
}

func clampZero(v float64) float64 {
	return math.Max(v, 0)
}

// Walls computes the clearance from the object to the nearest wall
// along each axis, independent of any neighbors.
func Walls(o *plan.PlacedObject, site plan.Site) WallClearances {
	left := o.X
	right := site.Width - (o.X + o.Width)
	top := o.Y
	bottom := site.Length - (o.Y + o.Depth)

	c := WallClearances{
		DistX:    right,
		DistY:    bottom,
		FromLeft: false,
		FromTop:  false,
	}
	if left <= right {
		c.DistX = left
		c.FromLeft = true
	}
	if top <= bottom {
		c.DistY = top
		c.FromTop = true
	}
	return c
}
