package core

import "math/big"

// Hit describes which edges of a rectangle a circle touched.
// Vertical means the nearest point sits on the left or right edge, so the
// horizontal velocity should be inverted. Horizontal is the same for the top
// and bottom edges. A corner hit sets both.
type Hit struct {
	Vertical   bool
	Horizontal bool
}

// CircleRect tests whether the disk c intersects the closed rectangle r.
//
// The nearest point of r to the circle center is found by clamping each axis
// independently. min and max return one of their operands, so the nearest
// point and the edge equality tests are exact. The disk intersects when the
// squared distance to that point is at most the squared radius; touching
// counts. That comparison is done in rational arithmetic.
func CircleRect(c Circle, r Rect) (Hit, bool) {
	nearestX := max(r.X1, min(c.Center.X, r.X2))
	nearestY := max(r.Y1, min(c.Center.Y, r.Y2))

	distSq := squaredDiff(c.Center.X, nearestX)
	distSq.Add(distSq, squaredDiff(c.Center.Y, nearestY))

	radiusSq := squaredDiff(c.Radius, 0)
	if distSq.Cmp(radiusSq) > 0 {
		return Hit{}, false
	}

	return Hit{
		Vertical:   nearestX == r.X1 || nearestX == r.X2,
		Horizontal: nearestY == r.Y1 || nearestY == r.Y2,
	}, true
}

// squaredDiff returns (a-b)^2 computed on the exact values of a and b.
func squaredDiff(a, b float64) *big.Rat {
	d := new(big.Rat)
	if a == b {
		return d
	}
	d.Sub(exactRat(a), exactRat(b))
	return d.Mul(d, d)
}

// exactRat returns the rational value of v. Non-finite values map to zero.
func exactRat(v float64) *big.Rat {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return new(big.Rat)
	}
	return r
}
