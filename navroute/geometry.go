package navroute

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance returns the straight-line distance between two fixes.
func Distance(a, b NavPoint) float64 {
	return planar.Distance(a.Location(), b.Location())
}

// heading returns the vector of the leg from -> to.
func heading(from, to orb.Point) orb.Point {
	return orb.Point{to.X() - from.X(), to.Y() - from.Y()}
}

func dot(a, b orb.Point) float64 {
	return a.X()*b.X() + a.Y()*b.Y()
}

func norm(v orb.Point) float64 {
	return math.Hypot(v.X(), v.Y())
}

// routeDistance sums the leg lengths along path.
func routeDistance(path []NavPoint) float64 {
	var d float64
	for i := 0; i+1 < len(path); i++ {
		d += Distance(path[i], path[i+1])
	}
	return d
}
