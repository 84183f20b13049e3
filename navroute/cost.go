package navroute

import "github.com/paulmach/orb"

// legCost prices the leg from -> to. When the leg that arrived at from is
// known (inbound is true, prev is its origin), a turn surcharge of
// (1 - cos θ) * turnPenalty is added, θ being the heading change at from:
// nothing for straight ahead, 2*turnPenalty for a full reversal. Degenerate
// legs of zero length carry no surcharge.
//
// The surcharge only steers the search; reported route distances never
// include it.
func legCost(prev orb.Point, inbound bool, from, to NavPoint, turnPenalty float64) float64 {
	d := Distance(from, to)
	if !inbound {
		return d
	}

	v1 := heading(prev, from.Location())
	v2 := heading(from.Location(), to.Location())
	n1, n2 := norm(v1), norm(v2)
	if n1 == 0 || n2 == 0 {
		return d
	}

	cosAngle := dot(v1, v2) / (n1 * n2)
	return d + (1-cosAngle)*turnPenalty
}
