package navroute

import "github.com/paulmach/orb"

// neighborSelector filters the catalog down to the candidate next hops of
// a fix.
type neighborSelector struct {
	index    *spatialIndex
	airports map[orb.Point]bool // positions occupied by an airport
	maxDist  float64
	minDist  float64
}

func newNeighborSelector(points []NavPoint, maxDist, minDist float64) *neighborSelector {
	airports := make(map[orb.Point]bool)
	for _, p := range points {
		if p.IsAirport() {
			airports[p.Location()] = true
		}
	}

	return &neighborSelector{
		index:    newSpatialIndex(points),
		airports: airports,
		maxDist:  maxDist,
		minDist:  minDist,
	}
}

// neighbors returns, in catalog order, the fixes that may follow current on
// a route to goal:
//   - never current itself;
//   - airports only if they are goal;
//   - no fix other than goal that sits on an airport's position (gate and
//     ramp fixes);
//   - only fixes whose distance from current lies in [minDist, maxDist].
func (ns *neighborSelector) neighbors(current, goal NavPoint) []NavPoint {
	if ns.minDist > ns.maxDist {
		return nil
	}

	var result []NavPoint
	for _, i := range ns.index.within(current.X, current.Y, ns.maxDist) {
		p := ns.index.points[i]
		isGoal := p.Name == goal.Name

		if p.Name == current.Name {
			continue
		}
		if p.IsAirport() && !isGoal {
			continue
		}
		if !isGoal && ns.airports[p.Location()] {
			continue
		}
		if d := Distance(current, p); d < ns.minDist || d > ns.maxDist {
			continue
		}
		result = append(result, p)
	}

	return result
}
