package navroute

import (
	"container/heap"

	"github.com/paulmach/orb"
)

// Reason explains why a search failed. It is empty for successful results.
type Reason string

const (
	// ReasonUnknownAirport: the start or end name does not identify an
	// airport in the catalog.
	ReasonUnknownAirport Reason = "UNKNOWN_AIRPORT"
	// ReasonNoRoute: the frontier emptied without reaching the destination.
	ReasonNoRoute Reason = "NO_ROUTE"
	// ReasonTooFewWaypoints: the destination was reached, but only by a
	// route with fewer than MinIntermediateWaypoints en-route fixes, and no
	// acceptable route turned up afterwards.
	ReasonTooFewWaypoints Reason = "TOO_FEW_WAYPOINTS"
)

// Result contains the outcome of a search. On failure Path is empty and
// Distance is zero.
type Result struct {
	Path []NavPoint
	// Distance is the summed length of the legs of Path; turn surcharges
	// are not included.
	Distance float64
	Success  bool

	Reason   Reason
	Expanded int // nodes popped from the frontier
}

func failure(reason Reason, expanded int) Result {
	return Result{Path: []NavPoint{}, Reason: reason, Expanded: expanded}
}

// FindPath searches points for a route from the airport named startName to
// the airport named endName.
func FindPath(startName, endName string, points []NavPoint, opts ...Option) Result {
	o := applyOptions(opts)

	start, ok := lookupAirport(points, startName)
	if !ok {
		return failure(ReasonUnknownAirport, 0)
	}
	goal, ok := lookupAirport(points, endName)
	if !ok {
		return failure(ReasonUnknownAirport, 0)
	}

	selector := newNeighborSelector(points, o.MaxDistance, o.MinDistance)

	f := &frontier{}
	heap.Init(f)
	root := f.add(searchNode{
		point:  start,
		h:      Distance(start, goal),
		parent: -1,
	})
	heap.Push(f, root)

	open := map[string]int{start.Name: root}
	closed := make(map[string]bool)
	expanded := 0
	rejectedGoal := false

	for f.Len() > 0 {
		id := heap.Pop(f).(int)
		current := f.nodes[id]
		delete(open, current.point.Name)
		expanded++

		closed[current.point.Name] = true

		if current.point.Name == goal.Name {
			path := reconstruct(f.nodes, id)
			if intermediateWaypoints(path) >= MinIntermediateWaypoints {
				return Result{
					Path:     path,
					Distance: routeDistance(path),
					Success:  true,
					Expanded: expanded,
				}
			}
			// Too direct; the goal stays closed as a dead end.
			rejectedGoal = true
			continue
		}

		var prev orb.Point
		inbound := current.parent != -1
		if inbound {
			prev = f.nodes[current.parent].point.Location()
		}

		for _, next := range selector.neighbors(current.point, goal) {
			if closed[next.Name] {
				continue
			}

			cost := current.cost + legCost(prev, inbound, current.point, next, o.TurnPenalty)

			if nid, exists := open[next.Name]; !exists {
				nid = f.add(searchNode{
					point:  next,
					cost:   cost,
					h:      Distance(next, goal),
					parent: id,
				})
				heap.Push(f, nid)
				open[next.Name] = nid
			} else if n := &f.nodes[nid]; cost < n.cost {
				// Found a cheaper way to a queued fix
				n.cost = cost
				n.parent = id
				heap.Fix(f, n.index)
			}
		}
	}

	if rejectedGoal {
		return failure(ReasonTooFewWaypoints, expanded)
	}
	return failure(ReasonNoRoute, expanded)
}

// lookupAirport returns the first airport in points with the given name.
func lookupAirport(points []NavPoint, name string) (NavPoint, bool) {
	for _, p := range points {
		if p.Name == name && p.IsAirport() {
			return p, true
		}
	}
	return NavPoint{}, false
}

// Router runs searches against a catalog with a fixed set of default
// parameters. It keeps no state between searches.
type Router struct {
	catalog Catalog
	opts    Options
}

// NewRouter returns a Router over catalog.
func NewRouter(catalog Catalog, opts ...Option) *Router {
	return &Router{catalog: catalog, opts: applyOptions(opts)}
}

// Options returns the router's default search parameters.
func (r *Router) Options() Options { return r.opts }

// FindPath searches the router's catalog for a route from start to end.
// opts override the router's defaults for this search only.
func (r *Router) FindPath(start, end string, opts ...Option) Result {
	o := r.opts
	for _, opt := range opts {
		opt(&o)
	}
	return FindPath(start, end, r.catalog.Points(), WithOptions(o))
}
