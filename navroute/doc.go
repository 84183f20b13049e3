// Package navroute synthesizes plausible flight routes between two airports
// from a catalog of navigation fixes.
//
// The search is a greedy best-first search: frontier nodes are ranked by
// accumulated cost plus the straight-line distance to the destination, while
// the accumulated cost also carries a turn penalty that the ranking heuristic
// ignores. Routes found this way are smooth and plausible rather than
// provably shortest.
//
// Candidate next hops are restricted to fixes inside a distance band around
// the current fix. Airports other than the destination are never used as
// en-route fixes, nor are fixes that sit exactly on top of an airport.
// A goal arrival is only accepted once the route carries at least
// [MinIntermediateWaypoints] en-route fixes.
//
// Basic use:
//
//	res := navroute.FindPath("KAAA", "KBBB", points,
//		navroute.WithMaxDistance(40), navroute.WithMinDistance(5))
//	if res.Success {
//		fmt.Println(res.Path, res.Distance)
//	}
//
// All functions are pure over their inputs and safe for concurrent use.
package navroute
