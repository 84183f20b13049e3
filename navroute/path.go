package navroute

// reconstruct walks the parent chain from the node at id back to the start
// and returns the fixes in start-to-goal order. Airports strictly inside
// the route are dropped; the first and last fixes are always kept.
func reconstruct(nodes []searchNode, id int) []NavPoint {
	var path []NavPoint
	for i := id; i != -1; i = nodes[i].parent {
		path = append(path, nodes[i].point)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return trimInteriorAirports(path)
}

func trimInteriorAirports(path []NavPoint) []NavPoint {
	if len(path) <= 2 {
		return path
	}

	trimmed := make([]NavPoint, 0, len(path))
	trimmed = append(trimmed, path[0])
	for _, p := range path[1 : len(path)-1] {
		if !p.IsAirport() {
			trimmed = append(trimmed, p)
		}
	}
	return append(trimmed, path[len(path)-1])
}

// intermediateWaypoints counts the non-airport fixes strictly between the
// ends of path.
func intermediateWaypoints(path []NavPoint) int {
	if len(path) <= 2 {
		return 0
	}
	n := 0
	for _, p := range path[1 : len(path)-1] {
		if !p.IsAirport() {
			n++
		}
	}
	return n
}
