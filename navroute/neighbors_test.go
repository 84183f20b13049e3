package navroute

import (
	"slices"
	"testing"
)

func names(points []NavPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Name
	}
	return out
}

func TestNeighbors(t *testing.T) {
	catalog := []NavPoint{
		{Name: "CUR", X: 0, Y: 0, Type: Waypoint},
		{Name: "GOAL", X: 20, Y: 0, Type: Airport},
		{Name: "OTHER", X: 10, Y: 0, Type: Airport},
		{Name: "RAMP", X: 10, Y: 0, Type: Waypoint},  // on OTHER
		{Name: "GATE", X: 20, Y: 0, Type: NDB},       // on GOAL
		{Name: "CLOSE", X: 3, Y: 0, Type: Waypoint},  // inside minDist
		{Name: "FAR", X: 30, Y: 0, Type: Waypoint},   // beyond maxDist
		{Name: "EDGE", X: 0, Y: 25, Type: VORDME},    // exactly maxDist
		{Name: "INNER", X: 0, Y: -8, Type: Waypoint}, // exactly minDist
		{Name: "MID", X: -12, Y: 5, Type: Waypoint},
	}

	ns := newNeighborSelector(catalog, 25, 8)
	got := names(ns.neighbors(catalog[0], catalog[1]))
	want := []string{"GOAL", "EDGE", "INNER", "MID"}

	if !slices.Equal(got, want) {
		t.Errorf("neighbors = %v, want %v", got, want)
	}
}

func TestNeighborsExcludesAirportsUnlessGoal(t *testing.T) {
	catalog := []NavPoint{
		{Name: "A", X: 0, Y: 0, Type: Airport},
		{Name: "B", X: 15, Y: 0, Type: Airport},
		{Name: "C", X: 0, Y: 15, Type: Airport},
		{Name: "W", X: 10, Y: 10, Type: Waypoint},
	}
	ns := newNeighborSelector(catalog, 25, 8)

	if got := names(ns.neighbors(catalog[0], catalog[1])); !slices.Equal(got, []string{"B", "W"}) {
		t.Errorf("toward B: got %v", got)
	}
	if got := names(ns.neighbors(catalog[0], catalog[2])); !slices.Equal(got, []string{"C", "W"}) {
		t.Errorf("toward C: got %v", got)
	}
}

func TestNeighborsInvertedBand(t *testing.T) {
	catalog := []NavPoint{
		{Name: "A", X: 0, Y: 0, Type: Airport},
		{Name: "W", X: 10, Y: 0, Type: Waypoint},
	}
	ns := newNeighborSelector(catalog, 5, 20)

	if got := ns.neighbors(catalog[0], catalog[0]); len(got) != 0 {
		t.Errorf("neighbors = %v, want none", names(got))
	}
}

func TestSpatialIndexWithin(t *testing.T) {
	var points []NavPoint
	for i := 0; i < 200; i++ {
		points = append(points, NavPoint{Name: string(rune('a' + i%26)), X: float64(i % 20), Y: float64(i / 20)})
	}
	si := newSpatialIndex(points)

	got := si.within(5, 5, 1)
	if !slices.IsSorted(got) {
		t.Fatalf("indices not in catalog order: %v", got)
	}
	for i, p := range points {
		inBox := p.X >= 4 && p.X <= 6 && p.Y >= 4 && p.Y <= 6
		if found := slices.Contains(got, i); found != inBox {
			t.Errorf("point %d at (%v,%v): in result = %v, want %v", i, p.X, p.Y, found, inBox)
		}
	}

	if got := si.within(5, 5, -1); got != nil {
		t.Errorf("negative radius: got %v, want nil", got)
	}
}
