package navroute

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestLegCost(t *testing.T) {
	wp := func(x, y float64) NavPoint { return NavPoint{Name: "P", X: x, Y: y, Type: Waypoint} }

	tests := []struct {
		name     string
		prev     orb.Point
		inbound  bool
		from, to NavPoint
		penalty  float64
		want     float64
	}{
		{name: "first leg has no turn", from: wp(0, 0), to: wp(3, 4), penalty: 2, want: 5},
		{name: "straight ahead", prev: orb.Point{0, 0}, inbound: true, from: wp(10, 0), to: wp(20, 0), penalty: 2, want: 10},
		{name: "right angle", prev: orb.Point{0, 0}, inbound: true, from: wp(10, 0), to: wp(10, 10), penalty: 2, want: 12},
		{name: "reversal", prev: orb.Point{0, 0}, inbound: true, from: wp(10, 0), to: wp(0, 0), penalty: 2, want: 14},
		{name: "reversal without penalty", prev: orb.Point{0, 0}, inbound: true, from: wp(10, 0), to: wp(0, 0), penalty: 0, want: 10},
		{name: "degenerate inbound leg", prev: orb.Point{10, 0}, inbound: true, from: wp(10, 0), to: wp(20, 0), penalty: 2, want: 10},
		{name: "degenerate outbound leg", prev: orb.Point{0, 0}, inbound: true, from: wp(10, 0), to: wp(10, 0), penalty: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := legCost(tt.prev, tt.inbound, tt.from, tt.to, tt.penalty)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("legCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLegCostShallowTurnCheaperThanSharp(t *testing.T) {
	prev := orb.Point{0, 0}
	from := NavPoint{X: 10, Y: 0}
	shallow := legCost(prev, true, from, NavPoint{X: 20, Y: 2}, 2) - Distance(from, NavPoint{X: 20, Y: 2})
	sharp := legCost(prev, true, from, NavPoint{X: 12, Y: 10}, 2) - Distance(from, NavPoint{X: 12, Y: 10})

	if shallow <= 0 || sharp <= shallow {
		t.Errorf("surcharges: shallow %v, sharp %v; want 0 < shallow < sharp", shallow, sharp)
	}
}
