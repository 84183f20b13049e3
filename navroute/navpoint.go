package navroute

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// PointType classifies a navigation fix.
type PointType string

const (
	Airport  PointType = "AIRPORT"
	Waypoint PointType = "WAYPOINT"
	VORDME   PointType = "VOR-DME"
	NDB      PointType = "NDB"
)

// ParsePointType maps a catalog type label onto a PointType. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParsePointType(s string) (PointType, error) {
	switch t := PointType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Airport, Waypoint, VORDME, NDB:
		return t, nil
	default:
		return "", fmt.Errorf("unknown navigation point type %q", s)
	}
}

// NavPoint is a navigation fix. Coordinates are planar and measured in
// nautical miles. Names are unique within a catalog.
type NavPoint struct {
	Name string    `json:"name"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Type PointType `json:"type"`
}

// IsAirport reports whether p is an airport.
func (p NavPoint) IsAirport() bool { return p.Type == Airport }

// Location returns p's coordinates as an orb.Point.
func (p NavPoint) Location() orb.Point { return orb.Point{p.X, p.Y} }

func (p NavPoint) String() string {
	return fmt.Sprintf("%s(%s %.1f,%.1f)", p.Name, p.Type, p.X, p.Y)
}

// Catalog supplies the navigation fixes a route is built from. Callers of
// Points must not modify the returned slice.
type Catalog interface {
	Points() []NavPoint
}

// StaticCatalog is a Catalog over an in-memory list of points.
type StaticCatalog []NavPoint

func (c StaticCatalog) Points() []NavPoint { return c }
