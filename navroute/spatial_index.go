package navroute

import (
	"slices"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the half-width of the box each fix occupies in the
// tree. rtreego rejects zero-sized rectangles and treats touching boxes as
// disjoint, so both stored points and queries are padded by it.
const pointTolerance = 1e-6

// pointEntry wraps a catalog point for R-tree storage
type pointEntry struct {
	index int // position in the catalog
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *pointEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// spatialIndex answers "which fixes lie near here" queries over a catalog.
type spatialIndex struct {
	points []NavPoint
	tree   *rtreego.Rtree
}

func newSpatialIndex(points []NavPoint) *spatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i, p := range points {
		tree.Insert(&pointEntry{
			index: i,
			bbox:  rtreego.Point{p.X, p.Y}.ToRect(pointTolerance),
		})
	}

	return &spatialIndex{points: points, tree: tree}
}

// within returns the catalog indices of all fixes whose bounding boxes
// intersect the square of half-width radius centered on (x, y), in catalog
// order. The result is a superset of the fixes within radius; callers
// filter by exact distance.
func (si *spatialIndex) within(x, y, radius float64) []int {
	if radius < 0 {
		return nil
	}
	half := radius + pointTolerance
	bbox, err := rtreego.NewRect(
		rtreego.Point{x - half, y - half},
		[]float64{2 * half, 2 * half},
	)
	if err != nil {
		return nil
	}

	results := si.tree.SearchIntersect(bbox)
	indices := make([]int, 0, len(results))
	for _, item := range results {
		indices = append(indices, item.(*pointEntry).index)
	}
	// Tree traversal order depends on insertion history; the search's
	// tie-breaking relies on catalog order.
	slices.Sort(indices)

	return indices
}
