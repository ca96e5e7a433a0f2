package svgwire

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Tuple is an X,Y coordinate in the source (grammar) space.
type Tuple [2]float64

// Point3 is a point on the 3D working plane. The converter only ever
// produces points with Z == 0.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Distance returns the euclidean distance between two points.
func (p Point3) Distance(o Point3) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	dz := p.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PlaneMapper lifts source-space coordinates onto the 3D working plane.
// Path grammar sources are Y-down, the working plane is Y-up, so Y is
// inverted exactly once, here, and never re-inverted downstream. An
// optional planar transform (the document import scale) is applied
// before the inversion.
type PlaneMapper struct {
	transform *mt.Transform
}

// NewPlaneMapper returns a mapper with an identity planar transform.
func NewPlaneMapper() *PlaneMapper {
	return &PlaneMapper{transform: mt.NewTransform()}
}

// Map converts a source-space coordinate to a working-plane point.
func (m *PlaneMapper) Map(x, y float64) Point3 {
	tx, ty := m.transform.Apply(x, y)
	return Point3{X: tx, Y: -ty, Z: 0}
}

// MapTuple is Map over a Tuple.
func (m *PlaneMapper) MapTuple(t Tuple) Point3 {
	return m.Map(t[0], t[1])
}
