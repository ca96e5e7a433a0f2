package svgwire

// elevateQuadratic returns the control points of the cubic Bézier that
// traces a quadratic exactly:
//
//	c1 = p0 + 2/3·(c − p0)
//	c2 = p2 + 2/3·(c − p2)
func elevateQuadratic(p0, c, p2 Tuple) (Tuple, Tuple) {
	c1 := Tuple{
		p0[0] + 2.0/3.0*(c[0]-p0[0]),
		p0[1] + 2.0/3.0*(c[1]-p0[1]),
	}
	c2 := Tuple{
		p2[0] + 2.0/3.0*(c[0]-p2[0]),
		p2[1] + 2.0/3.0*(c[1]-p2[1]),
	}
	return c1, c2
}
