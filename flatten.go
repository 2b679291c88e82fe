package tessel

import "github.com/chewxy/math32"

// geomEpsilon is the squared-distance threshold under which two path
// points are considered coincident.
const geomEpsilon = 1e-6

// maxSubdivisions caps the number of line segments a single curve may
// be flattened into, regardless of tolerance.
const maxSubdivisions = 100

// polyline is one flattened contour: an ordered point sequence plus
// whether the contour was explicitly closed.
type polyline struct {
	pts    []Point
	closed bool
}

// isDegenerate reports whether the polyline has too few distinct
// points to describe a segment.
func (c *polyline) isDegenerate() bool {
	return len(c.pts) < 2
}

// flattener decomposes a path into per-contour polylines using
// tolerance-driven adaptive subdivision of Bezier curves.
//
// A flattener is the scratch state of a tessellation engine: it is
// reused across calls, and reset clears the output while keeping the
// accumulated buffer capacity.
type flattener struct {
	tol      float32
	contours []polyline
}

// reset prepares the flattener for a new path at the given tolerance.
func (f *flattener) reset(tol float32) {
	f.tol = tol
	f.contours = f.contours[:0]
}

// beginContour starts a new output contour, reusing spare capacity
// from earlier calls when available.
func (f *flattener) beginContour() {
	if cap(f.contours) > len(f.contours) {
		f.contours = f.contours[:len(f.contours)+1]
		c := &f.contours[len(f.contours)-1]
		c.pts = c.pts[:0]
		c.closed = false
		return
	}
	f.contours = append(f.contours, polyline{})
}

// appendPoint adds a point to the current contour, skipping points
// coincident with the previous one.
func (f *flattener) appendPoint(p Point) {
	if len(f.contours) == 0 {
		f.beginContour()
	}
	c := &f.contours[len(f.contours)-1]
	if n := len(c.pts); n > 0 && c.pts[n-1].Sub(p).LengthSq() <= geomEpsilon {
		return
	}
	c.pts = append(c.pts, p)
}

// closeContour marks the current contour closed. If the flattened
// point sequence ends where it started, the duplicate end point is
// dropped so the closing segment stays implicit.
func (f *flattener) closeContour() {
	if len(f.contours) == 0 {
		return
	}
	c := &f.contours[len(f.contours)-1]
	if n := len(c.pts); n > 1 && c.pts[n-1].Sub(c.pts[0]).LengthSq() <= geomEpsilon {
		c.pts = c.pts[:n-1]
	}
	c.closed = true
}

// flatten converts the path into polylines. Curves are approximated by
// line segments whose deviation from the true curve stays within the
// tolerance set by reset.
func (f *flattener) flatten(p *Path) {
	points := p.Points()
	idx := 0
	cursor := Point{}
	for _, verb := range p.Verbs() {
		switch verb {
		case VerbMoveTo:
			cursor = Point{X: points[idx], Y: points[idx+1]}
			f.beginContour()
			f.appendPoint(cursor)
		case VerbLineTo:
			pt := Point{X: points[idx], Y: points[idx+1]}
			f.appendPoint(pt)
			cursor = pt
		case VerbQuadTo:
			ctrl := Point{X: points[idx], Y: points[idx+1]}
			end := Point{X: points[idx+2], Y: points[idx+3]}
			f.flattenQuad(cursor, ctrl, end)
			cursor = end
		case VerbCubicTo:
			c1 := Point{X: points[idx], Y: points[idx+1]}
			c2 := Point{X: points[idx+2], Y: points[idx+3]}
			end := Point{X: points[idx+4], Y: points[idx+5]}
			f.flattenCubic(cursor, c1, c2, end)
			cursor = end
		case VerbClose:
			f.closeContour()
			if len(f.contours) > 0 {
				c := &f.contours[len(f.contours)-1]
				if len(c.pts) > 0 {
					cursor = c.pts[0]
				}
			}
		}
		idx += verb.pointCount()
	}
}

// flattenQuad approximates a quadratic Bezier with line segments.
// The subdivision count is estimated from the control point's
// deviation from the chord.
func (f *flattener) flattenQuad(p0, ctrl, p1 Point) {
	d := V2(p0.X-2*ctrl.X+p1.X, p0.Y-2*ctrl.Y+p1.Y)
	dd := d.Length()

	n := 1
	if dd > f.tol {
		n = int(math32.Ceil(math32.Sqrt(dd / f.tol)))
	}
	if n > maxSubdivisions {
		n = maxSubdivisions
	}

	dt := 1 / float32(n)
	for i := 1; i <= n; i++ {
		t := float32(i) * dt
		mt := 1 - t
		f.appendPoint(Point{
			X: mt*mt*p0.X + 2*mt*t*ctrl.X + t*t*p1.X,
			Y: mt*mt*p0.Y + 2*mt*t*ctrl.Y + t*t*p1.Y,
		})
	}
}

// flattenCubic approximates a cubic Bezier with line segments.
// Flatness is estimated from the control points' deviation from the
// chord between the endpoints.
func (f *flattener) flattenCubic(p0, c1, c2, p1 Point) {
	d1 := V2(c1.X-p0.X-(p1.X-p0.X)/3, c1.Y-p0.Y-(p1.Y-p0.Y)/3)
	d2 := V2(c2.X-p0.X-2*(p1.X-p0.X)/3, c2.Y-p0.Y-2*(p1.Y-p0.Y)/3)
	dd := math32.Max(d1.Length(), d2.Length())

	n := 1
	if dd > f.tol {
		n = int(math32.Ceil(math32.Pow(dd/f.tol, 1.0/3.0)))
	}
	if n > maxSubdivisions {
		n = maxSubdivisions
	}

	dt := 1 / float32(n)
	for i := 1; i <= n; i++ {
		t := float32(i) * dt
		t2 := t * t
		mt := 1 - t
		mt2 := mt * mt
		f.appendPoint(Point{
			X: mt2*mt*p0.X + 3*mt2*t*c1.X + 3*mt*t2*c2.X + t2*t*p1.X,
			Y: mt2*mt*p0.Y + 3*mt2*t*c1.Y + 3*mt*t2*c2.Y + t2*t*p1.Y,
		})
	}
}
