package tessel

import "github.com/chewxy/math32"

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo begins a new contour at the specified point.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current contour.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// pointCount returns the number of float32 coordinates the verb consumes.
func (v PathVerb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2
	case VerbQuadTo:
		return 4
	case VerbCubicTo:
		return 6
	default:
		return 0
	}
}

// Path represents a vector path: one or more contours built from line
// segments and Bezier curves. Commands (verbs) and coordinate data are
// stored separately for cheap iteration during flattening.
//
// A Path is mutable while it is being built and must be treated as
// immutable once attached to a shape; the tessellation engines only
// read it.
type Path struct {
	verbs  []PathVerb
	points []float32
	start  Point // start of current contour, for Close
	cursor Point // current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = Point{}
	p.cursor = Point{}
}

// IsEmpty reports whether the path contains no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// MoveTo begins a new contour at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.start = Point{X: x, Y: y}
	p.cursor = p.start
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.cursor = Point{X: x, Y: y}
	return p
}

// QuadTo draws a quadratic Bezier curve from the current point to
// (x, y) using (cx, cy) as control point.
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	p.cursor = Point{X: x, Y: y}
	return p
}

// CubicTo draws a cubic Bezier curve from the current point to (x, y)
// using (c1x, c1y) and (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.cursor = Point{X: x, Y: y}
	return p
}

// Close closes the current contour by connecting it back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Verbs returns the path commands. The returned slice is owned by the
// path and must not be modified.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the flat coordinate array. The returned slice is
// owned by the path and must not be modified.
func (p *Path) Points() []float32 {
	return p.points
}

// CurrentPoint returns the current pen position.
func (p *Path) CurrentPoint() Point {
	return p.cursor
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		verbs:  make([]PathVerb, len(p.verbs)),
		points: make([]float32, len(p.points)),
		start:  p.start,
		cursor: p.cursor,
	}
	copy(result.verbs, p.verbs)
	copy(result.points, p.points)
	return result
}

// Bounds returns the conservative bounding box of the path: the union
// of all on-curve and control points. Returns zero min/max points for
// an empty path.
func (p *Path) Bounds() (min, max Point) {
	if len(p.points) < 2 {
		return Point{}, Point{}
	}
	min = Point{X: p.points[0], Y: p.points[1]}
	max = min
	for i := 0; i+1 < len(p.points); i += 2 {
		x, y := p.points[i], p.points[i+1]
		min.X = math32.Min(min.X, x)
		min.Y = math32.Min(min.Y, y)
		max.X = math32.Max(max.X, x)
		max.Y = math32.Max(max.Y, y)
	}
	return min, max
}

// Rectangle adds an axis-aligned rectangle as a closed contour.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// circleK is the control-point offset factor for approximating a
// quarter circle with a cubic Bezier: 4/3 * (sqrt(2) - 1).
const circleK = 0.5522847498307936

// Circle adds a circle as a closed contour of four cubic Beziers.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse as a closed contour.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	ox := rx * circleK
	oy := ry * circleK
	return p.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry).
		CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy).
		CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry).
		CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy).
		Close()
}

// Polygon adds a regular polygon with n sides as a closed contour.
// Polygons with fewer than 3 sides are ignored.
func (p *Path) Polygon(cx, cy, r float32, n int) *Path {
	if n < 3 {
		return p
	}
	for i := 0; i < n; i++ {
		a := 2 * math32.Pi * float32(i) / float32(n)
		x := cx + r*math32.Cos(a)
		y := cy + r*math32.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}

// Line adds an open two-point contour. Useful as stroke input.
func (p *Path) Line(x0, y0, x1, y1 float32) *Path {
	return p.MoveTo(x0, y0).LineTo(x1, y1)
}
