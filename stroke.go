package tessel

import (
	"fmt"
	"sync"

	"github.com/chewxy/math32"
)

// maxArcSteps caps the number of segments in a round cap or join fan.
const maxArcSteps = 64

// StrokeTessellator expands paths into stroked ribbon geometry:
// per-segment quads, join geometry at interior points and caps at the
// endpoints of open contours.
//
// A StrokeTessellator is long-lived: construct it once and reuse it
// for every stroke tessellation. Scratch state persists between calls
// but output buffers are fresh per call.
//
// A call takes exclusive access to the engine for its duration;
// concurrent calls on the same engine serialize on an internal mutex.
type StrokeTessellator struct {
	mu sync.Mutex
	fl flattener
}

// NewStrokeTessellator creates a stroke tessellation engine.
func NewStrokeTessellator() *StrokeTessellator {
	return &StrokeTessellator{}
}

// Tessellate converts the path's stroked outline at the width, cap and
// join style given by opts into triangles. Every output point is
// routed through ctor; a nil ctor selects NewVertex.
//
// Errors are TessellationError values: nonpositive width, negative
// tolerance, or a path with no contour of at least two distinct
// points.
func (t *StrokeTessellator) Tessellate(path *Path, opts StrokeOptions, ctor VertexConstructor) (*VertexBuffers, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if opts.Width <= 0 {
		return nil, tessErr(EngineStroke, fmt.Errorf("%w: nonpositive width %v", ErrInvalidOptions, opts.Width))
	}
	tol, err := normalizeTolerance(opts.Tolerance)
	if err != nil {
		return nil, tessErr(EngineStroke, err)
	}
	if path == nil || path.IsEmpty() {
		return nil, tessErr(EngineStroke, ErrDegeneratePath)
	}
	if ctor == nil {
		ctor = NewVertex
	}
	miterLimit := opts.MiterLimit
	if miterLimit <= 0 {
		miterLimit = defaultMiterLimit
	}

	t.fl.reset(tol)
	t.fl.flatten(path)

	out := &VertexBuffers{}
	sb := strokeBuilder{
		out:        out,
		ctor:       ctor,
		half:       opts.Width / 2,
		cap:        opts.Cap,
		join:       opts.Join,
		miterLimit: miterLimit,
		tol:        tol,
	}

	emitted := false
	for i := range t.fl.contours {
		c := &t.fl.contours[i]
		if c.isDegenerate() {
			continue
		}
		sb.strokeContour(c.pts, c.closed)
		emitted = true
	}
	if !emitted {
		return nil, tessErr(EngineStroke, ErrDegeneratePath)
	}

	Logger().Debug("stroke tessellation",
		"contours", len(t.fl.contours),
		"vertices", len(out.Vertices),
		"triangles", out.TriangleCount())
	return out, nil
}

// strokeBuilder emits ribbon geometry for one tessellation call.
// Adjacent pieces share edge vertices: each segment starts from the
// indices the previous segment or join ended with.
type strokeBuilder struct {
	out        *VertexBuffers
	ctor       VertexConstructor
	half       float32
	cap        LineCap
	join       LineJoin
	miterLimit float32
	tol        float32
}

func (b *strokeBuilder) vertex(p Point) uint32 {
	return b.out.addVertex(b.ctor(p))
}

func (b *strokeBuilder) tri(i, j, k uint32) {
	b.out.addTriangle(i, j, k)
}

// strokeContour strokes one flattened polyline. Closed contours get a
// join at the seam instead of caps.
func (b *strokeBuilder) strokeContour(pts []Point, closed bool) {
	if closed && len(pts) < 3 {
		// A two-point ring has no interior; stroke it as an open segment.
		closed = false
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	dir := func(i int) Vec2 {
		return pts[(i+1)%n].Sub(pts[i]).Normalize()
	}

	d0 := dir(0)
	n0 := d0.Perp().Mul(b.half)

	var left, right uint32
	var startLeft, startRight uint32
	if closed {
		left = b.vertex(pts[0].Add(n0))
		right = b.vertex(pts[0].Add(n0.Neg()))
		startLeft, startRight = left, right
	} else {
		left, right = b.startCap(pts[0], d0)
	}

	for i := 0; i < segs; i++ {
		d := dir(i)
		nrm := d.Perp().Mul(b.half)
		end := pts[(i+1)%n]

		endLeft := b.vertex(end.Add(nrm))
		endRight := b.vertex(end.Add(nrm.Neg()))
		b.tri(left, right, endRight)
		b.tri(left, endRight, endLeft)

		last := i == segs-1
		switch {
		case !last:
			left, right = b.joinAt(end, d, dir(i+1), endLeft, endRight, 0, 0, false)
		case closed:
			// Seam join connects back to the contour's first edge.
			b.joinAt(end, d, dir(0), endLeft, endRight, startLeft, startRight, true)
		default:
			b.endCap(end, d, endLeft, endRight)
		}
	}
}

// joinAt emits join geometry at pivot between segment directions d0
// and d1. prevLeft/prevRight are the incoming edge vertices; the
// outgoing edge vertices are emitted unless reuse is set, in which
// case nextLeft/nextRight are used (the closed-contour seam). Returns
// the outgoing edge indices.
func (b *strokeBuilder) joinAt(pivot Point, d0, d1 Vec2, prevLeft, prevRight, nextLeft, nextRight uint32, reuse bool) (uint32, uint32) {
	cross := d0.Cross(d1)
	if math32.Abs(cross) <= 1e-7 && d0.Dot(d1) >= 0 {
		// Collinear continuation: edges line up, nothing to fill.
		if reuse {
			return nextLeft, nextRight
		}
		return prevLeft, prevRight
	}

	n1 := d1.Perp().Mul(b.half)
	if !reuse {
		nextLeft = b.vertex(pivot.Add(n1))
		nextRight = b.vertex(pivot.Add(n1.Neg()))
	}
	pivotIdx := b.vertex(pivot)

	// The outer side is the one the turn opens up: the right side on a
	// left turn (cross > 0), the left side on a right turn.
	var outerPrev, outerNext, innerPrev, innerNext uint32
	if cross > 0 {
		outerPrev, outerNext = prevRight, nextRight
		innerPrev, innerNext = prevLeft, nextLeft
	} else {
		outerPrev, outerNext = prevLeft, nextLeft
		innerPrev, innerNext = prevRight, nextRight
	}

	// Inner notch between the two segment quads.
	b.orientedTri(cross, pivotIdx, innerPrev, innerNext)

	switch b.join {
	case LineJoinBevel:
		b.orientedTri(cross, pivotIdx, outerPrev, outerNext)
	case LineJoinRound:
		b.roundJoin(cross, pivot, pivotIdx, d0, d1, outerPrev, outerNext)
	default: // LineJoinMiter
		b.miterJoin(cross, pivot, pivotIdx, d0, d1, outerPrev, outerNext)
	}

	return nextLeft, nextRight
}

// orientedTri emits (center, a, b) wound counter-clockwise for the
// turn direction given by cross.
func (b *strokeBuilder) orientedTri(cross float32, center, i, j uint32) {
	if cross > 0 {
		b.tri(center, i, j)
	} else {
		b.tri(center, j, i)
	}
}

// miterJoin extends the outer edges to their intersection, falling
// back to a bevel when the miter length exceeds the limit.
func (b *strokeBuilder) miterJoin(cross float32, pivot Point, pivotIdx uint32, d0, d1 Vec2, outerPrev, outerNext uint32) {
	// Unit normals pointing toward the outer side.
	out0 := d0.Perp()
	out1 := d1.Perp()
	if cross > 0 {
		out0 = out0.Neg()
		out1 = out1.Neg()
	}

	bisector := out0.Add(out1).Normalize()
	cosHalf := bisector.Dot(out0)
	if cosHalf <= 0 || 1/cosHalf > b.miterLimit {
		b.orientedTri(cross, pivotIdx, outerPrev, outerNext)
		return
	}

	miter := b.vertex(pivot.Add(bisector.Mul(b.half / cosHalf)))
	b.orientedTri(cross, pivotIdx, outerPrev, miter)
	b.orientedTri(cross, pivotIdx, miter, outerNext)
}

// roundJoin fills the outer wedge with an arc fan around the pivot.
func (b *strokeBuilder) roundJoin(cross float32, pivot Point, pivotIdx uint32, d0, d1 Vec2, outerPrev, outerNext uint32) {
	out0 := d0.Perp()
	out1 := d1.Perp()
	if cross > 0 {
		out0 = out0.Neg()
		out1 = out1.Neg()
	}

	a0 := math32.Atan2(out0.Y, out0.X)
	a1 := math32.Atan2(out1.Y, out1.X)
	delta := a1 - a0
	for delta > math32.Pi {
		delta -= 2 * math32.Pi
	}
	for delta < -math32.Pi {
		delta += 2 * math32.Pi
	}

	steps := b.arcSteps(math32.Abs(delta))
	prev := outerPrev
	for i := 1; i < steps; i++ {
		a := a0 + delta*float32(i)/float32(steps)
		cur := b.vertex(pivot.Add(V2(math32.Cos(a), math32.Sin(a)).Mul(b.half)))
		b.orientedTri(cross, pivotIdx, prev, cur)
		prev = cur
	}
	b.orientedTri(cross, pivotIdx, prev, outerNext)
}

// startCap emits the contour's first edge vertices plus cap geometry,
// returning the edge indices the first segment starts from.
func (b *strokeBuilder) startCap(p Point, d Vec2) (uint32, uint32) {
	nrm := d.Perp().Mul(b.half)
	left := b.vertex(p.Add(nrm))
	right := b.vertex(p.Add(nrm.Neg()))

	switch b.cap {
	case LineCapSquare:
		back := d.Mul(b.half)
		extLeft := b.vertex(p.Add(nrm).Add(back.Neg()))
		extRight := b.vertex(p.Add(nrm.Neg()).Add(back.Neg()))
		b.tri(extLeft, extRight, right)
		b.tri(extLeft, right, left)
	case LineCapRound:
		// Semicircle from the left edge through -d to the right edge.
		b.capFan(p, d.Perp(), left, right)
	}
	return left, right
}

// endCap emits cap geometry past the contour's last edge.
func (b *strokeBuilder) endCap(p Point, d Vec2, left, right uint32) {
	nrm := d.Perp().Mul(b.half)

	switch b.cap {
	case LineCapSquare:
		fwd := d.Mul(b.half)
		extLeft := b.vertex(p.Add(nrm).Add(fwd))
		extRight := b.vertex(p.Add(nrm.Neg()).Add(fwd))
		b.tri(left, right, extRight)
		b.tri(left, extRight, extLeft)
	case LineCapRound:
		// Semicircle from the right edge through +d to the left edge.
		b.capFan(p, d.Perp().Neg(), right, left)
	}
}

// capFan fills a semicircle around p, sweeping counter-clockwise by pi
// from the direction of start. from and to are the existing edge
// vertices at the sweep boundaries.
func (b *strokeBuilder) capFan(p Point, start Vec2, from, to uint32) {
	a0 := math32.Atan2(start.Y, start.X)
	steps := b.arcSteps(math32.Pi)
	center := b.vertex(p)

	prev := from
	for i := 1; i < steps; i++ {
		a := a0 + math32.Pi*float32(i)/float32(steps)
		cur := b.vertex(p.Add(V2(math32.Cos(a), math32.Sin(a)).Mul(b.half)))
		b.tri(center, prev, cur)
		prev = cur
	}
	b.tri(center, prev, to)
}

// arcSteps returns the number of fan segments needed to keep an arc of
// the given sweep within the builder's tolerance at the stroke radius.
func (b *strokeBuilder) arcSteps(sweep float32) int {
	r := b.half
	da := 2 * math32.Acos(r/(r+b.tol))
	if da <= 0 {
		return maxArcSteps
	}
	steps := int(math32.Ceil(sweep / da))
	if steps < 2 {
		steps = 2
	}
	if steps > maxArcSteps {
		steps = maxArcSteps
	}
	return steps
}
