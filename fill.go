package tessel

import (
	"sync"

	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// FillTessellator triangulates the filled interior of paths.
//
// A FillTessellator is long-lived: construct it once and reuse it for
// every fill tessellation. Scratch state (flattening buffers) persists
// between calls to amortize allocations, but output buffers are fresh
// per call and no geometry leaks from one call into the next.
//
// A call takes exclusive access to the engine for its duration;
// concurrent calls on the same engine serialize on an internal mutex.
type FillTessellator struct {
	mu       sync.Mutex
	fl       flattener
	contours []libtess2.Contour
}

// NewFillTessellator creates a fill tessellation engine.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{}
}

// Tessellate converts the path's filled interior into triangles within
// the tolerance given by opts. Every output point is routed through
// ctor; a nil ctor selects NewVertex.
//
// All contours are treated as closed, open ones being closed
// implicitly. Triangulation itself is delegated to the libtess2 port,
// which resolves self-intersections according to the fill rule.
//
// Errors are TessellationError values: invalid options, or a path with
// no contour of at least three distinct points.
func (t *FillTessellator) Tessellate(path *Path, opts FillOptions, ctor VertexConstructor) (*VertexBuffers, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tol, err := normalizeTolerance(opts.Tolerance)
	if err != nil {
		return nil, tessErr(EngineFill, err)
	}
	if path == nil || path.IsEmpty() {
		return nil, tessErr(EngineFill, ErrDegeneratePath)
	}
	if ctor == nil {
		ctor = NewVertex
	}

	t.fl.reset(tol)
	t.fl.flatten(path)

	t.contours = t.contours[:0]
	for i := range t.fl.contours {
		c := &t.fl.contours[i]
		if len(c.pts) < 3 {
			continue
		}
		tc := make(libtess2.Contour, len(c.pts))
		for j, p := range c.pts {
			tc[j] = libtess2.Vertex{X: p.X, Y: p.Y}
		}
		t.contours = append(t.contours, tc)
	}
	if len(t.contours) == 0 {
		return nil, tessErr(EngineFill, ErrDegeneratePath)
	}

	elements, vertices, err := libtess2.Tesselate(t.contours, windingRule(opts.Rule))
	if err != nil {
		return nil, tessErr(EngineFill, err)
	}
	if len(elements) == 0 {
		// Contours existed but enclosed no area (e.g. collinear points).
		return nil, tessErr(EngineFill, ErrDegeneratePath)
	}

	out := &VertexBuffers{
		Vertices: make([]Vertex, 0, len(vertices)),
		Indices:  make([]uint32, 0, len(elements)),
	}
	for _, v := range vertices {
		out.Vertices = append(out.Vertices, ctor(Point{X: v.X, Y: v.Y}))
	}
	for _, e := range elements {
		out.Indices = append(out.Indices, uint32(e))
	}

	Logger().Debug("fill tessellation",
		"contours", len(t.contours),
		"vertices", len(out.Vertices),
		"triangles", out.TriangleCount())
	return out, nil
}

// windingRule maps a FillRule to the corresponding libtess2 rule.
func windingRule(r FillRule) libtess2.WindingRule {
	if r == FillEvenOdd {
		return libtess2.WindingRuleOdd
	}
	return libtess2.WindingRuleNonzero
}
