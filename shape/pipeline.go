package shape

import (
	"github.com/gogpu/tessel"
	"github.com/gogpu/tessel/mesh"
)

// fillEngine and strokeEngine are the slices of the tessellation
// engines the pipeline needs. Tests substitute instrumented doubles.
type fillEngine interface {
	Tessellate(*tessel.Path, tessel.FillOptions, tessel.VertexConstructor) (*tessel.VertexBuffers, error)
}

type strokeEngine interface {
	Tessellate(*tessel.Path, tessel.StrokeOptions, tessel.VertexConstructor) (*tessel.VertexBuffers, error)
}

// Pipeline owns the two process-wide tessellation engine singletons
// and the dispatch logic that completes shapes with meshes.
//
// Shapes within a pass may be processed from multiple goroutines; the
// engines serialize internally, and fill and stroke work proceed
// independently of each other.
type Pipeline struct {
	fill   fillEngine
	stroke strokeEngine
	assets *mesh.Assets
}

// NewPipeline creates a pipeline with fresh engine singletons,
// registering meshes into assets.
func NewPipeline(assets *mesh.Assets) *Pipeline {
	return &Pipeline{
		fill:   tessel.NewFillTessellator(),
		stroke: tessel.NewStrokeTessellator(),
		assets: assets,
	}
}

// Process runs one tessellation pass over the given shapes.
//
// Shapes already processed are skipped, so repeated passes tessellate
// each shape at most once. For each remaining shape the path is routed
// to the engine its mode selects; on success the mesh is built and
// registered, the shape's handle updated, and the shape marked visible
// and processed. On failure the error is logged and the shape left
// untouched — one shape's failure never aborts the pass.
func (p *Pipeline) Process(shapes ...*Shape) {
	for _, s := range shapes {
		if s.Processed {
			continue
		}
		p.process(s)
	}
}

// process tessellates a single unprocessed shape.
func (p *Pipeline) process(s *Shape) {
	var (
		buffers *tessel.VertexBuffers
		err     error
	)
	switch mode := s.Mode.(type) {
	case Fill:
		buffers, err = p.fill.Tessellate(s.Path, mode.Options, tessel.NewVertex)
	case Stroke:
		buffers, err = p.stroke.Tessellate(s.Path, mode.Options, tessel.NewVertex)
	default:
		tessel.Logger().Error("shape has no draw mode, skipping")
		return
	}
	if err != nil {
		// Leave the shape unprocessed and invisible; a host that
		// re-runs the stage after fixing the input retries naturally.
		tessel.Logger().Error("tessellation failed", "error", err)
		return
	}

	s.Mesh = p.assets.Add(mesh.Build(buffers))
	s.Visible = true
	s.Processed = true
}
