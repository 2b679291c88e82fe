package tessel

import (
	"errors"
	"sync"
	"testing"
)

func TestStrokeTessellator_Segment(t *testing.T) {
	path := NewPath().Line(0, 0, 10, 0)
	opts := DefaultStrokeOptions().WithWidth(2).WithCap(LineCapButt)

	st := NewStrokeTessellator()
	buffers, err := st.Tessellate(path, opts, NewVertex)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	checkBuffers(t, buffers)

	// A butt-capped segment is exactly one quad.
	if len(buffers.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(buffers.Vertices))
	}
	if buffers.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", buffers.TriangleCount())
	}

	// The ribbon spans half a width to each side of the centerline.
	for i, v := range buffers.Vertices {
		if v.Position[1] != 1 && v.Position[1] != -1 {
			t.Errorf("vertex %d y = %v, want +-1", i, v.Position[1])
		}
	}

	// Triangles face up: counter-clockwise in the xy plane.
	for i := 0; i < len(buffers.Indices); i += 3 {
		a := buffers.Vertices[buffers.Indices[i]].Position
		b := buffers.Vertices[buffers.Indices[i+1]].Position
		c := buffers.Vertices[buffers.Indices[i+2]].Position
		area := (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
		if area <= 0 {
			t.Errorf("triangle %d wound clockwise (signed area %v)", i/3, area)
		}
	}
}

func TestStrokeTessellator_Caps(t *testing.T) {
	stroke := func(cap LineCap) *VertexBuffers {
		t.Helper()
		st := NewStrokeTessellator()
		buffers, err := st.Tessellate(NewPath().Line(0, 0, 10, 0),
			DefaultStrokeOptions().WithWidth(2).WithCap(cap), NewVertex)
		if err != nil {
			t.Fatalf("tessellate with cap %d: %v", cap, err)
		}
		checkBuffers(t, buffers)
		return buffers
	}

	butt := stroke(LineCapButt)
	square := stroke(LineCapSquare)
	round := stroke(LineCapRound)

	if len(square.Vertices) != len(butt.Vertices)+4 {
		t.Errorf("square caps add one quad per end: butt %d, square %d",
			len(butt.Vertices), len(square.Vertices))
	}
	if square.TriangleCount() != butt.TriangleCount()+4 {
		t.Errorf("square cap triangles: butt %d, square %d",
			butt.TriangleCount(), square.TriangleCount())
	}
	if len(round.Vertices) <= len(square.Vertices) {
		t.Errorf("round caps should out-subdivide square: square %d, round %d",
			len(square.Vertices), len(round.Vertices))
	}
}

func TestStrokeTessellator_Joins(t *testing.T) {
	// A right-angle elbow exercises exactly one interior join.
	elbow := func() *Path {
		return NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10)
	}
	stroke := func(join LineJoin) *VertexBuffers {
		t.Helper()
		st := NewStrokeTessellator()
		buffers, err := st.Tessellate(elbow(),
			DefaultStrokeOptions().WithWidth(2).WithJoin(join), NewVertex)
		if err != nil {
			t.Fatalf("tessellate with join %d: %v", join, err)
		}
		checkBuffers(t, buffers)
		return buffers
	}

	bevel := stroke(LineJoinBevel)
	miter := stroke(LineJoinMiter)
	round := stroke(LineJoinRound)

	if miter.TriangleCount() != bevel.TriangleCount()+1 {
		t.Errorf("a 90 degree miter splits the bevel wedge in two: bevel %d, miter %d triangles",
			bevel.TriangleCount(), miter.TriangleCount())
	}
	if round.TriangleCount() <= bevel.TriangleCount() {
		t.Errorf("round join should fan the wedge: bevel %d, round %d triangles",
			bevel.TriangleCount(), round.TriangleCount())
	}
}

func TestStrokeTessellator_MiterLimitFallsBackToBevel(t *testing.T) {
	// A near-reversal turn produces an extreme miter length.
	hairpin := NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(0, 0.5)

	st := NewStrokeTessellator()
	limited, err := st.Tessellate(hairpin,
		DefaultStrokeOptions().WithWidth(2).WithJoin(LineJoinMiter).WithMiterLimit(2), NewVertex)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	checkBuffers(t, limited)

	bevel, err := st.Tessellate(hairpin,
		DefaultStrokeOptions().WithWidth(2).WithJoin(LineJoinBevel), NewVertex)
	if err != nil {
		t.Fatalf("tessellate bevel: %v", err)
	}
	if limited.TriangleCount() != bevel.TriangleCount() {
		t.Errorf("over-limit miter should degrade to a bevel: %d vs %d triangles",
			limited.TriangleCount(), bevel.TriangleCount())
	}
}

func TestStrokeTessellator_ClosedContour(t *testing.T) {
	path := NewPath().Rectangle(0, 0, 10, 10)

	st := NewStrokeTessellator()
	buffers, err := st.Tessellate(path, DefaultStrokeOptions().WithWidth(2), NewVertex)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	checkBuffers(t, buffers)

	// Four segment quads plus four corner joins, no caps.
	if buffers.TriangleCount() < 8 {
		t.Errorf("expected at least 8 triangles for a stroked rectangle, got %d", buffers.TriangleCount())
	}
}

func TestStrokeTessellator_CurvedPath(t *testing.T) {
	path := NewPath().Circle(0, 0, 20)

	st := NewStrokeTessellator()
	buffers, err := st.Tessellate(path, DefaultStrokeOptions().WithWidth(3), NewVertex)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	checkBuffers(t, buffers)
	if buffers.TriangleCount() < 16 {
		t.Errorf("expected a subdivided ring, got %d triangles", buffers.TriangleCount())
	}
}

func TestStrokeTessellator_Errors(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		opts StrokeOptions
		want error
	}{
		{"ZeroWidth", NewPath().Line(0, 0, 1, 1), DefaultStrokeOptions().WithWidth(0), ErrInvalidOptions},
		{"NegativeWidth", NewPath().Line(0, 0, 1, 1), DefaultStrokeOptions().WithWidth(-3), ErrInvalidOptions},
		{"NegativeTolerance", NewPath().Line(0, 0, 1, 1), DefaultStrokeOptions().WithTolerance(-1), ErrInvalidOptions},
		{"NilPath", nil, DefaultStrokeOptions(), ErrDegeneratePath},
		{"EmptyPath", NewPath(), DefaultStrokeOptions(), ErrDegeneratePath},
		{"SinglePoint", NewPath().MoveTo(5, 5), DefaultStrokeOptions(), ErrDegeneratePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewStrokeTessellator()
			_, err := st.Tessellate(tt.path, tt.opts, NewVertex)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var te *TessellationError
			if !errors.As(err, &te) {
				t.Fatal("error is not a TessellationError")
			}
			if te.Engine != EngineStroke {
				t.Errorf("engine = %v, want stroke", te.Engine)
			}
		})
	}
}

// A single engine instance is shared across goroutines; calls
// serialize internally and every caller gets an independent,
// structurally valid result.
func TestStrokeTessellator_Concurrent(t *testing.T) {
	st := NewStrokeTessellator()
	path := NewPath().Line(0, 0, 10, 0)
	opts := DefaultStrokeOptions().WithWidth(2).WithCap(LineCapButt)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				buffers, err := st.Tessellate(path, opts, NewVertex)
				if err != nil {
					t.Errorf("concurrent tessellate: %v", err)
					return
				}
				if len(buffers.Vertices) != 4 || buffers.TriangleCount() != 2 {
					t.Errorf("concurrent result corrupted: %d vertices, %d triangles",
						len(buffers.Vertices), buffers.TriangleCount())
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestStrokeTessellator_Reuse(t *testing.T) {
	st := NewStrokeTessellator()
	path := NewPath().Line(0, 0, 10, 0)
	opts := DefaultStrokeOptions().WithWidth(2).WithCap(LineCapButt)

	if _, err := st.Tessellate(NewPath().MoveTo(1, 1), opts, NewVertex); err == nil {
		t.Fatal("expected error for degenerate path")
	}

	first, err := st.Tessellate(path, opts, NewVertex)
	if err != nil {
		t.Fatalf("tessellate after failure: %v", err)
	}
	second, err := st.Tessellate(path, opts, NewVertex)
	if err != nil {
		t.Fatalf("second tessellate: %v", err)
	}
	if len(first.Vertices) != 4 || len(second.Vertices) != 4 {
		t.Errorf("stale geometry leaked across calls: %d and %d vertices",
			len(first.Vertices), len(second.Vertices))
	}
}
