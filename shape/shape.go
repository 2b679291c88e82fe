// Package shape drives the tessellation pipeline over shape entities:
// it routes each unprocessed shape to the fill or stroke engine, turns
// the result into a mesh, and marks the shape processed and visible.
package shape

import (
	"github.com/gogpu/tessel"
	"github.com/gogpu/tessel/mesh"
)

// DrawMode selects how a shape's path is tessellated. It is a closed
// sum type: the only implementations are Fill and Stroke, each
// carrying its engine's options.
type DrawMode interface {
	isDrawMode()
}

// Fill tessellates the path's interior.
type Fill struct {
	Options tessel.FillOptions
}

func (Fill) isDrawMode() {}

// Stroke tessellates the path's outline at a given width.
type Stroke struct {
	Options tessel.StrokeOptions
}

func (Stroke) isDrawMode() {}

// Shape is the component bundle the pipeline operates on: an immutable
// path and draw mode, plus the mutable mesh handle, visibility flag
// and processing guard.
//
// Path and Mode must not change after the shape is spawned. Mesh,
// Visible and Processed are written exactly once, by the pipeline,
// when tessellation succeeds.
type Shape struct {
	// Mode selects the tessellation engine and its options.
	Mode DrawMode

	// Path is the vector geometry to tessellate.
	Path *tessel.Path

	// Mesh references the tessellated mesh in the asset store.
	// HandleNone until the shape has been processed.
	Mesh mesh.Handle

	// Visible reports whether the shape is ready to draw. Set to true
	// only after a mesh has been assigned.
	Visible bool

	// Processed guards against duplicate tessellation: it transitions
	// false to true exactly once and is never reset by the pipeline.
	Processed bool
}

// New creates an unprocessed, hidden shape for the given path and mode.
func New(path *tessel.Path, mode DrawMode) *Shape {
	return &Shape{
		Mode: mode,
		Path: path,
	}
}

// World is a minimal spawn-and-iterate store for shapes, standing in
// for the host's entity store in tests and small applications.
type World struct {
	shapes []*Shape
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Spawn adds a shape to the world and returns it.
func (w *World) Spawn(s *Shape) *Shape {
	w.shapes = append(w.shapes, s)
	return s
}

// Shapes returns all spawned shapes in spawn order. The returned slice
// is owned by the world and must not be modified.
func (w *World) Shapes() []*Shape {
	return w.shapes
}

// Len returns the number of spawned shapes.
func (w *World) Len() int {
	return len(w.shapes)
}
