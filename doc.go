// Package tessel converts declarative 2D vector paths into renderable
// triangle meshes.
//
// # Overview
//
// tessel is a Pure Go tessellation pipeline for the GoGPU ecosystem.
// A path (lines and Bezier curves forming one or more contours) plus a
// draw mode (fill or stroke) is turned into an engine-ready triangle
// mesh: flat, camera-facing geometry with position, normal and UV
// attributes and a 32-bit triangle-list index array.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/tessel"
//		"github.com/gogpu/tessel/mesh"
//		"github.com/gogpu/tessel/shape"
//	)
//
//	// Describe a shape.
//	path := tessel.NewPath().Circle(0, 0, 100)
//
//	// Spawn it into a world and run the pipeline once.
//	world := shape.NewWorld()
//	world.Spawn(shape.New(path, shape.Fill{Options: tessel.DefaultFillOptions()}))
//
//	assets := mesh.NewAssets()
//	pipeline := shape.NewPipeline(assets)
//	pipeline.Process(world.Shapes()...)
//
// Each shape is tessellated at most once: the pipeline marks it
// processed and visible after its mesh has been registered, and later
// passes skip it.
//
// # Engines
//
// Fill geometry is triangulated by the libtess2 port
// (github.com/hajimehoshi/go-libtess2); stroke geometry is expanded
// into ribbon triangles with configurable caps and joins. Both engines
// are long-lived and safe to share: a call takes exclusive access to
// the engine for its duration.
//
// # Logging
//
// tessel produces no log output by default. Call [SetLogger] to enable
// diagnostics; the shape pipeline reports tessellation failures there.
package tessel
