// Package mesh holds the engine-ready triangle mesh record produced
// from tessellation output, plus the handle-based asset storage the
// shape pipeline registers meshes into.
package mesh

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tessel"
)

// Mesh is the renderer-facing geometry record: triangle-list topology,
// three parallel per-vertex attribute arrays and a 32-bit index array.
// The attribute arrays always have equal lengths, and their ordering
// matches the vertex order of the buffers the mesh was built from.
//
// A Mesh is created once per shape and immutable afterwards; the
// rendering subsystem is the sole reader.
type Mesh struct {
	// Topology is the primitive topology. Build always sets
	// PrimitiveTopologyTriangleList.
	Topology gputypes.PrimitiveTopology

	// Positions holds one (x, y, z) position per vertex.
	Positions [][3]float32

	// Normals holds one (x, y, z) normal per vertex.
	Normals [][3]float32

	// UVs holds one (u, v) texture coordinate per vertex.
	UVs [][2]float32

	// Indices is the triangle list: three indices per triangle, each
	// referencing the attribute arrays.
	Indices []uint32
}

// Build assembles a mesh from raw tessellation buffers. It is total:
// any buffers value, including empty, yields a valid mesh. Indices are
// copied verbatim; vertices are projected into the parallel attribute
// arrays preserving order.
func Build(buffers *tessel.VertexBuffers) *Mesh {
	m := &Mesh{Topology: gputypes.PrimitiveTopologyTriangleList}
	if buffers == nil {
		return m
	}

	m.Positions = make([][3]float32, len(buffers.Vertices))
	m.Normals = make([][3]float32, len(buffers.Vertices))
	m.UVs = make([][2]float32, len(buffers.Vertices))
	for i, v := range buffers.Vertices {
		m.Positions[i] = v.Position
		m.Normals[i] = v.Normal
		m.UVs[i] = v.UV
	}

	m.Indices = make([]uint32, len(buffers.Indices))
	copy(m.Indices, buffers.Indices)
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Attribute shader locations, matching VertexLayouts order.
const (
	// LocationPosition is the shader location of the position attribute.
	LocationPosition = 0
	// LocationNormal is the shader location of the normal attribute.
	LocationNormal = 1
	// LocationUV is the shader location of the texture coordinate attribute.
	LocationUV = 2
)

// IndexFormat returns the format of the index array for index buffer
// configuration. Indices are always 32-bit.
func IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// VertexLayouts describes the mesh's vertex buffers for render
// pipeline creation: one buffer per attribute array, in Positions,
// Normals, UVs order.
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: 12,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			},
		},
		{
			ArrayStride: 12,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationNormal},
			},
		},
		{
			ArrayStride: 8,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: LocationUV},
			},
		},
	}
}
