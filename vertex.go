package tessel

// Vertex is a mesh vertex with the full attribute set the renderer
// expects: position, normal and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// VertexConstructor derives a full mesh vertex from one tessellated
// 2D point. Both engines route every output point through the
// constructor they are given.
type VertexConstructor func(Point) Vertex

// NewVertex is the standard vertex constructor for this flat 2D
// pipeline: position (x, y, 0), normal (0, 0, 1) facing the camera,
// and zero texture coordinates. It is pure and mode-agnostic; fill
// and stroke tessellation share it.
func NewVertex(p Point) Vertex {
	return Vertex{
		Position: [3]float32{p.X, p.Y, 0},
		Normal:   [3]float32{0, 0, 1},
		UV:       [2]float32{0, 0},
	}
}

// VertexBuffers is the raw output of one tessellation call: a vertex
// sequence and a triangle-list index array referencing it. A fresh
// value is produced per call; buffers are never retained or shared
// across calls.
type VertexBuffers struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of complete triangles described by
// the index array.
func (b *VertexBuffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// addVertex appends a vertex and returns its index.
func (b *VertexBuffers) addVertex(v Vertex) uint32 {
	b.Vertices = append(b.Vertices, v)
	return uint32(len(b.Vertices) - 1)
}

// addTriangle appends one triangle to the index array.
func (b *VertexBuffers) addTriangle(a, bb, c uint32) {
	b.Indices = append(b.Indices, a, bb, c)
}
