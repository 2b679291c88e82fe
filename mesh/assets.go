package mesh

import "sync"

// Handle is an opaque reference to a mesh in an Assets store. The zero
// value means "no mesh".
type Handle uint64

// HandleNone is the zero handle: no mesh assigned.
const HandleNone Handle = 0

// IsNone reports whether the handle references no mesh.
func (h Handle) IsNone() bool {
	return h == HandleNone
}

// Assets is a handle-based mesh store shared between the shape
// pipeline (writer) and the rendering subsystem (reader).
//
// Assets is safe for concurrent use.
type Assets struct {
	mu     sync.RWMutex
	meshes map[Handle]*Mesh
	next   uint64
}

// NewAssets creates an empty mesh store.
func NewAssets() *Assets {
	return &Assets{meshes: make(map[Handle]*Mesh)}
}

// Add registers a mesh and returns its handle.
func (a *Assets) Add(m *Mesh) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	h := Handle(a.next)
	a.meshes[h] = m
	return h
}

// Get returns the mesh for a handle.
func (a *Assets) Get(h Handle) (*Mesh, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.meshes[h]
	return m, ok
}

// Remove deletes the mesh for a handle, reporting whether it existed.
// Handles are never reused.
func (a *Assets) Remove(h Handle) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.meshes[h]
	delete(a.meshes, h)
	return ok
}

// Len returns the number of stored meshes.
func (a *Assets) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.meshes)
}
