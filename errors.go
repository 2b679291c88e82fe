package tessel

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the tessellation engines. Wrap into a
// TessellationError; match with errors.Is.
var (
	// ErrDegeneratePath indicates the path has no contour with enough
	// distinct points to produce geometry.
	ErrDegeneratePath = errors.New("tessel: degenerate path")

	// ErrInvalidOptions indicates an unusable options value, such as a
	// negative tolerance or a nonpositive stroke width.
	ErrInvalidOptions = errors.New("tessel: invalid options")
)

// EngineKind identifies which tessellation engine produced an error.
type EngineKind uint8

// Engine kind constants.
const (
	// EngineFill is the fill tessellation engine.
	EngineFill EngineKind = iota
	// EngineStroke is the stroke tessellation engine.
	EngineStroke
)

// String returns a human-readable name for the engine kind.
func (k EngineKind) String() string {
	switch k {
	case EngineFill:
		return "fill"
	case EngineStroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// TessellationError reports a failed tessellation call. It carries the
// engine kind so the dispatch layer can log which engine rejected the
// path, and wraps the underlying cause.
type TessellationError struct {
	Engine EngineKind
	Err    error
}

// Error implements the error interface.
func (e *TessellationError) Error() string {
	return fmt.Sprintf("%s tessellation: %v", e.Engine, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TessellationError) Unwrap() error {
	return e.Err
}

// tessErr wraps a cause into a TessellationError for the given engine.
func tessErr(kind EngineKind, cause error) error {
	return &TessellationError{Engine: kind, Err: cause}
}
