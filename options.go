package tessel

import "fmt"

// DefaultTolerance is the curve flattening tolerance used when an
// options value leaves Tolerance at zero: a quarter unit of maximum
// deviation between a curve and its line-segment approximation.
const DefaultTolerance = 0.25

// defaultMiterLimit matches the common SVG default.
const defaultMiterLimit = 4.0

// normalizeTolerance validates a tolerance value, substituting the
// default for zero.
func normalizeTolerance(tol float32) (float32, error) {
	switch {
	case tol < 0:
		return 0, fmt.Errorf("%w: negative tolerance %v", ErrInvalidOptions, tol)
	case tol == 0:
		return DefaultTolerance, nil
	default:
		return tol, nil
	}
}

// FillRule determines which regions of a path's interior are filled.
type FillRule uint8

// Fill rule constants.
const (
	// FillNonZero fills regions with a non-zero winding number.
	FillNonZero FillRule = iota
	// FillEvenOdd fills regions crossed an odd number of times.
	FillEvenOdd
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// FillOptions configures fill tessellation. The zero value is not
// usable directly; start from DefaultFillOptions.
type FillOptions struct {
	// Tolerance is the maximum allowed deviation between a curve and
	// its flattened approximation. Zero selects DefaultTolerance;
	// negative values are rejected.
	Tolerance float32

	// Rule selects the fill rule. Default: FillNonZero.
	Rule FillRule
}

// DefaultFillOptions returns fill options with default settings.
func DefaultFillOptions() FillOptions {
	return FillOptions{
		Tolerance: DefaultTolerance,
		Rule:      FillNonZero,
	}
}

// WithTolerance returns a copy of the options with the given tolerance.
func (o FillOptions) WithTolerance(tol float32) FillOptions {
	o.Tolerance = tol
	return o
}

// WithRule returns a copy of the options with the given fill rule.
func (o FillOptions) WithRule(rule FillRule) FillOptions {
	o.Rule = rule
	return o
}

// LineCap is the shape drawn at the endpoints of open contours.
type LineCap uint8

// Line cap constants.
const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapSquare extends the stroke past the endpoint by half the
	// line width.
	LineCapSquare
	// LineCapRound caps the endpoint with a semicircle.
	LineCapRound
)

// String returns a human-readable name for the cap style.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapSquare:
		return "Square"
	case LineCapRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// LineJoin is the shape drawn where two stroke segments meet.
type LineJoin uint8

// Line join constants.
const (
	// LineJoinMiter extends the outer edges until they meet, falling
	// back to bevel past the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel connects the outer edges with a single triangle.
	LineJoinBevel
	// LineJoinRound connects the outer edges with a circular arc.
	LineJoinRound
)

// String returns a human-readable name for the join style.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinBevel:
		return "Bevel"
	case LineJoinRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// StrokeOptions configures stroke tessellation. The zero value is not
// usable directly; start from DefaultStrokeOptions.
type StrokeOptions struct {
	// Width is the stroke width. Must be positive.
	Width float32

	// Tolerance is the maximum allowed deviation for curve flattening
	// and round cap/join approximation. Zero selects DefaultTolerance;
	// negative values are rejected.
	Tolerance float32

	// Cap is the shape of open contour endpoints. Default: LineCapButt.
	Cap LineCap

	// Join is the shape of segment joins. Default: LineJoinMiter.
	Join LineJoin

	// MiterLimit is the ratio of miter length to stroke width above
	// which a miter join becomes a bevel. Zero selects the default
	// limit of 4.
	MiterLimit float32
}

// DefaultStrokeOptions returns stroke options for a solid one-unit
// line with butt caps and miter joins.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Width:      1.0,
		Tolerance:  DefaultTolerance,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// WithWidth returns a copy of the options with the given width.
func (o StrokeOptions) WithWidth(w float32) StrokeOptions {
	o.Width = w
	return o
}

// WithTolerance returns a copy of the options with the given tolerance.
func (o StrokeOptions) WithTolerance(tol float32) StrokeOptions {
	o.Tolerance = tol
	return o
}

// WithCap returns a copy of the options with the given cap style.
func (o StrokeOptions) WithCap(c LineCap) StrokeOptions {
	o.Cap = c
	return o
}

// WithJoin returns a copy of the options with the given join style.
func (o StrokeOptions) WithJoin(j LineJoin) StrokeOptions {
	o.Join = j
	return o
}

// WithMiterLimit returns a copy of the options with the given miter
// limit. A limit of 1 effectively disables miter joins.
func (o StrokeOptions) WithMiterLimit(limit float32) StrokeOptions {
	o.MiterLimit = limit
	return o
}
