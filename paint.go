package easel

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroking paths.
// Widths and dash lengths are in device units by the time a stroke reaches
// a surface; the drawing context resolves stroke scaling before emission.
type Stroke struct {
	// Width is the line width.
	Width float64
	// Cap is the shape of line endpoints.
	Cap LineCap
	// Join is the shape of line joins.
	Join LineJoin
	// MiterLimit is the limit for miter joins.
	MiterLimit float64
	// DashPattern is the dash pattern (nil for solid line).
	DashPattern []float64
	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultStroke returns a Stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	if s.DashPattern != nil {
		result.DashPattern = make([]float64, len(s.DashPattern))
		copy(result.DashPattern, s.DashPattern)
	}
	return result
}

// scaled returns a copy of the stroke with width and dash lengths
// multiplied by the given factor.
func (s Stroke) scaled(factor float64) Stroke {
	result := s.Clone()
	result.Width *= factor
	for i := range result.DashPattern {
		result.DashPattern[i] *= factor
	}
	result.DashOffset *= factor
	return result
}

// Font describes the text state of a drawing.
// Surfaces map the family name onto whatever their output format
// supports; unrecognized families fall back to a sans-serif default.
type Font struct {
	// Family is the font family name ("sans", "serif", "mono").
	Family string
	// Size is the font size. Like stroke widths, sizes are resolved to
	// device units before they reach a surface.
	Size float64
	// Bold requests a bold face.
	Bold bool
	// Italic requests an italic face.
	Italic bool
}

// DefaultFont returns the font state new drawings start with.
func DefaultFont() Font {
	return Font{Family: "sans", Size: 12}
}

// scaled returns a copy of the font with the size multiplied by the factor.
func (f Font) scaled(factor float64) Font {
	result := f
	result.Size *= factor
	return result
}

// ImageOptions contains options for image rendering.
type ImageOptions struct {
	// Interpolation specifies the interpolation mode.
	Interpolation InterpolationMode
	// Alpha is the opacity (0.0 to 1.0).
	Alpha float64
}

// DefaultImageOptions returns ImageOptions with default settings.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Interpolation: InterpolationBilinear,
		Alpha:         1.0,
	}
}

// InterpolationMode specifies how to interpolate between pixels.
type InterpolationMode uint8

const (
	// InterpolationNearest uses nearest-neighbor interpolation.
	InterpolationNearest InterpolationMode = iota
	// InterpolationBilinear uses bilinear interpolation.
	InterpolationBilinear
)
