package easel

import "image/png"

// Option configures a drawing during creation.
// Use functional options to customize drawing behavior.
//
// Example:
//
//	// Default: transparent background, default session
//	d, err := easel.NewImage(800, 600)
//
//	// White canvas in a private session
//	d, err := easel.NewImage(800, 600,
//		easel.WithBackground(easel.White),
//		easel.WithSession(s))
type Option func(*drawingOptions)

// drawingOptions holds optional configuration for drawing creation.
type drawingOptions struct {
	session        *Session
	title          string
	background     RGBA
	strokeScaling  bool
	pngCompression png.CompressionLevel
	fontData       []byte
}

// defaultDrawingOptions returns the default drawing options.
func defaultDrawingOptions() drawingOptions {
	return drawingOptions{
		session:        nil, // Will be set to the default session if nil
		background:     Transparent,
		strokeScaling:  true,
		pngCompression: png.DefaultCompression,
	}
}

// WithSession registers the drawing in the given session instead of the
// package default. Worker goroutines should each own a session.
//
// Example:
//
//	s := easel.NewSession()
//	d, err := easel.NewPNG("out.png", 640, 480, easel.WithSession(s))
func WithSession(s *Session) Option {
	return func(o *drawingOptions) {
		o.session = s
	}
}

// WithTitle sets the document title recorded by backends that support
// metadata (PDF, SVG, and EPS).
func WithTitle(title string) Option {
	return func(o *drawingOptions) {
		o.title = title
	}
}

// WithBackground fills the canvas with a color before any drawing occurs.
// The default is fully transparent, which leaves raster canvases empty and
// PDF pages as bare paper. Colors with zero alpha record nothing.
func WithBackground(c RGBA) Option {
	return func(o *drawingOptions) {
		o.background = c
	}
}

// WithStrokeScaling controls whether stroke widths follow the transform.
// Enabled by default; see Context.SetStrokeScaling, which can change the
// flag later.
func WithStrokeScaling(enabled bool) Option {
	return func(o *drawingOptions) {
		o.strokeScaling = enabled
	}
}

// WithPNGCompression selects the compression level used when a PNG
// drawing is encoded at finish time.
func WithPNGCompression(level png.CompressionLevel) Option {
	return func(o *drawingOptions) {
		o.pngCompression = level
	}
}

// WithFontData supplies a TTF font used for text in place of the built-in
// Go fonts. Backends that rasterize text parse it once per drawing.
func WithFontData(ttf []byte) Option {
	return func(o *drawingOptions) {
		o.fontData = ttf
	}
}
