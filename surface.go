package easel

import (
	"image"
	"image/png"
	"io"
)

// Drawing kinds provided by this module and its backend packages.
// The "record" kind is built in; the others require a blank import of the
// backend package that registers them.
const (
	// KindImage is an in-memory raster image with no encoded output.
	KindImage = "image"
	// KindPNG is a raster image encoded as PNG on finish.
	KindPNG = "png"
	// KindPDF is a single-page PDF document.
	KindPDF = "pdf"
	// KindSVG is an SVG document.
	KindSVG = "svg"
	// KindEPS is an Encapsulated PostScript document.
	KindEPS = "eps"
	// KindRecord is an in-memory recording replayable at arbitrary
	// scale and crop.
	KindRecord = "record"
)

// Config carries the per-drawing settings a surface receives in Begin.
type Config struct {
	// Width and Height are the canvas dimensions in device units.
	// Both are zero for a boundless recording.
	Width, Height int

	// Target is the destination path the finished output will be written
	// to, or empty for in-memory output. Surfaces do not write the file
	// themselves; the value is provided for log messages and metadata.
	Target string

	// Output receives the encoded document. Streaming surfaces write to it
	// as commands arrive; buffering surfaces write everything in Flush.
	Output io.Writer

	// Title is an optional document title for formats that carry metadata.
	Title string

	// Background is the initial canvas color. A zero alpha means the
	// canvas starts blank.
	Background RGBA

	// PNGCompression selects the compression level for PNG encoding.
	// The zero value is the encoder default.
	PNGCompression png.CompressionLevel

	// FontData optionally provides a TTF/OTF font for surfaces that
	// rasterize text themselves. Nil selects the built-in font.
	FontData []byte
}

// Surface is the contract between a drawing and its backend.
// All coordinates are device-space: the drawing context resolves the
// current transform before any method here is called.
//
// A Surface manages only its clip state; paint and stroke parameters
// arrive resolved with each call.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register a factory in init using easel.Register
//  2. Handle all Surface methods (even if no-op for some)
//  3. Translate coordinates if its format needs it (e.g. a PostScript Y-flip)
//  4. Encode its document into Config.Output no later than Flush
//
// # Example Registration
//
//	func init() {
//	    easel.Register(easel.KindPDF, func() easel.Surface {
//	        return &Surface{}
//	    })
//	}
type Surface interface {
	// Begin initializes the surface for the given configuration.
	// It is called exactly once, before any drawing operations.
	Begin(cfg Config) error

	// Fill fills the path with a solid color using the given fill rule.
	Fill(path *Path, color RGBA, rule FillRule)

	// Stroke strokes the path with a solid color and stroke style.
	// Stroke widths and dash lengths are in device units.
	Stroke(path *Path, color RGBA, stroke Stroke)

	// FillRect fills an axis-aligned rectangle.
	// Surfaces may implement this more efficiently than Fill with a
	// rectangular path.
	FillRect(rect Rect, color RGBA)

	// DrawImage draws an image scaled into the destination rectangle.
	DrawImage(img image.Image, dst Rect, opts ImageOptions)

	// DrawText draws a text run with its baseline origin at (x, y).
	DrawText(s string, x, y float64, font Font, color RGBA)

	// ClipRect intersects the clipping region with a rectangle.
	ClipRect(rect Rect)

	// ResetClip removes any clipping region.
	ResetClip()

	// Flush finalizes the document and completes all writes to
	// Config.Output. No drawing methods may be called after Flush.
	Flush() error

	// Release frees resources held by the surface. The surface is
	// unusable afterwards.
	Release() error
}

// ImageSurface is implemented by surfaces that rasterize to pixels and can
// expose the result directly.
type ImageSurface interface {
	Surface

	// Image returns the rasterized canvas.
	Image() *image.RGBA
}

// RecordingSurface is implemented by surfaces that capture commands
// instead of producing output.
type RecordingSurface interface {
	Surface

	// Capture returns an immutable snapshot of the commands recorded so
	// far. It may be called while the surface is still recording.
	Capture() *Recording
}

// TextMeasurer is implemented by surfaces that can measure text in their
// native font system. Drawings fall back to an approximation when the
// surface does not implement it.
type TextMeasurer interface {
	// MeasureText returns the advance width and line height of s.
	MeasureText(s string, font Font) (w, h float64)
}
