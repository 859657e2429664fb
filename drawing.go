package easel

import (
	"bytes"
	"image"
	"os"
)

// Drawing is one open canvas: a backend surface, the painter state
// driving it, and a slot in a session. It embeds Context, so every
// painter method is available directly on the drawing:
//
//	d, _ := easel.NewImage(256, 256)
//	d.SetRGB(1, 0, 0)
//	d.DrawCircle(128, 128, 64)
//	d.Fill()
//	d.Finish()
//
// A Drawing is not safe for concurrent use.
type Drawing struct {
	*Context

	session  *Session
	kind     string
	target   string
	title    string
	index    int
	finished bool

	// buf receives encoded backend output (PNG, PDF, SVG, EPS bytes).
	buf *bytes.Buffer

	// Captured at Finish so previews survive surface release.
	raster    *image.RGBA
	recording *Recording
}

// New creates a drawing of the given kind and makes it the active drawing
// of its session. The kind must be registered; backend packages register
// their kinds when imported:
//
//	import _ "github.com/easelgfx/easel/backend/raster"
//
// target is the destination file path written at Finish; an empty target
// keeps the finished output in memory, accessible through Bytes.
func New(kind, target string, width, height int, opts ...Option) (*Drawing, error) {
	o := defaultDrawingOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := o.session
	if s == nil {
		s = Default()
	}
	return s.create(kind, target, width, height, o)
}

// NewImage creates an in-memory raster drawing. Finish keeps the pixels;
// read them with Image.
func NewImage(width, height int, opts ...Option) (*Drawing, error) {
	return New(KindImage, "", width, height, opts...)
}

// NewPNG creates a raster drawing encoded as PNG at Finish.
// An empty target keeps the encoded bytes in memory.
func NewPNG(target string, width, height int, opts ...Option) (*Drawing, error) {
	return New(KindPNG, target, width, height, opts...)
}

// NewPDF creates a single-page PDF drawing of width x height points.
func NewPDF(target string, width, height int, opts ...Option) (*Drawing, error) {
	return New(KindPDF, target, width, height, opts...)
}

// NewSVG creates an SVG drawing.
func NewSVG(target string, width, height int, opts ...Option) (*Drawing, error) {
	return New(KindSVG, target, width, height, opts...)
}

// NewEPS creates an Encapsulated PostScript drawing.
func NewEPS(target string, width, height int, opts ...Option) (*Drawing, error) {
	return New(KindEPS, target, width, height, opts...)
}

// NewRecording creates a recording drawing with a fixed canvas.
// The recorded commands can be replayed onto other drawings or cropped
// and rescaled with Snapshot.
func NewRecording(width, height int, opts ...Option) (*Drawing, error) {
	return New(KindRecord, "", width, height, opts...)
}

// NewBoundlessRecording creates a recording drawing without a fixed
// canvas. Extents grow with the ink; see InkExtents.
func NewBoundlessRecording(opts ...Option) (*Drawing, error) {
	return New(KindRecord, "", 0, 0, opts...)
}

// ----------------------------------------------------------------------------
// Introspection
// ----------------------------------------------------------------------------

// Width returns the canvas width in pixels, or points for the vector
// kinds. Boundless recordings report 0.
func (d *Drawing) Width() int {
	return d.width
}

// Height returns the canvas height. Boundless recordings report 0.
func (d *Drawing) Height() int {
	return d.height
}

// Kind returns the backend kind tag, such as "png" or "record".
func (d *Drawing) Kind() string {
	return d.kind
}

// Target returns the destination path, or "" for in-memory drawings.
func (d *Drawing) Target() string {
	return d.target
}

// Index returns the drawing's 1-based slot in its session. The index
// stays stable until the drawing is finished and its slot reused.
func (d *Drawing) Index() int {
	return d.index
}

// Finished reports whether Finish has been called.
func (d *Drawing) Finished() bool {
	return d.finished
}

// Session returns the session the drawing is registered in.
func (d *Drawing) Session() *Session {
	return d.session
}

// Bytes returns the encoded output of buffer-backed kinds (png, pdf,
// svg, eps). It is empty before Finish and for image and record kinds.
func (d *Drawing) Bytes() []byte {
	return d.buf.Bytes()
}

// Image returns the raster canvas of an image or png drawing: the live
// canvas before Finish, the captured pixels after. Nil for other kinds.
func (d *Drawing) Image() *image.RGBA {
	if d.raster != nil {
		return d.raster
	}
	if is, ok := d.surface.(ImageSurface); ok {
		return is.Image()
	}
	return nil
}

// Recording returns the command list of a record drawing. On a live
// drawing it captures a consistent snapshot of the commands so far; after
// Finish it returns the sealed recording. Nil for other kinds.
func (d *Drawing) Recording() *Recording {
	if d.recording != nil {
		return d.recording
	}
	if rs, ok := d.surface.(RecordingSurface); ok {
		return rs.Capture()
	}
	return nil
}

// InkExtents returns the device-space bounding box of everything drawn on
// a record drawing so far. ok is false when nothing has been drawn or the
// drawing is not record-backed.
func (d *Drawing) InkExtents() (Rect, bool) {
	rec := d.Recording()
	if rec == nil {
		return Rect{}, false
	}
	return rec.InkExtents()
}

// ----------------------------------------------------------------------------
// Lifecycle
// ----------------------------------------------------------------------------

// Finish completes the drawing. Backend output is flushed and encoded,
// preview artifacts (raster pixels, the sealed recording) are captured
// onto the drawing, the surface is released, and if the drawing has a
// target path the encoded bytes are written to it. The drawing's slot
// becomes reusable, and if it was active the session is left with no
// active drawing.
//
// Finishing an already finished drawing returns ErrDrawingFinished and
// has no side effects.
func (d *Drawing) Finish() error {
	if d.finished {
		return ErrDrawingFinished
	}

	surf := d.surface
	err := surf.Flush()

	// Capture previews before the surface releases its resources.
	if is, ok := surf.(ImageSurface); ok {
		d.raster = is.Image()
	}
	if rs, ok := surf.(RecordingSurface); ok {
		d.recording = rs.Capture()
	}

	if rerr := surf.Release(); rerr != nil {
		Logger().Warn("easel: surface release failed",
			"kind", d.kind, "index", d.index, "error", rerr)
		if err == nil {
			err = rerr
		}
	}

	d.surface = nil
	d.finished = true
	d.session.release(d)

	if err != nil {
		Logger().Warn("easel: finish failed",
			"kind", d.kind, "index", d.index, "error", err)
		return err
	}

	if d.target != "" {
		if werr := os.WriteFile(d.target, d.buf.Bytes(), 0o644); werr != nil {
			Logger().Warn("easel: writing drawing output failed",
				"target", d.target, "error", werr)
			return werr
		}
		Logger().Info("easel: drawing written",
			"kind", d.kind, "target", d.target, "bytes", d.buf.Len())
	}

	return nil
}
