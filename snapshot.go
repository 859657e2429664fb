package easel

import (
	"image"
	"math"
)

// Snapshot renders a cropped, rescaled view of the active recording into
// a new drawing of the given kind and finishes it.
//
// The active drawing must be record-backed, live or finished; otherwise
// Snapshot returns ErrNotRecording. The crop box is given in the
// recording's base coordinates. A zero box selects the full canvas of a
// bounded recording, or the ink extents of a boundless one. The output
// canvas measures round(box.Width x scale) by round(box.Height x scale),
// at least 1x1.
//
// The new drawing passes through the normal constructor path, briefly
// becoming active; whatever drawing the caller had selected is active
// again when Snapshot returns, on success and on error. A WithSession
// option is ignored: the snapshot lives in the receiver session.
func (s *Session) Snapshot(kind, target string, box Rect, scale float64, opts ...Option) (*Drawing, error) {
	caller := s.active

	src, err := s.Active()
	if err != nil {
		return nil, err
	}
	rec := src.Recording()
	if rec == nil {
		return nil, ErrNotRecording
	}

	box, cerr := resolveCropBox(rec, box, scale)
	if cerr != nil {
		return nil, cerr
	}

	width := snapshotSpan(box.Width(), scale)
	height := snapshotSpan(box.Height(), scale)

	o := defaultDrawingOptions()
	for _, opt := range opts {
		opt(&o)
	}

	snap, err := s.create(kind, target, width, height, o)
	if err != nil {
		s.active = caller
		return nil, err
	}

	projection := Scale(scale, scale).Multiply(Translate(-box.MinX, -box.MinY))
	rec.replayProjected(snap.surface, projection)

	err = snap.Finish()
	s.active = caller
	if err != nil {
		return nil, err
	}

	Logger().Debug("easel: snapshot rendered",
		"kind", kind, "box", box.String(), "scale", scale,
		"width", width, "height", height)
	return snap, nil
}

// SnapshotImage renders a cropped, rescaled view of the active recording
// and returns the raster pixels. It requires the image kind, so callers
// must blank-import backend/raster. See Snapshot for box semantics.
func (s *Session) SnapshotImage(box Rect, scale float64, opts ...Option) (*image.RGBA, error) {
	d, err := s.Snapshot(KindImage, "", box, scale, opts...)
	if err != nil {
		return nil, err
	}
	return d.Image(), nil
}

// Snapshot renders a cropped, rescaled view of the active recording of
// the default session. See Session.Snapshot.
func Snapshot(kind, target string, box Rect, scale float64, opts ...Option) (*Drawing, error) {
	return Default().Snapshot(kind, target, box, scale, opts...)
}

// SnapshotImage renders the active recording of the default session to
// raster pixels. See Session.SnapshotImage.
func SnapshotImage(box Rect, scale float64, opts ...Option) (*image.RGBA, error) {
	return Default().SnapshotImage(box, scale, opts...)
}

// resolveCropBox validates the scale, applies zero-box defaults, and
// checks that the box lands on recorded ink for boundless recordings.
func resolveCropBox(rec *Recording, box Rect, scale float64) (Rect, *CropRangeError) {
	ink, hasInk := rec.InkExtents()

	if !isFinitePositive(scale) {
		return Rect{}, &CropRangeError{Box: box, Scale: scale, Extents: ink}
	}

	if box == (Rect{}) {
		if !rec.Boundless() {
			return NewRect(0, 0, float64(rec.Width()), float64(rec.Height())), nil
		}
		if !hasInk {
			return Rect{}, &CropRangeError{Box: box, Scale: scale}
		}
		return ink, nil
	}

	if !box.IsFinite() || box.IsEmpty() {
		return Rect{}, &CropRangeError{Box: box, Scale: scale, Extents: ink}
	}

	if rec.Boundless() {
		if !hasInk || !box.Intersects(ink) {
			return Rect{}, &CropRangeError{Box: box, Scale: scale, Extents: ink}
		}
	}
	return box, nil
}

// snapshotSpan converts a box span to output pixels, never below 1.
func snapshotSpan(span, scale float64) int {
	n := int(math.Round(span * scale))
	if n < 1 {
		return 1
	}
	return n
}

// DrawRecording replays a recording onto this drawing with its origin at
// the user-space point (x, y). Paths, stroke widths, and text sizes
// follow the current transform; under a rotating or shearing transform,
// rectangle commands are replayed as paths and image destinations degrade
// to bounding boxes. A nil recording draws nothing.
func (c *Context) DrawRecording(rec *Recording, x, y float64) error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	if rec == nil {
		return nil
	}
	rec.replayProjected(c.surface, c.matrix.Multiply(Translate(x, y)))
	return nil
}
