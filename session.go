package easel

import (
	"bytes"
	"errors"
	"sync"
)

// Session is an ordered registry of drawings with at most one active
// slot. Indices are 1-based; 0 means "no active drawing". Finished
// drawings keep their slot until a constructor recycles it, so indices
// stay meaningful to callers holding them.
//
// A session is owned by a single goroutine. Worker goroutines should
// create their own with NewSession and pass it via WithSession; the
// package-level functions operate on a shared default session.
type Session struct {
	drawings []*Drawing
	active   int
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

var (
	defaultSessionMu sync.Mutex
	defaultSession   *Session
)

// Default returns the package-level session, creating it on first use.
// Creation is safe for concurrent callers; use of the session itself is
// single-goroutine like any other session.
func Default() *Session {
	defaultSessionMu.Lock()
	defer defaultSessionMu.Unlock()
	if defaultSession == nil {
		defaultSession = NewSession()
	}
	return defaultSession
}

// create builds a drawing on a fresh backend surface and registers it.
func (s *Session) create(kind, target string, width, height int, o drawingOptions) (*Drawing, error) {
	surface, err := NewSurface(kind)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	cfg := Config{
		Width:          width,
		Height:         height,
		Target:         target,
		Output:         buf,
		Title:          o.title,
		Background:     o.background,
		PNGCompression: o.pngCompression,
		FontData:       o.fontData,
	}
	if err := surface.Begin(cfg); err != nil {
		return nil, err
	}

	d := &Drawing{
		Context: newContext(surface, width, height, o.strokeScaling),
		session: s,
		kind:    kind,
		target:  target,
		title:   o.title,
		buf:     buf,
	}
	s.register(d)

	Logger().Debug("easel: drawing created",
		"kind", kind, "index", d.index, "width", width, "height", height)
	return d, nil
}

// register assigns the first recycled slot, else appends, and makes the
// drawing active.
func (s *Session) register(d *Drawing) {
	for i, existing := range s.drawings {
		if existing.finished {
			d.index = i + 1
			s.drawings[i] = d
			s.active = d.index
			return
		}
	}
	s.drawings = append(s.drawings, d)
	d.index = len(s.drawings)
	s.active = d.index
}

// release clears the active index if the finished drawing held it. The
// slot keeps the finished drawing until a constructor reuses it.
func (s *Session) release(d *Drawing) {
	if s.active == d.index {
		s.active = 0
	}
}

// ActiveIndex returns the 1-based index of the active drawing, or 0 when
// no drawing is active.
func (s *Session) ActiveIndex() int {
	return s.active
}

// SetActiveIndex selects the drawing at the given 1-based index. Index 0
// deselects. Out-of-range indices return false and leave the selection
// unchanged. Finished drawings may be selected; their executing
// operations then fail with ErrDrawingFinished.
func (s *Session) SetActiveIndex(i int) bool {
	if i < 0 || i > len(s.drawings) {
		return false
	}
	s.active = i
	return true
}

// Active returns the active drawing, or ErrNoActiveDrawing when no
// drawing is active.
func (s *Session) Active() (*Drawing, error) {
	if s.active == 0 {
		return nil, ErrNoActiveDrawing
	}
	return s.drawings[s.active-1], nil
}

// MustActive returns the active drawing and panics when there is none.
func (s *Session) MustActive() *Drawing {
	d, err := s.Active()
	if err != nil {
		panic(err)
	}
	return d
}

// Count returns the number of registered drawing slots, finished slots
// included.
func (s *Session) Count() int {
	return len(s.drawings)
}

// DrawingAt returns the drawing at the given 1-based index, or nil when
// the index is out of range.
func (s *Session) DrawingAt(i int) *Drawing {
	if i < 1 || i > len(s.drawings) {
		return nil
	}
	return s.drawings[i-1]
}

// Finish finishes the active drawing.
func (s *Session) Finish() error {
	d, err := s.Active()
	if err != nil {
		return err
	}
	return d.Finish()
}

// FinishAll finishes every unfinished drawing in index order and joins
// any failures into a single error.
func (s *Session) FinishAll() error {
	var errs []error
	for _, d := range s.drawings {
		if d.finished {
			continue
		}
		if err := d.Finish(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ----------------------------------------------------------------------------
// Default-session convenience API
// ----------------------------------------------------------------------------

// ActiveIndex returns the active index of the default session.
func ActiveIndex() int {
	return Default().ActiveIndex()
}

// SetActiveIndex selects a drawing in the default session.
func SetActiveIndex(i int) bool {
	return Default().SetActiveIndex(i)
}

// Active returns the active drawing of the default session.
func Active() (*Drawing, error) {
	return Default().Active()
}

// MustActive returns the active drawing of the default session and panics
// when there is none.
func MustActive() *Drawing {
	return Default().MustActive()
}

// Count returns the number of drawing slots in the default session.
func Count() int {
	return Default().Count()
}

// DrawingAt returns the drawing at a 1-based index in the default session.
func DrawingAt(i int) *Drawing {
	return Default().DrawingAt(i)
}

// Finish finishes the active drawing of the default session.
func Finish() error {
	return Default().Finish()
}

// FinishAll finishes every unfinished drawing in the default session.
func FinishAll() error {
	return Default().FinishAll()
}
