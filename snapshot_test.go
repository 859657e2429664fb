package easel

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSnapshotBoundedFullCanvas(t *testing.T) {
	s := NewSession()
	src, err := NewRecording(100, 80, WithSession(s))
	if err != nil {
		t.Fatalf("NewRecording failed: %v", err)
	}
	src.SetColor(Red)
	src.FillRectangle(10, 10, 30, 30)

	snap, err := s.Snapshot(KindRecord, "", Rect{}, 2)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if snap.Width() != 200 || snap.Height() != 160 {
		t.Errorf("got size %dx%d, want 200x160", snap.Width(), snap.Height())
	}
	if !snap.Finished() {
		t.Error("snapshot drawing should arrive finished")
	}

	cmds := snap.Recording().Commands()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	got := cmds[0].(FillRectCommand).Rect
	want := NewRect(20, 20, 60, 60)
	if got != want {
		t.Errorf("got rect %v, want %v", got, want)
	}
}

func TestSnapshotCropTranslatesToOrigin(t *testing.T) {
	s := NewSession()
	src, _ := NewRecording(100, 80, WithSession(s))
	src.FillRectangle(10, 10, 30, 30)

	snap, err := s.Snapshot(KindRecord, "", NewRect(10, 10, 30, 30), 1)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if snap.Width() != 30 || snap.Height() != 30 {
		t.Errorf("got size %dx%d, want 30x30", snap.Width(), snap.Height())
	}
	got := snap.Recording().Commands()[0].(FillRectCommand).Rect
	want := NewRect(0, 0, 30, 30)
	if got != want {
		t.Errorf("got rect %v, want %v", got, want)
	}
}

func TestSnapshotSpanRounding(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{3, 30},
		{0.249, 2},
		{0.04, 1}, // rounds to zero, clamped to the 1x1 minimum
	}
	for _, tt := range tests {
		s := NewSession()
		src, _ := NewRecording(10, 10, WithSession(s))
		src.FillRectangle(0, 0, 10, 10)

		snap, err := s.Snapshot(KindRecord, "", Rect{}, tt.scale)
		if err != nil {
			t.Fatalf("Snapshot at scale %v failed: %v", tt.scale, err)
		}
		if snap.Width() != tt.want || snap.Height() != tt.want {
			t.Errorf("scale %v: got size %dx%d, want %dx%d",
				tt.scale, snap.Width(), snap.Height(), tt.want, tt.want)
		}
	}
}

func TestSnapshotBoundlessUsesInkExtents(t *testing.T) {
	s := NewSession()
	src, _ := NewBoundlessRecording(WithSession(s))
	src.FillRectangle(5, 5, 10, 10)

	snap, err := s.Snapshot(KindRecord, "", Rect{}, 1)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if snap.Width() != 10 || snap.Height() != 10 {
		t.Errorf("got size %dx%d, want 10x10", snap.Width(), snap.Height())
	}
	got := snap.Recording().Commands()[0].(FillRectCommand).Rect
	want := NewRect(0, 0, 10, 10)
	if got != want {
		t.Errorf("got rect %v, want %v", got, want)
	}
}

func TestSnapshotRestoresActiveDrawing(t *testing.T) {
	s := NewSession()
	src, _ := NewRecording(100, 80, WithSession(s))
	src.FillRectangle(0, 0, 10, 10)

	snap, err := s.Snapshot(KindRecord, "", Rect{}, 1)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if s.ActiveIndex() != src.Index() {
		t.Errorf("got active index %d, want %d", s.ActiveIndex(), src.Index())
	}
	if snap.Index() == src.Index() {
		t.Error("snapshot should occupy its own slot")
	}

	// The source drawing keeps accepting commands.
	src.FillRectangle(20, 20, 10, 10)
	if got := len(src.Recording().Commands()); got != 2 {
		t.Errorf("got %d commands on source, want 2", got)
	}
}

func TestSnapshotRestoresActiveOnError(t *testing.T) {
	m := registerMock(t, "test-snap-flush")
	m.flushErr = errors.New("flush exploded")

	s := NewSession()
	src, _ := NewRecording(100, 80, WithSession(s))
	src.FillRectangle(0, 0, 10, 10)

	// Constructor failure: the kind does not exist.
	if _, err := s.Snapshot("no-such-kind", "", Rect{}, 1); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if s.ActiveIndex() != src.Index() {
		t.Errorf("got active index %d after create failure, want %d",
			s.ActiveIndex(), src.Index())
	}

	// Finish failure: the backend flush fails after replay.
	if _, err := s.Snapshot("test-snap-flush", "", Rect{}, 1); !errors.Is(err, m.flushErr) {
		t.Fatalf("got %v, want %v", err, m.flushErr)
	}
	if s.ActiveIndex() != src.Index() {
		t.Errorf("got active index %d after finish failure, want %d",
			s.ActiveIndex(), src.Index())
	}
}

func TestSnapshotFromFinishedRecording(t *testing.T) {
	s := NewSession()
	src, _ := NewRecording(100, 80, WithSession(s))
	src.FillRectangle(10, 10, 30, 30)
	if err := src.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	// Finishing deselected the drawing; select it again and snapshot the
	// sealed recording.
	if !s.SetActiveIndex(src.Index()) {
		t.Fatal("reselecting the finished drawing failed")
	}
	snap, err := s.Snapshot(KindRecord, "", Rect{}, 1)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if got := len(snap.Recording().Commands()); got != 1 {
		t.Errorf("got %d commands, want 1", got)
	}
}

func TestSnapshotIgnoresSessionOption(t *testing.T) {
	s := NewSession()
	other := NewSession()
	src, _ := NewRecording(100, 80, WithSession(s))
	src.FillRectangle(0, 0, 10, 10)

	snap, err := s.Snapshot(KindRecord, "", Rect{}, 1, WithSession(other))
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.Session() != s {
		t.Error("snapshot should live in the receiver session")
	}
	if other.Count() != 0 {
		t.Errorf("got %d drawings in the other session, want 0", other.Count())
	}
}

func TestSnapshotNoActiveDrawing(t *testing.T) {
	s := NewSession()
	if _, err := s.Snapshot(KindRecord, "", Rect{}, 1); !errors.Is(err, ErrNoActiveDrawing) {
		t.Errorf("got %v, want ErrNoActiveDrawing", err)
	}
}

func TestSnapshotNotRecording(t *testing.T) {
	registerMock(t, "test-snap-kind")
	s := NewSession()
	if _, err := New("test-snap-kind", "", 10, 10, WithSession(s)); err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := s.Snapshot(KindRecord, "", Rect{}, 1); !errors.Is(err, ErrNotRecording) {
		t.Errorf("got %v, want ErrNotRecording", err)
	}
}

func TestSnapshotCropRangeErrors(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name      string
		boundless bool
		ink       bool
		box       Rect
		scale     float64
		message   string
	}{
		{"zero scale", false, true, Rect{}, 0, "invalid snapshot scale"},
		{"negative scale", false, true, Rect{}, -2, "invalid snapshot scale"},
		{"infinite scale", false, true, Rect{}, math.Inf(1), "invalid snapshot scale"},
		{"nan scale", false, true, Rect{}, nan, "invalid snapshot scale"},
		{"negative box", false, true, NewRect(0, 0, -5, 10), 1, "invalid crop box"},
		{"nan box", false, true, Rect{MinX: nan, MinY: 0, MaxX: 10, MaxY: 10}, 1, "invalid crop box"},
		{"boundless without ink", true, false, Rect{}, 1, "no ink"},
		{"box beside the ink", true, true, NewRect(500, 500, 10, 10), 1, "outside recorded extents"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			var src *Drawing
			if tt.boundless {
				src, _ = NewBoundlessRecording(WithSession(s))
			} else {
				src, _ = NewRecording(50, 50, WithSession(s))
			}
			if tt.ink {
				src.FillRectangle(5, 5, 10, 10)
			}

			_, err := s.Snapshot(KindRecord, "", tt.box, tt.scale)
			var cropErr *CropRangeError
			if !errors.As(err, &cropErr) {
				t.Fatalf("got %v, want *CropRangeError", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("got message %q, want it to mention %q", err.Error(), tt.message)
			}
			if s.ActiveIndex() != src.Index() {
				t.Errorf("got active index %d, want %d", s.ActiveIndex(), src.Index())
			}
		})
	}
}

func TestSnapshotImageNeedsRasterBackend(t *testing.T) {
	s := NewSession()
	src, _ := NewRecording(50, 50, WithSession(s))
	src.FillRectangle(0, 0, 10, 10)

	// The raster backend is not imported by this package's tests, so the
	// image kind is unregistered here.
	_, err := s.SnapshotImage(Rect{}, 1)
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want *UnknownKindError", err)
	}
	if unknown.Kind != KindImage {
		t.Errorf("got kind %q, want %q", unknown.Kind, KindImage)
	}
	if s.ActiveIndex() != src.Index() {
		t.Errorf("got active index %d, want %d", s.ActiveIndex(), src.Index())
	}
}
