package easel

import "testing"

func TestRecordingCapturesCommands(t *testing.T) {
	s := NewSession()
	d, err := NewRecording(100, 100, WithSession(s))
	if err != nil {
		t.Fatalf("NewRecording failed: %v", err)
	}

	d.SetColor(Red)
	d.DrawRectangle(10, 10, 20, 20)
	if err := d.Fill(); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	d.DrawLine(0, 0, 50, 50)
	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}

	rec := d.Recording()
	if rec == nil {
		t.Fatal("Recording returned nil")
	}
	cmds := rec.Commands()
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	fill, ok := cmds[0].(FillCommand)
	if !ok {
		t.Fatalf("got %T, want FillCommand", cmds[0])
	}
	if fill.Color != Red {
		t.Errorf("got fill color %v, want red", fill.Color)
	}
	if _, ok := cmds[1].(StrokeCommand); !ok {
		t.Errorf("got %T, want StrokeCommand", cmds[1])
	}
}

func TestRecordingInkExtents(t *testing.T) {
	s := NewSession()
	d, _ := NewRecording(100, 100, WithSession(s))

	if _, ok := d.InkExtents(); ok {
		t.Error("fresh recording should have no ink")
	}

	d.FillRectangle(10, 10, 20, 20)
	ink, ok := d.InkExtents()
	if !ok {
		t.Fatal("expected ink after filling")
	}
	want := NewRect(10, 10, 20, 20)
	if ink != want {
		t.Errorf("got ink %v, want %v", ink, want)
	}

	// Strokes pad the extents by half the line width.
	d.SetLineWidth(4)
	d.DrawLine(10, 50, 40, 50)
	d.Stroke()
	ink, _ = d.InkExtents()
	if ink.MaxY != 52 {
		t.Errorf("got ink max y %v, want 52", ink.MaxY)
	}
	if ink.MinX != 8 {
		t.Errorf("got ink min x %v, want 8", ink.MinX)
	}
}

func TestRecordingInkClampedToCanvas(t *testing.T) {
	s := NewSession()
	d, _ := NewRecording(50, 50, WithSession(s))

	d.FillRectangle(-10, -10, 200, 200)
	ink, ok := d.InkExtents()
	if !ok {
		t.Fatal("expected ink")
	}
	want := NewRect(0, 0, 50, 50)
	if ink != want {
		t.Errorf("got ink %v, want %v", ink, want)
	}
}

func TestRecordingInkRespectsClip(t *testing.T) {
	s := NewSession()
	d, _ := NewRecording(100, 100, WithSession(s))

	d.ClipRect(20, 20, 10, 10)
	d.FillRectangle(0, 0, 100, 100)
	ink, ok := d.InkExtents()
	if !ok {
		t.Fatal("expected ink")
	}
	want := NewRect(20, 20, 10, 10)
	if ink != want {
		t.Errorf("got ink %v, want %v", ink, want)
	}

	// Ink outside the former clip counts again after the reset.
	d.ResetClip()
	d.FillRectangle(0, 0, 10, 10)
	ink, _ = d.InkExtents()
	if ink.MinX != 0 || ink.MinY != 0 {
		t.Errorf("got ink %v, want origin corner included", ink)
	}
}

func TestBoundlessRecording(t *testing.T) {
	s := NewSession()
	d, err := NewBoundlessRecording(WithSession(s))
	if err != nil {
		t.Fatalf("NewBoundlessRecording failed: %v", err)
	}

	if d.Width() != 0 || d.Height() != 0 {
		t.Errorf("got size %dx%d, want 0x0", d.Width(), d.Height())
	}

	rec := d.Recording()
	if !rec.Boundless() {
		t.Error("recording should be boundless")
	}

	// Clear has no canvas to fill, so it records nothing.
	if err := d.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := len(d.Recording().Commands()); got != 0 {
		t.Errorf("got %d commands after Clear, want 0", got)
	}

	// Ink grows without a canvas clamp.
	d.FillRectangle(-100, -100, 50, 50)
	ink, ok := d.InkExtents()
	if !ok {
		t.Fatal("expected ink")
	}
	want := NewRect(-100, -100, 50, 50)
	if ink != want {
		t.Errorf("got ink %v, want %v", ink, want)
	}
}

func TestRecordingBackground(t *testing.T) {
	s := NewSession()
	d, _ := NewRecording(40, 30, WithSession(s), WithBackground(White))

	cmds := d.Recording().Commands()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1 background fill", len(cmds))
	}
	bg, ok := cmds[0].(FillRectCommand)
	if !ok {
		t.Fatalf("got %T, want FillRectCommand", cmds[0])
	}
	if bg.Rect != NewRect(0, 0, 40, 30) {
		t.Errorf("got background rect %v, want full canvas", bg.Rect)
	}
	if bg.Color != White {
		t.Errorf("got background color %v, want white", bg.Color)
	}

	// Boundless recordings have no canvas to paint.
	b, _ := NewBoundlessRecording(WithSession(s), WithBackground(White))
	if got := len(b.Recording().Commands()); got != 0 {
		t.Errorf("got %d commands on boundless canvas, want 0", got)
	}
}

func TestCaptureIsConsistentSnapshot(t *testing.T) {
	s := NewSession()
	d, _ := NewRecording(100, 100, WithSession(s))

	d.FillRectangle(0, 0, 10, 10)
	early := d.Recording()
	if got := len(early.Commands()); got != 1 {
		t.Fatalf("got %d commands, want 1", got)
	}

	d.FillRectangle(20, 20, 10, 10)
	d.FillRectangle(40, 40, 10, 10)

	// The earlier capture must not see later commands.
	if got := len(early.Commands()); got != 1 {
		t.Errorf("got %d commands in early capture, want 1", got)
	}
	if got := len(d.Recording().Commands()); got != 3 {
		t.Errorf("got %d commands in fresh capture, want 3", got)
	}
}

func TestRecordingSurvivesFinish(t *testing.T) {
	s := NewSession()
	d, _ := NewRecording(100, 100, WithSession(s))
	d.FillRectangle(0, 0, 10, 10)

	if err := d.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	rec := d.Recording()
	if rec == nil {
		t.Fatal("finished recording drawing lost its recording")
	}
	if got := len(rec.Commands()); got != 1 {
		t.Errorf("got %d commands, want 1", got)
	}
	if _, ok := d.InkExtents(); !ok {
		t.Error("ink extents should survive Finish")
	}
}

func TestReplay(t *testing.T) {
	s := NewSession()
	d, _ := NewRecording(100, 100, WithSession(s))

	d.SetColor(Blue)
	d.FillRectangle(5, 5, 10, 10)
	d.DrawCircle(50, 50, 20)
	d.Fill()
	d.DrawLine(0, 0, 100, 100)
	d.Stroke()

	m := &mockSurface{}
	d.Recording().Replay(m)

	if m.rects != 1 {
		t.Errorf("got %d rect fills, want 1", m.rects)
	}
	if m.fills != 1 {
		t.Errorf("got %d fills, want 1", m.fills)
	}
	if m.strokes != 1 {
		t.Errorf("got %d strokes, want 1", m.strokes)
	}
	if m.lastColor != Blue {
		t.Errorf("got color %v, want blue", m.lastColor)
	}
}

func TestDrawRecordingTranslates(t *testing.T) {
	s := NewSession()
	src, _ := NewRecording(50, 50, WithSession(s))
	src.FillRectangle(0, 0, 10, 10)
	rec := src.Recording()

	dst, _ := NewRecording(100, 100, WithSession(s))
	if err := dst.DrawRecording(rec, 5, 7); err != nil {
		t.Fatalf("DrawRecording failed: %v", err)
	}

	cmds := dst.Recording().Commands()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	got := cmds[0].(FillRectCommand).Rect
	want := NewRect(5, 7, 10, 10)
	if got != want {
		t.Errorf("got rect %v, want %v", got, want)
	}
}

func TestDrawRecordingFollowsTransform(t *testing.T) {
	s := NewSession()
	src, _ := NewRecording(50, 50, WithSession(s))
	src.SetLineWidth(2)
	src.DrawLine(0, 0, 10, 0)
	src.Stroke()
	rec := src.Recording()

	dst, _ := NewRecording(100, 100, WithSession(s))
	dst.Scale(2, 2)
	if err := dst.DrawRecording(rec, 5, 0); err != nil {
		t.Fatalf("DrawRecording failed: %v", err)
	}

	cmds := dst.Recording().Commands()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	sc := cmds[0].(StrokeCommand)
	if sc.Stroke.Width != 4 {
		t.Errorf("got stroke width %v, want 4", sc.Stroke.Width)
	}
	b, ok := sc.Path.Bounds()
	if !ok {
		t.Fatal("replayed path has no bounds")
	}
	// Translate(5,0) then Scale(2,2): the line runs from x=10 to x=30.
	if b.MinX != 10 || b.MaxX != 30 {
		t.Errorf("got path bounds %v, want x in [10,30]", b)
	}
}

func TestDrawRecordingNil(t *testing.T) {
	s := NewSession()
	dst, _ := NewRecording(100, 100, WithSession(s))

	if err := dst.DrawRecording(nil, 0, 0); err != nil {
		t.Fatalf("DrawRecording(nil) = %v, want nil", err)
	}
	if got := len(dst.Recording().Commands()); got != 0 {
		t.Errorf("got %d commands, want 0", got)
	}
}
