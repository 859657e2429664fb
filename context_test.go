package easel

import (
	"image"
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTransformAppliesAtEmission(t *testing.T) {
	m := registerMock(t, "test-emission")
	s := NewSession()
	d, _ := New("test-emission", "", 100, 100, WithSession(s))

	// Matrix changes mid-path affect only segments added afterwards.
	d.MoveTo(0, 0)
	d.LineTo(10, 0)
	d.Scale(2, 2)
	d.LineTo(10, 10)
	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}

	elems := m.lastPath.Elements()
	if len(elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(elems))
	}
	if pt := elems[1].(LineTo).Point; pt != Pt(10, 0) {
		t.Errorf("got first segment end %v, want (10,0)", pt)
	}
	if pt := elems[2].(LineTo).Point; pt != Pt(20, 20) {
		t.Errorf("got second segment end %v, want (20,20)", pt)
	}
}

func TestLineToOnEmptyPathStartsSubpath(t *testing.T) {
	m := registerMock(t, "test-lineto")
	s := NewSession()
	d, _ := New("test-lineto", "", 100, 100, WithSession(s))

	d.LineTo(5, 5)
	d.LineTo(10, 10)
	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}

	elems := m.lastPath.Elements()
	if len(elems) != 2 {
		t.Fatalf("got %d elements, want 2", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("got %T as first element, want MoveTo", elems[0])
	}
}

func TestPushPopRestoresState(t *testing.T) {
	m := registerMock(t, "test-pushpop")
	s := NewSession()
	d, _ := New("test-pushpop", "", 100, 100, WithSession(s))

	d.SetColor(Red)
	d.SetLineWidth(5)
	d.SetDash(2, 2)
	d.Push()

	d.SetColor(Blue)
	d.SetLineWidth(1)
	d.SetDash(9)
	d.Scale(4, 4)
	d.Pop()

	d.DrawLine(0, 0, 10, 0)
	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}

	if m.lastColor != Red {
		t.Errorf("got color %v, want red", m.lastColor)
	}
	if m.lastStroke.Width != 5 {
		t.Errorf("got width %v, want 5", m.lastStroke.Width)
	}
	if len(m.lastStroke.DashPattern) != 2 || m.lastStroke.DashPattern[0] != 2 {
		t.Errorf("got dash %v, want [2 2]", m.lastStroke.DashPattern)
	}
	if !d.Matrix().IsIdentity() {
		t.Error("matrix should be restored to identity")
	}
}

func TestPopOnEmptyStack(t *testing.T) {
	registerMock(t, "test-pop-empty")
	s := NewSession()
	d, _ := New("test-pop-empty", "", 100, 100, WithSession(s))

	d.Pop()
	if !d.Matrix().IsIdentity() {
		t.Error("popping an empty stack should change nothing")
	}
}

func TestDeviceToUserRoundtrip(t *testing.T) {
	registerMock(t, "test-roundtrip")
	s := NewSession()
	d, _ := New("test-roundtrip", "", 100, 100, WithSession(s))

	d.Translate(10, 20)
	d.Rotate(math.Pi / 3)
	d.Scale(2, 0.5)

	px, py := d.TransformPoint(7, -3)
	ux, uy := d.DeviceToUser(px, py)
	if !approxEqual(ux, 7) || !approxEqual(uy, -3) {
		t.Errorf("got (%v,%v), want (7,-3)", ux, uy)
	}
}

func TestFillRectangleFastPath(t *testing.T) {
	m := registerMock(t, "test-fillrect")
	s := NewSession()
	d, _ := New("test-fillrect", "", 100, 100, WithSession(s))

	// Scale and translate keep rectangles axis-aligned.
	d.Translate(10, 10)
	d.Scale(2, 2)
	if err := d.FillRectangle(0, 0, 5, 5); err != nil {
		t.Fatalf("FillRectangle failed: %v", err)
	}
	if m.rects != 1 || m.fills != 0 {
		t.Fatalf("got %d rects and %d fills, want 1 and 0", m.rects, m.fills)
	}
	if m.lastRect != NewRect(10, 10, 10, 10) {
		t.Errorf("got rect %v, want (10,10 10x10)", m.lastRect)
	}

	// Rotation drops to the exact path fill.
	d.Rotate(math.Pi / 4)
	if err := d.FillRectangle(0, 0, 5, 5); err != nil {
		t.Fatalf("FillRectangle failed: %v", err)
	}
	if m.rects != 1 || m.fills != 1 {
		t.Errorf("got %d rects and %d fills, want 1 and 1", m.rects, m.fills)
	}
}

func TestClearIgnoresTransform(t *testing.T) {
	m := registerMock(t, "test-clear")
	s := NewSession()
	d, _ := New("test-clear", "", 80, 60, WithSession(s))

	d.Scale(0.1, 0.1)
	d.Rotate(1)
	if err := d.ClearWithColor(Blue); err != nil {
		t.Fatalf("ClearWithColor failed: %v", err)
	}

	if m.lastRect != NewRect(0, 0, 80, 60) {
		t.Errorf("got rect %v, want the full canvas", m.lastRect)
	}
	if m.lastColor != Blue {
		t.Errorf("got color %v, want blue", m.lastColor)
	}
}

func TestClipRectTransformed(t *testing.T) {
	m := registerMock(t, "test-clip")
	s := NewSession()
	d, _ := New("test-clip", "", 100, 100, WithSession(s))

	d.Translate(10, 5)
	if err := d.ClipRect(0, 0, 10, 10); err != nil {
		t.Fatalf("ClipRect failed: %v", err)
	}
	if len(m.clips) != 1 {
		t.Fatalf("got %d clips, want 1", len(m.clips))
	}
	if m.clips[0] != NewRect(10, 5, 10, 10) {
		t.Errorf("got clip %v, want (10,5 10x10)", m.clips[0])
	}

	if err := d.ResetClip(); err != nil {
		t.Fatalf("ResetClip failed: %v", err)
	}
	if m.resets != 1 {
		t.Errorf("got %d resets, want 1", m.resets)
	}
}

func TestDrawImageAnchored(t *testing.T) {
	m := registerMock(t, "test-image")
	s := NewSession()
	d, _ := New("test-image", "", 100, 100, WithSession(s))

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	if err := d.DrawImageAnchored(img, 50, 50, 0.5, 0.5); err != nil {
		t.Fatalf("DrawImageAnchored failed: %v", err)
	}
	if m.images != 1 {
		t.Fatalf("got %d images, want 1", m.images)
	}
	if m.lastRect != NewRect(40, 45, 20, 10) {
		t.Errorf("got dst %v, want (40,45 20x10)", m.lastRect)
	}

	// A nil image draws nothing.
	if err := d.DrawImage(nil, 0, 0); err != nil {
		t.Fatalf("DrawImage(nil) failed: %v", err)
	}
	if m.images != 1 {
		t.Errorf("got %d images after nil draw, want 1", m.images)
	}
}

func TestDrawArcConnectsFromCurrentPoint(t *testing.T) {
	m := registerMock(t, "test-arc")
	s := NewSession()
	d, _ := New("test-arc", "", 100, 100, WithSession(s))

	d.MoveTo(0, 0)
	d.DrawArc(10, 0, 5, 0, math.Pi/2)
	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}

	elems := m.lastPath.Elements()
	if _, ok := elems[0].(MoveTo); !ok {
		t.Fatalf("got %T as first element, want MoveTo", elems[0])
	}
	line, ok := elems[1].(LineTo)
	if !ok {
		t.Fatalf("got %T as second element, want LineTo to the arc start", elems[1])
	}
	if line.Point != Pt(15, 0) {
		t.Errorf("got arc start %v, want (15,0)", line.Point)
	}

	// Without a current point the arc starts its own subpath.
	d.DrawArc(10, 0, 5, 0, math.Pi/2)
	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}
	if _, ok := m.lastPath.Elements()[0].(MoveTo); !ok {
		t.Error("arc without current point should begin with MoveTo")
	}
}

func TestDrawCircleBounds(t *testing.T) {
	m := registerMock(t, "test-circle")
	s := NewSession()
	d, _ := New("test-circle", "", 100, 100, WithSession(s))

	d.DrawCircle(50, 50, 5)
	if err := d.Fill(); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	b, ok := m.lastPath.Bounds()
	if !ok {
		t.Fatal("circle path has no bounds")
	}
	want := NewRect(45, 45, 10, 10)
	if b != want {
		t.Errorf("got bounds %v, want %v", b, want)
	}
}

func TestRoundedRectangleClampsRadius(t *testing.T) {
	m := registerMock(t, "test-rounded")
	s := NewSession()
	d, _ := New("test-rounded", "", 100, 100, WithSession(s))

	// A radius larger than half the short side must not spill outside.
	d.DrawRoundedRectangle(0, 0, 20, 10, 50)
	if err := d.Fill(); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	b, ok := m.lastPath.Bounds()
	if !ok {
		t.Fatal("rounded rectangle path has no bounds")
	}
	if b.MinX < -1e-9 || b.MinY < -1e-9 || b.MaxX > 20+1e-9 || b.MaxY > 10+1e-9 {
		t.Errorf("got bounds %v, want inside (0,0 20x10)", b)
	}
}

func TestDrawEllipticalArcRestoresMatrix(t *testing.T) {
	m := registerMock(t, "test-earc")
	s := NewSession()
	d, _ := New("test-earc", "", 100, 100, WithSession(s))

	d.Translate(3, 4)
	before := d.Matrix()
	d.DrawEllipticalArc(50, 30, 20, 10, 0, 2*math.Pi)
	if d.Matrix() != before {
		t.Error("elliptical arc must not leave its helper transform behind")
	}

	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}
	b, ok := m.lastPath.Bounds()
	if !ok {
		t.Fatal("arc path has no bounds")
	}
	// Center lands at (53, 34) after the translation.
	if b.MinX < 53-20-1 || b.MaxX > 53+20+1 {
		t.Errorf("got bounds %v, want roughly 40 wide around x=53", b)
	}
}

func TestSetHexColor(t *testing.T) {
	m := registerMock(t, "test-hex")
	s := NewSession()
	d, _ := New("test-hex", "", 100, 100, WithSession(s))

	d.SetHexColor("#ff0000")
	d.DrawRectangle(0, 0, 5, 5)
	if err := d.Fill(); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if m.lastColor != Red {
		t.Errorf("got %v, want red", m.lastColor)
	}
}
