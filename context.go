package easel

import (
	"image"
	"image/color"
	"math"
	"strings"
)

// Align specifies horizontal text alignment for wrapped text.
type Align int

const (
	// AlignLeft aligns lines to the left edge.
	AlignLeft Align = iota
	// AlignCenter centers each line.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// Context is the painter state machine behind every Drawing.
// It builds paths in user space, resolves the current transform at the
// moment a command is emitted, and hands fully resolved device-space
// commands to the surface. Surfaces therefore never see the transform;
// they only track clip state.
//
// A Context is not safe for concurrent use.
type Context struct {
	surface Surface
	width   int
	height  int

	// Current path, stored in device coordinates: points are transformed
	// as they are added, so changing the matrix mid-path affects only
	// subsequent segments.
	path *Path

	// Current state
	color         RGBA
	lineWidth     float64
	lineCap       LineCap
	lineJoin      LineJoin
	miterLimit    float64
	dashPattern   []float64
	dashOffset    float64
	fillRule      FillRule
	font          Font
	matrix        Matrix
	strokeScaling bool

	// State stack for Push/Pop
	stack []contextState
}

// contextState stores the graphics state for Push/Pop.
type contextState struct {
	color         RGBA
	lineWidth     float64
	lineCap       LineCap
	lineJoin      LineJoin
	miterLimit    float64
	dashPattern   []float64
	dashOffset    float64
	fillRule      FillRule
	font          Font
	matrix        Matrix
	strokeScaling bool
}

// newContext creates a painter bound to a surface.
// The context starts with black paint, 1 unit line width, butt caps,
// miter joins, non-zero fill rule, and the identity transform.
func newContext(surface Surface, width, height int, strokeScaling bool) *Context {
	return &Context{
		surface:       surface,
		width:         width,
		height:        height,
		path:          NewPath(),
		color:         Black,
		lineWidth:     1.0,
		lineCap:       LineCapButt,
		lineJoin:      LineJoinMiter,
		miterLimit:    4.0,
		fillRule:      FillRuleNonZero,
		font:          DefaultFont(),
		matrix:        Identity(),
		strokeScaling: true,
		stack:         make([]contextState, 0, 8),
	}
}

// ----------------------------------------------------------------------------
// State Management
// ----------------------------------------------------------------------------

// Push saves the current graphics state onto a stack.
// The state includes paint color, stroke parameters, fill rule, font,
// transform, and the stroke scaling flag. The current path is not saved.
func (c *Context) Push() {
	var dashCopy []float64
	if c.dashPattern != nil {
		dashCopy = make([]float64, len(c.dashPattern))
		copy(dashCopy, c.dashPattern)
	}

	c.stack = append(c.stack, contextState{
		color:         c.color,
		lineWidth:     c.lineWidth,
		lineCap:       c.lineCap,
		lineJoin:      c.lineJoin,
		miterLimit:    c.miterLimit,
		dashPattern:   dashCopy,
		dashOffset:    c.dashOffset,
		fillRule:      c.fillRule,
		font:          c.font,
		matrix:        c.matrix,
		strokeScaling: c.strokeScaling,
	})
}

// Pop restores the previously pushed graphics state.
// If the state stack is empty, this is a no-op.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}

	state := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	c.color = state.color
	c.lineWidth = state.lineWidth
	c.lineCap = state.lineCap
	c.lineJoin = state.lineJoin
	c.miterLimit = state.miterLimit
	c.dashPattern = state.dashPattern
	c.dashOffset = state.dashOffset
	c.fillRule = state.fillRule
	c.font = state.font
	c.matrix = state.matrix
	c.strokeScaling = state.strokeScaling
}

// ----------------------------------------------------------------------------
// Transform
// ----------------------------------------------------------------------------

// ResetMatrix resets the transformation matrix to identity.
func (c *Context) ResetMatrix() {
	c.matrix = Identity()
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(sx, sy float64) {
	c.matrix = c.matrix.Multiply(Scale(sx, sy))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around a specific point.
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Shear applies a shear transformation.
func (c *Context) Shear(x, y float64) {
	c.matrix = c.matrix.Multiply(Shear(x, y))
}

// TransformBy multiplies the current transformation matrix by the given
// matrix.
func (c *Context) TransformBy(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// SetMatrix replaces the current transformation matrix.
func (c *Context) SetMatrix(m Matrix) {
	c.matrix = m
}

// Matrix returns a copy of the current transformation matrix.
func (c *Context) Matrix() Matrix {
	return c.matrix
}

// TransformPoint maps a user-space point to device space through the
// current matrix.
func (c *Context) TransformPoint(x, y float64) (float64, float64) {
	return c.matrix.TransformPoint(x, y)
}

// DeviceToUser maps a device-space point back to user space through the
// inverse of the current matrix. For a degenerate matrix the point is
// returned unchanged.
func (c *Context) DeviceToUser(x, y float64) (float64, float64) {
	return c.matrix.Invert().TransformPoint(x, y)
}

// ----------------------------------------------------------------------------
// Color
// ----------------------------------------------------------------------------

// SetColor sets the paint color from a standard color.Color.
func (c *Context) SetColor(col color.Color) {
	c.color = FromColor(col)
}

// SetRGB sets the paint color using RGB values (0-1). Alpha is set to 1.
func (c *Context) SetRGB(r, g, b float64) {
	c.color = RGB(r, g, b)
}

// SetRGBA sets the paint color using RGBA values (0-1).
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.color = RGBA2(r, g, b, a)
}

// SetRGB255 sets the paint color using 8-bit RGB values. Alpha is set to 1.
func (c *Context) SetRGB255(r, g, b int) {
	c.color = RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// SetHexColor sets the paint color from a hex string such as "#1e90ff".
func (c *Context) SetHexColor(hex string) {
	c.color = Hex(hex)
}

// ----------------------------------------------------------------------------
// Line Properties
// ----------------------------------------------------------------------------

// SetLineWidth sets the line width for stroking.
// With stroke scaling enabled (the default) the width is in user space and
// follows the current transform; otherwise it is a device-space constant.
func (c *Context) SetLineWidth(width float64) {
	c.lineWidth = width
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lc LineCap) {
	c.lineCap = lc
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.lineJoin = join
}

// SetMiterLimit sets the miter limit for line joins.
func (c *Context) SetMiterLimit(limit float64) {
	c.miterLimit = limit
}

// SetDash sets the dash pattern for stroking.
// Pass alternating dash and gap lengths.
// Passing no arguments clears the dash pattern (returns to solid lines).
func (c *Context) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		c.ClearDash()
		return
	}

	c.dashPattern = make([]float64, len(lengths))
	copy(c.dashPattern, lengths)
}

// SetDashOffset sets the starting offset into the dash pattern.
func (c *Context) SetDashOffset(offset float64) {
	c.dashOffset = offset
}

// ClearDash removes the dash pattern, returning to solid lines.
func (c *Context) ClearDash() {
	c.dashPattern = nil
	c.dashOffset = 0
}

// SetFillRule sets the fill rule.
func (c *Context) SetFillRule(rule FillRule) {
	c.fillRule = rule
}

// SetStrokeScaling controls whether stroke widths follow the transform.
// When enabled (the default), line widths and dash lengths are user-space
// values multiplied by the matrix scale factor at stroke time. When
// disabled they are device-space constants, so a hairline stays a hairline
// under any zoom.
func (c *Context) SetStrokeScaling(enabled bool) {
	c.strokeScaling = enabled
}

// StrokeScaling reports whether stroke widths follow the transform.
func (c *Context) StrokeScaling() bool {
	return c.strokeScaling
}

// ----------------------------------------------------------------------------
// Text State
// ----------------------------------------------------------------------------

// SetFontSize sets the font size. With a non-identity transform the
// rendered size follows the matrix scale factor.
func (c *Context) SetFontSize(size float64) {
	c.font.Size = size
}

// SetFontFamily sets the font family name ("sans", "serif", "mono").
func (c *Context) SetFontFamily(family string) {
	c.font.Family = family
}

// SetFontStyle selects bold and italic variants of the current family.
func (c *Context) SetFontStyle(bold, italic bool) {
	c.font.Bold = bold
	c.font.Italic = italic
}

// Font returns the current font state.
func (c *Context) Font() Font {
	return c.font
}

// ----------------------------------------------------------------------------
// Path Building
// ----------------------------------------------------------------------------

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	px, py := c.matrix.TransformPoint(x, y)
	c.path.MoveTo(px, py)
}

// LineTo adds a line to the current path.
// If the path is empty, this behaves like MoveTo.
func (c *Context) LineTo(x, y float64) {
	if c.path.IsEmpty() {
		c.MoveTo(x, y)
		return
	}
	px, py := c.matrix.TransformPoint(x, y)
	c.path.LineTo(px, py)
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	cpx, cpy := c.matrix.TransformPoint(cx, cy)
	px, py := c.matrix.TransformPoint(x, y)
	c.path.QuadraticTo(cpx, cpy, px, py)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1x, cp1y := c.matrix.TransformPoint(c1x, c1y)
	cp2x, cp2y := c.matrix.TransformPoint(c2x, c2y)
	px, py := c.matrix.TransformPoint(x, y)
	c.path.CubicTo(cp1x, cp1y, cp2x, cp2y, px, py)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// NewSubPath prepares for a new subpath. The next MoveTo starts one in any
// case, so this is a no-op provided for API familiarity.
func (c *Context) NewSubPath() {
}

// ----------------------------------------------------------------------------
// Shapes
// ----------------------------------------------------------------------------

// DrawPoint draws a small filled-circle path at the given coordinates.
func (c *Context) DrawPoint(x, y, radius float64) {
	c.DrawCircle(x, y, radius)
}

// DrawLine adds a line between two points to the current path.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawRoundedRectangle adds a rectangle with rounded corners to the
// current path.
func (c *Context) DrawRoundedRectangle(x, y, w, h, radius float64) {
	// Clamp radius to half of the smaller dimension
	maxR := math.Min(w, h) / 2
	if radius > maxR {
		radius = maxR
	}

	c.MoveTo(x+radius, y)
	c.LineTo(x+w-radius, y)
	c.drawArcPath(x+w-radius, y+radius, radius, -math.Pi/2, 0)
	c.LineTo(x+w, y+h-radius)
	c.drawArcPath(x+w-radius, y+h-radius, radius, 0, math.Pi/2)
	c.LineTo(x+radius, y+h)
	c.drawArcPath(x+radius, y+h-radius, radius, math.Pi/2, math.Pi)
	c.LineTo(x, y+radius)
	c.drawArcPath(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
	c.ClosePath()
}

// DrawCircle adds a circle to the current path.
func (c *Context) DrawCircle(x, y, radius float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := radius * k

	c.MoveTo(x+radius, y)
	c.CubicTo(x+radius, y+offset, x+offset, y+radius, x, y+radius)
	c.CubicTo(x-offset, y+radius, x-radius, y+offset, x-radius, y)
	c.CubicTo(x-radius, y-offset, x-offset, y-radius, x, y-radius)
	c.CubicTo(x+offset, y-radius, x+radius, y-offset, x+radius, y)
	c.ClosePath()
}

// DrawEllipse adds an ellipse to the current path.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	c.MoveTo(x+rx, y)
	c.CubicTo(x+rx, y+oy, x+ox, y+ry, x, y+ry)
	c.CubicTo(x-ox, y+ry, x-rx, y+oy, x-rx, y)
	c.CubicTo(x-rx, y-oy, x-ox, y-ry, x, y-ry)
	c.CubicTo(x+ox, y-ry, x+rx, y-oy, x+rx, y)
	c.ClosePath()
}

// DrawArc adds a circular arc to the current path.
// The arc runs from angle1 to angle2 (in radians) around (x, y).
// If the path already has a current point, a line connects it to the
// start of the arc.
func (c *Context) DrawArc(x, y, radius, angle1, angle2 float64) {
	c.drawArcPath(x, y, radius, angle1, angle2)
}

// DrawEllipticalArc adds an elliptical arc to the current path.
func (c *Context) DrawEllipticalArc(x, y, rx, ry, angle1, angle2 float64) {
	saved := c.matrix
	c.matrix = c.matrix.Multiply(Translate(x, y)).Multiply(Scale(rx, ry))
	c.DrawArc(0, 0, 1, angle1, angle2)
	c.matrix = saved
}

// drawArcPath splits an arc into segments of at most 90 degrees and adds
// them to the current path.
func (c *Context) drawArcPath(cx, cy, radius, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		c.arcSegment(cx, cy, radius, a1, a2)
	}
}

// arcSegment adds a single arc segment using a cubic Bezier approximation.
func (c *Context) arcSegment(cx, cy, radius, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + radius*cos1
	y1 := cy + radius*sin1
	x2 := cx + radius*cos2
	y2 := cy + radius*sin2

	c1x := x1 - alpha*radius*sin1
	c1y := y1 + alpha*radius*cos1
	c2x := x2 + alpha*radius*sin2
	c2y := y2 - alpha*radius*cos2

	if c.path.IsEmpty() {
		c.MoveTo(x1, y1)
	} else {
		c.LineTo(x1, y1)
	}
	c.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// ----------------------------------------------------------------------------
// Drawing
// ----------------------------------------------------------------------------

// currentStroke resolves the stroke state to device units.
func (c *Context) currentStroke() Stroke {
	s := Stroke{
		Width:       c.lineWidth,
		Cap:         c.lineCap,
		Join:        c.lineJoin,
		MiterLimit:  c.miterLimit,
		DashPattern: c.dashPattern,
		DashOffset:  c.dashOffset,
	}
	if c.strokeScaling {
		return s.scaled(c.matrix.ScaleFactor())
	}
	return s.Clone()
}

// Fill fills the current path with the paint color and clears the path.
func (c *Context) Fill() error {
	if err := c.FillPreserve(); err != nil {
		return err
	}
	c.path.Clear()
	return nil
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	if c.path.IsEmpty() {
		return nil
	}
	c.surface.Fill(c.path.Clone(), c.color, c.fillRule)
	return nil
}

// Stroke strokes the current path with the paint color and clears the path.
func (c *Context) Stroke() error {
	if err := c.StrokePreserve(); err != nil {
		return err
	}
	c.path.Clear()
	return nil
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	if c.path.IsEmpty() {
		return nil
	}
	c.surface.Stroke(c.path.Clone(), c.color, c.currentStroke())
	return nil
}

// FillStroke fills and then strokes the current path, then clears it.
func (c *Context) FillStroke() error {
	if err := c.FillPreserve(); err != nil {
		return err
	}
	return c.Stroke()
}

// FillRectangle fills a rectangle directly, without touching the current
// path. Under a rotating or shearing transform the rectangle is filled as
// a path so it stays exact.
func (c *Context) FillRectangle(x, y, w, h float64) error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	if c.matrix.IsScaleTranslation() {
		x1, y1 := c.matrix.TransformPoint(x, y)
		x2, y2 := c.matrix.TransformPoint(x+w, y+h)
		c.surface.FillRect(NewRectFromPoints(x1, y1, x2, y2), c.color)
		return nil
	}
	path := rectPath(NewRect(x, y, w, h)).Transform(c.matrix)
	c.surface.Fill(path, c.color, FillRuleNonZero)
	return nil
}

// Clear fills the entire canvas with the paint color, ignoring the
// current transform. Clipping still applies. On a boundless recording
// there is no canvas to fill, so Clear records nothing.
func (c *Context) Clear() error {
	return c.ClearWithColor(c.color)
}

// ClearWithColor fills the entire canvas with a specific color.
func (c *Context) ClearWithColor(col RGBA) error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	if c.width <= 0 || c.height <= 0 {
		return nil
	}
	c.surface.FillRect(NewRect(0, 0, float64(c.width), float64(c.height)), col)
	return nil
}

// ----------------------------------------------------------------------------
// Clipping
// ----------------------------------------------------------------------------

// ClipRect intersects the clip region with a rectangle given in user
// space. Under a rotating or shearing transform the clip degrades to the
// bounding box of the transformed corners.
func (c *Context) ClipRect(x, y, w, h float64) error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	c.surface.ClipRect(c.matrix.TransformRect(NewRect(x, y, w, h)))
	return nil
}

// ResetClip removes all clipping regions.
func (c *Context) ResetClip() error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	c.surface.ResetClip()
	return nil
}

// ----------------------------------------------------------------------------
// Images
// ----------------------------------------------------------------------------

// DrawImage draws an image with its top-left corner at (x, y).
func (c *Context) DrawImage(img image.Image, x, y int) error {
	return c.DrawImageAnchored(img, x, y, 0, 0)
}

// DrawImageAnchored draws an image anchored at (x, y); ax and ay choose
// the anchor point within the image, in the range [0, 1].
func (c *Context) DrawImageAnchored(img image.Image, x, y int, ax, ay float64) error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	dx := float64(x) - w*ax
	dy := float64(y) - h*ay
	c.surface.DrawImage(img, c.matrix.TransformRect(NewRect(dx, dy, w, h)), DefaultImageOptions())
	return nil
}

// DrawImageScaled draws an image scaled to fit the given user-space
// rectangle. Under a rotating transform the destination degrades to the
// bounding box of the transformed corners.
func (c *Context) DrawImageScaled(img image.Image, x, y, w, h float64) error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	if img == nil {
		return nil
	}
	c.surface.DrawImage(img, c.matrix.TransformRect(NewRect(x, y, w, h)), DefaultImageOptions())
	return nil
}

// ----------------------------------------------------------------------------
// Text
// ----------------------------------------------------------------------------

// DrawString draws text with the baseline origin at (x, y).
func (c *Context) DrawString(s string, x, y float64) error {
	if c.surface == nil {
		return ErrDrawingFinished
	}
	px, py := c.matrix.TransformPoint(x, y)
	c.surface.DrawText(s, px, py, c.font.scaled(c.matrix.ScaleFactor()), c.color)
	return nil
}

// DrawStringAnchored draws text anchored at (x, y); ax and ay choose the
// anchor point within the text box, in the range [0, 1].
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) error {
	w, h := c.MeasureString(s)
	return c.DrawString(s, x-ax*w, y+ay*h)
}

// MeasureString returns the user-space dimensions of s in the current
// font. Surfaces with native font metrics are consulted when available;
// otherwise the size is approximated from the font size.
func (c *Context) MeasureString(s string) (w, h float64) {
	if tm, ok := c.surface.(TextMeasurer); ok {
		return tm.MeasureText(s, c.font)
	}
	w = float64(len([]rune(s))) * c.font.Size * 0.6
	h = c.font.Size * 1.2
	return
}

// MeasureMultilineString measures text that may contain newlines.
// Returns the maximum line width and the total height.
func (c *Context) MeasureMultilineString(s string, lineSpacing float64) (width, height float64) {
	lines := splitLines(s)
	var lineHeight float64
	for _, line := range lines {
		lw, lh := c.MeasureString(line)
		if lw > width {
			width = lw
		}
		if lh > lineHeight {
			lineHeight = lh
		}
	}
	n := float64(len(lines))
	height = n*lineHeight*lineSpacing - (lineSpacing-1)*lineHeight
	return
}

// WordWrap wraps text to fit within the given user-space width using word
// boundaries. Words longer than the width occupy a line of their own.
func (c *Context) WordWrap(s string, width float64) []string {
	var lines []string
	for _, paragraph := range splitLines(s) {
		fields := strings.Fields(paragraph)
		if len(fields) == 0 {
			lines = append(lines, "")
			continue
		}
		line := fields[0]
		for _, word := range fields[1:] {
			candidate := line + " " + word
			if w, _ := c.MeasureString(candidate); w > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// DrawStringWrapped wraps text to the given width and draws it with the
// requested alignment. The anchor (ax, ay) positions the whole text block
// relative to (x, y).
func (c *Context) DrawStringWrapped(s string, x, y, ax, ay, width, lineSpacing float64, align Align) error {
	lines := c.WordWrap(s, width)
	if len(lines) == 0 {
		return nil
	}

	_, lineHeight := c.MeasureString(s)
	n := float64(len(lines))
	h := n*lineHeight*lineSpacing - (lineSpacing-1)*lineHeight

	x -= ax * width
	y -= ay * h
	y += lineHeight // first baseline sits one line below the block top

	for _, line := range lines {
		drawX := x
		switch align {
		case AlignCenter:
			lw, _ := c.MeasureString(line)
			drawX = x + (width-lw)/2
		case AlignRight:
			lw, _ := c.MeasureString(line)
			drawX = x + width - lw
		}
		if err := c.DrawString(line, drawX, y); err != nil {
			return err
		}
		y += lineHeight * lineSpacing
	}
	return nil
}

// splitLines splits text by line breaks, normalizing \r\n and \r to \n.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
