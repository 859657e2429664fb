package easel

// Recording is an immutable container for captured drawing commands.
// Recordings come from drawings of the "record" kind and can be replayed
// onto any Surface, either verbatim or through a projection that scales
// and offsets every command.
//
// Commands are stored in device space: the source drawing's transform was
// already applied when each command was emitted.
type Recording struct {
	width, height int
	boundless     bool
	commands      []Command
	ink           Rect
	hasInk        bool
}

// Width returns the width of the recording canvas.
// It is zero for a boundless recording.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
// It is zero for a boundless recording.
func (r *Recording) Height() int {
	return r.height
}

// Boundless returns true if the recording has no fixed extent.
func (r *Recording) Boundless() bool {
	return r.boundless
}

// Commands returns the recorded commands.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// InkExtents returns the bounding box of everything the recording draws,
// clipped to the clip regions active when each command was recorded.
// Returns (zero Rect, false) if the recording draws nothing.
//
// Stroke and text extents are approximations: strokes are padded by half
// the line width and text by metrics derived from the font size.
func (r *Recording) InkExtents() (Rect, bool) {
	return r.ink, r.hasInk
}

// Replay plays the recording verbatim onto an already configured surface.
// The surface's clip state is modified by any clip commands the recording
// contains.
func (r *Recording) Replay(dst Surface) {
	Logger().Debug("easel: replaying recording",
		"commands", len(r.commands), "boundless", r.boundless)
	for _, cmd := range r.commands {
		playCommand(dst, cmd)
	}
}

// replayProjected plays the recording onto dst with every command mapped
// through the projection matrix p.
//
// Paths, rectangles under scale/translate projections, and text positions
// are mapped exactly. Under rotating or shearing projections, image and
// clip rectangles degrade to the bounding box of their transformed corners
// and filled rectangles are converted to paths.
func (r *Recording) replayProjected(dst Surface, p Matrix) {
	if p.IsIdentity() {
		r.Replay(dst)
		return
	}

	axis := p.IsScaleTranslation()
	factor := p.ScaleFactor()

	Logger().Debug("easel: replaying recording with projection",
		"commands", len(r.commands), "scale", factor, "exact", axis)

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillCommand:
			dst.Fill(c.Path.Transform(p), c.Color, c.Rule)
		case StrokeCommand:
			dst.Stroke(c.Path.Transform(p), c.Color, c.Stroke.scaled(factor))
		case FillRectCommand:
			if axis {
				dst.FillRect(p.TransformRect(c.Rect), c.Color)
			} else {
				dst.Fill(rectPath(c.Rect).Transform(p), c.Color, FillRuleNonZero)
			}
		case DrawImageCommand:
			dst.DrawImage(c.Image, p.TransformRect(c.Dst), c.Options)
		case DrawTextCommand:
			x, y := p.TransformPoint(c.X, c.Y)
			dst.DrawText(c.Text, x, y, c.Font.scaled(factor), c.Color)
		case ClipRectCommand:
			dst.ClipRect(p.TransformRect(c.Rect))
		case ResetClipCommand:
			dst.ResetClip()
		}
	}
}

// playCommand dispatches a single command to a surface unchanged.
func playCommand(dst Surface, cmd Command) {
	switch c := cmd.(type) {
	case FillCommand:
		dst.Fill(c.Path, c.Color, c.Rule)
	case StrokeCommand:
		dst.Stroke(c.Path, c.Color, c.Stroke)
	case FillRectCommand:
		dst.FillRect(c.Rect, c.Color)
	case DrawImageCommand:
		dst.DrawImage(c.Image, c.Dst, c.Options)
	case DrawTextCommand:
		dst.DrawText(c.Text, c.X, c.Y, c.Font, c.Color)
	case ClipRectCommand:
		dst.ClipRect(c.Rect)
	case ResetClipCommand:
		dst.ResetClip()
	}
}

// rectPath converts a rectangle to a closed path.
func rectPath(r Rect) *Path {
	p := NewPath()
	p.MoveTo(r.MinX, r.MinY)
	p.LineTo(r.MaxX, r.MinY)
	p.LineTo(r.MaxX, r.MaxY)
	p.LineTo(r.MinX, r.MaxY)
	p.Close()
	return p
}
