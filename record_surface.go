package easel

import "image"

// recordSurface captures commands instead of producing output.
// It backs the built-in "record" drawing kind and is the source for
// Snapshot and DrawRecording.
//
// The surface tracks ink extents as commands arrive so that boundless
// recordings can report the area they actually draw.
type recordSurface struct {
	cfg       Config
	width     int
	height    int
	boundless bool
	commands  []Command

	// Current clip, maintained so ink extents exclude clipped-away ink.
	clip    Rect
	hasClip bool

	ink    Rect
	hasInk bool
}

// Interface assertions.
var (
	_ Surface          = (*recordSurface)(nil)
	_ RecordingSurface = (*recordSurface)(nil)
)

func init() {
	Register(KindRecord, func() Surface { return &recordSurface{} })
}

// Begin implements Surface.
func (s *recordSurface) Begin(cfg Config) error {
	s.cfg = cfg
	s.width = cfg.Width
	s.height = cfg.Height
	s.boundless = cfg.Width <= 0 || cfg.Height <= 0
	if s.boundless {
		s.width, s.height = 0, 0
	}
	s.commands = make([]Command, 0, 64)
	if cfg.Background.A > 0 && !s.boundless {
		s.FillRect(NewRect(0, 0, float64(s.width), float64(s.height)), cfg.Background)
	}
	return nil
}

// growInk extends the ink extents by the given command bounds, clipped to
// the active clip region and, for bounded recordings, to the canvas.
func (s *recordSurface) growInk(r Rect) {
	if s.hasClip {
		r = r.Intersect(s.clip)
	}
	if !s.boundless {
		r = r.Intersect(NewRect(0, 0, float64(s.width), float64(s.height)))
	}
	if r.IsEmpty() {
		return
	}
	if !s.hasInk {
		s.ink = r
		s.hasInk = true
		return
	}
	s.ink = s.ink.Union(r)
}

// Fill implements Surface.
func (s *recordSurface) Fill(path *Path, color RGBA, rule FillRule) {
	if bounds, ok := path.Bounds(); ok {
		s.growInk(bounds)
	}
	s.commands = append(s.commands, FillCommand{Path: path, Color: color, Rule: rule})
}

// Stroke implements Surface.
func (s *recordSurface) Stroke(path *Path, color RGBA, stroke Stroke) {
	if bounds, ok := path.Bounds(); ok {
		half := stroke.Width / 2
		s.growInk(bounds.Inset(-half, -half))
	}
	s.commands = append(s.commands, StrokeCommand{Path: path, Color: color, Stroke: stroke})
}

// FillRect implements Surface.
func (s *recordSurface) FillRect(rect Rect, color RGBA) {
	s.growInk(rect)
	s.commands = append(s.commands, FillRectCommand{Rect: rect, Color: color})
}

// DrawImage implements Surface.
func (s *recordSurface) DrawImage(img image.Image, dst Rect, opts ImageOptions) {
	if img == nil {
		return
	}
	s.growInk(dst)
	s.commands = append(s.commands, DrawImageCommand{Image: img, Dst: dst, Options: opts})
}

// DrawText implements Surface.
func (s *recordSurface) DrawText(text string, x, y float64, font Font, color RGBA) {
	s.growInk(approxTextRect(text, x, y, font))
	s.commands = append(s.commands, DrawTextCommand{Text: text, X: x, Y: y, Font: font, Color: color})
}

// ClipRect implements Surface.
func (s *recordSurface) ClipRect(rect Rect) {
	if s.hasClip {
		s.clip = s.clip.Intersect(rect)
	} else {
		s.clip = rect
		s.hasClip = true
	}
	s.commands = append(s.commands, ClipRectCommand{Rect: rect})
}

// ResetClip implements Surface.
func (s *recordSurface) ResetClip() {
	s.hasClip = false
	s.commands = append(s.commands, ResetClipCommand{})
}

// Flush implements Surface. Recordings have no encoded output; flushing
// only logs the final command count.
func (s *recordSurface) Flush() error {
	Logger().Debug("easel: recording sealed",
		"commands", len(s.commands), "boundless", s.boundless)
	return nil
}

// Release implements Surface.
func (s *recordSurface) Release() error {
	s.commands = nil
	return nil
}

// Capture implements RecordingSurface. The returned recording is a
// consistent snapshot of the commands recorded so far; the surface may
// keep recording afterwards.
func (s *recordSurface) Capture() *Recording {
	cmds := make([]Command, len(s.commands))
	copy(cmds, s.commands)
	return &Recording{
		width:     s.width,
		height:    s.height,
		boundless: s.boundless,
		commands:  cmds,
		ink:       s.ink,
		hasInk:    s.hasInk,
	}
}

// approxTextRect estimates the device-space box a text run covers.
// Average glyph advance is roughly 0.6 of the font size and line height
// roughly 1.2; surfaces with real font metrics may ink slightly outside.
func approxTextRect(text string, x, y float64, font Font) Rect {
	w := float64(len([]rune(text))) * font.Size * 0.6
	return NewRect(x, y-font.Size, w, font.Size*1.2)
}
