package easel

import "image"

// Op identifies the type of a recorded command.
type Op uint8

const (
	// OpFill fills a path.
	OpFill Op = iota
	// OpStroke strokes a path.
	OpStroke
	// OpFillRect fills an axis-aligned rectangle.
	OpFillRect
	// OpDrawImage draws an image into a destination rectangle.
	OpDrawImage
	// OpDrawText draws a text run at a baseline position.
	OpDrawText
	// OpClipRect intersects the clip with an axis-aligned rectangle.
	OpClipRect
	// OpResetClip removes any clipping region.
	OpResetClip
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpFill:      "Fill",
	OpStroke:    "Stroke",
	OpFillRect:  "FillRect",
	OpDrawImage: "DrawImage",
	OpDrawText:  "DrawText",
	OpClipRect:  "ClipRect",
	OpResetClip: "ResetClip",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded command types.
// Commands are fully resolved at emission time: they carry their own paint
// and stroke state in device coordinates, so replaying a command sequence
// needs no surrounding state machine beyond the clip.
type Command interface {
	// Type returns the Op for this command.
	Type() Op
}

// FillCommand fills a device-space path with a solid color.
type FillCommand struct {
	// Path is the path to fill, in device coordinates.
	Path *Path
	// Color is the fill color.
	Color RGBA
	// Rule specifies the fill rule (non-zero or even-odd).
	Rule FillRule
}

// Type implements Command.
func (FillCommand) Type() Op { return OpFill }

// StrokeCommand strokes a device-space path with a solid color.
type StrokeCommand struct {
	// Path is the path to stroke, in device coordinates.
	Path *Path
	// Color is the stroke color.
	Color RGBA
	// Stroke contains the stroke style with device-unit widths.
	Stroke Stroke
}

// Type implements Command.
func (StrokeCommand) Type() Op { return OpStroke }

// FillRectCommand fills an axis-aligned rectangle.
// This is an optimization for the common case; surfaces may render it
// without path machinery.
type FillRectCommand struct {
	// Rect is the rectangle to fill, in device coordinates.
	Rect Rect
	// Color is the fill color.
	Color RGBA
}

// Type implements Command.
func (FillRectCommand) Type() Op { return OpFillRect }

// DrawImageCommand draws an image into a destination rectangle.
type DrawImageCommand struct {
	// Image is the source image.
	Image image.Image
	// Dst is the destination rectangle in device coordinates.
	Dst Rect
	// Options contains rendering options (interpolation, alpha).
	Options ImageOptions
}

// Type implements Command.
func (DrawImageCommand) Type() Op { return OpDrawImage }

// DrawTextCommand draws a text run at a baseline position.
type DrawTextCommand struct {
	// Text is the string to render.
	Text string
	// X is the horizontal position of the baseline origin.
	X float64
	// Y is the vertical position of the baseline.
	Y float64
	// Font is the font state with a device-unit size.
	Font Font
	// Color is the text color.
	Color RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() Op { return OpDrawText }

// ClipRectCommand intersects the clipping region with a rectangle.
type ClipRectCommand struct {
	// Rect is the clip rectangle in device coordinates.
	Rect Rect
}

// Type implements Command.
func (ClipRectCommand) Type() Op { return OpClipRect }

// ResetClipCommand removes any clipping region.
type ResetClipCommand struct{}

// Type implements Command.
func (ResetClipCommand) Type() Op { return OpResetClip }
