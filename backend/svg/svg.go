// Package svg provides the "svg" drawing kind.
//
// Commands are written as SVG elements with github.com/ajstarks/svgo.
// Paths keep full float precision through path data; clipping uses
// clipPath definitions referenced by nested groups.
//
// Import the package for its registration side effect:
//
//	import _ "github.com/easelgfx/easel/backend/svg"
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/easelgfx/easel"
)

func init() {
	easel.Register(easel.KindSVG, func() easel.Surface { return &surface{} })
}

var _ easel.Surface = (*surface)(nil)

// surface writes device-space commands as SVG elements.
type surface struct {
	cfg    easel.Config
	canvas *svgo.SVG

	clipID    int
	openClips int
}

func (s *surface) Begin(cfg easel.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}

	s.cfg = cfg
	s.canvas = svgo.New(cfg.Output)
	s.canvas.Start(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		s.canvas.Title(cfg.Title)
	}
	if cfg.Background.A > 0 {
		s.FillRect(easel.NewRect(0, 0, float64(cfg.Width), float64(cfg.Height)), cfg.Background)
	}
	return nil
}

func (s *surface) Fill(p *easel.Path, c easel.RGBA, rule easel.FillRule) {
	style := fmt.Sprintf(`fill="%s" fill-opacity="%s" stroke="none"`, hexColor(c), ftoa(c.A))
	if rule == easel.FillRuleEvenOdd {
		style += ` fill-rule="evenodd"`
	}
	s.canvas.Path(pathData(p), style)
}

func (s *surface) Stroke(p *easel.Path, c easel.RGBA, stroke easel.Stroke) {
	var b strings.Builder
	fmt.Fprintf(&b, `fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s"`,
		hexColor(c), ftoa(c.A), ftoa(stroke.Width))
	if stroke.Cap != easel.LineCapButt {
		fmt.Fprintf(&b, ` stroke-linecap="%s"`, capNames[stroke.Cap])
	}
	if stroke.Join != easel.LineJoinMiter {
		fmt.Fprintf(&b, ` stroke-linejoin="%s"`, joinNames[stroke.Join])
	}
	if stroke.Join == easel.LineJoinMiter && stroke.MiterLimit > 0 {
		fmt.Fprintf(&b, ` stroke-miterlimit="%s"`, ftoa(stroke.MiterLimit))
	}
	if len(stroke.DashPattern) > 0 {
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, dashArray(stroke.DashPattern))
		if stroke.DashOffset != 0 {
			fmt.Fprintf(&b, ` stroke-dashoffset="%s"`, ftoa(stroke.DashOffset))
		}
	}
	s.canvas.Path(pathData(p), b.String())
}

func (s *surface) FillRect(r easel.Rect, c easel.RGBA) {
	d := fmt.Sprintf("M%s,%s H%s V%s H%s Z",
		ftoa(r.MinX), ftoa(r.MinY), ftoa(r.MaxX), ftoa(r.MaxY), ftoa(r.MinX))
	s.canvas.Path(d, fmt.Sprintf(`fill="%s" fill-opacity="%s" stroke="none"`, hexColor(c), ftoa(c.A)))
}

func (s *surface) DrawImage(img image.Image, dst easel.Rect, opts easel.ImageOptions) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		easel.Logger().Warn("svg: encoding embedded image failed", "error", err)
		return
	}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	b := img.Bounds()
	sx := dst.Width() / float64(b.Dx())
	sy := dst.Height() / float64(b.Dy())

	var style []string
	if opts.Alpha < 1 {
		style = append(style, fmt.Sprintf(`opacity="%s"`, ftoa(opts.Alpha)))
	}
	if opts.Interpolation == easel.InterpolationNearest {
		style = append(style, `image-rendering="pixelated"`)
	}

	s.canvas.Gtransform(fmt.Sprintf("translate(%s,%s) scale(%s,%s)",
		ftoa(dst.MinX), ftoa(dst.MinY), ftoa(sx), ftoa(sy)))
	s.canvas.Image(0, 0, b.Dx(), b.Dy(), uri, style...)
	s.canvas.Gend()
}

func (s *surface) DrawText(text string, x, y float64, f easel.Font, c easel.RGBA) {
	if text == "" {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, `font-family="%s" font-size="%spx" fill="%s" fill-opacity="%s"`,
		svgFamily(f.Family), ftoa(f.Size), hexColor(c), ftoa(c.A))
	if f.Bold {
		b.WriteString(` font-weight="bold"`)
	}
	if f.Italic {
		b.WriteString(` font-style="italic"`)
	}

	// svgo text coordinates are integers; a translated group keeps the
	// subpixel baseline position.
	s.canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", ftoa(x), ftoa(y)))
	s.canvas.Text(0, 0, text, b.String())
	s.canvas.Gend()
}

func (s *surface) ClipRect(r easel.Rect) {
	s.clipID++
	id := fmt.Sprintf("easelclip%d", s.clipID)

	s.canvas.ClipPath(fmt.Sprintf(`id="%s"`, id))
	d := fmt.Sprintf("M%s,%s H%s V%s H%s Z",
		ftoa(r.MinX), ftoa(r.MinY), ftoa(r.MaxX), ftoa(r.MaxY), ftoa(r.MinX))
	s.canvas.Path(d)
	s.canvas.ClipEnd()

	// Nested groups intersect their clip paths.
	s.canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	s.openClips++
}

func (s *surface) ResetClip() {
	for ; s.openClips > 0; s.openClips-- {
		s.canvas.Gend()
	}
}

func (s *surface) Flush() error {
	s.ResetClip()
	s.canvas.End()
	return nil
}

func (s *surface) Release() error {
	s.canvas = nil
	return nil
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

var capNames = [...]string{
	easel.LineCapButt:   "butt",
	easel.LineCapRound:  "round",
	easel.LineCapSquare: "square",
}

var joinNames = [...]string{
	easel.LineJoinMiter: "miter",
	easel.LineJoinRound: "round",
	easel.LineJoinBevel: "bevel",
}

// pathData renders a path as SVG path data.
func pathData(p *easel.Path) string {
	var b strings.Builder
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case easel.MoveTo:
			fmt.Fprintf(&b, "M%s,%s ", ftoa(e.Point.X), ftoa(e.Point.Y))
		case easel.LineTo:
			fmt.Fprintf(&b, "L%s,%s ", ftoa(e.Point.X), ftoa(e.Point.Y))
		case easel.QuadTo:
			fmt.Fprintf(&b, "Q%s,%s %s,%s ",
				ftoa(e.Control.X), ftoa(e.Control.Y), ftoa(e.Point.X), ftoa(e.Point.Y))
		case easel.CubicTo:
			fmt.Fprintf(&b, "C%s,%s %s,%s %s,%s ",
				ftoa(e.Control1.X), ftoa(e.Control1.Y),
				ftoa(e.Control2.X), ftoa(e.Control2.Y),
				ftoa(e.Point.X), ftoa(e.Point.Y))
		case easel.Close:
			b.WriteString("Z ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func dashArray(dashes []float64) string {
	parts := make([]string, len(dashes))
	for i, d := range dashes {
		parts[i] = ftoa(d)
	}
	return strings.Join(parts, ",")
}

// ftoa formats a coordinate with enough precision for subpixel layout
// without the noise of full float formatting.
func ftoa(v float64) string {
	out := fmt.Sprintf("%.4f", v)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}

func hexColor(c easel.RGBA) string {
	n := c.Color()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func svgFamily(family string) string {
	switch strings.ToLower(family) {
	case "mono":
		return "monospace"
	case "serif":
		return "serif"
	default:
		return "sans-serif"
	}
}
