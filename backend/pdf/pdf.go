// Package pdf provides the "pdf" drawing kind.
//
// Each drawing becomes a single-page PDF document of width x height
// points, built with github.com/jung-kurt/gofpdf. Text uses the core
// Helvetica, Times, and Courier fonts unless a TTF is supplied with
// easel.WithFontData.
//
// Import the package for its registration side effect:
//
//	import _ "github.com/easelgfx/easel/backend/pdf"
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/easelgfx/easel"
)

func init() {
	easel.Register(easel.KindPDF, func() easel.Surface { return &surface{} })
}

var (
	_ easel.Surface      = (*surface)(nil)
	_ easel.TextMeasurer = (*surface)(nil)
)

// surface writes device-space commands into a gofpdf document.
type surface struct {
	cfg easel.Config
	doc *gofpdf.Fpdf

	// tr maps UTF-8 to the cp1252 expected by the core fonts.
	tr         func(string) string
	customFont bool

	alpha  float64
	clips  int
	images int
}

func (s *surface) Begin(cfg easel.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("pdf: invalid page size %dx%d", cfg.Width, cfg.Height)
	}

	s.cfg = cfg
	s.alpha = 1
	s.doc = gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(cfg.Width), Ht: float64(cfg.Height)},
	})
	s.doc.SetMargins(0, 0, 0)
	s.doc.SetAutoPageBreak(false, 0)
	if cfg.Title != "" {
		s.doc.SetTitle(cfg.Title, true)
	}
	if cfg.FontData != nil {
		s.doc.AddUTF8FontFromBytes("custom", "", cfg.FontData)
		s.customFont = true
	}
	s.doc.AddPage()
	s.tr = s.doc.UnicodeTranslatorFromDescriptor("")

	if cfg.Background.A > 0 {
		s.FillRect(easel.NewRect(0, 0, float64(cfg.Width), float64(cfg.Height)), cfg.Background)
	}
	return s.doc.Error()
}

func (s *surface) Fill(p *easel.Path, c easel.RGBA, rule easel.FillRule) {
	r, g, b := rgb255(c)
	s.doc.SetFillColor(r, g, b)
	s.setAlpha(c.A)
	s.addPath(p)
	if rule == easel.FillRuleEvenOdd {
		s.doc.DrawPath("f*")
		return
	}
	s.doc.DrawPath("f")
}

func (s *surface) Stroke(p *easel.Path, c easel.RGBA, stroke easel.Stroke) {
	r, g, b := rgb255(c)
	s.doc.SetDrawColor(r, g, b)
	s.setAlpha(c.A)
	s.doc.SetLineWidth(stroke.Width)
	s.doc.SetLineCapStyle(capStyles[stroke.Cap])
	s.doc.SetLineJoinStyle(joinStyles[stroke.Join])
	if len(stroke.DashPattern) > 0 {
		s.doc.SetDashPattern(stroke.DashPattern, stroke.DashOffset)
	} else {
		s.doc.SetDashPattern([]float64{}, 0)
	}
	s.addPath(p)
	s.doc.DrawPath("S")
}

func (s *surface) FillRect(rect easel.Rect, c easel.RGBA) {
	r, g, b := rgb255(c)
	s.doc.SetFillColor(r, g, b)
	s.setAlpha(c.A)
	s.doc.Rect(rect.MinX, rect.MinY, rect.Width(), rect.Height(), "F")
}

func (s *surface) DrawImage(img image.Image, dst easel.Rect, opts easel.ImageOptions) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		easel.Logger().Warn("pdf: encoding embedded image failed", "error", err)
		return
	}

	s.images++
	name := fmt.Sprintf("easel-image-%d", s.images)
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	s.doc.RegisterImageOptionsReader(name, imgOpts, &buf)
	s.setAlpha(opts.Alpha)
	s.doc.ImageOptions(name, dst.MinX, dst.MinY, dst.Width(), dst.Height(), false, imgOpts, 0, "")
}

func (s *surface) DrawText(text string, x, y float64, f easel.Font, c easel.RGBA) {
	if text == "" {
		return
	}
	s.setFont(f)
	r, g, b := rgb255(c)
	s.doc.SetTextColor(r, g, b)
	s.setAlpha(c.A)
	s.doc.Text(x, y, s.textString(text))
}

// MeasureText returns the advance width in the PDF font and an
// approximate line height.
func (s *surface) MeasureText(text string, f easel.Font) (w, h float64) {
	s.setFont(f)
	return s.doc.GetStringWidth(s.textString(text)), f.Size * 1.2
}

func (s *surface) ClipRect(r easel.Rect) {
	s.doc.ClipRect(r.MinX, r.MinY, r.Width(), r.Height(), false)
	s.clips++
}

func (s *surface) ResetClip() {
	for ; s.clips > 0; s.clips-- {
		s.doc.ClipEnd()
	}
}

func (s *surface) Flush() error {
	s.ResetClip()
	if err := s.doc.Output(s.cfg.Output); err != nil {
		return fmt.Errorf("pdf: writing document: %w", err)
	}
	return nil
}

func (s *surface) Release() error {
	s.doc = nil
	return nil
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

var capStyles = [...]string{
	easel.LineCapButt:   "butt",
	easel.LineCapRound:  "round",
	easel.LineCapSquare: "square",
}

var joinStyles = [...]string{
	easel.LineJoinMiter: "miter",
	easel.LineJoinRound: "round",
	easel.LineJoinBevel: "bevel",
}

// addPath feeds a device-space path into the document's path builder.
func (s *surface) addPath(p *easel.Path) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case easel.MoveTo:
			s.doc.MoveTo(e.Point.X, e.Point.Y)
		case easel.LineTo:
			s.doc.LineTo(e.Point.X, e.Point.Y)
		case easel.QuadTo:
			s.doc.CurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case easel.CubicTo:
			s.doc.CurveBezierCubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case easel.Close:
			s.doc.ClosePath()
		}
	}
}

// setAlpha tracks the graphics-state alpha so repeated opaque operations
// do not accumulate ExtGState entries.
func (s *surface) setAlpha(a float64) {
	if a == s.alpha {
		return
	}
	s.doc.SetAlpha(a, "Normal")
	s.alpha = a
}

func (s *surface) setFont(f easel.Font) {
	if s.customFont {
		s.doc.SetFont("custom", "", f.Size)
		return
	}
	s.doc.SetFont(coreFamily(f.Family), coreStyle(f), f.Size)
}

// textString prepares text for the selected font: the core fonts need
// the cp1252 translator, embedded UTF-8 fonts take the string as is.
func (s *surface) textString(text string) string {
	if s.customFont {
		return text
	}
	return s.tr(text)
}

// coreFamily maps the portable family names onto the PDF core fonts.
func coreFamily(family string) string {
	switch strings.ToLower(family) {
	case "mono":
		return "Courier"
	case "serif":
		return "Times"
	default:
		return "Helvetica"
	}
}

func coreStyle(f easel.Font) string {
	switch {
	case f.Bold && f.Italic:
		return "BI"
	case f.Bold:
		return "B"
	case f.Italic:
		return "I"
	}
	return ""
}

func rgb255(c easel.RGBA) (r, g, b int) {
	n := c.Color()
	return int(n.R), int(n.G), int(n.B)
}
