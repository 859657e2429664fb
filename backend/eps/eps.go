// Package eps provides the "eps" drawing kind.
//
// Output is Encapsulated PostScript (EPSF-3.0, language level 2) written
// operator by operator; no external renderer is involved. Text is limited
// to the Latin-1 repertoire of the core PostScript fonts: the strings are
// transcoded with golang.org/x/text/encoding/charmap and unsupported
// runes are replaced. PostScript has no alpha channel, so colors are
// painted opaque and embedded images are composited over white.
//
// Import the package for its registration side effect:
//
//	import _ "github.com/easelgfx/easel/backend/eps"
package eps

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/easelgfx/easel"
)

func init() {
	easel.Register(easel.KindEPS, func() easel.Surface { return &surface{} })
}

var _ easel.Surface = (*surface)(nil)

// surface writes device-space commands as PostScript operators.
// Device y grows downward; PostScript y grows upward, so every emitted
// y coordinate is flipped against the canvas height.
type surface struct {
	cfg easel.Config
	w   io.Writer

	height    float64
	latin1    *encoding.Encoder
	fonts     map[string]int // PostScript base font -> /Fn alias
	clipDepth int
}

func (s *surface) Begin(cfg easel.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("eps: invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}

	s.cfg = cfg
	s.w = cfg.Output
	s.height = float64(cfg.Height)
	s.latin1 = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	s.fonts = make(map[string]int)

	fmt.Fprintln(s.w, "%!PS-Adobe-3.0 EPSF-3.0")
	fmt.Fprintf(s.w, "%%%%BoundingBox: 0 0 %d %d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(s.w, "%%%%HiResBoundingBox: 0 0 %d %d\n", cfg.Width, cfg.Height)
	if cfg.Title != "" {
		fmt.Fprintf(s.w, "%%%%Title: %s\n", sanitizeComment(cfg.Title))
	}
	fmt.Fprintln(s.w, "%%Creator: easel")
	fmt.Fprintln(s.w, "%%LanguageLevel: 2")
	fmt.Fprintln(s.w, "%%Pages: 1")
	fmt.Fprintf(s.w, "%%%%EndComments\n")
	fmt.Fprintln(s.w, "%%BeginProlog")
	fmt.Fprintln(s.w, "/EaselDict 16 dict def EaselDict begin")
	// latinize: /Base /Alias latinize - ; redefine a core font with the
	// ISOLatin1 encoding under a short alias.
	fmt.Fprintln(s.w, "/latinize { exch findfont dup length dict begin")
	fmt.Fprintln(s.w, "  { 1 index /FID ne { def } { pop pop } ifelse } forall")
	fmt.Fprintln(s.w, "  /Encoding ISOLatin1Encoding def currentdict end definefont pop } def")
	fmt.Fprintf(s.w, "%%%%EndProlog\n")
	fmt.Fprintln(s.w, "%%Page: 1 1")

	if cfg.Background.A > 0 {
		s.FillRect(easel.NewRect(0, 0, float64(cfg.Width), float64(cfg.Height)), cfg.Background)
	}
	return nil
}

func (s *surface) Fill(p *easel.Path, c easel.RGBA, rule easel.FillRule) {
	s.setColor(c)
	s.writePath(p)
	if rule == easel.FillRuleEvenOdd {
		fmt.Fprintln(s.w, "eofill")
		return
	}
	fmt.Fprintln(s.w, "fill")
}

func (s *surface) Stroke(p *easel.Path, c easel.RGBA, stroke easel.Stroke) {
	s.setColor(c)
	fmt.Fprintf(s.w, "%s setlinewidth %d setlinecap %d setlinejoin\n",
		num(stroke.Width), int(stroke.Cap), int(stroke.Join))
	if stroke.Join == easel.LineJoinMiter && stroke.MiterLimit >= 1 {
		fmt.Fprintf(s.w, "%s setmiterlimit\n", num(stroke.MiterLimit))
	}
	if len(stroke.DashPattern) > 0 {
		parts := make([]string, len(stroke.DashPattern))
		for i, d := range stroke.DashPattern {
			parts[i] = num(d)
		}
		fmt.Fprintf(s.w, "[%s] %s setdash\n", strings.Join(parts, " "), num(stroke.DashOffset))
	} else {
		fmt.Fprintln(s.w, "[] 0 setdash")
	}
	s.writePath(p)
	fmt.Fprintln(s.w, "stroke")
}

func (s *surface) FillRect(r easel.Rect, c easel.RGBA) {
	s.setColor(c)
	fmt.Fprintf(s.w, "%s %s %s %s rectfill\n",
		num(r.MinX), num(s.height-r.MaxY), num(r.Width()), num(r.Height()))
}

func (s *surface) DrawImage(img image.Image, dst easel.Rect, opts easel.ImageOptions) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 || dst.IsEmpty() {
		return
	}

	// Composite over white: colorimage has no transparency.
	flat := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(easel.White.Color()), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Over)

	fmt.Fprintln(s.w, "gsave")
	fmt.Fprintf(s.w, "%s %s translate %s %s scale\n",
		num(dst.MinX), num(s.height-dst.MaxY), num(dst.Width()), num(dst.Height()))
	fmt.Fprintf(s.w, "/picstr %d string def\n", w*3)
	fmt.Fprintf(s.w, "%d %d 8 [%d 0 0 %d 0 %d]\n", w, h, w, -h, h)
	fmt.Fprintln(s.w, "{ currentfile picstr readhexstring pop } false 3 colorimage")

	row := make([]byte, 0, w*6)
	for y := 0; y < h; y++ {
		row = row[:0]
		for x := 0; x < w; x++ {
			i := flat.PixOffset(x, y)
			row = appendHex(row, flat.Pix[i], flat.Pix[i+1], flat.Pix[i+2])
		}
		s.w.Write(row)
		io.WriteString(s.w, "\n")
	}
	fmt.Fprintln(s.w, "grestore")
}

func (s *surface) DrawText(text string, x, y float64, f easel.Font, c easel.RGBA) {
	if text == "" {
		return
	}

	s.setColor(c)
	fmt.Fprintf(s.w, "%s %s scalefont setfont\n", s.fontAlias(f), num(f.Size))
	fmt.Fprintf(s.w, "%s %s moveto\n", num(x), num(s.height-y))
	fmt.Fprintf(s.w, "(%s) show\n", s.escapeText(text))
}

func (s *surface) ClipRect(r easel.Rect) {
	if s.clipDepth == 0 {
		fmt.Fprintln(s.w, "gsave")
	}
	s.clipDepth++
	fmt.Fprintf(s.w, "%s %s %s %s rectclip\n",
		num(r.MinX), num(s.height-r.MaxY), num(r.Width()), num(r.Height()))
}

func (s *surface) ResetClip() {
	if s.clipDepth == 0 {
		return
	}
	// grestore drops the whole graphics state; every paint operation
	// re-emits color and stroke parameters, so nothing else is lost.
	fmt.Fprintln(s.w, "grestore")
	s.clipDepth = 0
}

func (s *surface) Flush() error {
	s.ResetClip()
	fmt.Fprintln(s.w, "showpage")
	fmt.Fprintf(s.w, "%%%%Trailer\n")
	fmt.Fprintln(s.w, "end")
	fmt.Fprintf(s.w, "%%%%EOF\n")
	return nil
}

func (s *surface) Release() error {
	s.w = nil
	s.fonts = nil
	return nil
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// writePath emits newpath followed by the path's segments, y flipped.
// The running point is tracked for the quadratic-to-cubic elevation.
func (s *surface) writePath(p *easel.Path) {
	fmt.Fprintln(s.w, "newpath")
	var cur, start easel.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case easel.MoveTo:
			fmt.Fprintf(s.w, "%s %s moveto\n", num(e.Point.X), num(s.height-e.Point.Y))
			cur, start = e.Point, e.Point
		case easel.LineTo:
			fmt.Fprintf(s.w, "%s %s lineto\n", num(e.Point.X), num(s.height-e.Point.Y))
			cur = e.Point
		case easel.QuadTo:
			// PostScript has no quadratic operator; elevate to cubic.
			c1, c2 := quadControls(cur, e.Control, e.Point)
			fmt.Fprintf(s.w, "%s %s %s %s %s %s curveto\n",
				num(c1.X), num(s.height-c1.Y), num(c2.X), num(s.height-c2.Y),
				num(e.Point.X), num(s.height-e.Point.Y))
			cur = e.Point
		case easel.CubicTo:
			fmt.Fprintf(s.w, "%s %s %s %s %s %s curveto\n",
				num(e.Control1.X), num(s.height-e.Control1.Y),
				num(e.Control2.X), num(s.height-e.Control2.Y),
				num(e.Point.X), num(s.height-e.Point.Y))
			cur = e.Point
		case easel.Close:
			fmt.Fprintln(s.w, "closepath")
			cur = start
		}
	}
}

// quadControls elevates a quadratic segment starting at p0 to the
// equivalent cubic control pair.
func quadControls(p0, q, p1 easel.Point) (c1, c2 easel.Point) {
	c1 = easel.Pt(p0.X+2.0/3.0*(q.X-p0.X), p0.Y+2.0/3.0*(q.Y-p0.Y))
	c2 = easel.Pt(p1.X+2.0/3.0*(q.X-p1.X), p1.Y+2.0/3.0*(q.Y-p1.Y))
	return
}

// fontAlias returns the /Fn alias for the font, emitting the Latin-1
// re-encoding on first use.
func (s *surface) fontAlias(f easel.Font) string {
	base := psFontName(f)
	n, ok := s.fonts[base]
	if !ok {
		n = len(s.fonts) + 1
		s.fonts[base] = n
		fmt.Fprintf(s.w, "/%s /F%d latinize\n", base, n)
	}
	return fmt.Sprintf("/F%d findfont", n)
}

// psFontName maps the portable family names onto core PostScript fonts.
func psFontName(f easel.Font) string {
	switch strings.ToLower(f.Family) {
	case "mono":
		switch {
		case f.Bold && f.Italic:
			return "Courier-BoldOblique"
		case f.Bold:
			return "Courier-Bold"
		case f.Italic:
			return "Courier-Oblique"
		}
		return "Courier"
	case "serif":
		switch {
		case f.Bold && f.Italic:
			return "Times-BoldItalic"
		case f.Bold:
			return "Times-Bold"
		case f.Italic:
			return "Times-Italic"
		}
		return "Times-Roman"
	default:
		switch {
		case f.Bold && f.Italic:
			return "Helvetica-BoldOblique"
		case f.Bold:
			return "Helvetica-Bold"
		case f.Italic:
			return "Helvetica-Oblique"
		}
		return "Helvetica"
	}
}

// escapeText transcodes to Latin-1 and escapes PostScript string syntax.
func (s *surface) escapeText(text string) string {
	encoded, err := s.latin1.String(text)
	if err != nil {
		encoded = text
	}

	var b strings.Builder
	for i := 0; i < len(encoded); i++ {
		ch := encoded[i]
		switch {
		case ch == '(' || ch == ')' || ch == '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case ch < 32 || ch > 126:
			fmt.Fprintf(&b, "\\%03o", ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func (s *surface) setColor(c easel.RGBA) {
	n := c.Color()
	fmt.Fprintf(s.w, "%s %s %s setrgbcolor\n",
		num(float64(n.R)/255), num(float64(n.G)/255), num(float64(n.B)/255))
}

// num formats a PostScript number without trailing float noise.
func num(v float64) string {
	out := fmt.Sprintf("%.4f", v)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}

// sanitizeComment strips newlines from DSC comment values.
func sanitizeComment(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.ReplaceAll(v, "\r", " ")
}

const hexDigits = "0123456789abcdef"

func appendHex(dst []byte, vals ...byte) []byte {
	for _, v := range vals {
		dst = append(dst, hexDigits[v>>4], hexDigits[v&0x0f])
	}
	return dst
}
