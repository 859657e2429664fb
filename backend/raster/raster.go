// Package raster provides the "image" and "png" drawing kinds.
//
// Paths are rasterized with github.com/srwiley/rasterx onto an RGBA
// canvas; text is drawn with golang.org/x/image/font using the embedded
// Go fonts (or a font supplied with easel.WithFontData); images are
// scaled with github.com/disintegration/imaging. The png kind encodes the
// canvas with image/png when the drawing is finished.
//
// Import the package for its registration side effect:
//
//	import _ "github.com/easelgfx/easel/backend/raster"
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/easelgfx/easel"
)

func init() {
	easel.Register(easel.KindImage, func() easel.Surface { return &surface{} })
	easel.Register(easel.KindPNG, func() easel.Surface { return &surface{encodePNG: true} })
}

var (
	_ easel.Surface      = (*surface)(nil)
	_ easel.ImageSurface = (*surface)(nil)
	_ easel.TextMeasurer = (*surface)(nil)
)

// surface rasterizes device-space commands onto an RGBA canvas.
type surface struct {
	cfg       easel.Config
	encodePNG bool

	img  *image.RGBA
	clip image.Rectangle

	fonts map[fontKey]*opentype.Font
}

func (s *surface) Begin(cfg easel.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}

	s.cfg = cfg
	s.img = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	s.clip = s.img.Bounds()

	if cfg.Background.A > 0 {
		draw.Draw(s.img, s.img.Bounds(), image.NewUniform(cfg.Background.Color()), image.Point{}, draw.Src)
	}
	return nil
}

// Image returns the live canvas.
func (s *surface) Image() *image.RGBA {
	return s.img
}

// dst returns the canvas restricted to the current clip.
func (s *surface) dst() *image.RGBA {
	if s.clip == s.img.Bounds() {
		return s.img
	}
	return s.img.SubImage(s.clip).(*image.RGBA)
}

func (s *surface) Fill(p *easel.Path, c easel.RGBA, rule easel.FillRule) {
	target := s.dst()
	scanner := rasterx.NewScannerGV(s.cfg.Width, s.cfg.Height, target, target.Bounds())
	filler := rasterx.NewFiller(s.cfg.Width, s.cfg.Height, scanner)
	filler.SetWinding(rule == easel.FillRuleNonZero)
	addPath(filler, p)
	scanner.SetColor(c.Color())
	filler.Draw()
}

func (s *surface) Stroke(p *easel.Path, c easel.RGBA, stroke easel.Stroke) {
	target := s.dst()
	scanner := rasterx.NewScannerGV(s.cfg.Width, s.cfg.Height, target, target.Bounds())
	dasher := rasterx.NewDasher(s.cfg.Width, s.cfg.Height, scanner)

	capFn := capFuncs[stroke.Cap]
	gap := rasterx.FlatGap
	if stroke.Join == easel.LineJoinRound {
		gap = rasterx.RoundGap
	}
	dasher.SetStroke(
		toFixed(stroke.Width), toFixed(stroke.MiterLimit),
		capFn, capFn, gap, joinModes[stroke.Join],
		stroke.DashPattern, stroke.DashOffset,
	)
	addPath(dasher, p)
	scanner.SetColor(c.Color())
	dasher.Draw()
}

func (s *surface) FillRect(r easel.Rect, c easel.RGBA) {
	if ir, ok := integerRect(r); ok {
		ir = ir.Intersect(s.clip)
		if !ir.Empty() {
			draw.Draw(s.img, ir, image.NewUniform(c.Color()), image.Point{}, draw.Over)
		}
		return
	}

	p := easel.NewPath()
	p.MoveTo(r.MinX, r.MinY)
	p.LineTo(r.MaxX, r.MinY)
	p.LineTo(r.MaxX, r.MaxY)
	p.LineTo(r.MinX, r.MaxY)
	p.Close()
	s.Fill(p, c, easel.FillRuleNonZero)
}

func (s *surface) DrawImage(img image.Image, dstRect easel.Rect, opts easel.ImageOptions) {
	w := int(math.Round(dstRect.Width()))
	h := int(math.Round(dstRect.Height()))
	if w < 1 || h < 1 {
		return
	}

	filter := imaging.Linear
	if opts.Interpolation == easel.InterpolationNearest {
		filter = imaging.NearestNeighbor
	}
	src := img
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		src = imaging.Resize(img, w, h, filter)
	}

	x := int(math.Round(dstRect.MinX))
	y := int(math.Round(dstRect.MinY))
	ir := image.Rect(x, y, x+w, y+h).Intersect(s.clip)
	if ir.Empty() {
		return
	}
	sp := ir.Min.Sub(image.Pt(x, y)).Add(src.Bounds().Min)

	if opts.Alpha >= 1 {
		draw.Draw(s.img, ir, src, sp, draw.Over)
		return
	}
	if opts.Alpha <= 0 {
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(opts.Alpha * 255))})
	draw.DrawMask(s.img, ir, src, sp, mask, image.Point{}, draw.Over)
}

func (s *surface) DrawText(text string, x, y float64, f easel.Font, c easel.RGBA) {
	if text == "" {
		return
	}

	face, err := s.newFace(f)
	if err != nil {
		easel.Logger().Warn("raster: loading font failed", "family", f.Family, "error", err)
		return
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  s.dst(),
		Src:  image.NewUniform(c.Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(text)
}

// MeasureText returns the advance width and the ascent+descent height of
// the text at the font's size.
func (s *surface) MeasureText(text string, f easel.Font) (w, h float64) {
	face, err := s.newFace(f)
	if err != nil {
		w = float64(len([]rune(text))) * f.Size * 0.6
		return w, f.Size * 1.2
	}
	defer face.Close()

	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return float64(adv) / 64, float64(m.Ascent+m.Descent) / 64
}

func (s *surface) ClipRect(r easel.Rect) {
	ir := image.Rect(
		int(math.Floor(r.MinX)), int(math.Floor(r.MinY)),
		int(math.Ceil(r.MaxX)), int(math.Ceil(r.MaxY)),
	)
	s.clip = s.clip.Intersect(ir)
}

func (s *surface) ResetClip() {
	s.clip = s.img.Bounds()
}

func (s *surface) Flush() error {
	if !s.encodePNG {
		return nil
	}
	enc := png.Encoder{CompressionLevel: s.cfg.PNGCompression}
	if err := enc.Encode(s.cfg.Output, s.img); err != nil {
		return fmt.Errorf("raster: encoding png: %w", err)
	}
	return nil
}

func (s *surface) Release() error {
	s.fonts = nil
	return nil
}

// ----------------------------------------------------------------------------
// Path conversion
// ----------------------------------------------------------------------------

// addPath feeds a device-space path into a rasterx adder.
func addPath(adder rasterx.Adder, p *easel.Path) {
	open := false
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case easel.MoveTo:
			if open {
				adder.Stop(false)
			}
			adder.Start(fixedPoint(e.Point))
			open = true
		case easel.LineTo:
			adder.Line(fixedPoint(e.Point))
		case easel.QuadTo:
			adder.QuadBezier(fixedPoint(e.Control), fixedPoint(e.Point))
		case easel.CubicTo:
			adder.CubeBezier(fixedPoint(e.Control1), fixedPoint(e.Control2), fixedPoint(e.Point))
		case easel.Close:
			adder.Stop(true)
			open = false
		}
	}
	if open {
		adder.Stop(false)
	}
}

func fixedPoint(p easel.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// integerRect reports whether r aligns to the pixel grid, and converts it.
func integerRect(r easel.Rect) (image.Rectangle, bool) {
	x0, y0 := math.Round(r.MinX), math.Round(r.MinY)
	x1, y1 := math.Round(r.MaxX), math.Round(r.MaxY)
	if x0 != r.MinX || y0 != r.MinY || x1 != r.MaxX || y1 != r.MaxY {
		return image.Rectangle{}, false
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1)), true
}

// ----------------------------------------------------------------------------
// Fonts
// ----------------------------------------------------------------------------

var capFuncs = [...]rasterx.CapFunc{
	easel.LineCapButt:   rasterx.ButtCap,
	easel.LineCapRound:  rasterx.RoundCap,
	easel.LineCapSquare: rasterx.SquareCap,
}

var joinModes = [...]rasterx.JoinMode{
	easel.LineJoinMiter: rasterx.Miter,
	easel.LineJoinRound: rasterx.Round,
	easel.LineJoinBevel: rasterx.Bevel,
}

type fontKey struct {
	family string
	bold   bool
	italic bool
}

// newFace builds a font.Face at the font's size. Faces hold glyph caches,
// so callers must Close them.
func (s *surface) newFace(f easel.Font) (font.Face, error) {
	parsed, err := s.parsedFont(f)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// parsedFont returns the cached sfnt font for a family and style.
// A font supplied through WithFontData overrides every family.
func (s *surface) parsedFont(f easel.Font) (*opentype.Font, error) {
	key := fontKey{family: strings.ToLower(f.Family), bold: f.Bold, italic: f.Italic}
	data := builtinTTF(key)
	if s.cfg.FontData != nil {
		key = fontKey{family: "custom"}
		data = s.cfg.FontData
	}

	if p, ok := s.fonts[key]; ok {
		return p, nil
	}
	p, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parsing font: %w", err)
	}
	if s.fonts == nil {
		s.fonts = make(map[fontKey]*opentype.Font)
	}
	s.fonts[key] = p
	return p, nil
}

// builtinTTF selects one of the embedded Go fonts. The "mono" family maps
// to Go Mono; every other family uses the proportional Go font with the
// requested style.
func builtinTTF(key fontKey) []byte {
	if key.family == "mono" {
		return gomono.TTF
	}
	switch {
	case key.bold && key.italic:
		return gobolditalic.TTF
	case key.bold:
		return gobold.TTF
	case key.italic:
		return goitalic.TTF
	}
	return goregular.TTF
}
