// Command easeldemo demonstrates the easel drawing library.
//
// It renders the same scene through any registered backend:
//
//	easeldemo -kind png -output demo.png
//	easeldemo -kind pdf -output demo.pdf
//	easeldemo -kind svg -zoom 2 -output demo.svg
//
// With -zoom the scene is first drawn onto a boundless recording and then
// exported through a snapshot at the requested scale.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/easelgfx/easel"
	_ "github.com/easelgfx/easel/backend/eps"
	_ "github.com/easelgfx/easel/backend/pdf"
	_ "github.com/easelgfx/easel/backend/raster"
	_ "github.com/easelgfx/easel/backend/svg"
)

func main() {
	var (
		kind   = flag.String("kind", easel.KindPNG, "drawing kind: "+strings.Join(easel.Kinds(), ", "))
		output = flag.String("output", "demo.png", "output file")
		width  = flag.Int("width", 800, "canvas width")
		height = flag.Int("height", 600, "canvas height")
		zoom   = flag.Float64("zoom", 0, "render through a recording snapshot at this scale")
	)
	flag.Parse()

	var err error
	if *zoom > 0 {
		err = renderSnapshot(*kind, *output, *width, *height, *zoom)
	} else {
		err = render(*kind, *output, *width, *height)
	}
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}
	log.Printf("demo written to %s", *output)
}

func render(kind, output string, w, h int) error {
	d, err := easel.New(kind, output, w, h,
		easel.WithTitle("easel demo"),
		easel.WithBackground(easel.RGB(0.98, 0.97, 0.95)))
	if err != nil {
		return err
	}
	paintScene(d, float64(w), float64(h))
	return easel.Finish()
}

func renderSnapshot(kind, output string, w, h int, zoom float64) error {
	rec, err := easel.NewRecording(w, h,
		easel.WithBackground(easel.RGB(0.98, 0.97, 0.95)))
	if err != nil {
		return err
	}
	paintScene(rec, float64(w), float64(h))

	// A zero box snapshots the full canvas; the recording stays active
	// afterwards and still has to be finished.
	if _, err := easel.Snapshot(kind, output, easel.Rect{}, zoom, easel.WithTitle("easel demo")); err != nil {
		return err
	}
	return easel.Finish()
}

func paintScene(d *easel.Drawing, w, h float64) {
	drawShapes(d)
	drawRosette(d, w-180, 160)
	drawCurves(d, 60, h-180)
	drawClipped(d, w-320, h-220)
	drawSprite(d, 60, 40)

	d.SetRGB(0.15, 0.15, 0.2)
	d.SetFontSize(28)
	_ = d.DrawString("easel", 60, 120)
	d.SetFontSize(13)
	d.SetFontStyle(false, true)
	_ = d.DrawString("one scene, many backends", 60, 142)
	d.SetFontStyle(false, false)
}

func drawShapes(d *easel.Drawing) {
	// Overlapping translucent circles
	d.SetRGBA(0.9, 0.3, 0.3, 0.75)
	d.DrawCircle(220, 220, 70)
	_ = d.Fill()

	d.SetRGBA(0.3, 0.8, 0.35, 0.75)
	d.DrawCircle(280, 220, 70)
	_ = d.Fill()

	d.SetRGBA(0.3, 0.4, 0.9, 0.75)
	d.DrawCircle(250, 275, 70)
	_ = d.Fill()

	d.SetRGB(0.95, 0.75, 0.1)
	d.DrawRoundedRectangle(380, 170, 140, 90, 18)
	_ = d.Fill()

	d.SetRGB(0.2, 0.2, 0.25)
	d.SetLineWidth(3)
	d.DrawRoundedRectangle(380, 170, 140, 90, 18)
	_ = d.Stroke()
}

func drawRosette(d *easel.Drawing, cx, cy float64) {
	for i := 0; i < 8; i++ {
		d.Push()
		d.Translate(cx, cy)
		d.Rotate(float64(i) * math.Pi / 4)
		d.SetColor(easel.HSL(float64(i)*45, 0.7, 0.55).Color())
		d.DrawRectangle(20, -14, 70, 28)
		_ = d.Fill()
		d.Pop()
	}

	d.SetRGB(0.2, 0.2, 0.25)
	d.SetLineWidth(2)
	d.DrawCircle(cx, cy, 12)
	_ = d.Stroke()
}

func drawCurves(d *easel.Drawing, x, y float64) {
	d.Push()
	d.Translate(x, y)

	d.SetRGB(0.9, 0.45, 0.1)
	d.SetLineWidth(5)
	d.MoveTo(0, 0)
	d.CubicTo(60, -60, 120, 60, 180, 0)
	d.CubicTo(240, -40, 300, 40, 360, 0)
	_ = d.Stroke()

	d.SetRGB(0.3, 0.35, 0.5)
	d.SetLineWidth(2)
	d.SetDash(8, 5)
	d.DrawEllipse(180, 60, 170, 40)
	_ = d.Stroke()
	d.ClearDash()

	d.Pop()
}

func drawClipped(d *easel.Drawing, x, y float64) {
	_ = d.ClipRect(x, y, 220, 130)

	// Diagonal stripes, trimmed by the clip
	d.SetRGBA(0.2, 0.55, 0.75, 0.85)
	d.SetLineWidth(9)
	d.SetLineCap(easel.LineCapRound)
	for i := 0; i < 16; i++ {
		off := float64(i) * 26
		d.DrawLine(x-60+off, y+160, x+20+off, y-30)
		_ = d.Stroke()
	}
	d.SetLineCap(easel.LineCapButt)
	_ = d.ResetClip()

	d.SetRGB(0.2, 0.2, 0.25)
	d.SetLineWidth(2)
	d.DrawRectangle(x, y, 220, 130)
	_ = d.Stroke()
}

func drawSprite(d *easel.Drawing, x, y float64) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for py := 0; py < 32; py++ {
		for px := 0; px < 32; px++ {
			img.SetRGBA(px, py, color.RGBA{
				R: uint8(px * 8),
				G: uint8(py * 8),
				B: 0xa0,
				A: 0xff,
			})
		}
	}
	_ = d.DrawImageScaled(img, x, y, 48, 48)
}
