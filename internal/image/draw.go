package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Anchor selects which point of the text box sits on the draw position.
type Anchor int

const (
	// AnchorLeftMiddle puts the left edge, vertically centered, on the point.
	AnchorLeftMiddle Anchor = iota
	// AnchorMiddle centers the text on the point.
	AnchorMiddle
)

// drawText draws s so that the anchor point of its box lands on (x, y).
// Vertical middle is halfway between ascent and descent.
func drawText(dst draw.Image, face font.Face, s string, x, y float64, anchor Anchor, c color.Color) {
	m := face.Metrics()
	dotY := fixed.Int26_6(y*64) + (m.Ascent-m.Descent)/2
	dotX := fixed.Int26_6(x * 64)
	if anchor == AnchorMiddle {
		dotX -= font.MeasureString(face, s) / 2
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: dotX, Y: dotY},
	}
	d.DrawString(s)
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// fillRoundedRect fills the box (x0,y0)-(x1,y1) with corners of radius r.
// Both corners are inclusive.
func fillRoundedRect(dst draw.Image, x0, y0, x1, y1, r float64, c color.Color) {
	x1++
	y1++
	if r*2 > x1-x0 {
		r = (x1 - x0) / 2
	}
	if r*2 > y1-y0 {
		r = (y1 - y0) / 2
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	p := func(x, y float64) (float32, float32) { return float32(x - ox), float32(y - oy) }
	k := r * kappa

	z.MoveTo(p(x0+r, y0))
	z.LineTo(p(x1-r, y0))
	cubeTo(z, p, x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(p(x1, y1-r))
	cubeTo(z, p, x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(p(x0+r, y1))
	cubeTo(z, p, x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(p(x0, y0+r))
	cubeTo(z, p, x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()

	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func cubeTo(z *vector.Rasterizer, p func(x, y float64) (float32, float32), ax, ay, bx, by, cx, cy float64) {
	a1, a2 := p(ax, ay)
	b1, b2 := p(bx, by)
	c1, c2 := p(cx, cy)
	z.CubeTo(a1, a2, b1, b2, c1, c2)
}
