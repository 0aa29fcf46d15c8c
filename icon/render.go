package icon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

var white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// Render draws the icon at the given size with the canonical parameters.
func Render(size int) (*image.RGBA, error) {
	return DefaultParams().Render(size)
}

// Render draws the icon at the given size. The result is always exactly
// size-by-size RGBA; identical inputs produce identical pixels.
func (p Params) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %d", size)
	}

	ss := p.Supersample
	if ss < 1 {
		ss = 1
	}
	if ss == 1 {
		return p.render(size), nil
	}

	src := p.render(size * ss)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func (p Params) render(size int) *image.RGBA {
	g := p.Geometry(size)
	gradient := p.Gradient(size)

	// Clip the gradient to rounded corners through a single-channel mask.
	// The mask is hard-edged: a pixel is either in or out, so corner pixels
	// outside the radius stay fully transparent at every size.
	mc := gg.NewContext(size, size)
	mc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(g.CornerRadius))
	mc.SetColor(white)
	mc.Fill()

	mask := mc.AsMask()
	for i, a := range mask.Pix {
		if a < 0x80 {
			mask.Pix[i] = 0x00
		} else {
			mask.Pix[i] = 0xFF
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(img, img.Bounds(), gradient, image.Point{}, mask, image.Point{}, draw.Over)

	dc := gg.NewContextForRGBA(img)

	// Shackle: a white top-half-ellipse chord, hollowed by a second chord in
	// the gradient's local color so the arc keeps a uniform thickness.
	drawChord(dc,
		g.ShackleX-g.Thickness, g.ShackleY,
		g.ShackleX+g.ShackleW+g.Thickness, g.ShackleY+2*g.ShackleH,
		white)

	if innerW := g.ShackleW - 2*g.Thickness; innerW > 0 {
		sampleY := min(g.ShackleY+g.ShackleH, size-1)
		drawChord(dc,
			g.ShackleX+g.Thickness, g.ShackleY+g.Thickness,
			g.ShackleX+g.Thickness+innerW, g.ShackleY+2*g.ShackleH-g.Thickness,
			gradient.RGBAAt(size/2, sampleY))
	}

	// Lock body.
	dc.DrawRoundedRectangle(float64(g.LockX), float64(g.LockY),
		float64(g.LockW), float64(g.LockH), float64(g.BodyCorner))
	dc.SetColor(white)
	dc.Fill()

	// Keyhole: circle plus a rounded slot below it.
	dc.DrawCircle(float64(g.KeyholeX), float64(g.KeyholeY), float64(g.KeyholeRadius))
	dc.SetColor(p.Keyhole)
	dc.Fill()

	dc.DrawRoundedRectangle(float64(g.KeyholeX-g.SlotW), float64(g.KeyholeY),
		float64(2*g.SlotW), float64(g.SlotH), float64(g.SlotW))
	dc.SetColor(p.Keyhole)
	dc.Fill()

	return img
}

// drawChord fills the top half of the ellipse inscribed in the bounding box,
// closed along its horizontal diameter.
func drawChord(dc *gg.Context, x0, y0, x1, y1 int, c color.Color) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2

	dc.NewSubPath()
	dc.DrawEllipticalArc(cx, cy, rx, ry, gg.Radians(180), gg.Radians(360))
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}
