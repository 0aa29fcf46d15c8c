package icon

import (
	"image"
	"image/color"

	"vaulticon/okcolor"
)

// rowColor evaluates the gradient formula at ratio in [0, 1]. Channel values
// truncate, matching whole-pixel arithmetic everywhere else.
func rowColor(ratio float64) color.RGBA {
	return color.RGBA{
		R: uint8(255 * (0.98 + 0.02*ratio)),
		G: uint8(220 * (1 - 0.4*ratio)),
		B: uint8(100 * (1 - ratio)),
		A: 0xFF,
	}
}

// Gradient fills a size-by-size image with the warm vertical gradient, one
// uniform row per scanline. BlendSRGB evaluates the channel formula per row;
// BlendOKLab blends the formula's two endpoint colors perceptually instead.
func (p Params) Gradient(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	top, bottom := rowColor(0), rowColor(1)
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)

		var c color.RGBA
		switch p.Blend {
		case BlendOKLab:
			c = okcolor.Blend(top, bottom, ratio)
		default:
			c = rowColor(ratio)
		}

		i := img.PixOffset(0, y)
		for x := 0; x < size; x++ {
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
			i += 4
		}
	}

	return img
}
