// Package icon renders the SecretVault padlock icon: a rounded square with a
// warm yellow-to-red gradient, a white shackle and body, and a maroon keyhole.
package icon

import "image/color"

// BlendMode selects the colorspace the background gradient is computed in.
type BlendMode string

const (
	// BlendSRGB evaluates the per-row channel formula directly in sRGB.
	BlendSRGB BlendMode = "srgb"
	// BlendOKLab blends the gradient endpoints perceptually in OKLab.
	BlendOKLab BlendMode = "oklab"
)

// Params holds the icon geometry as fractions of the target size (or of the
// lock body, where noted). All derived pixel quantities are pure functions of
// (Params, size), so renders are deterministic.
type Params struct {
	CornerRadius float64 // of size
	LockWidth    float64 // of size
	LockHeight   float64 // of size
	LockTop      float64 // of size
	ShackleWidth float64 // of lock width
	ShackleRise  float64 // of size
	Thickness    float64 // of size
	MinThickness int     // pixels
	BodyCorner   float64 // of lock width
	KeyholeR     float64 // of lock width
	KeyholeDrop  float64 // of lock height
	SlotWidth    float64 // of keyhole radius
	SlotHeight   float64 // of lock height

	Keyhole color.RGBA

	Blend       BlendMode
	Supersample int // render at this multiple and downscale, 1 disables
}

// DefaultParams is the canonical parameter set.
func DefaultParams() Params {
	return Params{
		CornerRadius: 0.225,
		LockWidth:    0.35,
		LockHeight:   0.30,
		LockTop:      0.45,
		ShackleWidth: 0.65,
		ShackleRise:  0.22,
		Thickness:    0.055,
		MinThickness: 3,
		BodyCorner:   0.15,
		KeyholeR:     0.12,
		KeyholeDrop:  0.35,
		SlotWidth:    0.5,
		SlotHeight:   0.25,
		Keyhole:      color.RGBA{R: 0x8B, A: 0xFF},
		Blend:        BlendSRGB,
		Supersample:  1,
	}
}

// Geometry is the pixel layout of one icon.
type Geometry struct {
	Size         int
	CornerRadius int

	LockX, LockY int
	LockW, LockH int
	BodyCorner   int

	ShackleX, ShackleY int
	ShackleW, ShackleH int
	Thickness          int

	KeyholeX, KeyholeY, KeyholeRadius int
	SlotW, SlotH                      int
}

// Geometry derives the pixel layout for the given size. Fractions truncate
// to whole pixels.
func (p Params) Geometry(size int) Geometry {
	g := Geometry{
		Size:         size,
		CornerRadius: int(float64(size) * p.CornerRadius),
		LockW:        int(float64(size) * p.LockWidth),
		LockH:        int(float64(size) * p.LockHeight),
		LockY:        int(float64(size) * p.LockTop),
	}
	g.LockX = (size - g.LockW) / 2
	g.BodyCorner = int(float64(g.LockW) * p.BodyCorner)

	g.ShackleW = int(float64(g.LockW) * p.ShackleWidth)
	g.ShackleH = int(float64(size) * p.ShackleRise)
	g.ShackleX = g.LockX + (g.LockW-g.ShackleW)/2
	g.ShackleY = g.LockY - g.ShackleH
	g.Thickness = max(int(float64(size)*p.Thickness), p.MinThickness)

	g.KeyholeRadius = int(float64(g.LockW) * p.KeyholeR)
	g.KeyholeX = g.LockX + g.LockW/2
	g.KeyholeY = g.LockY + int(float64(g.LockH)*p.KeyholeDrop)
	g.SlotW = int(float64(g.KeyholeRadius) * p.SlotWidth)
	g.SlotH = int(float64(g.LockH) * p.SlotHeight)

	return g
}
