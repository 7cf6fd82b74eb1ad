package libio

import (
	goimg "image"
	"image/draw"
)

// IntImage is a tightly packed 8-bit image with 1, 3 or 4 channels. The
// origin is in the top left, matching Go's image package; the tutorial quads
// compensate with flipped texture coordinates, like the original programs.
type IntImage struct {
	Channels      int
	Width, Height int
	Pix           []uint8
}

func NewIntImage(pix []uint8, channels int, width, height int) *IntImage {
	return &IntImage{
		Pix:      pix,
		Channels: channels,
		Width:    width,
		Height:   height,
	}
}

// Index is the byte index of the first channel of the pixel at (x, y).
func (img *IntImage) Index(x, y int) int {
	return x*img.Channels + y*img.Channels*img.Width
}

func (img *IntImage) Count() int {
	return img.Width * img.Height
}

func (img *IntImage) Bytes() int {
	return img.Width * img.Height * img.Channels
}

// FromImage converts any Go image into a 4 channel IntImage.
func FromImage(src goimg.Image) *IntImage {
	bounds := src.Bounds()
	rgba, ok := src.(*goimg.RGBA)
	if !ok || bounds.Min != (goimg.Point{}) || rgba.Stride != bounds.Dx()*4 {
		rgba = goimg.NewRGBA(goimg.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	}
	return NewIntImage(rgba.Pix, 4, bounds.Dx(), bounds.Dy())
}

// NewCheckerboard builds a single channel pattern alternating 0xFF and 0x00
// per pixel, starting with 0xFF in the top left. An 8x8 board reproduces the
// classic fixed byte pattern exactly.
func NewCheckerboard(width, height int) *IntImage {
	pix := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				pix[x+y*width] = 0xFF
			}
		}
	}
	return NewIntImage(pix, 1, width, height)
}
