package libfont

import (
	"fmt"
	"os"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"opengl-playground/libio"
)

// Face wraps an OpenType face sized for pixel-exact rasterization at 72 dpi,
// where one point equals one pixel.
type Face struct {
	face font.Face
}

func NewFace(data []byte, sizePx float64) (*Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create face: %w", err)
	}
	return &Face{face: face}, nil
}

func LoadFace(path string, sizePx float64) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load font face: %w", err)
	}
	return NewFace(data, sizePx)
}

// LineHeightPx is the recommended baseline-to-baseline distance in whole
// pixels.
func (f *Face) LineHeightPx() float32 {
	m := f.face.Metrics()
	return math32.Ceil(float32(m.Height) / 64)
}

// RasterizeGlyph renders a single rune into a tightly packed single channel
// coverage bitmap. Whitespace runes yield an empty image; a rune missing
// from the face is an error.
func (f *Face) RasterizeGlyph(r rune) (*libio.IntImage, error) {
	dr, mask, maskp, _, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, fmt.Errorf("face has no glyph for %q", r)
	}

	width, height := dr.Dx(), dr.Dy()
	pix := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			pix[x+y*width] = uint8(a >> 8)
		}
	}

	return libio.NewIntImage(pix, 1, width, height), nil
}

// DebugString renders a coverage bitmap as ASCII art, one output row per
// bitmap row: space for zero coverage, '+' for light, '*' for heavy.
func DebugString(img *libio.IntImage) string {
	var sb strings.Builder
	row := make([]byte, img.Width)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			b := img.Pix[img.Index(x, y)]
			switch {
			case b == 0:
				row[x] = ' '
			case b < 128:
				row[x] = '+'
			default:
				row[x] = '*'
			}
		}
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
