package libfont_test

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"opengl-playground/libfont"
)

func loadTestFace(t *testing.T, sizePx float64) *libfont.Face {
	t.Helper()
	face, err := libfont.NewFace(goregular.TTF, sizePx)
	if err != nil {
		t.Fatalf("Could not create test face: %v", err)
	}
	return face
}

func TestRasterizeGlyph(t *testing.T) {
	face := loadTestFace(t, 46)

	bitmap, err := face.RasterizeGlyph('a')
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	if bitmap.Channels != 1 {
		t.Errorf("Glyph bitmap should have 1 channel but has %d", bitmap.Channels)
	}
	if bitmap.Width <= 0 || bitmap.Width > 46 {
		t.Errorf("Glyph width %d is implausible for a 46px 'a'", bitmap.Width)
	}
	if bitmap.Height <= 0 || bitmap.Height > 46 {
		t.Errorf("Glyph height %d is implausible for a 46px 'a'", bitmap.Height)
	}
	if len(bitmap.Pix) != bitmap.Width*bitmap.Height {
		t.Errorf("Bitmap should have %d bytes but has %d", bitmap.Width*bitmap.Height, len(bitmap.Pix))
	}

	covered := 0
	for _, b := range bitmap.Pix {
		if b > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("Glyph bitmap has no coverage at all")
	}
}

func TestRasterizeGlyphWhitespace(t *testing.T) {
	face := loadTestFace(t, 46)

	bitmap, err := face.RasterizeGlyph(' ')
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if bitmap.Width != 0 || bitmap.Height != 0 {
		t.Errorf("Space glyph should have an empty bitmap but is %dx%d", bitmap.Width, bitmap.Height)
	}
}

func TestLineHeight(t *testing.T) {
	face := loadTestFace(t, 46)

	height := face.LineHeightPx()
	if height < 46 || height > 92 {
		t.Errorf("Line height %v is implausible for a 46px face", height)
	}
}

func TestDebugString(t *testing.T) {
	face := loadTestFace(t, 24)

	bitmap, err := face.RasterizeGlyph('a')
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	art := libfont.DebugString(bitmap)
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	if len(lines) != bitmap.Height {
		t.Fatalf("Debug art should have %d rows but has %d", bitmap.Height, len(lines))
	}
	for i, line := range lines {
		if len(line) != bitmap.Width {
			t.Errorf("Debug art row %d should have %d columns but has %d", i, bitmap.Width, len(line))
		}
		for _, r := range line {
			if r != ' ' && r != '+' && r != '*' {
				t.Errorf("Debug art row %d contains unexpected rune %q", i, r)
			}
		}
	}
}
