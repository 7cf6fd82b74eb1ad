package libio_test

import (
	"image"
	"image/color"
	"testing"

	"opengl-playground/libio"
)

func TestCheckerboardPattern(t *testing.T) {
	// The fixed pattern the original checkerboard example uploads as GL_RED.
	check := []uint8{
		0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF,
		0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF,
		0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF,
		0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF,
	}

	board := libio.NewCheckerboard(8, 8)

	if board.Channels != 1 {
		t.Errorf("Checkerboard should have 1 channel but has %d", board.Channels)
	}
	if len(board.Pix) != len(check) {
		t.Fatalf("Checkerboard should have %d bytes but has %d", len(check), len(board.Pix))
	}
	for i := range check {
		if board.Pix[i] != check[i] {
			t.Errorf("Checkerboard byte %d should be %02x but was %02x", i, check[i], board.Pix[i])
		}
	}
}

func TestIntImageIndex(t *testing.T) {
	img := libio.NewIntImage(make([]uint8, 4*5*3), 3, 4, 5)

	if i := img.Index(0, 0); i != 0 {
		t.Errorf("Index(0,0) should be 0 but was %d", i)
	}
	if i := img.Index(2, 3); i != 2*3+3*3*4 {
		t.Errorf("Index(2,3) should be %d but was %d", 2*3+3*3*4, i)
	}
	if img.Count() != 20 {
		t.Errorf("Count should be 20 but was %d", img.Count())
	}
	if img.Bytes() != 60 {
		t.Errorf("Bytes should be 60 but was %d", img.Bytes())
	}
}

func TestFromImageGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(0, 0, color.Gray{Y: 0x80})
	gray.SetGray(1, 1, color.Gray{Y: 0xFF})

	img := libio.FromImage(gray)

	if img.Channels != 4 {
		t.Fatalf("Converted image should have 4 channels but has %d", img.Channels)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("Converted image should be 2x2 but is %dx%d", img.Width, img.Height)
	}
	if img.Pix[img.Index(0, 0)] != 0x80 {
		t.Errorf("Pixel (0,0) red should be 80 but was %02x", img.Pix[img.Index(0, 0)])
	}
	if img.Pix[img.Index(1, 1)] != 0xFF {
		t.Errorf("Pixel (1,1) red should be ff but was %02x", img.Pix[img.Index(1, 1)])
	}
	if a := img.Pix[img.Index(1, 0)+3]; a != 0xFF {
		t.Errorf("Alpha should be ff but was %02x", a)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(3, 7, 6, 9))
	src.SetRGBA(3, 7, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})

	img := libio.FromImage(src)

	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("Converted image should be 3x2 but is %dx%d", img.Width, img.Height)
	}
	if img.Pix[0] != 0x12 || img.Pix[1] != 0x34 || img.Pix[2] != 0x56 {
		t.Errorf("Pixel (0,0) should be 12 34 56 but was %02x %02x %02x", img.Pix[0], img.Pix[1], img.Pix[2])
	}
}
