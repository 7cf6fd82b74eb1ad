package libio

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// DecodePng decodes a PNG stream into a 4 channel IntImage, ready for an
// RGBA8 texture upload.
func DecodePng(r io.Reader) (*IntImage, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode png: %w", err)
	}
	return FromImage(src), nil
}

func LoadPng(path string) (*IntImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image file: %w", err)
	}
	defer file.Close()
	return DecodePng(file)
}
