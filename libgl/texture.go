package libgl

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// Texture2D wraps a GPU-resident 2D texture. The tutorial programs upload
// once at setup and never mutate the image afterwards.
type Texture2D struct {
	glId   uint32
	width  int32
	height int32
}

// NewTexture2D creates a texture with CLAMP_TO_EDGE wrapping on both axes.
// filter is applied as both the min and mag filter; the checkerboard wants
// NEAREST for sharp cell edges, decoded images want LINEAR.
func NewTexture2D(filter int32) *Texture2D {
	tex := &Texture2D{}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &tex.glId)
	gl.BindTexture(gl.TEXTURE_2D, tex.glId)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Upload transfers tightly packed 8-bit pixel data. Single channel data goes
// to a RED texture with byte row alignment, four channels to RGBA.
func (tex *Texture2D) Upload(width, height, channels int, pix []uint8) error {
	var format uint32
	switch channels {
	case 1:
		format = gl.RED
	case 3:
		format = gl.RGB
	case 4:
		format = gl.RGBA
	default:
		return fmt.Errorf("cannot upload %d channel image", channels)
	}
	if len(pix) < width*height*channels {
		return fmt.Errorf("pixel data too short: %d < %d", len(pix), width*height*channels)
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.glId)
	if channels == 1 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	tex.width = int32(width)
	tex.height = int32(height)
	return nil
}

func (tex *Texture2D) Id() uint32 {
	return tex.glId
}

func (tex *Texture2D) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, tex.glId)
}

func (tex *Texture2D) Unbind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (tex *Texture2D) Delete() {
	gl.DeleteTextures(1, &tex.glId)
	tex.glId = 0
}
