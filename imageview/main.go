// Texture loaded from an image file.
//
// Draws a quad with a PNG photo applied, fit to the quad's aspect ratio.
// With -cache the decoded pixels are kept next to the source file in an
// lz4-compressed img8 container and reused while they are newer than the
// PNG, so subsequent starts skip the decode.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v3.2-core/gl"

	"opengl-playground/libapp"
	"opengl-playground/libgl"
	"opengl-playground/libio"
)

const vertexSrc = `#version 330
layout (location = 0) in vec2 v_pos;
layout (location = 1) in vec2 v_tex;
out vec2 vs_tex_coord;
void main(void) {
  gl_Position = vec4(v_pos, 0.0, 1.0);
  vs_tex_coord = v_tex;
}`

const fragmentSrc = `#version 330
uniform sampler2D tex;
in vec2 vs_tex_coord;
layout (location = 0) out vec4 color;
void main(void) {
  color = texture(tex, vs_tex_coord);
}`

// quadData builds the vertex buffer content for an image of the given size:
// a quad with half extent 0.75 on the longer image axis and proportionally
// less on the other, then the flipped texture coordinates.
func quadData(width, height int) []float32 {
	scale := 0.75 / math32.Max(float32(width), float32(height))
	hw := scale * float32(width)
	hh := scale * float32(height)
	return []float32{
		-hw, -hh,
		hw, -hh,
		hw, hh,
		-hw, hh,

		0.0, 1.0,
		1.0, 1.0,
		1.0, 0.0,
		0.0, 0.0,
	}
}

type scene struct {
	prog    *libgl.Program
	quad    *libgl.StaticBuffer
	tex     *libgl.Texture2D
	attrPos uint32
	attrTex uint32
}

func setup(imagePath string, useCache bool) (*scene, error) {
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.BLEND)

	prog, err := libgl.NewProgram("imageview", vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	attrPos, err := prog.AttribLocation("v_pos")
	if err != nil {
		return nil, err
	}
	attrTex, err := prog.AttribLocation("v_tex")
	if err != nil {
		return nil, err
	}

	img, err := loadImage(imagePath, useCache)
	if err != nil {
		return nil, err
	}
	tex := libgl.NewTexture2D(gl.LINEAR)
	if err := tex.Upload(img.Width, img.Height, img.Channels, img.Pix); err != nil {
		return nil, err
	}

	return &scene{
		prog:    prog,
		quad:    libgl.NewStaticBuffer(quadData(img.Width, img.Height)),
		tex:     tex,
		attrPos: attrPos,
		attrTex: attrTex,
	}, nil
}

// loadImage decodes the PNG, going through the img8 cache file when asked
// to. Cache problems are never fatal, the PNG decode is the fallback.
func loadImage(path string, useCache bool) (*libio.IntImage, error) {
	if !useCache {
		return libio.LoadPng(path)
	}

	cachePath := path + ".img8"
	if img, ok := readCache(path, cachePath); ok {
		return img, nil
	}

	img, err := libio.LoadPng(path)
	if err != nil {
		return nil, err
	}
	writeCache(cachePath, img)
	return img, nil
}

func readCache(srcPath, cachePath string) (*libio.IntImage, bool) {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return nil, false
	}
	cacheInfo, err := os.Stat(cachePath)
	if err != nil || cacheInfo.ModTime().Before(srcInfo.ModTime()) {
		return nil, false
	}

	file, err := os.Open(cachePath)
	if err != nil {
		log.Printf("Could not read image cache: %v\n", err)
		return nil, false
	}
	defer file.Close()

	img, err := libio.DecodeIntImage(file)
	if err != nil {
		log.Printf("Could not decode image cache: %v\n", err)
		return nil, false
	}
	log.Printf("Using cached pixels from %v\n", cachePath)
	return img, true
}

func writeCache(cachePath string, img *libio.IntImage) {
	file, err := os.OpenFile(cachePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Could not write image cache: %v\n", err)
		return
	}
	defer file.Close()

	if err := libio.EncodeIntImage(file, img, libio.IntImageCompressionLz4); err != nil {
		log.Printf("Could not encode image cache: %v\n", err)
	}
}

func (s *scene) display() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.prog.Use()
	s.quad.Bind()
	libgl.EnableVec2Attrib(s.attrPos, 0)
	libgl.EnableVec2Attrib(s.attrTex, 8)
	s.tex.Bind()

	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)

	s.tex.Unbind()
	libgl.DisableAttrib(s.attrPos)
	libgl.DisableAttrib(s.attrTex)
	s.prog.Unuse()

	gl.Flush()
}

func main() {
	size := flag.Int("size", 350, "window size in pixels")
	image := flag.String("image", "image.png", "path of the PNG image to display")
	cache := flag.Bool("cache", false, "cache decoded pixels next to the image file")
	flag.Parse()

	app, err := libapp.Init(libapp.Config{
		Title:  "Texture Image",
		Width:  *size,
		Height: *size,
	})
	if err != nil {
		log.Fatalf("Quitting: %v\n", err)
	}
	defer app.Terminate()
	app.OnKeyPress(nil)

	s, err := setup(*image, *cache)
	if err != nil {
		log.Panic(err)
	}

	app.Run(s.display)
}
