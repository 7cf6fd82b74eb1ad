// Rasterizing a font glyph into a texture.
//
// Renders a single character into an 8-bit coverage bitmap, dumps it to the
// log as ASCII art and draws it on a quad. The fragment shader turns the
// single channel coverage into white with alpha.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/go-gl/gl/v3.2-core/gl"

	"opengl-playground/libapp"
	"opengl-playground/libfont"
	"opengl-playground/libgl"
)

const defaultFontFile = "/usr/share/fonts/TTF/LiberationSans-Regular.ttf"

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
  color = vec4(1.0, 1.0, 1.0, texture(tex, vs_tex_coord).r);
}`

var quadData = []float32{
	-0.75, -0.75,
	0.75, -0.75,
	0.75, 0.75,
	-0.75, 0.75,

	0.0, 1.0,
	1.0, 1.0,
	1.0, 0.0,
	0.0, 0.0,
}

type scene struct {
	prog    *libgl.Program
	quad    *libgl.StaticBuffer
	tex     *libgl.Texture2D
	attrPos uint32
	attrTex uint32
}

func setup(fontPath string, char rune, sizePx float64) (*scene, error) {
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.BLEND)

	prog, err := libgl.NewProgram("glyph", vertexSrc, fragmentSrc)
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

	face, err := libfont.LoadFace(fontPath, sizePx)
	if err != nil {
		return nil, err
	}
	bitmap, err := face.RasterizeGlyph(char)
	if err != nil {
		return nil, err
	}
	log.Printf("%d rows, %d width, line height %v\n", bitmap.Height, bitmap.Width, face.LineHeightPx())
	fmt.Print(libfont.DebugString(bitmap))

	tex := libgl.NewTexture2D(gl.NEAREST)
	if err := tex.Upload(bitmap.Width, bitmap.Height, bitmap.Channels, bitmap.Pix); err != nil {
		return nil, err
	}

	return &scene{
		prog:    prog,
		quad:    libgl.NewStaticBuffer(quadData),
		tex:     tex,
		attrPos: attrPos,
		attrTex: attrTex,
	}, nil
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
	fontPath := flag.String("font", defaultFontFile, "path of a TTF or OTF font file")
	char := flag.String("char", "a", "character to rasterize")
	fontSize := flag.Float64("font-size", 46, "glyph size in pixels")
	flag.Parse()

	if *char == "" {
		log.Fatalf("Quitting: -char must not be empty\n")
	}

	app, err := libapp.Init(libapp.Config{
		Title:  "Font Rendering Test",
		Width:  *size,
		Height: *size,
	})
	if err != nil {
		log.Fatalf("Quitting: %v\n", err)
	}
	defer app.Terminate()
	app.OnKeyPress(nil)

	s, err := setup(*fontPath, []rune(*char)[0], *fontSize)
	if err != nil {
		log.Panic(err)
	}

	app.Run(s.display)
}
