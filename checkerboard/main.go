// Texture defined procedurally in application memory.
//
// Draws a quad with an 8x8 checkerboard pattern applied. The pattern is a
// single channel texture sampled with NEAREST filtering so the cells keep
// sharp edges instead of blurring into gray.
package main

import (
	"flag"
	"log"

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
  color = vec4(1.0, 1.0, 1.0, texture(tex, vs_tex_coord).r);
}`

// Positions first, texture coordinates second. The texture coordinates are
// flipped vertically so the image's top row lands at the top of the quad.
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

func setup() (*scene, error) {
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.BLEND)

	prog, err := libgl.NewProgram("checkerboard", vertexSrc, fragmentSrc)
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

	board := libio.NewCheckerboard(8, 8)
	tex := libgl.NewTexture2D(gl.NEAREST)
	if err := tex.Upload(board.Width, board.Height, board.Channels, board.Pix); err != nil {
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
	flag.Parse()

	app, err := libapp.Init(libapp.Config{
		Title:  "Checkerboard Texture Pattern",
		Width:  *size,
		Height: *size,
	})
	if err != nil {
		log.Fatalf("Quitting: %v\n", err)
	}
	defer app.Terminate()
	app.OnKeyPress(nil)

	s, err := setup()
	if err != nil {
		log.Panic(err)
	}

	app.Run(s.display)
}
