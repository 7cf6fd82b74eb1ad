// Minimal OpenGL 3.2 core setup with GLFW.
//
// Draws a triangle with a solid color.
package main

import (
	"flag"
	"log"

	"github.com/go-gl/gl/v3.2-core/gl"

	"opengl-playground/libapp"
	"opengl-playground/libgl"
)

const vertexSrc = `#version 330
layout (location = 0) in vec2 v_pos;
void main(void) {
  gl_Position = vec4(v_pos, 0.0, 1.0);
}`

const fragmentSrc = `#version 330
out vec4 FragColor;
void main(void) {
  FragColor = vec4(0.0, 1.0, 0.0, 1.0);
}`

type scene struct {
	prog     *libgl.Program
	triangle *libgl.StaticBuffer
	attrPos  uint32
}

func setup() (*scene, error) {
	prog, err := libgl.NewProgram("triangle", vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	attrPos, err := prog.AttribLocation("v_pos")
	if err != nil {
		return nil, err
	}

	triangle := libgl.NewStaticBuffer([]float32{
		-0.75, -0.75,
		0.00, 0.75,
		0.75, -0.75,
	})

	return &scene{
		prog:     prog,
		triangle: triangle,
		attrPos:  attrPos,
	}, nil
}

func (s *scene) display() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.prog.Use()
	s.triangle.Bind()
	libgl.EnableVec2Attrib(s.attrPos, 0)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	libgl.DisableAttrib(s.attrPos)
	s.prog.Unuse()

	gl.Flush()
}

func main() {
	size := flag.Int("size", 250, "window size in pixels")
	flag.Parse()

	app, err := libapp.Init(libapp.Config{
		Title:  "OpenGL Test",
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
