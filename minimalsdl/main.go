// Minimal OpenGL 3.2 core setup with SDL2 instead of GLFW.
//
// Draws the same solid color triangle as the minimal example; only the
// windowing backend differs.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

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
	gl.ClearColor(0, 0, 0, 0)

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

func initSDL(title string, size int) (*sdl.Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}
	var ver sdl.Version
	sdl.GetVersion(&ver)
	log.Printf("Using SDL %d.%d.%d\n", ver.Major, ver.Minor, ver.Patch)

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(size), int32(size), sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	if err := window.GLMakeCurrent(glContext); err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	_ = sdl.GLSetSwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	return window, nil
}

func main() {
	size := flag.Int("size", 250, "window size in pixels")
	flag.Parse()

	window, err := initSDL("OpenGL Test", *size)
	if err != nil {
		log.Fatalf("Quitting: %v\n", err)
	}
	defer sdl.Quit()
	defer window.Destroy()
	log.Printf("Using OpenGL %v\n", gl.GoStr(gl.GetString(gl.VERSION)))

	s, err := setup()
	if err != nil {
		log.Panic(err)
	}

	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}
		s.display()
		window.GLSwap()
	}
}
