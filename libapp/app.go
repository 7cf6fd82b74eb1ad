package libapp

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Config covers the few knobs the tutorial programs expose. Every window is
// fixed size with an OpenGL 3.2 core forward-compatible context.
type Config struct {
	Title         string
	Width, Height int
	ClearColor    mgl32.Vec4
}

// App owns the window and context for the lifetime of the process, so the
// per-example state does not have to live in package globals.
type App struct {
	Window *glfw.Window
}

// Init creates the window and context and loads the OpenGL function
// pointers. On success the caller must call Terminate when done.
func Init(cfg Config) (*App, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize GLFW: %w", err)
	}
	log.Printf("Using GLFW %v\n", glfw.GetVersionString())

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not load OpenGL: %w", err)
	}
	log.Printf("Using OpenGL %v\n", gl.GoStr(gl.GetString(gl.VERSION)))

	glfw.SwapInterval(1)
	c := cfg.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())

	return &App{Window: window}, nil
}

// OnKeyPress registers a handler for key press events. Escape always
// requests a close, before the handler runs.
func (app *App) OnKeyPress(fn func(key glfw.Key)) {
	app.Window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if fn != nil {
			fn(key)
		}
	})
}

// Run blocks, calling display once per frame until the window is asked to
// close by the window manager or the Escape key.
func (app *App) Run(display func()) {
	for !app.Window.ShouldClose() {
		display()
		app.Window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *App) Terminate() {
	app.Window.Destroy()
	glfw.Terminate()
}
