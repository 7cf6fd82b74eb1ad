// Displaying a chosen icon from a spritesheet texture.
//
// The icon set is loaded from disk as a single square PNG divided into
// regions of the exact same size. The chosen icon id and the number of icons
// per side are passed to the vertex shader as a uvec2 uniform; the shader
// maps the quad's texture coordinates into the matching cell. Icon ids start
// at 0 in the bottom left corner.
//
// The left and right arrow keys change the icon id, the digit keys select an
// id directly.
package main

import (
	"flag"
	"log"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/exp/slices"

	"opengl-playground/libapp"
	"opengl-playground/libgl"
	"opengl-playground/libio"
	"opengl-playground/libsprite"
)

const vertexSrc = `#version 330
// icon_id.x is the icon id, icon_id.y how many icons the texture has per
// side. E.g. (6, 4): icon 6 is at row 1, col 2 counted from the bottom left,
// given by 6/4 = 1 remainder 2.
uniform uvec2 icon_id;
layout (location = 0) in vec2 v_pos;
layout (location = 1) in vec2 v_tex;
out vec2 vs_tex_coord;
void main(void) {
  float square_side = float(1)/float(icon_id.y);
  gl_Position = vec4(v_pos, 0.0, 1.0);
  vs_tex_coord = vec2(
    mod(icon_id.x, icon_id.y) * square_side + v_tex.x * square_side,
    (icon_id.y-uint(1) - icon_id.x/icon_id.y) * square_side + v_tex.y * square_side);
}`

const fragmentSrc = `#version 330
uniform sampler2D tex;
in vec2 vs_tex_coord;
layout (location = 0) out vec4 color;
void main(void) {
  color = texture(tex, vs_tex_coord);
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

var digitKeys = []glfw.Key{
	glfw.Key0, glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4,
	glfw.Key5, glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9,
}

type scene struct {
	prog    *libgl.Program
	quad    *libgl.StaticBuffer
	tex     *libgl.Texture2D
	attrPos uint32
	attrTex uint32
	sheet   libsprite.Sheet
	iconId  uint32
}

func setup(sheetPath string, perSide uint) (*scene, error) {
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.BLEND)

	prog, err := libgl.NewProgram("icons", vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	// Missing attributes are only warnings here; the layout locations
	// declared in the shader source are used as a fallback.
	attrPos, err := prog.AttribLocation("v_pos")
	if err != nil {
		log.Printf("%v\n", err)
		attrPos = 0
	}
	attrTex, err := prog.AttribLocation("v_tex")
	if err != nil {
		log.Printf("%v\n", err)
		attrTex = 1
	}

	img, err := libio.LoadPng(sheetPath)
	if err != nil {
		return nil, err
	}
	tex := libgl.NewTexture2D(gl.LINEAR)
	if err := tex.Upload(img.Width, img.Height, img.Channels, img.Pix); err != nil {
		return nil, err
	}

	return &scene{
		prog:    prog,
		quad:    libgl.NewStaticBuffer(quadData),
		tex:     tex,
		attrPos: attrPos,
		attrTex: attrTex,
		sheet:   libsprite.Sheet{PerSide: uint32(perSide)},
	}, nil
}

func (s *scene) display() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.prog.Use()
	s.quad.Bind()
	libgl.EnableVec2Attrib(s.attrPos, 0)
	libgl.EnableVec2Attrib(s.attrTex, 8)
	s.prog.SetUniform("icon_id", [2]uint32{s.iconId, s.sheet.PerSide})
	s.tex.Bind()

	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)

	s.tex.Unbind()
	libgl.DisableAttrib(s.attrPos)
	libgl.DisableAttrib(s.attrTex)
	s.prog.Unuse()

	gl.Flush()
}

func (s *scene) onKey(key glfw.Key) {
	if i := slices.Index(digitKeys, key); i >= 0 {
		s.iconId = uint32(i)
	} else {
		switch key {
		case glfw.KeyRight:
			s.iconId++
		case glfw.KeyLeft:
			// There is no lower bound check: decrementing past 0 wraps
			// around, matching the original program.
			s.iconId--
		default:
			return
		}
	}

	min, max := s.sheet.TexCoords(s.iconId)
	col, row := s.sheet.Cell(s.iconId)
	log.Printf("icon %d: column %d, row %d, tex rect %v - %v\n", s.iconId, col, row, min, max)
}

func main() {
	size := flag.Int("size", 350, "window size in pixels")
	sheet := flag.String("sheet", "icons.png", "path of the square spritesheet image")
	perSide := flag.Uint("per-side", 4, "number of icons per side of the spritesheet")
	flag.Parse()

	app, err := libapp.Init(libapp.Config{
		Title:  "Icon from Texture Set",
		Width:  *size,
		Height: *size,
	})
	if err != nil {
		log.Fatalf("Quitting: %v\n", err)
	}
	defer app.Terminate()

	s, err := setup(*sheet, *perSide)
	if err != nil {
		log.Panic(err)
	}
	app.OnKeyPress(s.onKey)

	app.Run(s.display)
}
