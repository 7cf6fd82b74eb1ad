package libgl

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileShader compiles a single stage from source. The info log is written
// to standard error even on success, since drivers put warnings there. On
// failure the shader object is deleted before returning.
func CompileShader(source string, stage uint32) (uint32, error) {
	id := gl.CreateShader(stage)

	cstrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cstrs, nil)
	free()
	gl.CompileShader(id)

	infoLog := readShaderInfoLog(id)
	if infoLog != "" {
		log.Printf("%v shader info log:\n%v", stageName(stage), infoLog)
	}

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		gl.DeleteShader(id)
		return 0, fmt.Errorf("failed to compile %v shader: %v", stageName(stage), infoLog)
	}

	return id, nil
}

// LinkProgram links two compiled stages into a program. The stages are
// detached and deleted regardless of the outcome, they are not usable
// afterwards.
func LinkProgram(vert, frag uint32) (uint32, error) {
	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)
	gl.DetachShader(id, vert)
	gl.DetachShader(id, frag)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		infoLog := readProgramInfoLog(id)
		gl.DeleteProgram(id)
		return 0, fmt.Errorf("failed to link program: %v", infoLog)
	}

	return id, nil
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%04x", stage)
}

func readShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n ")
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n ")
}

// Program wraps a linked shader program together with a cache of resolved
// uniform locations.
type Program struct {
	glId             uint32
	name             string
	uniformLocations map[string]int32
}

// NewProgram compiles both stages and links them. The name is only used in
// diagnostics.
func NewProgram(name, vertSrc, fragSrc string) (*Program, error) {
	vert, err := CompileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	frag, err := CompileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	id, err := LinkProgram(vert, frag)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	return &Program{
		glId:             id,
		name:             name,
		uniformLocations: map[string]int32{},
	}, nil
}

func (prog *Program) Id() uint32 {
	return prog.glId
}

func (prog *Program) Use() {
	gl.UseProgram(prog.glId)
}

func (prog *Program) Unuse() {
	gl.UseProgram(0)
}

func (prog *Program) Destroy() {
	gl.DeleteProgram(prog.glId)
	prog.glId = 0
}

// AttribLocation resolves a vertex attribute by its exact source identifier.
// A missing attribute is an error; if the piping is correct check whether it
// was optimized out of the shader.
func (prog *Program) AttribLocation(name string) (uint32, error) {
	location := gl.GetAttribLocation(prog.glId, gl.Str(name+"\x00"))
	if location == -1 {
		return 0, fmt.Errorf("%v shader: no active attribute %q", prog.name, name)
	}
	return uint32(location), nil
}

// UniformLocation resolves and caches a uniform location. A missing uniform
// is reported once as a warning and yields -1, which SetUniform ignores.
func (prog *Program) UniformLocation(name string) int32 {
	if location, ok := prog.uniformLocations[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniformLocations[name] = location

	if location == -1 {
		log.Printf("%v shader: could not get location of %q\n", prog.name, name)
	}

	return location
}

// SetUniform uploads a uniform value. The program must be in use.
func (prog *Program) SetUniform(name string, value any) {
	location := prog.UniformLocation(name)
	if location == -1 {
		return
	}

	switch v := value.(type) {
	case float32:
		gl.Uniform1f(location, v)
	case int:
		gl.Uniform1i(location, int32(v))
	case int32:
		gl.Uniform1i(location, v)
	case uint32:
		gl.Uniform1ui(location, v)
	case [2]uint32:
		gl.Uniform2uiv(location, 1, &v[0])
	case mgl32.Vec2:
		gl.Uniform2f(location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.Uniform3f(location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.Uniform4f(location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	default:
		log.Panicf("Unsupported uniform type %T", value)
	}
}
