package libgl

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// StaticBuffer owns a VAO and a VBO holding immutable vertex data, uploaded
// once with STATIC_DRAW. Attribute layout is declared per draw through the
// Vec2Attrib helpers since the tutorial programs keep positions and texture
// coordinates in separate blocks of the same buffer rather than interleaved.
type StaticBuffer struct {
	vaoId uint32
	vboId uint32
}

func NewStaticBuffer(data []float32) *StaticBuffer {
	buf := &StaticBuffer{}
	gl.GenVertexArrays(1, &buf.vaoId)
	gl.BindVertexArray(buf.vaoId)
	gl.GenBuffers(1, &buf.vboId)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vboId)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return buf
}

func (buf *StaticBuffer) Bind() {
	gl.BindVertexArray(buf.vaoId)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vboId)
}

func (buf *StaticBuffer) Delete() {
	gl.DeleteBuffers(1, &buf.vboId)
	gl.DeleteVertexArrays(1, &buf.vaoId)
	buf.vboId = 0
	buf.vaoId = 0
}

// EnableVec2Attrib points a vec2 float attribute at the bound buffer,
// starting floatOffset floats into it.
func EnableVec2Attrib(location uint32, floatOffset int) {
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointerWithOffset(location, 2, gl.FLOAT, false, 0, uintptr(floatOffset*4))
}

func DisableAttrib(location uint32) {
	gl.DisableVertexAttribArray(location)
}
