package libsprite

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sheet describes a square spritesheet texture divided into PerSide×PerSide
// cells of identical size. Cell ids start at 0 in the bottom left corner and
// run left to right, bottom to top, matching the lookup the icon vertex
// shader performs on the GPU.
type Sheet struct {
	PerSide uint32
}

// Cell returns the column and row of a cell id, with row 0 at the top of the
// texture. E.g. id 6 on a 4-per-side sheet sits at column 2, row 2.
//
// Ids are not range checked. The arrow-key handler in the icons example can
// decrement the id below zero, which wraps around to 4294967295 and samples
// a far-off cell clamped to the texture edge. That matches the original
// behavior and is kept intentionally.
func (s Sheet) Cell(id uint32) (col, row uint32) {
	col = id % s.PerSide
	row = s.PerSide - 1 - id/s.PerSide
	return col, row
}

// TexCoords returns the min and max texture coordinates of a cell, the same
// region the vertex shader maps the quad's unit texture coordinates into.
func (s Sheet) TexCoords(id uint32) (min, max mgl32.Vec2) {
	side := 1 / float32(s.PerSide)
	col, row := s.Cell(id)
	min = mgl32.Vec2{float32(col) * side, float32(row) * side}
	max = min.Add(mgl32.Vec2{side, side})
	return min, max
}
