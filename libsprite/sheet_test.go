package libsprite_test

import (
	"testing"

	"opengl-playground/libsprite"
)

func TestCell(t *testing.T) {
	cases := []struct {
		perSide  uint32
		id       uint32
		col, row uint32
	}{
		{4, 0, 0, 3},
		{4, 3, 3, 3},
		{4, 4, 0, 2},
		{4, 6, 2, 2},
		{4, 15, 3, 0},
		{2, 2, 0, 0},
		{1, 0, 0, 0},
	}

	for _, c := range cases {
		sheet := libsprite.Sheet{PerSide: c.perSide}
		col, row := sheet.Cell(c.id)
		if col != c.col || row != c.row {
			t.Errorf("Cell(%d) on a %d sheet should be (%d,%d) but was (%d,%d)",
				c.id, c.perSide, c.col, c.row, col, row)
		}
	}
}

// The icon id is not range checked anywhere; decrementing below zero wraps
// the uint32 around. This pins the documented behavior down.
func TestCellWrapsBelowZero(t *testing.T) {
	sheet := libsprite.Sheet{PerSide: 4}

	id := uint32(0)
	id--

	col, _ := sheet.Cell(id)
	if col != 4294967295%4 {
		t.Errorf("Wrapped id column should be %d but was %d", 4294967295%4, col)
	}
}

func TestTexCoords(t *testing.T) {
	sheet := libsprite.Sheet{PerSide: 4}

	min, max := sheet.TexCoords(6)
	if min.X() != 0.5 || min.Y() != 0.5 {
		t.Errorf("Min tex coords of icon 6 should be (0.5,0.5) but were %v", min)
	}
	if max.X() != 0.75 || max.Y() != 0.75 {
		t.Errorf("Max tex coords of icon 6 should be (0.75,0.75) but were %v", max)
	}

	min, max = sheet.TexCoords(0)
	if min.X() != 0 || min.Y() != 0.75 {
		t.Errorf("Min tex coords of icon 0 should be (0,0.75) but were %v", min)
	}
	if max.X() != 0.25 || max.Y() != 1 {
		t.Errorf("Max tex coords of icon 0 should be (0.25,1) but were %v", max)
	}
}
