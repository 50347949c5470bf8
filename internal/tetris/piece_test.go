package tetris

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestShapeOf(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		kind   Kind
		height int
		width  int
	}{
		{KindI, 1, 4},
		{KindJ, 2, 3},
		{KindL, 2, 3},
		{KindO, 2, 2},
		{KindS, 2, 3},
		{KindT, 2, 3},
		{KindZ, 2, 3},
	}
	for _, test := range tests {
		c.Run(test.kind.String(), func(c *qt.C) {
			shape := ShapeOf(test.kind)
			c.Assert(shape, qt.HasLen, test.height)
			blocks := 0
			for _, row := range shape {
				c.Assert(row, qt.HasLen, test.width)
				for _, filled := range row {
					if filled {
						blocks++
					}
				}
			}
			c.Assert(blocks, qt.Equals, 4)
		})
	}

	c.Assert(ShapeOf(Kind(numKinds)), qt.IsNil)

	shape := ShapeOf(KindO)
	shape[0][0] = false
	c.Assert(ShapeOf(KindO)[0][0], qt.IsTrue)
}

func TestNewPiece(t *testing.T) {
	c := qt.New(t)
	board := NewBoard(DefaultRows, DefaultCols)
	piece := NewPiece(KindL, board, DefaultSpawnX, 0)

	x, y := piece.Position()
	c.Assert(x, qt.Equals, 3)
	c.Assert(y, qt.Equals, 0)
	c.Assert(piece.Kind(), qt.Equals, KindL)
	c.Assert(piece.Cell(), qt.Equals, CellL)
	c.Assert(piece.Blocks(), qt.DeepEquals, []Point{{5, 0}, {3, 1}, {4, 1}, {5, 1}})
}

func TestRotateI(t *testing.T) {
	c := qt.New(t)
	board := NewBoard(DefaultRows, DefaultCols)
	piece := NewPiece(KindI, board, DefaultSpawnX, 0)

	piece.Rotate(1)
	c.Assert(piece.Height(), qt.Equals, 4)
	c.Assert(piece.Width(), qt.Equals, 1)
	c.Assert(piece.Shape(), qt.DeepEquals, [][]bool{{true}, {true}, {true}, {true}})

	piece.Rotate(1)
	c.Assert(piece.Shape(), qt.DeepEquals, ShapeOf(KindI))
}

func TestRotateClockwise(t *testing.T) {
	c := qt.New(t)
	board := NewBoard(DefaultRows, DefaultCols)
	piece := NewPiece(KindL, board, 0, 0)

	piece.Rotate(1)
	c.Assert(piece.Shape(), qt.DeepEquals, [][]bool{
		{true, false},
		{true, false},
		{true, true},
	})
}

func TestRotateRoundTrip(t *testing.T) {
	c := qt.New(t)
	board := NewBoard(DefaultRows, DefaultCols)

	for _, kind := range Kinds() {
		c.Run(kind.String(), func(c *qt.C) {
			piece := NewPiece(kind, board, DefaultSpawnX, 0)
			original := piece.Shape()
			for i := 0; i < 4; i++ {
				before := piece.Shape()
				piece.Rotate(1)
				piece.Rotate(-1)
				c.Assert(piece.Shape(), qt.DeepEquals, before)
				piece.Rotate(1)
			}
			c.Assert(piece.Shape(), qt.DeepEquals, original)

			for i := 0; i < 4; i++ {
				piece.Rotate(-1)
			}
			c.Assert(piece.Shape(), qt.DeepEquals, original)
		})
	}
}

func TestCollision(t *testing.T) {
	c := qt.New(t)
	board := NewBoard(DefaultRows, DefaultCols)
	piece := NewPiece(KindO, board, DefaultSpawnX, 0)

	c.Assert(piece.Collision(0, 0), qt.IsFalse)
	c.Assert(piece.Collision(-3, 0), qt.IsFalse)
	c.Assert(piece.Collision(-4, 0), qt.IsTrue)
	c.Assert(piece.Collision(5, 0), qt.IsFalse)
	c.Assert(piece.Collision(6, 0), qt.IsTrue)
	c.Assert(piece.Collision(0, 18), qt.IsFalse)
	c.Assert(piece.Collision(0, 19), qt.IsTrue)

	// nothing above the board is checked
	c.Assert(piece.Collision(0, -5), qt.IsFalse)

	c.Assert(board.SetCell(10, 4, CellZ), qt.IsNil)
	c.Assert(piece.Collision(0, 9), qt.IsTrue)
	c.Assert(piece.Collision(0, 8), qt.IsFalse)
	c.Assert(piece.Collision(1, 9), qt.IsTrue)
	c.Assert(piece.Collision(-1, 9), qt.IsFalse)
}

func TestMoveDownToFloor(t *testing.T) {
	c := qt.New(t)
	board := NewBoard(DefaultRows, DefaultCols)
	piece := NewPiece(KindO, board, DefaultSpawnX, 0)
	c.Assert(piece.Collision(0, 0), qt.IsFalse)

	for i := 0; i < 19; i++ {
		piece.Move(0, 1)
		if piece.Collision(0, 0) {
			piece.Move(0, -1)
			break
		}
	}

	_, y := piece.Position()
	c.Assert(y, qt.Equals, 18)
	c.Assert(piece.Collision(0, 1), qt.IsTrue)
}

func TestClone(t *testing.T) {
	c := qt.New(t)
	board := NewBoard(DefaultRows, DefaultCols)
	piece := NewPiece(KindS, board, DefaultSpawnX, 0)

	clone := piece.Clone()
	clone.Move(1, 1)
	clone.Rotate(1)

	x, y := piece.Position()
	c.Assert(x, qt.Equals, 3)
	c.Assert(y, qt.Equals, 0)
	c.Assert(piece.Shape(), qt.DeepEquals, ShapeOf(KindS))
}
