package tetris

// NewPiece creates a piece of kind at x, y bound to board for collision checks
func NewPiece(kind Kind, board *Board, x int, y int) *Piece {
	return &Piece{
		kind:  kind,
		cell:  kind.Cell(),
		shape: ShapeOf(kind),
		x:     x,
		y:     y,
		board: board,
	}
}

// Kind returns the piece kind
func (piece *Piece) Kind() Kind {
	return piece.kind
}

// Cell returns the occupant identifier the piece leaves on the board
func (piece *Piece) Cell() Cell {
	return piece.cell
}

// Shape returns a copy of the current rotation, indexed [row][col]
func (piece *Piece) Shape() [][]bool {
	return cloneShape(piece.shape)
}

// Position returns the board location of the top-left corner of the shape
func (piece *Piece) Position() (int, int) {
	return piece.x, piece.y
}

// Width returns the number of columns of the shape
func (piece *Piece) Width() int {
	if len(piece.shape) == 0 {
		return 0
	}
	return len(piece.shape[0])
}

// Height returns the number of rows of the shape
func (piece *Piece) Height() int {
	return len(piece.shape)
}

// Blocks returns the board coordinates of every occupied cell
func (piece *Piece) Blocks() []Point {
	blocks := make([]Point, 0, 4)
	for y, row := range piece.shape {
		for x, filled := range row {
			if filled {
				blocks = append(blocks, Point{X: piece.x + x, Y: piece.y + y})
			}
		}
	}
	return blocks
}

// Clone creates a copy of the piece bound to the same board
func (piece *Piece) Clone() *Piece {
	newPiece := *piece
	newPiece.shape = cloneShape(piece.shape)
	return &newPiece
}

// Move moves the piece without checking the board
func (piece *Piece) Move(dx int, dy int) {
	piece.x += dx
	piece.y += dy
}

// Rotate turns the piece clockwise for a non negative direction and
// counterclockwise otherwise. Rotate(1) followed by Rotate(-1) restores the
// original shape.
func (piece *Piece) Rotate(direction int) {
	if direction < 0 {
		piece.shape = minosCloneRotateLeft(piece.shape)
		return
	}
	piece.shape = minosCloneRotateRight(piece.shape)
}

// Collision checks if the piece moved by dx, dy leaves the sides or the
// bottom of the board or overlaps a block. Rows above the board are free.
func (piece *Piece) Collision(dx int, dy int) bool {
	for y, row := range piece.shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			newX := piece.x + x + dx
			newY := piece.y + y + dy
			if newX < 0 || newX >= piece.board.cols || newY >= piece.board.rows {
				return true
			}
			if newY >= 0 && piece.board.cells[newY][newX] != CellEmpty {
				return true
			}
		}
	}
	return false
}
