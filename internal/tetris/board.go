package tetris

import "fmt"

// NewBoard creates a new clear board
func NewBoard(rows int, cols int) *Board {
	board := &Board{rows: rows, cols: cols}
	board.cells = make([][]Cell, rows)
	for j := 0; j < rows; j++ {
		board.cells[j] = make([]Cell, cols)
	}
	return board
}

// Rows returns the board height
func (board *Board) Rows() int {
	return board.rows
}

// Cols returns the board width
func (board *Board) Cols() int {
	return board.cols
}

// Reset removes all blocks from the board
func (board *Board) Reset() {
	for j := 0; j < board.rows; j++ {
		for i := 0; i < board.cols; i++ {
			board.cells[j][i] = CellEmpty
		}
	}
}

// Cell returns the value at row, col, empty outside the grid
func (board *Board) Cell(row int, col int) Cell {
	if !board.inside(row, col) {
		return CellEmpty
	}
	return board.cells[row][col]
}

// IsOccupied checks if the cell at row, col holds a block
func (board *Board) IsOccupied(row int, col int) bool {
	return board.Cell(row, col) != CellEmpty
}

// SetCell sets the value of a board location
func (board *Board) SetCell(row int, col int, cell Cell) error {
	if !board.inside(row, col) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, row, col, board.rows, board.cols)
	}
	if int(cell) >= PaletteSize {
		return fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	board.cells[row][col] = cell
	return nil
}

// Cells returns a copy of the grid, indexed [row][col]
func (board *Board) Cells() [][]Cell {
	cells := make([][]Cell, board.rows)
	for j := 0; j < board.rows; j++ {
		cells[j] = make([]Cell, board.cols)
		copy(cells[j], board.cells[j])
	}
	return cells
}

// Merge attaches the piece to the board
func (board *Board) Merge(piece *Piece) {
	for y, row := range piece.shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			// rows above the board can only be reached by a piece that never landed
			if piece.y+y < 0 {
				continue
			}
			board.cells[piece.y+y][piece.x+x] = piece.cell
		}
	}
}

// ClearLines deletes every full line and returns how many were deleted
func (board *Board) ClearLines() int {
	cleared := 0
	for j := board.rows - 1; j >= 0; {
		if !board.isFullLine(j) {
			j--
			continue
		}
		// the line above moved into j, check it again
		board.deleteLine(j)
		cleared++
	}
	return cleared
}

// isFullLine checks if line is full
func (board *Board) isFullLine(j int) bool {
	for i := 0; i < board.cols; i++ {
		if board.cells[j][i] == CellEmpty {
			return false
		}
	}
	return true
}

// deleteLine deletes the line and drops everything above it by one row
func (board *Board) deleteLine(line int) {
	row := board.cells[line]
	for j := line; j > 0; j-- {
		board.cells[j] = board.cells[j-1]
	}
	for i := range row {
		row[i] = CellEmpty
	}
	board.cells[0] = row
}

func (board *Board) inside(row int, col int) bool {
	return row >= 0 && row < board.rows && col >= 0 && col < board.cols
}

// String draws the board one line per row, '.' for empty cells
func (board *Board) String() string {
	b := make([]byte, 0, board.rows*(board.cols+1))
	for j := 0; j < board.rows; j++ {
		for i := 0; i < board.cols; i++ {
			cell := board.cells[j][i]
			if cell == CellEmpty {
				b = append(b, '.')
			} else {
				b = append(b, Kind(cell-1).String()[0])
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
