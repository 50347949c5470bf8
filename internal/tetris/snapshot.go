package tetris

// PieceView is a read only copy of a piece for renderers
type PieceView struct {
	Kind  Kind
	Cell  Cell
	Shape [][]bool
	X     int
	Y     int
}

// Snapshot is the engine state between two transitions
type Snapshot struct {
	Rows    int
	Cols    int
	Cells   [][]Cell
	Current PieceView
	Next    PieceView
	GhostY  int
	Score   int
	Lines   int
	Pieces  int
	Mode    Mode
	Palette Palette
}

// Level is one plus every ten cleared lines
func (snapshot Snapshot) Level() int {
	return snapshot.Lines/10 + 1
}

// Snapshot copies the state a renderer needs
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		Rows:    engine.board.rows,
		Cols:    engine.board.cols,
		Cells:   engine.board.Cells(),
		Current: engine.current.view(),
		Next:    engine.next.view(),
		GhostY:  engine.GhostY(),
		Score:   engine.score,
		Lines:   engine.lines,
		Pieces:  engine.pieces,
		Mode:    engine.mode,
		Palette: engine.config.Palette,
	}
}

func (piece *Piece) view() PieceView {
	return PieceView{
		Kind:  piece.kind,
		Cell:  piece.cell,
		Shape: cloneShape(piece.shape),
		X:     piece.x,
		Y:     piece.y,
	}
}
