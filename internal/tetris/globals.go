package tetris

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultRows is the board height
	DefaultRows = 20
	// DefaultCols is the board width
	DefaultCols = 10
	// DefaultSpawnX is the column of the top-left corner of a new piece
	DefaultSpawnX = 3
	// DefaultDropInterval is the time before gravity moves the piece one row
	DefaultDropInterval = 1000 * time.Millisecond

	// ScorePerLine is the flat bonus for every cleared line
	ScorePerLine = 10

	// PaletteSize is the number of cell values, empty included
	PaletteSize = 8

	spawnY = 0

	// widest and tallest spawn shapes, I and the 2 row pieces
	maxSpawnWidth  = 4
	maxSpawnHeight = 2
)

const (
	// CellEmpty is an unoccupied board cell
	CellEmpty Cell = iota
	CellI
	CellJ
	CellL
	CellO
	CellS
	CellT
	CellZ
)

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	numKinds = 7
)

const (
	// ModeRunning accepts ticks and commands
	ModeRunning Mode = iota
	// ModePaused ignores ticks and commands until resumed
	ModePaused
	// ModeGameOver is terminal until Reset
	ModeGameOver
)

var (
	// ErrInvalidConfig is returned by NewEngine and Config.Validate
	ErrInvalidConfig = errors.New("invalid game configuration")
	// ErrOutOfBounds is returned when a board coordinate is outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidCell is returned for cell values outside the palette
	ErrInvalidCell = errors.New("invalid cell value")
)

type (
	// Cell is the occupant identifier stored in a board cell
	Cell uint8

	// Kind is one of the seven tetrominoes
	Kind int

	// Mode is the engine state
	Mode int

	// Palette maps every cell value to a display color
	Palette [PaletteSize]string

	// Point is a board coordinate, X is the column and Y the row
	Point struct {
		X int
		Y int
	}

	// Board is the grid of settled cells
	Board struct {
		rows  int
		cols  int
		cells [][]Cell
	}

	// Piece is the falling tetromino
	Piece struct {
		kind  Kind
		cell  Cell
		shape [][]bool
		x     int
		y     int
		board *Board
	}

	// Randomizer picks the next piece kind
	Randomizer interface {
		Intn(n int) int
	}

	// Result is the summary of a finished game
	Result struct {
		Score  int
		Lines  int
		Pieces int
	}

	// Engine is the game engine
	Engine struct {
		config     Config
		board      *Board
		current    *Piece
		next       *Piece
		mode       Mode
		dropTimer  time.Duration
		score      int
		lines      int
		pieces     int
		randomizer Randomizer
		logger     logrus.FieldLogger
		onGameOver []func(Result)
	}
)

// DefaultPalette colors the standard pieces
var DefaultPalette = Palette{
	CellEmpty: "",
	CellI:     "#00FFFF",
	CellJ:     "#0000FF",
	CellL:     "#FFA500",
	CellO:     "#FFFF00",
	CellS:     "#00FF00",
	CellT:     "#800080",
	CellZ:     "#FF0000",
}

var kindNames = [numKinds]string{"I", "J", "L", "O", "S", "T", "Z"}

func (kind Kind) String() string {
	if kind < 0 || kind >= numKinds {
		return "?"
	}
	return kindNames[kind]
}

// Cell returns the occupant identifier written into the board for the kind
func (kind Kind) Cell() Cell {
	return Cell(kind) + 1
}

// Kinds returns every piece kind in a stable order
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

func (mode Mode) String() string {
	switch mode {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Color returns the palette color for a cell, empty for out of range values
func (palette Palette) Color(cell Cell) string {
	if int(cell) >= len(palette) {
		return ""
	}
	return palette[cell]
}
