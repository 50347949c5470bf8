package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures an engine
type Option func(*Engine)

// WithRandomizer sets the source of piece kinds
func WithRandomizer(randomizer Randomizer) Option {
	return func(engine *Engine) {
		engine.randomizer = randomizer
	}
}

// WithSeed seeds the default randomizer
func WithSeed(seed int64) Option {
	return WithRandomizer(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger, the default discards everything
func WithLogger(logger logrus.FieldLogger) Option {
	return func(engine *Engine) {
		engine.logger = logger
	}
}

// OnGameOver registers fn to be called once per game when a new piece
// cannot spawn
func OnGameOver(fn func(Result)) Option {
	return func(engine *Engine) {
		engine.onGameOver = append(engine.onGameOver, fn)
	}
}

// NewEngine creates a running engine with a fresh board, current and next piece
func NewEngine(config Config, options ...Option) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	engine := &Engine{
		config: config,
		board:  NewBoard(config.Rows, config.Cols),
	}
	for _, option := range options {
		option(engine)
	}
	if engine.randomizer == nil {
		engine.randomizer = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if engine.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		engine.logger = logger
	}

	engine.NewGame()
	return engine, nil
}

// NewGame resets board and starts a new game
func (engine *Engine) NewGame() {
	engine.board.Reset()
	engine.score = 0
	engine.lines = 0
	engine.pieces = 0
	engine.dropTimer = 0
	engine.current = engine.newPiece()
	engine.next = engine.newPiece()
	engine.mode = ModeRunning

	engine.logger.WithFields(logrus.Fields{
		"rows":    engine.config.Rows,
		"cols":    engine.config.Cols,
		"current": engine.current.kind,
		"next":    engine.next.kind,
	}).Debug("new game")
}

// Reset is NewGame, the only way out of game over
func (engine *Engine) Reset() {
	engine.NewGame()
}

// Start resumes a paused game
func (engine *Engine) Start() {
	engine.Resume()
}

// Resume resumes a paused game
func (engine *Engine) Resume() {
	if engine.mode != ModePaused {
		return
	}
	engine.mode = ModeRunning
	engine.logger.Debug("resumed")
}

// Pause the game
func (engine *Engine) Pause() {
	if engine.mode != ModeRunning {
		return
	}
	engine.mode = ModePaused
	engine.logger.Debug("paused")
}

// Tick adds delta to the drop timer and moves the piece down when the
// timer exceeds the drop interval
func (engine *Engine) Tick(delta time.Duration) {
	if engine.mode != ModeRunning || delta < 0 {
		return
	}
	engine.dropTimer += delta
	if engine.dropTimer > engine.config.DropInterval {
		engine.moveDown()
		engine.dropTimer = 0
	}
}

// MoveLeft moves the piece left if there is room
func (engine *Engine) MoveLeft() {
	engine.shift(-1)
}

// MoveRight moves the piece right if there is room
func (engine *Engine) MoveRight() {
	engine.shift(1)
}

func (engine *Engine) shift(dx int) {
	if engine.mode != ModeRunning {
		return
	}
	engine.current.Move(dx, 0)
	if engine.current.Collision(0, 0) {
		engine.current.Move(-dx, 0)
	}
}

// SoftDrop moves the piece down one row, locking it if it cannot move
func (engine *Engine) SoftDrop() {
	if engine.mode != ModeRunning {
		return
	}
	engine.moveDown()
	engine.dropTimer = 0
}

// Rotate rotates the piece clockwise if the new orientation fits
func (engine *Engine) Rotate() {
	if engine.mode != ModeRunning {
		return
	}
	engine.current.Rotate(1)
	if engine.current.Collision(0, 0) {
		engine.current.Rotate(-1)
	}
}

// HardDrop drops the piece to the lowest free row and locks it
func (engine *Engine) HardDrop() {
	if engine.mode != ModeRunning {
		return
	}
	for !engine.current.Collision(0, 1) {
		engine.current.Move(0, 1)
	}
	engine.commit()
	engine.dropTimer = 0
}

// moveDown moves the piece down and commits it when it hits something
func (engine *Engine) moveDown() {
	engine.current.Move(0, 1)
	if engine.current.Collision(0, 0) {
		engine.current.Move(0, -1)
		engine.commit()
	}
}

// commit merges the piece, clears lines and spawns the next piece
func (engine *Engine) commit() {
	engine.board.Merge(engine.current)
	engine.pieces++

	lines := engine.board.ClearLines()
	if lines > 0 {
		engine.lines += lines
		engine.score += lines * ScorePerLine
		engine.logger.WithFields(logrus.Fields{
			"lines": lines,
			"score": engine.score,
		}).Debug("lines cleared")
	}

	engine.current = engine.next
	engine.next = engine.newPiece()

	if engine.current.Collision(0, 0) {
		engine.gameOver()
	}
}

// gameOver stops the engine and notifies the listeners
func (engine *Engine) gameOver() {
	engine.mode = ModeGameOver
	result := engine.Result()

	engine.logger.WithFields(logrus.Fields{
		"score":  result.Score,
		"lines":  result.Lines,
		"pieces": result.Pieces,
	}).Info("game over")

	for _, fn := range engine.onGameOver {
		fn(result)
	}
}

func (engine *Engine) newPiece() *Piece {
	kind := Kind(engine.randomizer.Intn(numKinds))
	return NewPiece(kind, engine.board, engine.config.SpawnX, spawnY)
}

// Config returns the configuration the engine was built with
func (engine *Engine) Config() Config {
	return engine.config
}

// Cells returns a copy of the settled cells
func (engine *Engine) Cells() [][]Cell {
	return engine.board.Cells()
}

// Current returns a copy of the falling piece
func (engine *Engine) Current() *Piece {
	return engine.current.Clone()
}

// Next returns a copy of the preview piece
func (engine *Engine) Next() *Piece {
	return engine.next.Clone()
}

// Score returns the score
func (engine *Engine) Score() int {
	return engine.score
}

// Lines returns the number of cleared lines
func (engine *Engine) Lines() int {
	return engine.lines
}

// Pieces returns the number of pieces locked on the board
func (engine *Engine) Pieces() int {
	return engine.pieces
}

// Mode returns the engine state
func (engine *Engine) Mode() Mode {
	return engine.mode
}

// Running reports whether ticks and commands are accepted
func (engine *Engine) Running() bool {
	return engine.mode == ModeRunning
}

// GameOver reports whether the game has ended
func (engine *Engine) GameOver() bool {
	return engine.mode == ModeGameOver
}

// DropInterval returns the time between gravity steps
func (engine *Engine) DropInterval() time.Duration {
	return engine.config.DropInterval
}

// GhostY returns the row the current piece would land on after a hard drop
func (engine *Engine) GhostY() int {
	ghost := engine.current.Clone()
	for !ghost.Collision(0, 1) {
		ghost.Move(0, 1)
	}
	return ghost.y
}

// Result returns the summary of the game so far
func (engine *Engine) Result() Result {
	return Result{
		Score:  engine.score,
		Lines:  engine.lines,
		Pieces: engine.pieces,
	}
}
