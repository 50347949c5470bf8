package play

import (
	"context"
	"math/rand"

	"github.com/tursodatabase/blocks/internal/tetris"
)

// Heuristic weights, scaled by 100
const (
	weightLines     = 76
	weightHeight    = -51
	weightHoles     = -36
	weightBumpiness = -18
)

// Placement is a target rotation and column for the falling piece
type Placement struct {
	Rotations int
	X         int
	value     int
}

// Bot plays an engine through its public commands.
// It places each piece where a simple board heuristic scores best and makes
// a random placement instead with probability Randomness.
type Bot struct {
	rng        *rand.Rand
	Randomness float64
}

func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// Play drops pieces until the engine stops running, maxPieces locked pieces
// (zero for no limit) or ctx is done.
func (bot *Bot) Play(ctx context.Context, engine *tetris.Engine, maxPieces int) (tetris.Result, error) {
	for engine.Running() {
		if maxPieces > 0 && engine.Pieces() >= maxPieces {
			break
		}
		if err := ctx.Err(); err != nil {
			return engine.Result(), err
		}
		bot.Step(engine)
	}
	return engine.Result(), nil
}

// Step places the current piece with a hard drop
func (bot *Bot) Step(engine *tetris.Engine) {
	placements := Placements(engine)
	if len(placements) == 0 {
		engine.HardDrop()
		return
	}

	target := placements[0]
	if bot.Randomness > 0 && bot.rng.Float64() < bot.Randomness {
		target = placements[bot.rng.Intn(len(placements))]
	} else {
		best := []Placement{target}
		for _, placement := range placements[1:] {
			switch {
			case placement.value > target.value:
				target = placement
				best = []Placement{placement}
			case placement.value == target.value:
				best = append(best, placement)
			}
		}
		target = best[bot.rng.Intn(len(best))]
	}

	for i := 0; i < target.Rotations; i++ {
		engine.Rotate()
	}
	for {
		x, _ := engine.Current().Position()
		if x == target.X {
			break
		}
		if x < target.X {
			engine.MoveRight()
		} else {
			engine.MoveLeft()
		}
		if moved, _ := engine.Current().Position(); moved == x {
			break
		}
	}
	engine.HardDrop()
}

// Placements lists every rotation and column where the current piece fits,
// each scored by the board it would leave behind
func Placements(engine *tetris.Engine) []Placement {
	var placements []Placement
	current := engine.Current()
	x0, _ := current.Position()
	cols := engine.Config().Cols

	rotated := current.Clone()
	for rotations := 0; rotations < 4; rotations++ {
		if rotations > 0 {
			rotated.Rotate(1)
		}
		if rotated.Collision(0, 0) {
			break
		}
		for x := -rotated.Width(); x <= cols; x++ {
			piece := rotated.Clone()
			piece.Move(x-x0, 0)
			if piece.Collision(0, 0) {
				continue
			}
			for !piece.Collision(0, 1) {
				piece.Move(0, 1)
			}
			placements = append(placements, Placement{
				Rotations: rotations,
				X:         x,
				value:     evaluate(engine.Cells(), piece),
			})
		}
	}
	return placements
}

func evaluate(cells [][]tetris.Cell, piece *tetris.Piece) int {
	for _, p := range piece.Blocks() {
		if p.Y < 0 {
			// would top out
			return weightHeight * 100 * len(cells)
		}
		cells[p.Y][p.X] = piece.Cell()
	}

	rows := len(cells)
	lines := 0
	for _, row := range cells {
		full := true
		for _, cell := range row {
			if cell == tetris.CellEmpty {
				full = false
				break
			}
		}
		if full {
			lines++
		}
	}

	height, holes, bumpiness := 0, 0, 0
	previous := -1
	for x := range cells[0] {
		top := rows
		for y := 0; y < rows; y++ {
			if cells[y][x] != tetris.CellEmpty {
				if top == rows {
					top = y
				}
			} else if top < y {
				holes++
			}
		}
		columnHeight := rows - top
		height += columnHeight
		if previous >= 0 {
			diff := columnHeight - previous
			if diff < 0 {
				diff = -diff
			}
			bumpiness += diff
		}
		previous = columnHeight
	}

	return weightLines*lines + weightHeight*height + weightHoles*holes + weightBumpiness*bumpiness
}
