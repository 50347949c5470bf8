package tetris

import (
	"fmt"
	"time"
)

// Config holds the construction time settings of an engine
type Config struct {
	Rows         int
	Cols         int
	SpawnX       int
	DropInterval time.Duration
	Palette      Palette
}

// DefaultConfig returns the 20x10 board with a one second drop interval
func DefaultConfig() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		SpawnX:       DefaultSpawnX,
		DropInterval: DefaultDropInterval,
		Palette:      DefaultPalette,
	}
}

// Validate checks that every piece can spawn and fall
func (config Config) Validate() error {
	if config.Rows < maxSpawnHeight {
		return fmt.Errorf("%w: rows must be at least %d, got %d", ErrInvalidConfig, maxSpawnHeight, config.Rows)
	}
	if config.Cols < maxSpawnWidth {
		return fmt.Errorf("%w: cols must be at least %d, got %d", ErrInvalidConfig, maxSpawnWidth, config.Cols)
	}
	if config.SpawnX < 0 || config.SpawnX+maxSpawnWidth > config.Cols {
		return fmt.Errorf("%w: spawn column %d does not fit a %d wide piece in %d columns", ErrInvalidConfig, config.SpawnX, maxSpawnWidth, config.Cols)
	}
	if config.DropInterval <= 0 {
		return fmt.Errorf("%w: drop interval must be positive, got %s", ErrInvalidConfig, config.DropInterval)
	}
	for cell := CellI; cell <= CellZ; cell++ {
		if config.Palette[cell] == "" {
			return fmt.Errorf("%w: palette has no color for cell %d", ErrInvalidConfig, cell)
		}
	}
	return nil
}
