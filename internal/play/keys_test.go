package play

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tursodatabase/blocks/internal/tetris"
)

func TestLookup(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		mode   tetris.Mode
		key    string
		action Action
	}{
		{tetris.ModeRunning, "left", ActionLeft},
		{tetris.ModeRunning, "l", ActionRight},
		{tetris.ModeRunning, "down", ActionSoftDrop},
		{tetris.ModeRunning, "up", ActionRotate},
		{tetris.ModeRunning, " ", ActionHardDrop},
		{tetris.ModeRunning, "p", ActionPause},
		{tetris.ModeRunning, "r", ActionNone},
		{tetris.ModePaused, "p", ActionResume},
		{tetris.ModePaused, "left", ActionNone},
		{tetris.ModePaused, "q", ActionQuit},
		{tetris.ModeGameOver, "r", ActionNewGame},
		{tetris.ModeGameOver, " ", ActionNone},
		{tetris.ModeGameOver, "ctrl+c", ActionQuit},
	}
	for _, test := range tests {
		t.Run(test.mode.String()+"/"+test.key, func(t *testing.T) {
			require.Equal(t, test.action, keys.Lookup(test.mode, test.key))
		})
	}
}

func TestApply(t *testing.T) {
	engine, err := tetris.NewEngine(tetris.DefaultConfig(), tetris.WithSeed(3))
	require.NoError(t, err)

	Apply(engine, ActionLeft)
	x, _ := engine.Current().Position()
	require.Equal(t, tetris.DefaultSpawnX-1, x)

	Apply(engine, ActionPause)
	require.Equal(t, tetris.ModePaused, engine.Mode())
	Apply(engine, ActionRight)
	x, _ = engine.Current().Position()
	require.Equal(t, tetris.DefaultSpawnX-1, x)

	Apply(engine, ActionResume)
	Apply(engine, ActionHardDrop)
	require.Equal(t, 1, engine.Pieces())

	Apply(engine, ActionNewGame)
	require.Equal(t, 0, engine.Pieces())
	require.Equal(t, "hard drop", ActionHardDrop.String())
}
