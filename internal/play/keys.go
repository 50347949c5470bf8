package play

import "github.com/tursodatabase/blocks/internal/tetris"

// Action is a player command independent of the key that triggered it
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionPause
	ActionResume
	ActionNewGame
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:     "none",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionSoftDrop: "soft drop",
	ActionRotate:   "rotate",
	ActionHardDrop: "hard drop",
	ActionPause:    "pause",
	ActionResume:   "resume",
	ActionNewGame:  "new game",
	ActionQuit:     "quit",
}

func (action Action) String() string {
	if name, ok := actionNames[action]; ok {
		return name
	}
	return "unknown"
}

// KeyMap binds key names, as reported by bubbletea, to actions per engine mode
type KeyMap struct {
	Running  map[string]Action
	Paused   map[string]Action
	GameOver map[string]Action
}

// DefaultKeyMap uses the arrows, vi keys and space for hard drop
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Running: map[string]Action{
			"left":   ActionLeft,
			"h":      ActionLeft,
			"right":  ActionRight,
			"l":      ActionRight,
			"down":   ActionSoftDrop,
			"j":      ActionSoftDrop,
			"up":     ActionRotate,
			"k":      ActionRotate,
			"x":      ActionRotate,
			" ":      ActionHardDrop,
			"space":  ActionHardDrop,
			"p":      ActionPause,
			"q":      ActionQuit,
			"ctrl+c": ActionQuit,
		},
		Paused: map[string]Action{
			"p":      ActionResume,
			"q":      ActionQuit,
			"ctrl+c": ActionQuit,
		},
		GameOver: map[string]Action{
			"r":      ActionNewGame,
			"enter":  ActionNewGame,
			"q":      ActionQuit,
			"ctrl+c": ActionQuit,
			"esc":    ActionQuit,
		},
	}
}

// Lookup returns the action bound to key in the given mode
func (keys KeyMap) Lookup(mode tetris.Mode, key string) Action {
	var bindings map[string]Action
	switch mode {
	case tetris.ModeRunning:
		bindings = keys.Running
	case tetris.ModePaused:
		bindings = keys.Paused
	case tetris.ModeGameOver:
		bindings = keys.GameOver
	}
	if action, ok := bindings[key]; ok {
		return action
	}
	return ActionNone
}

// Apply runs action against engine. Quit and None are left to the caller.
func Apply(engine *tetris.Engine, action Action) {
	switch action {
	case ActionLeft:
		engine.MoveLeft()
	case ActionRight:
		engine.MoveRight()
	case ActionSoftDrop:
		engine.SoftDrop()
	case ActionRotate:
		engine.Rotate()
	case ActionHardDrop:
		engine.HardDrop()
	case ActionPause:
		engine.Pause()
	case ActionResume:
		engine.Resume()
	case ActionNewGame:
		engine.Reset()
	}
}
