// Package tetris is a falling block game engine.
//
// An Engine owns a Board, the falling Piece and a one piece preview. It is
// driven from the outside: Tick delivers elapsed time for gravity and the
// command methods move the piece. Moves are tried and reverted when the
// piece collides, so no command returns an error. When a new piece cannot
// spawn the engine switches to ModeGameOver and ignores everything but
// Reset.
//
// An Engine is not safe for concurrent use; the driver serializes calls.
package tetris
