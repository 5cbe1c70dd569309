package agent

import (
	"errors"
	"nim/game"
)

var (
	ErrNoMove      = errors.New("search returned no move")
	ErrInputClosed = errors.New("input closed")
)

type Agent interface {
	// FindMove blocks until the agent picks a move for state
	FindMove(state game.GameState) (game.Move, error)
}
