package engine

import (
	"errors"
	"nim/game"

	"github.com/google/uuid"
)

var ErrIllegalMove = errors.New("illegal move")

type Result struct {
	GameID uuid.UUID
	Final  game.GameState
	Score  int
	Turns  int
}

type Engine interface {
	// Run plays the game till it is over and reports the final score
	Run() (Result, error)
}
