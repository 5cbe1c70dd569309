package engine

import (
	"io"
	"nim/game"

	"github.com/fatih/color"
)

// Reporter prints game progress for the players.
type Reporter interface {
	State(state game.GameState)
	ComputerMove(move game.Move)
	GameOver(score int)
}

type consoleReporter struct {
	out      io.Writer
	state    *color.Color
	computer *color.Color
	gameOver *color.Color
}

func NewConsoleReporter(out io.Writer) Reporter {
	return &consoleReporter{
		out:      out,
		state:    color.New(color.FgCyan),
		computer: color.New(color.FgYellow),
		gameOver: color.New(color.FgGreen, color.Bold),
	}
}

func (r *consoleReporter) State(state game.GameState) {
	r.state.Fprintf(r.out, "Current state: Red marbles: %d, Blue marbles: %d\n", state.Red, state.Blue)
}

func (r *consoleReporter) ComputerMove(move game.Move) {
	r.computer.Fprintf(r.out, "Computer picked %d red and %d blue marble.\n", move.Red, move.Blue)
}

func (r *consoleReporter) GameOver(score int) {
	r.gameOver.Fprintf(r.out, "Game Over! Final score: %d\n", score)
}
