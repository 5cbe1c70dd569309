package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"nim/game"
	"strconv"
	"strings"
)

var errNotInteger = errors.New("not an integer")

type human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHuman returns an agent that prompts on out and reads one integer per line
// from in, asking again until the move is legal.
func NewHuman(in io.Reader, out io.Writer) Agent {
	return &human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *human) FindMove(state game.GameState) (game.Move, error) {
	for {
		move, err := h.readMove(state)
		switch {
		case errors.Is(err, errNotInteger):
			fmt.Fprintln(h.out, "Invalid input. Enter integers only.")
		case err != nil:
			return game.NoMove, err
		case !state.IsLegal(move): // Rejects (0, 0) too
			fmt.Fprintln(h.out, "Invalid move. Try again.")
		default:
			return move, nil
		}
	}
}

func (h *human) readMove(state game.GameState) (game.Move, error) {
	red, err := h.readInt(fmt.Sprintf("Enter the number of red marbles to remove (0 to %d): ", state.Red))
	if err != nil {
		return game.NoMove, err
	}
	blue, err := h.readInt(fmt.Sprintf("Enter the number of blue marbles to remove (0 to %d): ", state.Blue))
	if err != nil {
		return game.NoMove, err
	}
	return game.Move{Red: red, Blue: blue}, nil
}

func (h *human) readInt(prompt string) (int, error) {
	fmt.Fprint(h.out, prompt)
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}
		return 0, ErrInputClosed
	}
	n, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
	if err != nil {
		return 0, errNotInteger
	}
	return n, nil
}
