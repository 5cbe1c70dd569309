package game

import "fmt"

// GameState is one position of the game. Values are cheap to copy: Play returns
// a new state, while Apply and Undo mutate in place for the searcher.
type GameState struct {
	Red     int     // Red marbles left
	Blue    int     // Blue marbles left
	Variant Variant // Rule set
	Player  Player  // Side to move
}

func NewGameState(red, blue int, variant Variant, first Player) GameState {
	if red < 0 || blue < 0 {
		panic(fmt.Sprintf("negative pile: red=%d blue=%d", red, blue))
	}
	return GameState{Red: red, Blue: blue, Variant: variant, Player: first}
}

// IsTerminal reports whether the game is over. Standard ends on the first empty
// pile, misere only once both piles are empty.
func (gs GameState) IsTerminal() bool {
	if gs.Variant == Misere {
		return gs.Red == 0 && gs.Blue == 0
	}
	return gs.Red == 0 || gs.Blue == 0
}

// Score evaluates any position, terminal or not.
func (gs GameState) Score() int {
	return RED_POINTS*gs.Red + BLUE_POINTS*gs.Blue
}

// LegalMoves returns every move in red-major, blue-minor ascending order.
// The order is relied upon by the searcher to break ties.
func (gs GameState) LegalMoves() []Move {
	moves := make([]Move, 0, (gs.Red+1)*(gs.Blue+1)-1)
	for r := 0; r <= gs.Red; r++ {
		for b := 0; b <= gs.Blue; b++ {
			if r+b > 0 { // At least one marble must be removed
				moves = append(moves, Move{Red: r, Blue: b})
			}
		}
	}
	return moves
}

func (gs GameState) IsLegal(move Move) bool {
	return move.Red >= 0 && move.Blue >= 0 &&
		move.Red <= gs.Red && move.Blue <= gs.Blue &&
		move.Red+move.Blue > 0
}

// Play returns the state after move. It panics on an illegal move.
func (gs GameState) Play(move Move) GameState {
	next := gs
	next.Apply(move)
	return next
}

// Apply plays move in place. It panics on an illegal move.
func (gs *GameState) Apply(move Move) {
	if !gs.IsLegal(move) {
		panic(fmt.Sprintf("illegal move %s at %s", move, gs))
	}
	gs.Red -= move.Red
	gs.Blue -= move.Blue
	gs.Player = gs.Player.Opponent()
}

// Undo reverts a previous Apply of the same move.
func (gs *GameState) Undo(move Move) {
	gs.Red += move.Red
	gs.Blue += move.Blue
	gs.Player = gs.Player.Opponent()
}

func (gs GameState) String() string {
	return fmt.Sprintf("red=%d blue=%d", gs.Red, gs.Blue)
}
