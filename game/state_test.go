package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		red, blue int
		standard  bool
		misere    bool
	}{
		{red: 0, blue: 0, standard: true, misere: true},
		{red: 0, blue: 3, standard: true, misere: false},
		{red: 2, blue: 0, standard: true, misere: false},
		{red: 1, blue: 1, standard: false, misere: false},
		{red: 10, blue: 10, standard: false, misere: false},
	}
	for _, tt := range tests {
		standard := NewGameState(tt.red, tt.blue, Standard, Computer)
		misere := NewGameState(tt.red, tt.blue, Misere, Computer)

		require.Equal(t, tt.standard, standard.IsTerminal(), "standard %s", standard)
		require.Equal(t, tt.misere, misere.IsTerminal(), "misere %s", misere)
	}
}

func TestScore(t *testing.T) {
	for red := 0; red <= 5; red++ {
		for blue := 0; blue <= 5; blue++ {
			state := NewGameState(red, blue, Standard, Human)
			require.Equal(t, 2*red+3*blue, state.Score(), "%s", state)
		}
	}
}

func TestLegalMoves(t *testing.T) {
	t.Run("ordered red-major without the empty move", func(t *testing.T) {
		state := NewGameState(3, 1, Standard, Computer)

		got := state.LegalMoves()

		require.Equal(t, []Move{
			{0, 1},
			{1, 0}, {1, 1},
			{2, 0}, {2, 1},
			{3, 0}, {3, 1},
		}, got)
	})

	t.Run("every move is legal and the list is empty iff both piles are", func(t *testing.T) {
		for red := 0; red <= 4; red++ {
			for blue := 0; blue <= 4; blue++ {
				state := NewGameState(red, blue, Misere, Computer)
				moves := state.LegalMoves()

				require.Len(t, moves, (red+1)*(blue+1)-1)
				require.Equal(t, red == 0 && blue == 0, len(moves) == 0)
				for _, move := range moves {
					require.True(t, state.IsLegal(move), "%s at %s", move, state)
					require.GreaterOrEqual(t, move.Red, 0)
					require.GreaterOrEqual(t, move.Blue, 0)
					require.LessOrEqual(t, move.Red, red)
					require.LessOrEqual(t, move.Blue, blue)
					require.Positive(t, move.Red+move.Blue)
				}
			}
		}
	})
}

func TestIsLegal(t *testing.T) {
	state := NewGameState(2, 3, Standard, Human)

	require.True(t, state.IsLegal(Move{Red: 2, Blue: 3}))
	require.True(t, state.IsLegal(Move{Red: 0, Blue: 1}))
	require.False(t, state.IsLegal(Move{Red: 0, Blue: 0}), "Must remove at least one marble")
	require.False(t, state.IsLegal(Move{Red: 3, Blue: 0}))
	require.False(t, state.IsLegal(Move{Red: 0, Blue: 4}))
	require.False(t, state.IsLegal(Move{Red: -1, Blue: 2}))
}

func TestApplyUndo(t *testing.T) {
	t.Run("apply removes marbles and passes the turn", func(t *testing.T) {
		state := NewGameState(4, 4, Standard, Computer)

		state.Apply(Move{Red: 1, Blue: 3})

		require.Equal(t, GameState{Red: 3, Blue: 1, Variant: Standard, Player: Human}, state)
	})

	t.Run("undo restores the exact state", func(t *testing.T) {
		for _, variant := range []Variant{Standard, Misere} {
			for _, player := range []Player{Computer, Human} {
				original := NewGameState(3, 2, variant, player)
				for _, move := range original.LegalMoves() {
					state := original
					state.Apply(move)
					state.Undo(move)
					require.Equal(t, original, state, "%s", move)
				}
			}
		}
	})

	t.Run("illegal move panics", func(t *testing.T) {
		state := NewGameState(1, 1, Standard, Computer)

		require.Panics(t, func() { state.Apply(Move{Red: 2, Blue: 0}) })
		require.Panics(t, func() { state.Apply(NoMove) })
		require.Equal(t, NewGameState(1, 1, Standard, Computer), state, "State should not change")
	})
}

func TestPlay(t *testing.T) {
	state := NewGameState(2, 2, Misere, Human)

	next := state.Play(Move{Red: 2, Blue: 0})

	require.Equal(t, NewGameState(2, 2, Misere, Human), state, "Play should not modify the receiver")
	require.Equal(t, GameState{Red: 0, Blue: 2, Variant: Misere, Player: Computer}, next)
	require.False(t, next.IsTerminal())
	require.Panics(t, func() { state.Play(Move{Red: 0, Blue: 3}) })
}

func TestNewGameStatePanicsOnNegativePiles(t *testing.T) {
	require.Panics(t, func() { NewGameState(-1, 0, Standard, Human) })
}
