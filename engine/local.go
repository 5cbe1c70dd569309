package engine

import (
	"fmt"
	"nim/agent"
	"nim/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Local struct {
	ID       uuid.UUID
	State    game.GameState
	Agents   map[game.Player]agent.Agent
	Reporter Reporter
}

func LocalEngine(state game.GameState, agents map[game.Player]agent.Agent, reporter Reporter) *Local {
	for _, player := range []game.Player{game.Computer, game.Human} {
		if agents[player] == nil {
			panic(fmt.Sprintf("no agent for %s", player))
		}
	}

	return &Local{
		ID:       uuid.New(),
		State:    state,
		Agents:   agents,
		Reporter: reporter,
	}
}

// Run alternates turns until the state is terminal.
func (e *Local) Run() (Result, error) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	logger.Info().
		Stringer("variant", e.State.Variant).
		Stringer("first", e.State.Player).
		Msgf("starting game at %s", e.State)

	turns := 0
	for !e.State.IsTerminal() {
		e.Reporter.State(e.State)

		player := e.State.Player
		move, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return e.result(turns), fmt.Errorf("%s failed to move at %s: %w", player, e.State, err)
		}

		if !slices.Contains(e.State.LegalMoves(), move) {
			return e.result(turns), fmt.Errorf("%w %s by %s at %s", ErrIllegalMove, move, player, e.State)
		}

		if player == game.Computer {
			e.Reporter.ComputerMove(move)
		}

		e.State = e.State.Play(move)
		turns++
		logger.Debug().Int("turn", turns).Stringer("player", player).Msgf("played %s, now %s", move, e.State)
	}

	score := e.State.Score()
	e.Reporter.GameOver(score)
	logger.Info().Int("score", score).Int("turns", turns).Msg("game over")

	return e.result(turns), nil
}

func (e *Local) result(turns int) Result {
	return Result{
		GameID: e.ID,
		Final:  e.State,
		Score:  e.State.Score(),
		Turns:  turns,
	}
}
