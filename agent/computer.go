package agent

import (
	"fmt"
	"nim/game"
	"nim/searcher"

	"github.com/rs/zerolog/log"
)

type computer struct {
	searcher *searcher.AlphaBeta
	depth    int
}

// NewComputer returns an agent that searches depth plies ahead as the
// maximizing side. Depth must be positive; the caller resolves defaults.
func NewComputer(s *searcher.AlphaBeta, depth int) Agent {
	return computer{searcher: s, depth: depth}
}

func (c computer) FindMove(state game.GameState) (game.Move, error) {
	move, score := c.searcher.BestMove(state, c.depth)
	metrics := c.searcher.Metrics()

	log.Debug().
		Int("depth", c.depth).
		Int("score", score).
		Int64("nodes", metrics.Nodes).
		Int64("cutoffs", metrics.Cutoffs).
		Dur("duration", metrics.Duration).
		Msgf("searched %s", state)

	if move == game.NoMove {
		return move, fmt.Errorf("%w at %s with depth %d", ErrNoMove, state, c.depth)
	}
	return move, nil
}
