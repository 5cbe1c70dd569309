package searcher

import "nim/game"

type Option func(a *AlphaBeta)

// AlphaBeta is a depth-bounded minimax search with alpha-beta pruning. The
// static evaluation at the leaves is the raw score of the position.
type AlphaBeta struct {
	pruning bool
	metrics MetricsCollector
	last    SearchMetrics
}

// WithoutPruning turns the search into plain minimax.
func WithoutPruning() Option {
	return func(a *AlphaBeta) {
		a.pruning = false
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = NewMetricsCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		pruning: true,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// BestMove searches for the maximizing side with a full window.
func (a *AlphaBeta) BestMove(state game.GameState, depth int) (game.Move, int) {
	return a.Search(state, depth, true, MinScore, MaxScore)
}

// Search returns the best move for the side given by maximizing together with
// its evaluation. The move is game.NoMove when the position is terminal or depth
// is 0. The caller's state is never modified.
func (a *AlphaBeta) Search(state game.GameState, depth int, maximizing bool, alpha, beta int) (game.Move, int) {
	a.metrics.Start(depth, a.pruning)
	move, score := a.search(&state, depth, maximizing, alpha, beta, true)
	a.last = a.metrics.Complete()
	return move, score
}

// Metrics returns the metrics of the last search, zero valued unless the
// searcher was built WithMetrics.
func (a *AlphaBeta) Metrics() SearchMetrics {
	return a.last
}

func (a *AlphaBeta) search(state *game.GameState, depth int, maximizing bool, alpha, beta int, root bool) (game.Move, int) {
	a.metrics.AddNode()

	if state.IsTerminal() || depth == 0 {
		return game.NoMove, state.Score()
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, state.Score()
	}

	bestMove := game.NoMove
	if maximizing {
		maxEval := MinScore
		for _, move := range moves {
			if root {
				a.metrics.AddRootMove()
			}
			eval := a.child(state, move, depth-1, false, alpha, beta)
			// Strictly > so ties keep the earliest move
			if eval > maxEval {
				maxEval = eval
				bestMove = move
			}
			alpha = max(alpha, eval)
			if a.pruning && beta <= alpha {
				a.metrics.AddCutoff()
				break
			}
		}
		return bestMove, maxEval
	}

	minEval := MaxScore
	for _, move := range moves {
		if root {
			a.metrics.AddRootMove()
		}
		eval := a.child(state, move, depth-1, true, alpha, beta)
		if eval < minEval {
			minEval = eval
			bestMove = move
		}
		beta = min(beta, eval)
		if a.pruning && beta <= alpha {
			a.metrics.AddCutoff()
			break
		}
	}
	return bestMove, minEval
}

// child evaluates move from state. The move is undone before returning so
// sibling branches always start from the same position.
func (a *AlphaBeta) child(state *game.GameState, move game.Move, depth int, maximizing bool, alpha, beta int) int {
	state.Apply(move)
	defer state.Undo(move)

	_, eval := a.search(state, depth, maximizing, alpha, beta, false)
	return eval
}
