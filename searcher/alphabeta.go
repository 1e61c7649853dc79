package searcher

import (
	"fmt"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is a depth-first search that returns the same move as Minimax
// at the same depth while skipping branches that cannot change the result.
type AlphaBeta struct {
	config
	depth int
}

func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth < 1 {
		panic(fmt.Sprintf("alpha-beta depth must be at least 1, got %d", depth))
	}
	return &AlphaBeta{config: newConfig(options), depth: depth}
}

func (a *AlphaBeta) Depth() int {
	return a.depth
}

func (a *AlphaBeta) FindMove(board game.Board, side game.Side) (game.Move, metrics.SearchMetric) {
	a.metrics.Start("alphabeta", a.depth)

	best := game.Pass
	bestScore := minScore
	for i, move := range board.LegalMoves(side) {
		// Later siblings only need to prove they beat the best so far
		score := a.search(board.Play(move, side), side.Opponent(), side, a.depth-1, bestScore, maxScore)
		if i == 0 || score > bestScore {
			best = move
			bestScore = score
		}
	}

	metric := a.metrics.Complete()
	log.Debug().Msgf("alphabeta depth %d chose %s for %s with score %d", a.depth, best, side, bestScore)
	return best, metric
}

// search returns the minimax value of board for root with toMove to play
// and remaining plies left. Values outside (alpha, beta) are bounds only.
func (a *AlphaBeta) search(board game.Board, toMove, root game.Side, remaining, alpha, beta int) int {
	a.metrics.AddNode()

	if remaining == 0 {
		return a.evaluate(board, root)
	}
	moves := board.LegalMoves(toMove)
	if len(moves) == 0 {
		return a.evaluate(board, root)
	}

	if toMove == root {
		value := minScore
		for _, move := range moves {
			value = max(value, a.search(board.Play(move, toMove), toMove.Opponent(), root, remaining-1, alpha, beta))
			alpha = max(alpha, value)
			if beta <= alpha {
				a.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := maxScore
	for _, move := range moves {
		value = min(value, a.search(board.Play(move, toMove), toMove.Opponent(), root, remaining-1, alpha, beta))
		beta = min(beta, value)
		if beta <= alpha {
			a.metrics.AddCutoff()
			break
		}
	}
	return value
}
