package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. The same seed always
// produces the same sequence of choices.
type Random struct {
	config
	rng *rand.Rand
}

func NewRandom(seed uint64, options ...Option) *Random {
	return &Random{
		config: newConfig(options),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) FindMove(board game.Board, side game.Side) (game.Move, metrics.SearchMetric) {
	r.metrics.Start("random", 0)

	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return game.Pass, r.metrics.Complete()
	}
	r.metrics.AddNode()
	return moves[r.rng.Intn(len(moves))], r.metrics.Complete()
}
