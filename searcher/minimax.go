package searcher

import (
	"fmt"
	"math"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

const (
	minScore = math.MinInt
	maxScore = math.MaxInt
)

// Minimax searches a fixed number of plies by building the full game tree
// level by level and backing scores up from the deepest level.
type Minimax struct {
	config
	depth int
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic(fmt.Sprintf("minimax depth must be at least 1, got %d", depth))
	}
	return &Minimax{config: newConfig(options), depth: depth}
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) FindMove(board game.Board, side game.Side) (game.Move, metrics.SearchMetric) {
	m.metrics.Start("minimax", m.depth)

	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return game.Pass, m.metrics.Complete()
	}

	t := &tree{root: side}
	roots := make([]node, len(moves))
	for i, move := range moves {
		roots[i] = node{parent: -1, move: move, board: board.Play(move, side)}
		m.metrics.AddNode()
	}
	t.levels = append(t.levels, roots)

	for n := 1; n < m.depth; n++ {
		if !t.expand(m.metrics.AddNode) {
			break
		}
	}
	t.propagate(m.evaluate)
	best, score := t.best()

	metric := m.metrics.Complete()
	log.Debug().Msgf("minimax depth %d chose %s for %s with score %d", m.depth, best, side, score)
	return best, metric
}
