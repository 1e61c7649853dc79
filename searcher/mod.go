package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Searcher picks a move for side on board. It returns game.Pass when side
// has no legal move.
type Searcher interface {
	FindMove(board game.Board, side game.Side) (game.Move, metrics.SearchMetric)
}

type Option func(c *config)

type config struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func newConfig(options []Option) config {
	c := config{ // Default values
		evaluate: game.EvaluateDiscs,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}
