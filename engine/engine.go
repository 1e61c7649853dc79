package engine

import (
	"errors"

	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds a game including passes. A real game never gets close.
const MaxMoves = 200

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrOutOfTime   = errors.New("time budget exceeded")
)

// Agent is the driver contract: given the opponent's last move (game.Pass
// on the first turn or after a pass) and the milliseconds left for the
// game (-1 when unlimited), it returns its own move or game.Pass.
type Agent interface {
	DecideMove(opponentsLast game.Move, msLeft int) game.Move
}

type Engine interface {
	// Run plays a game until neither side can move
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// reporter is implemented by agents that expose the metrics of their last search.
type reporter interface {
	LastMetric() metrics.SearchMetric
}
