package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// Heuristic scores each candidate move by looking one reply ahead: the disc
// differential after the move, the mover's worst-case mobility after any
// opponent reply, and whether the move takes or concedes a corner.
type Heuristic struct {
	config
}

func NewHeuristic(options ...Option) *Heuristic {
	return &Heuristic{config: newConfig(options)}
}

type candidate struct {
	move          game.Move
	discDiff      int
	mobilityFloor int
	givesCorner   bool
}

func (c candidate) score() int {
	score := c.mobilityFloor*MobilityWeight + c.discDiff
	if c.move.IsCorner() {
		score += CornerWeight
	}
	if c.givesCorner {
		score -= CornerWeight
	}
	return score
}

func (h *Heuristic) FindMove(board game.Board, side game.Side) (game.Move, metrics.SearchMetric) {
	h.metrics.Start("heuristic", 1)

	best := game.Pass
	bestScore := 0
	for i, move := range board.LegalMoves(side) {
		score := h.evaluateCandidate(board, side, move).score()
		if i == 0 || score > bestScore {
			best = move
			bestScore = score
		}
	}

	metric := h.metrics.Complete()
	log.Debug().Msgf("heuristic chose %s for %s with score %d", best, side, bestScore)
	return best, metric
}

func (h *Heuristic) evaluateCandidate(board game.Board, side game.Side, move game.Move) candidate {
	opponent := side.Opponent()
	after := board.Play(move, side)
	h.metrics.AddNode()

	c := candidate{
		move:          move,
		discDiff:      h.evaluate(after, side),
		mobilityFloor: NoReplyMobility,
	}
	for _, reply := range after.LegalMoves(opponent) {
		if reply.IsCorner() {
			c.givesCorner = true
		}
		mobility := after.Play(reply, opponent).Mobility(side)
		h.metrics.AddNode()
		if mobility < c.mobilityFloor {
			c.mobilityFloor = mobility
		}
	}
	return c
}
