package engine

import (
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(l *Local)

// Local referees a game between two in-process agents on its own board.
type Local struct {
	agents    [2]Agent
	board     game.Board
	budget    time.Duration
	remaining [2]time.Duration
}

// WithTimeBudget gives each side a total thinking time for the game.
func WithTimeBudget(budget time.Duration) Option {
	return func(l *Local) {
		if budget > 0 {
			l.budget = budget
		}
	}
}

func NewLocal(first, second Agent, options ...Option) *Local {
	if first == nil || second == nil {
		panic("need two agents")
	}
	l := &Local{
		agents: [2]Agent{first, second},
		board:  game.NewBoard(),
	}
	for _, option := range options {
		option(l)
	}
	l.remaining = [2]time.Duration{l.budget, l.budget}
	return l
}

func (l *Local) Board() game.Board {
	return l.board
}

// Run executes the entire game loop until neither side can move.
func (l *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", game.First)

	side := game.First
	last := game.Pass
	passes := 0
	for step := 1; passes < 2 && step <= MaxMoves; step++ {
		agent := l.agents[side]

		started := time.Now()
		move := agent.DecideMove(last, l.msLeft(side))
		if err := l.spend(side, time.Since(started)); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("%s at step %d: %w", side, step, err)
		}

		if !l.board.IsLegal(move, side) {
			return gameMetric, moveMetrics, fmt.Errorf("%s played %s at step %d: %w", side, move, step, ErrIllegalMove)
		}
		l.board.Apply(move, side)

		moveMetric := metrics.MoveMetric{Step: step, Side: side, Move: move}
		if r, ok := agent.(reporter); ok {
			moveMetric.SearchMetric = r.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		if move.IsPass() {
			passes++
			gameMetric.Passes++
		} else {
			passes = 0
			gameMetric.TotalMoves++
		}
		last = move
		side = side.Opponent()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.FirstDiscs = l.board.CountFirst()
	gameMetric.SecondDiscs = l.board.CountSecond()
	winner, ok := l.board.Winner()
	gameMetric.Winner = winner
	gameMetric.Draw = !ok

	if ok {
		log.Info().Msgf("game over after %d moves, %s wins %d-%d", gameMetric.TotalMoves, winner, gameMetric.FirstDiscs, gameMetric.SecondDiscs)
	} else {
		log.Info().Msgf("game over after %d moves, draw at %d", gameMetric.TotalMoves, gameMetric.FirstDiscs)
	}
	return gameMetric, moveMetrics, nil
}

func (l *Local) msLeft(side game.Side) int {
	if l.budget == 0 {
		return -1
	}
	return int(l.remaining[side].Milliseconds())
}

func (l *Local) spend(side game.Side, elapsed time.Duration) error {
	if l.budget == 0 {
		return nil
	}
	l.remaining[side] -= elapsed
	if l.remaining[side] < 0 {
		return ErrOutOfTime
	}
	return nil
}

// SearcherAdapter turns a bare searcher into an Agent by tracking the
// board on its own.
type SearcherAdapter struct {
	Searcher searcher.Searcher
	Side     game.Side
	board    game.Board
	last     metrics.SearchMetric
}

func NewSearcherAdapter(s searcher.Searcher, side game.Side) *SearcherAdapter {
	return &SearcherAdapter{Searcher: s, Side: side, board: game.NewBoard()}
}

func (a *SearcherAdapter) DecideMove(opponentsLast game.Move, msLeft int) game.Move {
	a.board.Apply(opponentsLast, a.Side.Opponent())
	move, metric := a.Searcher.FindMove(a.board, a.Side)
	a.last = metric
	a.board.Apply(move, a.Side)
	return move
}

func (a *SearcherAdapter) LastMetric() metrics.SearchMetric {
	return a.last
}
