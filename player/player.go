package player

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

const (
	// Unlimited is the msLeft value meaning there is no time limit.
	Unlimited = -1

	DefaultEndgameThreshold = 55
	DefaultEndgameDepth     = 7
	DefaultDeepSearchBudget = 2 * time.Second
)

type Option func(p *Player)

// Player keeps its own copy of the board and picks moves for one side:
// the one-ply heuristic for most of the game, and a fixed-depth search once
// the board is nearly full.
type Player struct {
	side             game.Side
	board            game.Board
	endgameThreshold int
	endgameDepth     int
	deepSearchBudget time.Duration
	useAlphaBeta     bool
	searcherOptions  []searcher.Option
	heuristic        searcher.Searcher
	endgame          searcher.Searcher
	lastMetric       metrics.SearchMetric
}

// WithBoard starts the player from b instead of the standard position.
func WithBoard(b game.Board) Option {
	return func(p *Player) {
		p.board = b
	}
}

// WithEndgameThreshold sets the disc count from which the deep search is used.
func WithEndgameThreshold(discs int) Option {
	return func(p *Player) {
		if discs >= 0 {
			p.endgameThreshold = discs
		}
	}
}

func WithEndgameDepth(depth int) Option {
	return func(p *Player) {
		if depth > 0 {
			p.endgameDepth = depth
		}
	}
}

// WithDeepSearchBudget sets the least remaining time needed to start the
// deep search. With less time left the player keeps using the heuristic.
func WithDeepSearchBudget(budget time.Duration) Option {
	return func(p *Player) {
		if budget >= 0 {
			p.deepSearchBudget = budget
		}
	}
}

// WithAlphaBeta uses the pruned search for the endgame.
func WithAlphaBeta() Option {
	return func(p *Player) {
		p.useAlphaBeta = true
	}
}

func WithMetrics() Option {
	return func(p *Player) {
		p.searcherOptions = append(p.searcherOptions, searcher.WithMetrics())
	}
}

func New(side game.Side, options ...Option) *Player {
	p := &Player{ // Default values
		side:             side,
		board:            game.NewBoard(),
		endgameThreshold: DefaultEndgameThreshold,
		endgameDepth:     DefaultEndgameDepth,
		deepSearchBudget: DefaultDeepSearchBudget,
	}
	for _, option := range options {
		option(p)
	}

	p.heuristic = searcher.NewHeuristic(p.searcherOptions...)
	if p.useAlphaBeta {
		p.endgame = searcher.NewAlphaBeta(p.endgameDepth, p.searcherOptions...)
	} else {
		p.endgame = searcher.NewMinimax(p.endgameDepth, p.searcherOptions...)
	}
	return p
}

func (p *Player) Side() game.Side {
	return p.side
}

// Board returns a copy of the player's board.
func (p *Player) Board() game.Board {
	return p.board
}

// LastMetric describes the search behind the most recent DecideMove.
func (p *Player) LastMetric() metrics.SearchMetric {
	return p.lastMetric
}

// DecideMove records the opponent's last move (game.Pass on the first turn
// or after a pass), then picks, plays and returns this player's move.
// msLeft is the total time left for the game in milliseconds, or
// Unlimited. It returns game.Pass when the player has no legal move.
func (p *Player) DecideMove(opponentsLast game.Move, msLeft int) game.Move {
	opponent := p.side.Opponent()
	if !opponentsLast.IsPass() && !p.board.IsLegal(opponentsLast, opponent) {
		log.Warn().Msgf("ignoring illegal move %s by %s", opponentsLast, opponent)
	}
	p.board.Apply(opponentsLast, opponent)

	move, metric := p.chooseSearcher(msLeft).FindMove(p.board, p.side)
	p.lastMetric = metric
	p.board.Apply(move, p.side)

	log.Debug().Msgf("%s plays %s with %d discs on the board", p.side, move, p.board.Total())
	return move
}

func (p *Player) chooseSearcher(msLeft int) searcher.Searcher {
	discs := p.board.Total()
	if discs < p.endgameThreshold {
		return p.heuristic
	}

	if msLeft != Unlimited && time.Duration(msLeft)*time.Millisecond < p.deepSearchBudget {
		log.Warn().Msgf("%dms left is below the %s deep search budget, staying on the heuristic", msLeft, p.deepSearchBudget)
		return p.heuristic
	}

	log.Debug().Msgf("%d discs on the board, switching to depth %d search", discs, p.endgameDepth)
	return p.endgame
}
