package player

import (
	"testing"

	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

// lateGame plays random moves until at least discs discs are on the board
// and returns the position with a side that can still move.
func lateGame(t *testing.T, discs int) (game.Board, game.Side) {
	t.Helper()
	for seed := uint64(1); seed < 100; seed++ {
		r := searcher.NewRandom(seed)
		b := game.NewBoard()
		side := game.First
		for !b.IsTerminal() {
			if b.Total() >= discs && b.HasLegalMove(side) {
				return b, side
			}
			move, _ := r.FindMove(b, side)
			b.Apply(move, side)
			side = side.Opponent()
		}
	}
	require.FailNow(t, "no late game position found")
	return game.Board{}, game.First
}

func TestDecideMove(t *testing.T) {
	t.Run("first move uses the heuristic and updates the board", func(t *testing.T) {
		p := New(game.First, WithMetrics())

		move := p.DecideMove(game.Pass, Unlimited)

		require.Equal(t, game.NewMove(2, 3), move)
		require.Equal(t, 5, p.Board().Total(), "Own move should be played on the player's board")
		require.Equal(t, "heuristic", p.LastMetric().Strategy)
	})

	t.Run("applies the opponent's move before answering", func(t *testing.T) {
		p := New(game.Second)
		opening := game.NewMove(2, 3)

		move := p.DecideMove(opening, Unlimited)

		expected := game.NewBoard().Play(opening, game.First)
		require.True(t, expected.IsLegal(move, game.Second))
		require.Equal(t, 6, p.Board().Total())
		require.Equal(t, expected.Play(move, game.Second), p.Board())
	})

	t.Run("illegal opponent moves are ignored", func(t *testing.T) {
		p := New(game.Second)

		move := p.DecideMove(game.NewMove(0, 0), Unlimited)

		require.True(t, game.NewBoard().IsLegal(move, game.Second))
		require.Equal(t, 5, p.Board().Total())
	})

	t.Run("passes when no move is legal", func(t *testing.T) {
		b, err := game.ParseBoard("XX" + repeat('.', game.Squares-2))
		require.NoError(t, err)
		require.True(t, b.IsTerminal())

		p := New(game.Second, WithBoard(b))

		require.True(t, p.DecideMove(game.Pass, Unlimited).IsPass())
		require.Equal(t, b, p.Board())
	})

	t.Run("late game switches to minimax", func(t *testing.T) {
		b, side := lateGame(t, DefaultEndgameThreshold)
		p := New(side, WithBoard(b), WithMetrics())

		move := p.DecideMove(game.Pass, Unlimited)

		require.True(t, b.IsLegal(move, side))
		require.Equal(t, "minimax", p.LastMetric().Strategy)
		require.Equal(t, DefaultEndgameDepth, p.LastMetric().Depth)
	})

	t.Run("late game with alpha-beta picks the same move", func(t *testing.T) {
		b, side := lateGame(t, DefaultEndgameThreshold)
		minimax := New(side, WithBoard(b), WithEndgameDepth(4))
		alphabeta := New(side, WithBoard(b), WithEndgameDepth(4), WithAlphaBeta(), WithMetrics())

		require.Equal(t, minimax.DecideMove(game.Pass, Unlimited), alphabeta.DecideMove(game.Pass, Unlimited))
		require.Equal(t, "alphabeta", alphabeta.LastMetric().Strategy)
	})

	t.Run("short on time stays on the heuristic", func(t *testing.T) {
		b, side := lateGame(t, DefaultEndgameThreshold)
		p := New(side, WithBoard(b), WithMetrics())

		move := p.DecideMove(game.Pass, 100)

		require.True(t, b.IsLegal(move, side))
		require.Equal(t, "heuristic", p.LastMetric().Strategy)
	})

	t.Run("enough time left allows the deep search", func(t *testing.T) {
		b, side := lateGame(t, DefaultEndgameThreshold)
		p := New(side, WithBoard(b), WithMetrics(), WithEndgameDepth(3))

		p.DecideMove(game.Pass, int(DefaultDeepSearchBudget.Milliseconds()))

		require.Equal(t, "minimax", p.LastMetric().Strategy)
		require.Equal(t, 3, p.LastMetric().Depth)
	})

	t.Run("threshold controls the switch", func(t *testing.T) {
		p := New(game.First, WithEndgameThreshold(0), WithEndgameDepth(1), WithMetrics())

		move := p.DecideMove(game.Pass, Unlimited)

		require.Equal(t, game.NewMove(2, 3), move)
		require.Equal(t, "minimax", p.LastMetric().Strategy)
	})
}

func TestSelfPlay(t *testing.T) {
	t.Run("two players keep their boards in sync until both pass", func(t *testing.T) {
		players := []*Player{New(game.First, WithEndgameDepth(3)), New(game.Second, WithEndgameDepth(3))}
		last := game.Pass
		passes := 0
		turn := 0

		for passes < 2 {
			p := players[turn%2]
			last = p.DecideMove(last, Unlimited)
			if last.IsPass() {
				passes++
			} else {
				passes = 0
			}
			turn++
			require.Less(t, turn, 200)
		}

		require.Equal(t, players[0].Board(), players[1].Board())
		require.True(t, players[0].Board().IsTerminal())
	})
}

func repeat(r byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = r
	}
	return string(buf)
}
