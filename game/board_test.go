package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("starting position has two discs per side in the centre", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, 4, b.Total())
		require.Equal(t, 2, b.CountFirst())
		require.Equal(t, 2, b.CountSecond())
		require.True(t, b.ColorAt(Second, 3, 3))
		require.True(t, b.ColorAt(Second, 4, 4))
		require.True(t, b.ColorAt(First, 4, 3))
		require.True(t, b.ColorAt(First, 3, 4))
	})

	t.Run("colour requires occupancy", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.Occupied(0, 0))
		require.False(t, b.ColorAt(First, 0, 0), "Empty square should belong to no side")
		require.False(t, b.ColorAt(Second, 0, 0), "Empty square should belong to no side")
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		b := NewBoard()
		b.Apply(NewMove(2, 3), First)

		parsed, err := ParseBoard(b.String())

		require.NoError(t, err)
		require.Equal(t, b, parsed)
	})

	t.Run("accepts alternative disc characters", func(t *testing.T) {
		parsed, err := ParseBoard(`
			bw------
			xo______
			BW......
			XO......
			........
			........
			........
			........`)

		require.NoError(t, err)
		require.Equal(t, 4, parsed.CountFirst())
		require.Equal(t, 4, parsed.CountSecond())
		require.True(t, parsed.ColorAt(First, 0, 3))
		require.True(t, parsed.ColorAt(Second, 1, 3))
	})

	t.Run("rejects unknown characters", func(t *testing.T) {
		_, err := ParseBoard("?" + repeat('.', Squares-1))

		require.ErrorIs(t, err, ErrBadSquare)
	})

	t.Run("rejects the wrong number of squares", func(t *testing.T) {
		_, err := ParseBoard(repeat('.', Squares-1))
		require.Error(t, err)

		_, err = ParseBoard(repeat('.', Squares+1))
		require.Error(t, err)
	})
}

func TestBoardClone(t *testing.T) {
	t.Run("mutating a clone leaves the original untouched", func(t *testing.T) {
		original := NewBoard()
		before := original.String()

		clone := original.Clone()
		flipped := clone.Apply(NewMove(2, 3), First)

		require.Equal(t, 1, flipped)
		require.Equal(t, before, original.String(), "Original should not observe the clone's move")
		require.Equal(t, 4, original.Total())
		require.Equal(t, 5, clone.Total())
	})

	t.Run("Play returns a new board", func(t *testing.T) {
		original := NewBoard()

		next := original.Play(NewMove(2, 3), First)

		require.Equal(t, NewBoard(), original)
		require.Equal(t, 4, next.CountFirst())
		require.Equal(t, 1, next.CountSecond())
	})
}

func TestBoardWinner(t *testing.T) {
	t.Run("draw at the start", func(t *testing.T) {
		_, ok := NewBoard().Winner()

		require.False(t, ok)
	})

	t.Run("more discs wins", func(t *testing.T) {
		b := NewBoard().Play(NewMove(2, 3), First)

		winner, ok := b.Winner()

		require.True(t, ok)
		require.Equal(t, First, winner)
	})
}

func TestMove(t *testing.T) {
	t.Run("notation", func(t *testing.T) {
		require.Equal(t, "a1", NewMove(0, 0).String())
		require.Equal(t, "c4", NewMove(2, 3).String())
		require.Equal(t, "h8", NewMove(7, 7).String())
		require.Equal(t, "pass", Pass.String())
	})

	t.Run("parsing is the inverse of String", func(t *testing.T) {
		for i := 0; i < Squares; i++ {
			m := Move(i)
			parsed, err := ParseMove(m.String())
			require.NoError(t, err)
			require.Equal(t, m, parsed)
		}

		parsed, err := ParseMove("pass")
		require.NoError(t, err)
		require.True(t, parsed.IsPass())
	})

	t.Run("parsing rejects squares off the board", func(t *testing.T) {
		for _, s := range []string{"i1", "a9", "a0", "", "a10"} {
			_, err := ParseMove(s)
			require.ErrorIs(t, err, ErrBadSquare, "Should reject %q", s)
		}
	})

	t.Run("corners", func(t *testing.T) {
		require.True(t, NewMove(0, 0).IsCorner())
		require.True(t, NewMove(7, 0).IsCorner())
		require.True(t, NewMove(0, 7).IsCorner())
		require.True(t, NewMove(7, 7).IsCorner())
		require.False(t, NewMove(1, 0).IsCorner())
		require.False(t, Pass.IsCorner())
	})

	t.Run("coordinates off the board panic", func(t *testing.T) {
		require.Panics(t, func() { NewMove(8, 0) })
		require.Panics(t, func() { NewMove(0, -1) })
	})
}

func repeat(r byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = r
	}
	return string(buf)
}
