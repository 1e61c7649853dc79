package game

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
	"unicode"
)

const (
	Size    = 8
	Squares = Size * Size
)

var ErrBadSquare = errors.New("invalid square")

// Board is an Othello position stored as two bit-sets indexed by x + 8y:
// occupied marks squares holding a disc, first marks the discs owned by
// First. first is always a subset of occupied.
//
// Board is a value type, so assigning it copies the whole position.
type Board struct {
	occupied uint64
	first    uint64
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	b.place(Second, 3, 3)
	b.place(Second, 4, 4)
	b.place(First, 4, 3)
	b.place(First, 3, 4)
	return b
}

// ParseBoard builds a board from 64 square characters in row-major order
// (y outer, x inner). b, B, x and X mark First; w, W, o and O mark Second;
// '.', '-' and '_' mark an empty square. Whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	i := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if i >= Squares {
			return Board{}, fmt.Errorf("parse board: more than %d squares", Squares)
		}
		x, y := i%Size, i/Size
		switch r {
		case 'b', 'B', 'x', 'X':
			b.place(First, x, y)
		case 'w', 'W', 'o', 'O':
			b.place(Second, x, y)
		case '.', '-', '_':
		default:
			return Board{}, fmt.Errorf("parse board: character %q at square %d: %w", r, i, ErrBadSquare)
		}
		i++
	}
	if i != Squares {
		return Board{}, fmt.Errorf("parse board: got %d squares, want %d", i, Squares)
	}
	return b, nil
}

func (b Board) Clone() Board {
	return b
}

func (b Board) Occupied(x, y int) bool {
	return b.occupied&bit(x, y) != 0
}

// ColorAt reports whether square (x, y) holds a disc of the given side.
func (b Board) ColorAt(side Side, x, y int) bool {
	if !b.Occupied(x, y) {
		return false
	}
	isFirst := b.first&bit(x, y) != 0
	return isFirst == (side == First)
}

// place puts a disc of the given side on (x, y), overwriting any disc there.
func (b *Board) place(side Side, x, y int) {
	m := bit(x, y)
	b.occupied |= m
	if side == First {
		b.first |= m
	} else {
		b.first &^= m
	}
}

func (b Board) CountFirst() int {
	return bits.OnesCount64(b.first)
}

func (b Board) CountSecond() int {
	return bits.OnesCount64(b.occupied) - b.CountFirst()
}

func (b Board) Count(side Side) int {
	if side == First {
		return b.CountFirst()
	}
	return b.CountSecond()
}

// Total is the number of discs on the board.
func (b Board) Total() int {
	return bits.OnesCount64(b.occupied)
}

// Winner returns the side with more discs. ok is false on a draw.
func (b Board) Winner() (winner Side, ok bool) {
	first, second := b.CountFirst(), b.CountSecond()
	switch {
	case first > second:
		return First, true
	case second > first:
		return Second, true
	default:
		return First, false
	}
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch {
			case b.ColorAt(First, x, y):
				sb.WriteByte('X')
			case b.ColorAt(Second, x, y):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func onBoard(x, y int) bool {
	return 0 <= x && x < Size && 0 <= y && y < Size
}

func bit(x, y int) uint64 {
	return 1 << uint(x+Size*y)
}
