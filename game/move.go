package game

import (
	"fmt"
	"strings"
)

// Move is a square on the board identified by its linear index x + 8y,
// or Pass when a side has no move to make.
type Move int8

const Pass Move = -1

// NewMove returns the move for square (x, y). Coordinates outside the
// board are a programming error.
func NewMove(x, y int) Move {
	if !onBoard(x, y) {
		panic(fmt.Sprintf("square (%d, %d) is off the board", x, y))
	}
	return Move(x + Size*y)
}

func (m Move) X() int { return int(m) % Size }
func (m Move) Y() int { return int(m) / Size }

func (m Move) IsPass() bool {
	return m == Pass
}

// IsCorner reports whether the move occupies one of the four corners.
func (m Move) IsCorner() bool {
	if m.IsPass() {
		return false
	}
	x, y := m.X(), m.Y()
	return (x == 0 || x == Size-1) && (y == 0 || y == Size-1)
}

// String renders the move in column-letter, row-number notation (a1..h8).
func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(m.X()), m.Y()+1)
}

// ParseMove is the inverse of Move.String.
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" {
		return Pass, nil
	}
	if len(s) != 2 {
		return Pass, fmt.Errorf("parse move %q: %w", s, ErrBadSquare)
	}
	x := int(s[0] - 'a')
	y := int(s[1] - '1')
	if !onBoard(x, y) {
		return Pass, fmt.Errorf("parse move %q: %w", s, ErrBadSquare)
	}
	return NewMove(x, y), nil
}
