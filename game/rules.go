package game

type direction struct{ dx, dy int }

var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsLegal reports whether side may play m. A pass is legal only when side
// has no other move anywhere on the board.
func (b Board) IsLegal(m Move, side Side) bool {
	if m.IsPass() {
		return !b.HasLegalMove(side)
	}
	x, y := m.X(), m.Y()
	if b.Occupied(x, y) {
		return false
	}
	for _, d := range directions {
		if b.captures(side, x, y, d) > 0 {
			return true
		}
	}
	return false
}

// captures returns the length of the run of opposing discs starting next
// to (x, y) in direction d, or 0 when that run is not closed by a disc of
// side.
func (b Board) captures(side Side, x, y int, d direction) int {
	other := side.Opponent()
	n := 0
	x, y = x+d.dx, y+d.dy
	for onBoard(x, y) && b.ColorAt(other, x, y) {
		n++
		x, y = x+d.dx, y+d.dy
	}
	if n == 0 || !onBoard(x, y) || !b.ColorAt(side, x, y) {
		return 0
	}
	return n
}

// Apply plays m for side, flipping every sandwiched run, and returns the
// number of discs flipped. Passes and illegal moves leave the board
// unchanged.
func (b *Board) Apply(m Move, side Side) int {
	if m.IsPass() {
		return 0
	}
	x, y := m.X(), m.Y()
	if b.Occupied(x, y) {
		return 0
	}

	flipped := 0
	for _, d := range directions {
		n := b.captures(side, x, y, d)
		for i := 1; i <= n; i++ {
			b.place(side, x+i*d.dx, y+i*d.dy)
		}
		flipped += n
	}
	if flipped == 0 {
		return 0
	}
	b.place(side, x, y)
	return flipped
}

// Play returns a copy of the board with m applied for side.
func (b Board) Play(m Move, side Side) Board {
	next := b.Clone()
	next.Apply(m, side)
	return next
}

func (b Board) HasLegalMove(side Side) bool {
	for i := 0; i < Squares; i++ {
		if b.IsLegal(Move(i), side) {
			return true
		}
	}
	return false
}

// IsTerminal reports whether neither side can move.
func (b Board) IsTerminal() bool {
	return !b.HasLegalMove(First) && !b.HasLegalMove(Second)
}

// LegalMoves returns every legal non-pass move for side, scanning x outer
// and y inner. The order decides ties between equally scored moves.
func (b Board) LegalMoves(side Side) []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			m := NewMove(x, y)
			if b.IsLegal(m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Mobility is the number of legal moves available to side.
func (b Board) Mobility(side Side) int {
	return len(b.LegalMoves(side))
}
