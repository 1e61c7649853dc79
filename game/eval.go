package game

// Evaluate scores a board from side's point of view; higher is better for side.
type Evaluate func(b Board, side Side) int

// EvaluateDiscs is the disc differential: side's discs minus the opponent's.
func EvaluateDiscs(b Board, side Side) int {
	return b.Count(side) - b.Count(side.Opponent())
}
