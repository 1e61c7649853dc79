package game

// Side identifies one of the two players. First moves first from the
// standard starting position (historically black).
type Side uint8

const (
	First Side = iota
	Second
)

func (s Side) Opponent() Side {
	if s == First {
		return Second
	}
	return First
}

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "unknown"
	}
}
