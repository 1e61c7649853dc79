package metrics

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID       int
	Strategy string // "player", "heuristic", "minimax", "alphabeta" or "random"
	Depth    int    // Search depth for minimax and alphabeta, endgame depth for player
	Seed     uint64 // Seed for random
}

type GameRecord struct {
	ID          int
	Agent1      int  // AgentConfig.ID
	Agent2      int  // AgentConfig.ID
	Agent1First bool // Whether Agent1 played the first side
	GameMetric
}

// Agent1Margin is the disc margin from Agent1's point of view.
func (r GameRecord) Agent1Margin() int {
	if r.Agent1First {
		return r.Margin()
	}
	return -r.Margin()
}
