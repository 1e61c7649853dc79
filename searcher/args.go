package searcher

// Weights for the one-ply heuristic

const MobilityWeight = 10

// Mobility assumed for the mover when the opponent has no reply at all
const NoReplyMobility = 999

// Bonus for taking a corner, and the penalty for handing one to the opponent
const CornerWeight = 1000
