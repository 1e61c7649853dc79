package searcher

import "othello/game"

// node is one position in the explicit minimax tree. Nodes live in
// per-level slices and refer to their parent by index into the previous
// level, so the whole tree is released together after a search.
type node struct {
	parent   int // Index into the previous level, -1 at level 0
	move     game.Move
	board    game.Board
	score    int
	children int
}

// tree holds the nodes of one minimax search, level by level. Level 0
// holds the positions after each of the root side's moves.
type tree struct {
	root   game.Side
	levels [][]node
}

// moverAt returns the side whose moves produced the nodes of level n.
func (t *tree) moverAt(n int) game.Side {
	if n%2 == 0 {
		return t.root
	}
	return t.root.Opponent()
}

// expand appends the level below the current deepest one and reports
// whether it holds any node.
func (t *tree) expand(onNode func()) bool {
	n := len(t.levels)
	mover := t.moverAt(n)
	parents := t.levels[n-1]

	var level []node
	for i := range parents {
		for _, move := range parents[i].board.LegalMoves(mover) {
			level = append(level, node{
				parent: i,
				move:   move,
				board:  parents[i].board.Play(move, mover),
			})
			parents[i].children++
			onNode()
		}
	}
	if len(level) == 0 {
		return false
	}
	t.levels = append(t.levels, level)
	return true
}

// propagate scores every childless node with evaluate and backs the scores
// up to level 0: a parent takes the maximum over its children when they
// are the root side's moves and the minimum otherwise.
func (t *tree) propagate(evaluate game.Evaluate) {
	for n := len(t.levels) - 1; n >= 0; n-- {
		level := t.levels[n]
		for i := range level {
			if level[i].children == 0 {
				level[i].score = evaluate(level[i].board, t.root)
			}
		}
		if n == 0 {
			break
		}

		maximize := t.moverAt(n) == t.root
		parents := t.levels[n-1]
		for i := range parents {
			if parents[i].children == 0 {
				continue
			}
			if maximize {
				parents[i].score = minScore
			} else {
				parents[i].score = maxScore
			}
		}
		for _, child := range level {
			p := &parents[child.parent]
			if maximize {
				p.score = max(p.score, child.score)
			} else {
				p.score = min(p.score, child.score)
			}
		}
	}
}

// best returns the level-0 move with the highest score, keeping the first
// one seen on ties.
func (t *tree) best() (game.Move, int) {
	best := game.Pass
	bestScore := minScore
	for i, n := range t.levels[0] {
		if i == 0 || n.score > bestScore {
			best = n.move
			bestScore = n.score
		}
	}
	return best, bestScore
}
