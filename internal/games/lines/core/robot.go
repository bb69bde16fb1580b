package core

// Candidate is a legal move together with its heuristic value.
type Candidate struct {
	From  Pos
	To    Pos
	Value int
}

// Robot picks a move for the controller's current board.
type Robot interface {
	PickMove(c *Controller) (Candidate, bool)
}

// Candidates lists every legal move on the controller's board, pieces in
// row-major order and destinations in breadth-first order from each piece.
// Value is the longest run the moved piece would form at its destination,
// plus a bonus when that run clears.
func Candidates(c *Controller) []Candidate {
	grid := c.Grid()
	work := grid.Clone()
	minLen := c.Matcher().MinLen()
	var out []Candidate
	for _, pc := range grid.Pieces() {
		if pc.Hint {
			continue
		}
		dests := c.PathFinder().Reachable(grid, pc.Pos)
		if len(dests) == 0 {
			continue
		}
		work.Remove(pc.Pos)
		for _, to := range dests {
			hint, wasHint := work.At(to)
			if wasHint {
				work.Remove(to)
			}
			work.Place(to, pc.Color)
			value := c.Matcher().Longest(work, to)
			if value >= minLen {
				value += 100
			}
			work.Remove(to)
			if wasHint {
				work.PlaceHint(to, hint.Color)
			}
			out = append(out, Candidate{From: pc.Pos, To: to, Value: value})
		}
		work.Place(pc.Pos, pc.Color)
	}
	return out
}

// GreedyRobot always plays the move that builds the longest run.
// Ties go to the earliest candidate.
type GreedyRobot struct{}

// PickMove implements Robot.
func (GreedyRobot) PickMove(c *Controller) (Candidate, bool) {
	cands := Candidates(c)
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, cand := range cands[1:] {
		if cand.Value > best.Value {
			best = cand
		}
	}
	return best, true
}

// RandomRobot plays a uniformly random legal move.
type RandomRobot struct {
	Rand RandomSource
}

// PickMove implements Robot.
func (r RandomRobot) PickMove(c *Controller) (Candidate, bool) {
	cands := Candidates(c)
	if len(cands) == 0 {
		return Candidate{}, false
	}
	return cands[r.Rand.Intn(len(cands))], true
}
