package core

import "sort"

// Axis is one of the four line directions.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
	AxisDiagDown // top-left to bottom-right
	AxisDiagUp   // bottom-left to top-right
)

// AxisCount is the number of axes searched per origin.
const AxisCount = 4

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	case AxisDiagDown:
		return "diagonal-down"
	case AxisDiagUp:
		return "diagonal-up"
	default:
		return "unknown"
	}
}

// step is the forward direction of each axis. Runs are listed from the
// backward end to the forward end.
var axisSteps = [AxisCount]Pos{
	AxisHorizontal: {0, 1},
	AxisVertical:   {1, 0},
	AxisDiagDown:   {1, 1},
	AxisDiagUp:     {-1, 1},
}

// Run is a contiguous same-colored line through an origin piece.
type Run struct {
	Axis      Axis
	Positions []Pos
}

// Len returns the number of pieces in the run.
func (r Run) Len() int { return len(r.Positions) }

// Qualifies reports whether the run is long enough to clear.
func (r Run) Qualifies(minLen int) bool { return len(r.Positions) >= minLen }

// LineMatcher finds clearable runs.
type LineMatcher struct {
	minLen int
}

// NewLineMatcher returns a matcher that clears runs of at least minLen.
func NewLineMatcher(minLen int) *LineMatcher {
	return &LineMatcher{minLen: minLen}
}

// MinLen returns the clearing threshold.
func (m *LineMatcher) MinLen() int { return m.minLen }

// FindRuns returns the run through origin on each axis. A run stops at
// the board edge, at a free cell (hints included) and at a different
// color. If origin is not a real piece all four runs are empty.
func (m *LineMatcher) FindRuns(g *Grid, origin Pos) [AxisCount]Run {
	var runs [AxisCount]Run
	for a := range runs {
		runs[a].Axis = Axis(a)
	}
	if !g.IsOccupied(origin) {
		return runs
	}
	color := g.ColorAt(origin)
	for a, step := range axisSteps {
		back := Pos{-step.Row, -step.Col}
		var before []Pos
		for p := origin.Add(back); g.Valid(p) && g.IsOccupied(p) && g.ColorAt(p) == color; p = p.Add(back) {
			before = append(before, p)
		}
		positions := make([]Pos, 0, len(before)+1)
		for i := len(before) - 1; i >= 0; i-- {
			positions = append(positions, before[i])
		}
		positions = append(positions, origin)
		for p := origin.Add(step); g.Valid(p) && g.IsOccupied(p) && g.ColorAt(p) == color; p = p.Add(step) {
			positions = append(positions, p)
		}
		runs[a].Positions = positions
	}
	return runs
}

// Qualifying returns only the runs through origin that reach minLen.
func (m *LineMatcher) Qualifying(g *Grid, origin Pos) []Run {
	var out []Run
	for _, r := range m.FindRuns(g, origin) {
		if r.Qualifies(m.minLen) {
			out = append(out, r)
		}
	}
	return out
}

// Collect unions the qualifying runs of every origin into one set of
// positions, sorted row-major. Each cell appears once even when runs overlap.
func (m *LineMatcher) Collect(g *Grid, origins []Pos) []Pos {
	seen := make(map[Pos]struct{})
	var out []Pos
	for _, o := range origins {
		for _, r := range m.Qualifying(g, o) {
			for _, p := range r.Positions {
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Longest returns the length of the longest run through origin on any axis.
func (m *LineMatcher) Longest(g *Grid, origin Pos) int {
	best := 0
	for _, r := range m.FindRuns(g, origin) {
		if r.Len() > best {
			best = r.Len()
		}
	}
	return best
}
