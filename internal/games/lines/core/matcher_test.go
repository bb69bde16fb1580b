package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

func TestHorizontalRunOfFive(t *testing.T) {
	g := core.NewGrid(9)
	for c := 0; c < 5; c++ {
		g.Place(core.P(0, c), core.Red)
	}
	m := core.NewLineMatcher(5)

	runs := m.FindRuns(g, core.P(0, 2))
	if runs[core.AxisHorizontal].Len() != 5 {
		t.Errorf("horizontal Len() = %d, expected 5", runs[core.AxisHorizontal].Len())
	}
	for _, a := range []core.Axis{core.AxisVertical, core.AxisDiagDown, core.AxisDiagUp} {
		if runs[a].Qualifies(5) {
			t.Errorf("%v run should not qualify", a)
		}
	}

	cleared := m.Collect(g, []core.Pos{core.P(0, 2)})
	if len(cleared) != 5 {
		t.Fatalf("Collect() returned %d cells, expected 5", len(cleared))
	}
	if score := core.DefaultRules().ClearScore(len(cleared)); score != 600 {
		t.Errorf("ClearScore(5) = %d, expected 600", score)
	}
	for _, p := range cleared {
		g.Remove(p)
	}
	for c := 0; c < 5; c++ {
		if !g.IsFree(core.P(0, c)) {
			t.Errorf("cell (0,%d) should be free after clearing", c)
		}
	}
	checkPartition(t, g)
}

func TestRunQualification(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		origin core.Pos
		axis   core.Axis
		length int
	}{
		{
			name:   "vertical five",
			rows:   []string{"B....", "B....", "B....", "B....", "B...."},
			origin: core.P(4, 0),
			axis:   core.AxisVertical,
			length: 5,
		},
		{
			name:   "diagonal down five",
			rows:   []string{"G....", ".G...", "..G..", "...G.", "....G"},
			origin: core.P(0, 0),
			axis:   core.AxisDiagDown,
			length: 5,
		},
		{
			name:   "diagonal up five",
			rows:   []string{"....Y", "...Y.", "..Y..", ".Y...", "Y...."},
			origin: core.P(2, 2),
			axis:   core.AxisDiagUp,
			length: 5,
		},
		{
			name:   "four is not enough",
			rows:   []string{".....", "RRRR.", ".....", ".....", "....."},
			origin: core.P(1, 1),
			axis:   core.AxisHorizontal,
			length: 4,
		},
		{
			name:   "broken by other color",
			rows:   []string{".....", "RRBRR", ".....", ".....", "....."},
			origin: core.P(1, 0),
			axis:   core.AxisHorizontal,
			length: 2,
		},
		{
			name:   "broken by hint of same color",
			rows:   []string{".....", "RRrRR", ".....", ".....", "....."},
			origin: core.P(1, 4),
			axis:   core.AxisHorizontal,
			length: 2,
		},
	}

	m := core.NewLineMatcher(5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := core.ParseGrid(tt.rows...)
			if err != nil {
				t.Fatalf("ParseGrid() failed: %v", err)
			}
			run := m.FindRuns(g, tt.origin)[tt.axis]
			if run.Len() != tt.length {
				t.Errorf("Len() = %d, expected %d", run.Len(), tt.length)
			}
			if run.Qualifies(5) != (tt.length >= 5) {
				t.Errorf("Qualifies(5) = %v for length %d", run.Qualifies(5), tt.length)
			}
		})
	}
}

func TestRunOrderingAlongAxis(t *testing.T) {
	g, err := core.ParseGrid(
		"....M",
		"...M.",
		"..M..",
		".M...",
		"M....",
	)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	m := core.NewLineMatcher(5)
	run := m.FindRuns(g, core.P(2, 2))[core.AxisDiagUp]

	want := []core.Pos{core.P(4, 0), core.P(3, 1), core.P(2, 2), core.P(1, 3), core.P(0, 4)}
	if len(run.Positions) != len(want) {
		t.Fatalf("Positions = %v, expected %v", run.Positions, want)
	}
	for i := range want {
		if run.Positions[i] != want[i] {
			t.Errorf("Positions[%d] = %v, expected %v", i, run.Positions[i], want[i])
		}
	}
}

func TestFindRunsOnNonPiece(t *testing.T) {
	g, err := core.ParseGrid("r..", "...", "...")
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	m := core.NewLineMatcher(5)

	for _, origin := range []core.Pos{core.P(0, 0), core.P(1, 1)} {
		for a, run := range m.FindRuns(g, origin) {
			if run.Len() != 0 {
				t.Errorf("FindRuns(%v)[%v] = %v, expected empty", origin, core.Axis(a), run.Positions)
			}
		}
	}
}

func TestCollectUnionsOverlappingRuns(t *testing.T) {
	g, err := core.ParseGrid(
		"..R..",
		"..R..",
		"RRRRR",
		"..R..",
		"..R..",
	)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	m := core.NewLineMatcher(5)

	// Two origins on the same cross: the center is counted once
	cleared := m.Collect(g, []core.Pos{core.P(2, 2), core.P(0, 2)})
	if len(cleared) != 9 {
		t.Fatalf("Collect() returned %d cells, expected 9", len(cleared))
	}
	for i := 1; i < len(cleared); i++ {
		if !cleared[i-1].Less(cleared[i]) {
			t.Errorf("Collect() not sorted at %d: %v", i, cleared)
		}
	}
	if score := core.DefaultRules().ClearScore(len(cleared)); score != 1200 {
		t.Errorf("ClearScore(9) = %d, expected 1200", score)
	}
}

func TestLongest(t *testing.T) {
	g, err := core.ParseGrid(
		"BB...",
		"B.B..",
		"B....",
		".....",
		".....",
	)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	m := core.NewLineMatcher(5)
	if got := m.Longest(g, core.P(0, 0)); got != 3 {
		t.Errorf("Longest((0,0)) = %d, expected 3", got)
	}
}
