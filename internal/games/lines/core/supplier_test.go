package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

// fillPattern fills every cell except skip with colors that never repeat
// between neighbors on any axis.
func fillPattern(g *core.Grid, skip ...core.Pos) {
	skipped := make(map[core.Pos]bool, len(skip))
	for _, p := range skip {
		skipped[p] = true
	}
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if skipped[core.P(r, c)] {
				continue
			}
			g.Place(core.P(r, c), core.Color((2*r+c)%core.ColorCount+1))
		}
	}
}

func TestNextWaveFirstCall(t *testing.T) {
	g := core.NewGrid(9)
	s := core.NewSupplier(g, rand.New(rand.NewSource(1)), core.SupplierOptions{WaveSize: 3, Hints: true})

	spawned := s.NextWave(false)
	if len(spawned) != 3 {
		t.Fatalf("NextWave() spawned %d, expected 3", len(spawned))
	}
	for _, pc := range spawned {
		if !g.IsOccupied(pc.Pos) || g.ColorAt(pc.Pos) != pc.Color {
			t.Errorf("spawned %v not on the board", pc)
		}
	}
	hints := s.Hints()
	if len(hints) != 3 {
		t.Fatalf("Hints() = %d, expected 3", len(hints))
	}
	for _, h := range hints {
		if !g.IsHint(h.Pos) {
			t.Errorf("hint %v is not a hint cell", h.Pos)
		}
	}
	// Hints do not consume capacity
	if g.AvailableCount() != 78 {
		t.Errorf("AvailableCount() = %d, expected 78", g.AvailableCount())
	}
	checkPartition(t, g)
}

func TestNextWavePromotesHints(t *testing.T) {
	g := core.NewGrid(9)
	s := core.NewSupplier(g, rand.New(rand.NewSource(2)), core.SupplierOptions{WaveSize: 3, Hints: true})
	s.NextWave(false)
	before := s.Hints()

	spawned := s.NextWave(false)
	if len(spawned) != len(before) {
		t.Fatalf("NextWave() spawned %d, expected %d", len(spawned), len(before))
	}
	for i, pc := range spawned {
		if pc.Pos != before[i].Pos || pc.Color != before[i].Color {
			t.Errorf("spawned[%d] = %v, expected promoted hint %v", i, pc, before[i])
		}
		if !g.IsOccupied(pc.Pos) {
			t.Errorf("promoted cell %v is %v", pc.Pos, g.State(pc.Pos))
		}
	}
	if len(s.Hints()) != 3 {
		t.Errorf("Hints() = %d after promotion, expected 3", len(s.Hints()))
	}
	checkPartition(t, g)
}

func TestNextWaveEnforceDiscardsHints(t *testing.T) {
	g := core.NewGrid(9)
	s := core.NewSupplier(g, rand.New(rand.NewSource(3)), core.SupplierOptions{WaveSize: 3, Hints: true})
	s.NextWave(false)
	old := s.Hints()

	// A piece lands on the first hint
	if !s.DiscardHint(old[0].Pos) {
		t.Fatal("DiscardHint() = false for a live hint")
	}
	if s.HasHint(old[0].Pos) {
		t.Error("discarded hint still in the hint set")
	}

	spawned := s.NextWave(true)
	if len(spawned) != 3 {
		t.Fatalf("NextWave(true) spawned %d, expected 3", len(spawned))
	}
	hintCount := 0
	for _, pc := range g.Pieces() {
		if pc.Hint {
			hintCount++
		}
	}
	if hintCount != 3 {
		t.Errorf("board holds %d hint cells, expected 3", hintCount)
	}
	if got := len(g.Used()); got != 6 {
		t.Errorf("len(Used()) = %d, expected 6", got)
	}
	checkPartition(t, g)
}

func TestNextWaveStopsWhenBoardFills(t *testing.T) {
	g := core.NewGrid(9)
	fillPattern(g, core.P(0, 0), core.P(8, 8))
	if g.AvailableCount() != 2 {
		t.Fatalf("AvailableCount() = %d, expected 2", g.AvailableCount())
	}
	s := core.NewSupplier(g, rand.New(rand.NewSource(4)), core.SupplierOptions{WaveSize: 3, Hints: true})

	spawned := s.NextWave(false)
	if len(spawned) != 2 {
		t.Errorf("NextWave() spawned %d, expected 2", len(spawned))
	}
	if g.AvailableCount() != 0 {
		t.Errorf("AvailableCount() = %d, expected 0", g.AvailableCount())
	}
	if len(s.Hints()) != 0 {
		t.Errorf("Hints() = %d on a full board", len(s.Hints()))
	}
	if more := s.NextWave(false); len(more) != 0 {
		t.Errorf("NextWave() on a full board spawned %d", len(more))
	}
	checkPartition(t, g)
}

func TestNextWaveWithoutHints(t *testing.T) {
	g := core.NewGrid(5)
	s := core.NewSupplier(g, rand.New(rand.NewSource(5)), core.SupplierOptions{Colors: 2, WaveSize: 4})

	for i := 0; i < 3; i++ {
		if got := len(s.NextWave(false)); got != 4 {
			t.Errorf("wave %d spawned %d, expected 4", i, got)
		}
		if len(s.Hints()) != 0 {
			t.Errorf("wave %d left hints with hints disabled", i)
		}
	}
	for _, pc := range g.Pieces() {
		if pc.Color != core.Red && pc.Color != core.Green {
			t.Errorf("piece %v outside a 2-color palette", pc)
		}
	}
	checkPartition(t, g)
}

func TestNextWavePartitionUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	g := core.NewGrid(9)
	s := core.NewSupplier(g, rng, core.SupplierOptions{WaveSize: 3, Hints: true})

	for step := 0; step < 40 && g.AvailableCount() > 0; step++ {
		enforce := false
		if hints := s.Hints(); len(hints) > 0 && rng.Intn(3) == 0 {
			s.DiscardHint(hints[rng.Intn(len(hints))].Pos)
			enforce = true
		}
		s.NextWave(enforce)
		// Random removals stand in for cleared runs
		if used := g.Used(); len(used) > 0 && rng.Intn(2) == 0 {
			g.Remove(used[rng.Intn(len(used))])
		}
		checkPartition(t, g)
	}
}
