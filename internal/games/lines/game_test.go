package lines

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lines/internal/config"
	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

const noAnimation = "animation:\n  enabled: false\n"

// useConfig points the package at a temporary YAML file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lines.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func testRuntime(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

func newTestGame(t *testing.T, yaml string, seed int64) *Game {
	t.Helper()
	useConfig(t, yaml)
	g := New()
	g.Reset(testRuntime(seed))
	return g
}

func press(g *Game, a platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; g.anim.active(); i++ {
		if i > 10000 {
			t.Fatal("animation never finished")
		}
		g.Step(platformcore.NewInputFrame())
	}
}

func moveCursor(g *Game, p core.Pos) {
	for g.cursor.Row < p.Row {
		press(g, platformcore.ActionDown)
	}
	for g.cursor.Row > p.Row {
		press(g, platformcore.ActionUp)
	}
	for g.cursor.Col < p.Col {
		press(g, platformcore.ActionRight)
	}
	for g.cursor.Col > p.Col {
		press(g, platformcore.ActionLeft)
	}
}

// playGreedy makes the greedy robot's move through the pick/drop action.
func playGreedy(t *testing.T, g *Game) core.Candidate {
	t.Helper()
	cand, ok := core.GreedyRobot{}.PickMove(g.ctrl)
	if !ok {
		t.Fatal("no legal move")
	}
	g.activate(cand.From)
	g.activate(cand.To)
	settle(t, g)
	return cand
}

func TestGameIDs(t *testing.T) {
	if id := New().ID(); id != "lines" {
		t.Errorf("New().ID() = %q, expected lines", id)
	}
	if id := NewMini().ID(); id != "lines_mini" {
		t.Errorf("NewMini().ID() = %q, expected lines_mini", id)
	}
	for _, id := range []string{"lines", "lines_mini"} {
		if !registry.Exists(id) {
			t.Errorf("%s is not registered", id)
		}
	}
}

func TestResetDealsFirstWave(t *testing.T) {
	g := newTestGame(t, noAnimation, 1)

	if g.ctrl.Grid().Size() != 9 {
		t.Fatalf("size = %d, expected 9", g.ctrl.Grid().Size())
	}
	if free := g.ctrl.Grid().AvailableCount(); free != 81-3 {
		t.Errorf("free cells = %d, expected 78", free)
	}
	if hints := g.ctrl.Hints(); len(hints) != 3 {
		t.Errorf("hints = %d, expected 3", len(hints))
	}
	if g.cursor != core.P(4, 4) {
		t.Errorf("cursor = %v, expected (4,4)", g.cursor)
	}
	if s := g.State(); s.Score != 0 || s.GameOver || s.Busy {
		t.Errorf("State() = %+v", s)
	}
}

func TestMiniVariantAndPreset(t *testing.T) {
	useConfig(t, noAnimation)
	SetDifficultyPreset(config.DifficultyHard)

	g := NewMini()
	g.Reset(testRuntime(3))
	rules := g.ctrl.Rules()
	if rules.Size != 7 || rules.LineLength != 4 {
		t.Errorf("mini rules = %+v", rules)
	}
	if rules.WaveSize != 4 || rules.Hints {
		t.Errorf("hard preset not applied: %+v", rules)
	}
	if free := g.ctrl.Grid().AvailableCount(); free != 49-4 {
		t.Errorf("free cells = %d, expected 45", free)
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	g := newTestGame(t, "rules:\n  line_length: 40\n"+noAnimation, 1)
	if r := g.ctrl.Rules(); r != core.DefaultRules() {
		t.Errorf("rules = %+v, expected defaults", r)
	}
}

func TestCursorClamp(t *testing.T) {
	g := newTestGame(t, noAnimation, 1)
	for range 20 {
		press(g, platformcore.ActionUp)
		press(g, platformcore.ActionLeft)
	}
	if g.cursor != core.P(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", g.cursor)
	}
	for range 20 {
		press(g, platformcore.ActionDown)
		press(g, platformcore.ActionRight)
	}
	if g.cursor != core.P(8, 8) {
		t.Errorf("cursor = %v, expected (8,8)", g.cursor)
	}
}

func TestKeyboardMove(t *testing.T) {
	g := newTestGame(t, noAnimation, 5)
	cand, ok := core.GreedyRobot{}.PickMove(g.ctrl)
	if !ok {
		t.Fatal("no legal move")
	}

	moveCursor(g, cand.From)
	press(g, platformcore.ActionConfirm)
	if sel, ok := g.ctrl.Selected(); !ok || sel != cand.From {
		t.Fatalf("Selected() = %v, %v; expected %v", sel, ok, cand.From)
	}

	moveCursor(g, cand.To)
	if g.ctrl.Phase() != core.PhasePreview || g.ctrl.Preview().End() != cand.To {
		t.Fatalf("no preview to %v, phase %v", cand.To, g.ctrl.Phase())
	}

	press(g, platformcore.ActionConfirm)
	if g.ctrl.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", g.ctrl.Moves())
	}
	if !g.ctrl.Grid().IsOccupied(cand.To) {
		t.Errorf("destination %v not occupied", cand.To)
	}
}

func TestCancelDeselects(t *testing.T) {
	g := newTestGame(t, noAnimation, 5)
	piece := g.ctrl.Grid().Pieces()[0]
	for _, pc := range g.ctrl.Grid().Pieces() {
		if !pc.Hint {
			piece = pc
			break
		}
	}
	moveCursor(g, piece.Pos)
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionCancel)
	if _, ok := g.ctrl.Selected(); ok {
		t.Error("piece still selected after cancel")
	}
}

func TestLayoutCellMapping(t *testing.T) {
	l := computeLayout(9, 80, 24)
	if !l.fits {
		t.Fatal("9x9 board should fit 80x24")
	}
	for r := range 9 {
		for c := range 9 {
			p := core.P(r, c)
			x, y := l.cellOrigin(p)
			for dx := range cellWidth {
				got, ok := l.cellAt(x+dx, y)
				if !ok || got != p {
					t.Errorf("cellAt(%d,%d) = %v, %v; expected %v", x+dx, y, got, ok, p)
				}
			}
		}
	}
	if _, ok := l.cellAt(l.board.X, l.board.Y); ok {
		t.Error("border should not map to a cell")
	}
	if _, ok := l.cellAt(0, 0); ok {
		t.Error("screen corner should not map to a cell")
	}
}

func TestPointerDragMove(t *testing.T) {
	g := newTestGame(t, noAnimation, 9)
	cand, ok := core.GreedyRobot{}.PickMove(g.ctrl)
	if !ok {
		t.Fatal("no legal move")
	}
	fx, fy := g.layout.cellOrigin(cand.From)
	tx, ty := g.layout.cellOrigin(cand.To)

	in := platformcore.NewInputFrame()
	in.AddPointer(platformcore.PointerEvent{X: fx + 1, Y: fy, Kind: platformcore.PointerPress})
	in.AddPointer(platformcore.PointerEvent{X: tx + 1, Y: ty, Kind: platformcore.PointerMove})
	in.AddPointer(platformcore.PointerEvent{X: tx + 1, Y: ty, Kind: platformcore.PointerRelease})
	g.Step(in)

	if g.ctrl.Moves() != 1 {
		t.Fatalf("Moves() = %d, expected 1", g.ctrl.Moves())
	}
	if g.cursor != cand.To {
		t.Errorf("cursor = %v, expected %v", g.cursor, cand.To)
	}
}

func TestPointerClickClick(t *testing.T) {
	g := newTestGame(t, noAnimation, 9)
	cand, _ := core.GreedyRobot{}.PickMove(g.ctrl)
	fx, fy := g.layout.cellOrigin(cand.From)
	tx, ty := g.layout.cellOrigin(cand.To)

	click := func(x, y int) {
		in := platformcore.NewInputFrame()
		in.AddPointer(platformcore.PointerEvent{X: x, Y: y, Kind: platformcore.PointerPress})
		in.AddPointer(platformcore.PointerEvent{X: x, Y: y, Kind: platformcore.PointerRelease})
		g.Step(in)
	}

	click(fx+1, fy)
	if _, ok := g.ctrl.Selected(); !ok {
		t.Fatal("click did not select")
	}
	if g.ctrl.Moves() != 0 {
		t.Fatal("release on the same cell should not move")
	}
	click(tx+1, ty)
	if g.ctrl.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", g.ctrl.Moves())
	}
}

func TestMoveAnimationBlocksInput(t *testing.T) {
	g := newTestGame(t, "animation:\n  enabled: true\n  step_ms: 100\n", 5)
	cand, _ := core.GreedyRobot{}.PickMove(g.ctrl)
	g.activate(cand.From)
	g.activate(cand.To)

	path := g.lastResult.Path
	if path.Steps() == 0 {
		t.Skip("adjacent move has nothing to animate")
	}
	if !g.State().Busy {
		t.Fatal("State().Busy = false right after a move")
	}
	before := g.Snapshot()

	press(g, platformcore.ActionUp)
	if g.cursor != before.Cursor {
		t.Error("cursor moved during animation")
	}

	// 100ms at 30 ticks/s is 3 ticks per cell
	ticks := 1
	for g.anim.kind == animTravel {
		g.Step(platformcore.NewInputFrame())
		ticks++
	}
	if want := path.Len() * 3; ticks < want-3 || ticks > want {
		t.Errorf("travel took %d ticks, expected about %d", ticks, want)
	}
	settle(t, g)
	if g.State().Busy {
		t.Error("still busy after settle")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		g := newTestGame(t, noAnimation, 12345)
		var snaps []Snapshot
		for range 15 {
			if g.ctrl.GameOver() {
				break
			}
			playGreedy(t, g)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("snapshot %d differs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestNewGameAction(t *testing.T) {
	g := newTestGame(t, noAnimation, 5)
	playGreedy(t, g)

	res := press(g, platformcore.ActionNewGame)
	if !res.Restarted {
		t.Error("StepResult.Restarted = false after new game")
	}
	if g.ctrl.Moves() != 0 || g.ctrl.Score() != 0 {
		t.Errorf("moves %d score %d after new game", g.ctrl.Moves(), g.ctrl.Score())
	}
	if free := g.ctrl.Grid().AvailableCount(); free != 78 {
		t.Errorf("free cells = %d, expected 78", free)
	}
}

func TestRestartBlinksBoard(t *testing.T) {
	g := newTestGame(t, "animation:\n  blink_ms: 100\n  blink_count: 3\n", 5)
	press(g, platformcore.ActionNewGame)
	if g.anim.kind != animBlink || len(g.anim.blink) != 6 {
		t.Fatalf("anim = %+v, expected a blink over 6 pieces", g.anim)
	}
	settle(t, g)
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, noAnimation, 21)
	robot := core.RandomRobot{Rand: rand.New(rand.NewSource(7))}

	for i := 0; !g.State().GameOver; i++ {
		if i > 5000 {
			t.Fatal("game never ended")
		}
		cand, ok := robot.PickMove(g.ctrl)
		if !ok {
			t.Fatal("no legal move before game over")
		}
		g.activate(cand.From)
		g.activate(cand.To)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay not drawn")
	}

	// Moves are ignored once the board is full
	press(g, platformcore.ActionConfirm)

	res := press(g, platformcore.ActionRestart)
	if !res.Restarted || res.State.GameOver {
		t.Errorf("restart result = %+v", res)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, noAnimation, 1)
	press(g, platformcore.ActionPause)
	if !g.State().Paused {
		t.Fatal("not paused")
	}
	cursor := g.cursor
	press(g, platformcore.ActionLeft)
	if g.cursor != cursor {
		t.Error("cursor moved while paused")
	}
	press(g, platformcore.ActionPause)
	if g.State().Paused {
		t.Error("still paused")
	}
}

func TestWindowTooSmall(t *testing.T) {
	useConfig(t, noAnimation)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 30, Seed: 1})

	if !g.State().Paused {
		t.Error("State().Paused = false on a tiny screen")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}
	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message not drawn")
	}

	// Growing the terminal keeps the board
	board := g.Snapshot().Board
	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("still paused after resize")
	}
	if g.Snapshot().Board != board {
		t.Error("resize changed the board")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, noAnimation, 1)
	g.SetBestScore(900)
	g.OnScoreDelta(300)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Lines", "Score: 0", "+300", "Best: 900", "Next:", "Free: 78"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestPathCache(t *testing.T) {
	c := newPathCache(2)
	k := func(i int) core.PathKey { return core.PathKey{Revision: uint64(i)} }

	c.Add(k(1), core.Path{core.P(0, 0)})
	c.Add(k(2), nil)
	if path, ok := c.Get(k(2)); !ok || path != nil {
		t.Errorf("Get(miss entry) = %v, %v", path, ok)
	}
	c.Add(k(3), core.Path{core.P(1, 1)})
	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}
	if _, ok := c.Get(k(1)); ok {
		t.Error("oldest entry was not evicted")
	}
	c.Purge()
	if c.Len() != 0 {
		t.Error("Purge() left entries")
	}
}

func TestPreviewUsesCache(t *testing.T) {
	g := newTestGame(t, noAnimation, 5)
	cand, _ := core.GreedyRobot{}.PickMove(g.ctrl)
	g.activate(cand.From)

	g.cursor = cand.To
	g.refreshPreview()
	g.refreshPreview()
	if g.cache.hits == 0 {
		t.Error("second preview of the same cell missed the cache")
	}
}
