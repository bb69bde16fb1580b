package core

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is wrapped by Rules.Validate failures.
var ErrInvalidRules = errors.New("invalid rules")

// Rules are the fixed parameters of one game.
type Rules struct {
	Size          int  // board is Size×Size
	Colors        int  // palette size
	LineLength    int  // minimum run that clears
	ScorePerPiece int  // points per cleared piece beyond the first
	WaveSize      int  // pieces spawned per turn
	Hints         bool // preview the next wave on the board
}

// DefaultRules are the classic 9×9, five colors, lines of five.
func DefaultRules() Rules {
	return Rules{
		Size:          9,
		Colors:        ColorCount,
		LineLength:    5,
		ScorePerPiece: 150,
		WaveSize:      DefaultWaveSize,
		Hints:         true,
	}
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	switch {
	case r.Size < 3:
		return fmt.Errorf("%w: size %d is below 3", ErrInvalidRules, r.Size)
	case r.Colors < 1 || r.Colors > ColorCount:
		return fmt.Errorf("%w: colors must be in 1..%d, got %d", ErrInvalidRules, ColorCount, r.Colors)
	case r.LineLength < 2 || r.LineLength > r.Size:
		return fmt.Errorf("%w: line length must be in 2..%d, got %d", ErrInvalidRules, r.Size, r.LineLength)
	case r.WaveSize < 1 || r.WaveSize > r.Size*r.Size:
		return fmt.Errorf("%w: wave size %d out of range", ErrInvalidRules, r.WaveSize)
	case r.ScorePerPiece < 0:
		return fmt.Errorf("%w: negative score per piece", ErrInvalidRules)
	}
	return nil
}

// ClearScore is the points for clearing n cells in one move.
func (r Rules) ClearScore(n int) int {
	if n <= 0 {
		return 0
	}
	return (n - 1) * r.ScorePerPiece
}

// Phase is the controller state between calls.
type Phase int

const (
	PhaseIdle     Phase = iota // nothing selected
	PhaseSelected              // a piece is picked up
	PhasePreview               // a piece is picked up and a path is shown
	PhaseGameOver              // board full
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelected:
		return "selected"
	case PhasePreview:
		return "preview"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreListener is told about every score change.
type ScoreListener interface {
	OnScoreDelta(delta int)
	OnReset()
}

// GameOverPrompt decides what happens once the board is full.
type GameOverPrompt interface {
	RestartRequested(score int) bool
}

// PathKey identifies a path query against one board revision.
type PathKey struct {
	Revision uint64
	From     Pos
	To       Pos
}

// PathCache memoizes preview paths. Misses are stored as nil paths.
type PathCache interface {
	Get(key PathKey) (Path, bool)
	Add(key PathKey, path Path)
}

// MoveResult describes one committed move.
type MoveResult struct {
	From         Pos
	To           Pos
	Path         Path
	LandedOnHint bool
	Cleared      []Pos   // cells removed by runs, row-major
	ClearedColor []Color // color of each cleared cell, parallel to Cleared
	Gained       int
	Spawned      []Piece
	GameOver     bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithScoreListener registers a listener for score changes.
func WithScoreListener(l ScoreListener) Option {
	return func(c *Controller) { c.listener = l }
}

// WithPathCache installs a cache used by PreviewTo.
func WithPathCache(pc PathCache) Option {
	return func(c *Controller) { c.cache = pc }
}

// Controller runs the move cycle: select, preview, commit, clear,
// score, spawn and end-of-game detection.
type Controller struct {
	rules    Rules
	grid     *Grid
	finder   *PathFinder
	matcher  *LineMatcher
	supplier *Supplier
	listener ScoreListener
	cache    PathCache

	phase    Phase
	selected Pos
	preview  Path
	score    int
	moves    int
	// redraw forces a fresh wave at the next spawn after a piece landed
	// on a hint during a move that cleared and so spawned nothing.
	redraw bool
}

// NewController builds a controller and its services for rules.
// Call Start before the first move.
func NewController(rules Rules, rnd RandomSource, opts ...Option) (*Controller, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	grid := NewGrid(rules.Size)
	c := &Controller{
		rules:   rules,
		grid:    grid,
		finder:  NewPathFinder(rules.Size),
		matcher: NewLineMatcher(rules.LineLength),
		supplier: NewSupplier(grid, rnd, SupplierOptions{
			Colors:   rules.Colors,
			WaveSize: rules.WaveSize,
			Hints:    rules.Hints,
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start clears the board and score and spawns the first wave.
func (c *Controller) Start() []Piece {
	c.grid.Reset()
	c.supplier.Reset()
	c.phase = PhaseIdle
	c.preview = nil
	c.score = 0
	c.moves = 0
	c.redraw = false
	if c.listener != nil {
		c.listener.OnReset()
	}
	spawned := c.supplier.NextWave(true)
	c.checkGameOver()
	return spawned
}

// Restart is Start under the name used by game-over handling.
func (c *Controller) Restart() []Piece { return c.Start() }

// Rules returns the rules in force.
func (c *Controller) Rules() Rules { return c.rules }

// Grid exposes the live board. Callers must not mutate it.
func (c *Controller) Grid() *Grid { return c.grid }

// Matcher returns the run detector.
func (c *Controller) Matcher() *LineMatcher { return c.matcher }

// PathFinder returns the path search.
func (c *Controller) PathFinder() *PathFinder { return c.finder }

// Score returns the running score.
func (c *Controller) Score() int { return c.score }

// Moves returns the number of committed moves since Start.
func (c *Controller) Moves() int { return c.moves }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Selected returns the picked-up piece, if any.
func (c *Controller) Selected() (Pos, bool) {
	if c.phase != PhaseSelected && c.phase != PhasePreview {
		return Pos{}, false
	}
	return c.selected, true
}

// Preview returns the path shown for the current candidate destination.
func (c *Controller) Preview() Path { return c.preview }

// Hints returns the next-wave preview pieces.
func (c *Controller) Hints() []Piece { return c.supplier.Hints() }

// GameOver reports whether the board is full.
func (c *Controller) GameOver() bool { return c.phase == PhaseGameOver }

// Select picks up the real piece at p. Selecting the already selected
// piece puts it down; selecting another piece switches to it. Anything
// else is ignored and reported as false.
func (c *Controller) Select(p Pos) bool {
	if c.phase == PhaseGameOver || !c.grid.Valid(p) || !c.grid.IsOccupied(p) {
		return false
	}
	if sel, ok := c.Selected(); ok && sel == p {
		c.Deselect()
		return true
	}
	c.selected = p
	c.preview = nil
	c.phase = PhaseSelected
	return true
}

// Deselect puts the selected piece down.
func (c *Controller) Deselect() {
	if c.phase == PhaseSelected || c.phase == PhasePreview {
		c.phase = PhaseIdle
	}
	c.preview = nil
}

// PreviewTo computes the path from the selected piece to p for display.
// The board is not changed.
func (c *Controller) PreviewTo(p Pos) (Path, bool) {
	sel, ok := c.Selected()
	if !ok || !c.grid.Valid(p) || p == sel || !c.grid.IsFree(p) {
		if ok {
			c.preview = nil
			c.phase = PhaseSelected
		}
		return nil, false
	}
	path, found := c.findPath(sel, p)
	if !found {
		c.preview = nil
		c.phase = PhaseSelected
		return nil, false
	}
	c.preview = path
	c.phase = PhasePreview
	return path, true
}

func (c *Controller) findPath(from, to Pos) (Path, bool) {
	if c.cache == nil {
		return c.finder.Find(c.grid, from, to)
	}
	key := PathKey{Revision: c.grid.Revision(), From: from, To: to}
	if path, ok := c.cache.Get(key); ok {
		return path, path != nil
	}
	path, found := c.finder.Find(c.grid, from, to)
	c.cache.Add(key, path)
	return path, found
}

// Commit moves the selected piece to p. It returns false, leaving the
// board untouched, when nothing is selected, p is not free or no path
// exists.
func (c *Controller) Commit(p Pos) (MoveResult, bool) {
	sel, ok := c.Selected()
	if !ok || !c.grid.Valid(p) || p == sel || !c.grid.IsFree(p) {
		return MoveResult{}, false
	}
	path, found := c.findPath(sel, p)
	if !found {
		return MoveResult{}, false
	}
	res := c.apply(sel, p)
	res.Path = path
	return res, true
}

// apply performs a move already known to be legal.
func (c *Controller) apply(from, to Pos) MoveResult {
	res := MoveResult{From: from, To: to}

	if c.grid.IsHint(to) {
		res.LandedOnHint = c.supplier.DiscardHint(to)
		if !res.LandedOnHint {
			c.grid.Remove(to)
		}
	}
	c.grid.Move(from, to)
	c.moves++
	c.phase = PhaseIdle
	c.preview = nil

	cleared := c.matcher.Collect(c.grid, []Pos{to})
	if len(cleared) == 0 {
		res.Spawned = c.supplier.NextWave(res.LandedOnHint || c.redraw)
		c.redraw = false
		origins := make([]Pos, len(res.Spawned))
		for i, pc := range res.Spawned {
			origins[i] = pc.Pos
		}
		cleared = c.matcher.Collect(c.grid, origins)
	} else if res.LandedOnHint {
		c.redraw = true
	}

	if len(cleared) > 0 {
		res.Cleared = cleared
		res.ClearedColor = make([]Color, len(cleared))
		for i, q := range cleared {
			res.ClearedColor[i] = c.grid.Remove(q).Color
		}
		res.Gained = c.rules.ClearScore(len(cleared))
		c.score += res.Gained
		if c.listener != nil && res.Gained != 0 {
			c.listener.OnScoreDelta(res.Gained)
		}
	}

	res.GameOver = c.checkGameOver()
	return res
}

func (c *Controller) checkGameOver() bool {
	if c.grid.AvailableCount() == 0 {
		c.phase = PhaseGameOver
		c.preview = nil
		return true
	}
	return false
}

// ResolveGameOver asks prompt whether to play again and restarts if so.
// It returns the prompt's answer, or false when the game is not over.
func (c *Controller) ResolveGameOver(prompt GameOverPrompt) bool {
	if c.phase != PhaseGameOver {
		return false
	}
	if !prompt.RestartRequested(c.score) {
		return false
	}
	c.Restart()
	return true
}

// Move selects from and commits to in one call.
func (c *Controller) Move(from, to Pos) (MoveResult, bool) {
	if sel, ok := c.Selected(); !ok || sel != from {
		if !c.Select(from) {
			return MoveResult{}, false
		}
	}
	res, ok := c.Commit(to)
	if !ok {
		c.Deselect()
	}
	return res, ok
}
