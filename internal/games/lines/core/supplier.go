package core

// RandomSource is the randomness consumed by the supplier.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// DefaultWaveSize is the number of pieces spawned per turn.
const DefaultWaveSize = 3

// SupplierOptions tune piece supply.
type SupplierOptions struct {
	Colors   int  // palette size, 1..ColorCount
	WaveSize int  // pieces per wave
	Hints    bool // keep a preview of the next wave on the board
}

// Supplier spawns waves of pieces and keeps the hint set: previews of
// the next wave placed on the board as passable hint cells.
type Supplier struct {
	grid    *Grid
	rnd     RandomSource
	palette []Color
	wave    int
	hints   bool

	hintSet []Pos
}

// NewSupplier creates a supplier that spawns onto grid.
func NewSupplier(grid *Grid, rnd RandomSource, opts SupplierOptions) *Supplier {
	if opts.WaveSize <= 0 {
		opts.WaveSize = DefaultWaveSize
	}
	if opts.Colors <= 0 {
		opts.Colors = ColorCount
	}
	return &Supplier{
		grid:    grid,
		rnd:     rnd,
		palette: Palette(opts.Colors),
		wave:    opts.WaveSize,
		hints:   opts.Hints,
	}
}

// Hints returns the current hint pieces.
func (s *Supplier) Hints() []Piece {
	out := make([]Piece, 0, len(s.hintSet))
	for _, p := range s.hintSet {
		if pc, ok := s.grid.At(p); ok && pc.Hint {
			out = append(out, pc)
		}
	}
	return out
}

// HasHint reports whether p is in the hint set.
func (s *Supplier) HasHint(p Pos) bool {
	for _, h := range s.hintSet {
		if h == p {
			return true
		}
	}
	return false
}

// DiscardHint removes the hint at p from the board and from the hint set.
// It reports whether there was one.
func (s *Supplier) DiscardHint(p Pos) bool {
	for i, h := range s.hintSet {
		if h != p {
			continue
		}
		s.grid.Remove(p)
		s.hintSet = append(s.hintSet[:i], s.hintSet[i+1:]...)
		return true
	}
	return false
}

// Reset forgets the hint set. The caller resets the grid.
func (s *Supplier) Reset() {
	s.hintSet = s.hintSet[:0]
}

// NextWave spawns the next wave of real pieces and returns them.
//
// With enforceHints the current hint set is thrown away and a fresh wave
// is drawn. Otherwise existing hints are promoted in place. When no hint
// set exists a fresh wave is drawn either way. Afterwards a new hint set
// is drawn from the remaining available cells. Nothing happens when the
// available pool is empty.
func (s *Supplier) NextWave(enforceHints bool) []Piece {
	if s.grid.AvailableCount() == 0 {
		return nil
	}

	if enforceHints {
		for _, p := range s.hintSet {
			if s.grid.IsHint(p) {
				s.grid.Remove(p)
			}
		}
		s.hintSet = s.hintSet[:0]
	}

	var spawned []Piece
	if len(s.hintSet) == 0 {
		s.grid.avail.sample(s.rnd, s.wave, func(idx int) {
			p := PosFromIndex(idx, s.grid.n)
			c := s.randomColor()
			s.grid.Place(p, c)
			spawned = append(spawned, Piece{Pos: p, Color: c})
		})
	} else {
		for _, p := range s.hintSet {
			c := s.grid.ColorAt(p)
			s.grid.Promote(p)
			spawned = append(spawned, Piece{Pos: p, Color: c})
		}
		s.hintSet = s.hintSet[:0]
	}

	if s.hints {
		s.grid.avail.sample(s.rnd, s.wave, func(idx int) {
			p := PosFromIndex(idx, s.grid.n)
			s.grid.PlaceHint(p, s.randomColor())
			s.hintSet = append(s.hintSet, p)
		})
	}
	return spawned
}

func (s *Supplier) randomColor() Color {
	return s.palette[s.rnd.Intn(len(s.palette))]
}
