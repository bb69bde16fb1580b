package core

// indexPool is a set of linear indices with O(1) add, remove and
// positional access. Iteration order is insertion order perturbed by
// swap-removal, which is deterministic for a given operation history.
type indexPool struct {
	items []int
	where []int // where[i] is the slot of i in items, or -1
}

func newIndexPool(capacity int) indexPool {
	p := indexPool{
		items: make([]int, 0, capacity),
		where: make([]int, capacity),
	}
	for i := range p.where {
		p.where[i] = -1
	}
	return p
}

func (p *indexPool) len() int { return len(p.items) }

func (p *indexPool) contains(i int) bool { return p.where[i] >= 0 }

func (p *indexPool) add(i int) {
	if p.where[i] >= 0 {
		return
	}
	p.where[i] = len(p.items)
	p.items = append(p.items, i)
}

func (p *indexPool) remove(i int) {
	slot := p.where[i]
	if slot < 0 {
		return
	}
	last := len(p.items) - 1
	moved := p.items[last]
	p.items[slot] = moved
	p.where[moved] = slot
	p.items = p.items[:last]
	p.where[i] = -1
}

func (p *indexPool) clone() indexPool {
	c := indexPool{
		items: make([]int, len(p.items), cap(p.items)),
		where: make([]int, len(p.where)),
	}
	copy(c.items, p.items)
	copy(c.where, p.where)
	return c
}

// sample picks up to k distinct indices uniformly at random using a partial
// Fisher-Yates shuffle over a scratch copy. pick is called once per chosen
// index, in order, so callers can interleave further random draws.
func (p *indexPool) sample(rnd RandomSource, k int, pick func(idx int)) {
	if k > len(p.items) {
		k = len(p.items)
	}
	if k <= 0 {
		return
	}
	scratch := make([]int, len(p.items))
	copy(scratch, p.items)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
		pick(scratch[i])
	}
}
