package core

import "container/heap"

// Path is an ordered walk from start to end, both inclusive.
type Path []Pos

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Steps returns the number of moves, Len()-1.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first cell.
func (p Path) Start() Pos { return p[0] }

// End returns the last cell.
func (p Path) End() Pos { return p[len(p)-1] }

const noParent = -1

type openEntry struct {
	idx int
	f   int
	h   int
	seq int
}

type openQueue []openEntry

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) { *q = append(*q, x.(openEntry)) }

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// PathFinder runs A* over the free cells of a grid with unit step cost
// and the Manhattan heuristic. A PathFinder is not safe for concurrent
// use; its scratch buffers are reset on every search.
type PathFinder struct {
	n      int
	g      []int
	parent []int
	closed []bool
	open   openQueue
	seq    int
}

// NewPathFinder allocates scratch space for an n×n board.
func NewPathFinder(n int) *PathFinder {
	pf := &PathFinder{}
	pf.resize(n)
	return pf
}

func (pf *PathFinder) resize(n int) {
	pf.n = n
	pf.g = make([]int, n*n)
	pf.parent = make([]int, n*n)
	pf.closed = make([]bool, n*n)
}

func (pf *PathFinder) reset() {
	for i := range pf.g {
		pf.g[i] = -1
		pf.parent[i] = noParent
		pf.closed[i] = false
	}
	pf.open = pf.open[:0]
	pf.seq = 0
}

func (pf *PathFinder) push(idx, g, h int) {
	pf.seq++
	heap.Push(&pf.open, openEntry{idx: idx, f: g + h, h: h, seq: pf.seq})
}

// Find returns a shortest path from start to end that only crosses free
// cells. The start cell itself may hold the piece being moved. The second
// result is false when end is unreachable or not free.
func (pf *PathFinder) Find(grid *Grid, start, end Pos) (Path, bool) {
	if grid.Size() != pf.n {
		pf.resize(grid.Size())
	}
	n := pf.n
	startIdx := grid.mustIndex(start)
	endIdx := grid.mustIndex(end)
	if startIdx != endIdx && !grid.IsFree(end) {
		return nil, false
	}

	pf.reset()
	pf.g[startIdx] = 0
	pf.push(startIdx, 0, Manhattan(start, end))

	for pf.open.Len() > 0 {
		cur := heap.Pop(&pf.open).(openEntry)
		if pf.closed[cur.idx] || cur.f != pf.g[cur.idx]+cur.h {
			continue // stale entry superseded by a cheaper one
		}
		if cur.idx == endIdx {
			return pf.reconstruct(start, endIdx), true
		}
		pf.closed[cur.idx] = true

		p := PosFromIndex(cur.idx, n)
		for _, d := range directions4 {
			q := p.Add(d)
			if !grid.Valid(q) || !grid.IsFree(q) {
				continue
			}
			qi := q.Index(n)
			if pf.closed[qi] {
				continue
			}
			tentative := pf.g[cur.idx] + 1
			if pf.g[qi] >= 0 && tentative >= pf.g[qi] {
				continue
			}
			pf.g[qi] = tentative
			pf.parent[qi] = cur.idx
			pf.push(qi, tentative, Manhattan(q, end))
		}
	}
	return nil, false
}

func (pf *PathFinder) reconstruct(start Pos, endIdx int) Path {
	var rev []Pos
	for i := endIdx; pf.parent[i] != noParent; i = pf.parent[i] {
		rev = append(rev, PosFromIndex(i, pf.n))
	}
	path := make(Path, 0, len(rev)+1)
	path = append(path, start)
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// Reachable returns every cell reachable from start over free cells,
// excluding start. Used to enumerate candidate destinations.
func (pf *PathFinder) Reachable(grid *Grid, start Pos) []Pos {
	n := grid.Size()
	seen := make([]bool, n*n)
	seen[grid.mustIndex(start)] = true
	queue := []Pos{start}
	var out []Pos
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range directions4 {
			q := p.Add(d)
			if !grid.Valid(q) || !grid.IsFree(q) || seen[q.Index(n)] {
				continue
			}
			seen[q.Index(n)] = true
			out = append(out, q)
			queue = append(queue, q)
		}
	}
	return out
}
