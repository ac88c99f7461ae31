package search

import "svw.info/npuzzle/internal/domain"

// node is one frontier entry. Nodes live only for the duration of a
// single solve; parent links are followed to reconstruct the path.
type node struct {
	state    domain.State
	key      string
	g        int
	h        int
	priority int
	seq      uint64
	parent   *node
	index    int
}

// frontier is a container/heap min-heap ordered by priority, with ties
// broken by lower h and then by insertion order so that runs over the
// same start state are fully reproducible.
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	if f[i].h != f[j].h {
		return f[i].h < f[j].h
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*f)
	*f = append(*f, n)
}

func (f *frontier) Pop() any {
	old := *f
	last := len(old) - 1
	n := old[last]
	n.index = -1
	*f = old[:last]
	return n
}
