package gasket

import (
	"container/heap"
)

// frontier is a min-heap of pending quadruples ordered by Key.  Equal keys
// pop in push order so generation is deterministic.
type frontier struct {
	items []frontierItem
	seq   uint64
}

type frontierItem struct {
	key Curvature
	seq uint64
	q   Quadruple
}

func (me *frontier) Len() int { return len(me.items) }

func (me *frontier) Less(i, j int) bool {
	if me.items[i].key != me.items[j].key {
		return me.items[i].key < me.items[j].key
	}
	return me.items[i].seq < me.items[j].seq
}

func (me *frontier) Swap(i, j int) { me.items[i], me.items[j] = me.items[j], me.items[i] }

func (me *frontier) Push(x any) { me.items = append(me.items, x.(frontierItem)) }

func (me *frontier) Pop() any {
	old := me.items
	n := len(old)
	it := old[n-1]
	me.items = old[:n-1]
	return it
}

func (me *frontier) push(q Quadruple) {
	heap.Push(me, frontierItem{key: q.Key(), seq: me.seq, q: q})
	me.seq++
}

func (me *frontier) pop() (Quadruple, Curvature) {
	it := heap.Pop(me).(frontierItem)
	return it.q, it.key
}
