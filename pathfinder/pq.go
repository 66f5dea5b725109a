package pathfinder

// direction of a frontier entry
type direction int

const (
	forward direction = iota
	backward
)

func (d direction) opposite() direction {
	return 1 - d
}

// frontierItem is one queued (priority, cell, direction) entry
type frontierItem struct {
	Cell     CellID
	Dir      direction
	Priority float64 // cost so far + distance to this direction's target
	Seq      int     // push order, breaks priority ties
	Index    int     // index in the heap
}

// frontier implements heap.Interface over both search directions
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *frontier) Push(x interface{}) {
	n := len(*pq)
	item := x.(*frontierItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[0 : n-1]
	return item
}
