package navroute

// searchNode is one element of the search tree. Nodes live in an arena and
// refer to their predecessor by arena index, so relaxing a queued node is an
// in-place update and the parent chain cannot form a cycle.
type searchNode struct {
	point  NavPoint
	cost   float64 // accumulated cost from the start, turn surcharges included
	h      float64 // straight-line distance to the goal
	parent int     // arena index of the predecessor, -1 for the start
	index  int     // position in the heap, -1 once popped
}

func (n *searchNode) rank() float64 { return n.cost + n.h }

// frontier implements heap.Interface over arena indices. Nodes are ordered
// by cost + h; equal ranks go to the node discovered first, i.e. the lower
// arena index.
type frontier struct {
	nodes []searchNode
	queue []int
}

func (f *frontier) Len() int { return len(f.queue) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.queue[i], f.queue[j]
	ra, rb := f.nodes[a].rank(), f.nodes[b].rank()
	if ra != rb {
		return ra < rb
	}
	return a < b
}

func (f *frontier) Swap(i, j int) {
	f.queue[i], f.queue[j] = f.queue[j], f.queue[i]
	f.nodes[f.queue[i]].index = i
	f.nodes[f.queue[j]].index = j
}

func (f *frontier) Push(x interface{}) {
	id := x.(int)
	f.nodes[id].index = len(f.queue)
	f.queue = append(f.queue, id)
}

func (f *frontier) Pop() interface{} {
	old := f.queue
	n := len(old)
	id := old[n-1]
	f.nodes[id].index = -1
	f.queue = old[0 : n-1]
	return id
}

// add appends a node to the arena and returns its index. The node is not
// queued; callers follow up with heap.Push.
func (f *frontier) add(n searchNode) int {
	f.nodes = append(f.nodes, n)
	return len(f.nodes) - 1
}
