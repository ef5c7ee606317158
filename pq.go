package astar

import "container/heap"

// Node is a search node. F is derived from G and H and never stored.
type Node struct {
	X int
	Y int
	G int
	H int
}

// F returns the total estimated cost g + h.
func (node Node) F() int { return node.G + node.H }

// Point returns the node's grid coordinate.
func (node Node) Point() Point { return Point{X: node.X, Y: node.Y} }

type priorityQueueItem struct {
	node     Node
	sequence uint64
}

type priorityQueue []priorityQueueItem

func (queue priorityQueue) Len() int { return len(queue) }

// Less orders by ascending f. Among equal f the item pushed last wins.
func (queue priorityQueue) Less(i, j int) bool {
	fi, fj := queue[i].node.F(), queue[j].node.F()
	if fi != fj {
		return fi < fj
	}
	return queue[i].sequence > queue[j].sequence
}

func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(priorityQueueItem))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}

// OpenList is the search frontier, keyed by ascending f.
//
// Nodes are immutable once pushed; there is no decrease-key. When several
// nodes share the minimal f, PopMin returns the most recently pushed one.
type OpenList struct {
	queue    priorityQueue
	sequence uint64
}

// Push adds a node to the frontier.
func (open *OpenList) Push(node Node) {
	open.sequence++
	heap.Push(&open.queue, priorityQueueItem{node: node, sequence: open.sequence})
}

// PopMin removes and returns the node with the smallest f.
func (open *OpenList) PopMin() (Node, bool) {
	if open.queue.Len() == 0 {
		return Node{}, false
	}
	return heap.Pop(&open.queue).(priorityQueueItem).node, true
}

// Len returns the number of nodes in the frontier.
func (open *OpenList) Len() int { return open.queue.Len() }
