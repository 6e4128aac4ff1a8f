package ai

import (
	"math"

	"snake-pathfinder/game/types"
)

// stepCost is the uniform edge weight; kept separate so cost models can diverge later
const stepCost = 1

type heapEntry struct {
	dist int
	pos  types.Point
}

// before orders by distance, then by position
func (e heapEntry) before(o heapEntry) bool {
	if e.dist != o.dist {
		return e.dist < o.dist
	}
	return e.pos.Less(o.pos)
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].before((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].before((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].before((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// DijkstraPathfinder runs uniform-cost search with a min-priority frontier.
// With unit costs the route length matches BFS.
type DijkstraPathfinder struct {
	heap minHeap
}

func (d *DijkstraPathfinder) FindPath(start, goal types.Point, g Occupancy, m Mover) []types.Point {
	if !g.InBounds(start) || !g.InBounds(goal) || start == goal {
		return nil
	}
	w := g.Width()
	size := w * g.Height()
	startIdx := start.Y*w + start.X
	goalIdx := goal.Y*w + goal.X

	dist := make([]int, size)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	finalized := make([]bool, size)
	cameFrom := make([]int, size)
	neighbors := make([]types.Point, 0, len(types.Cardinals))
	body := m.Segments()

	dist[startIdx] = 0
	d.heap = d.heap[:0]
	d.heap.push(heapEntry{dist: 0, pos: start})

	for len(d.heap) > 0 {
		entry := d.heap.pop()
		cur := entry.pos
		curIdx := cur.Y*w + cur.X

		if finalized[curIdx] {
			continue
		}
		finalized[curIdx] = true

		if cur == goal {
			return reconstruct(cameFrom, goalIdx, startIdx, w)
		}

		neighbors = appendNeighbors(neighbors[:0], cur, g, body)
		for _, n := range neighbors {
			nIdx := n.Y*w + n.X
			nd := dist[curIdx] + stepCost
			if nd < dist[nIdx] {
				dist[nIdx] = nd
				cameFrom[nIdx] = curIdx
				d.heap.push(heapEntry{dist: nd, pos: n})
			}
		}
	}
	return nil
}
