package ai

import "snake-pathfinder/game/types"

// BFSPathfinder finds minimum-hop routes. Ties follow neighbour order.
type BFSPathfinder struct{}

func (b *BFSPathfinder) FindPath(start, goal types.Point, g Occupancy, m Mover) []types.Point {
	if !g.InBounds(start) || !g.InBounds(goal) || start == goal {
		return nil
	}
	w := g.Width()
	size := w * g.Height()
	startIdx := start.Y*w + start.X
	goalIdx := goal.Y*w + goal.X

	visited := make([]bool, size)
	cameFrom := make([]int, size)
	queue := make([]types.Point, 0, 64)
	neighbors := make([]types.Point, 0, len(types.Cardinals))
	body := m.Segments()

	queue = append(queue, start)
	visited[startIdx] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			return reconstruct(cameFrom, goalIdx, startIdx, w)
		}

		curIdx := cur.Y*w + cur.X
		neighbors = appendNeighbors(neighbors[:0], cur, g, body)
		for _, n := range neighbors {
			nIdx := n.Y*w + n.X
			if visited[nIdx] {
				continue
			}
			visited[nIdx] = true
			cameFrom[nIdx] = curIdx
			queue = append(queue, n)
		}
	}
	return nil
}
