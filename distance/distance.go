package distance

import (
	"context"
	"math"

	"github.com/katalvlaran/kwl/graphmodel"
)

// Unreachable marks a node with no path back to any subject.
const Unreachable = math.MaxInt

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// Compute runs a multi-source BFS seeded at every subject simultaneously,
// traversing every adjacency entry of g regardless of its Direction tag
// (adjacency is stored symmetrically, so this is an undirected
// traversal). It returns, for each node, the fewest hops to its nearest
// subject. On context cancellation it returns the distances computed so
// far; unreached nodes remain Unreachable.
func Compute(ctx context.Context, g *graphmodel.Graph, subjects map[int]struct{}) []int {
	dist := make([]int, g.N)
	for i := range dist {
		dist[i] = Unreachable
	}

	queue := make([]queueItem, 0, len(subjects))
	for s := range subjects {
		dist[s] = 0
		queue = append(queue, queueItem{node: s, depth: 0})
	}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return dist
		default:
		}

		item := queue[0]
		queue = queue[1:]

		for _, edge := range g.Adj[item.node] {
			nbr := edge.Neighbor
			if dist[nbr] != Unreachable {
				continue
			}
			dist[nbr] = item.depth + 1
			queue = append(queue, queueItem{node: nbr, depth: item.depth + 1})
		}
	}

	return dist
}
