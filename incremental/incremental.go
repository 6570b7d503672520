package incremental

import (
	"context"

	"github.com/katalvlaran/kwl/compliance"
	"github.com/katalvlaran/kwl/graphmodel"
	"github.com/katalvlaran/kwl/khash"
	"github.com/katalvlaran/kwl/wl"
)

// queueItem pairs a node index with its BFS depth from changed.
type queueItem struct {
	node  int
	depth int
}

// Propagate recolors the graph after a single node's feature record
// changes, without recomputing the full fixed point. It rehashes the
// changed node's own feature buffer, then walks outward from it
// breadth-first, re-running wl.Refine at each visited node and only
// continuing the walk past a node whose color actually changed.
//
// If distanceLimit is non-nil, propagation never visits a node farther
// than *distanceLimit hops from changed; a nil limit means unbounded.
// counts is updated in place to stay consistent with the returned
// coloring.
func Propagate(ctx context.Context, g *graphmodel.Graph, records []*graphmodel.Record, changed int, seed []uint64, counts map[uint64]int, distanceLimit *int) []uint64 {
	coloring := compliance.CloneColoring(seed)

	newOwn := khash.Sum64(records[changed].F)
	if newOwn != coloring[changed] {
		counts[coloring[changed]]--
		if counts[coloring[changed]] == 0 {
			delete(counts, coloring[changed])
		}
		coloring[changed] = newOwn
		counts[newOwn]++
	}

	visited := make(map[int]bool, g.N)
	visited[changed] = true
	queue := []queueItem{{node: changed, depth: 0}}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return coloring
		default:
		}

		item := queue[0]
		queue = queue[1:]

		if distanceLimit != nil && item.depth > *distanceLimit {
			continue
		}

		newColor := wl.Refine(item.node, g, coloring)
		changedHere := newColor != coloring[item.node]
		if changedHere {
			counts[coloring[item.node]]--
			if counts[coloring[item.node]] == 0 {
				delete(counts, coloring[item.node])
			}
			coloring[item.node] = newColor
			counts[newColor]++
		}

		// Only a color change can ripple further: if v's color is
		// unchanged, every neighbor would recompute the same refine
		// input from v as before, so propagation stops here.
		if !changedHere {
			continue
		}
		if distanceLimit != nil && item.depth >= *distanceLimit {
			continue
		}
		for _, e := range g.Adj[item.node] {
			if !visited[e.Neighbor] {
				visited[e.Neighbor] = true
				queue = append(queue, queueItem{node: e.Neighbor, depth: item.depth + 1})
			}
		}
	}

	return coloring
}
