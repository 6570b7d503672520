package wl

import (
	"context"
	"encoding/binary"
	"sort"

	"github.com/katalvlaran/kwl/compliance"
	"github.com/katalvlaran/kwl/graphmodel"
	"github.com/katalvlaran/kwl/khash"
)

// neighborTriple is one sorted signature entry folded into a node's new
// color: the edge direction and relation it arrived on, paired with the
// neighbor's current color.
type neighborTriple struct {
	direction graphmodel.Direction
	relation  uint64
	color     uint64
}

// Refine computes node v's next-round color from its current color and
// the sorted multiset of (direction, relation, neighbor color) triples
// over its adjacency. A node with no adjacency hashes only its own
// current color, so isolated nodes do not all collapse to one constant
// color: isolated nodes keep distinct colors exactly when their previous
// colors were distinct.
func Refine(v int, g *graphmodel.Graph, coloring []uint64) uint64 {
	edges := g.Adj[v]
	if len(edges) == 0 {
		return khash.Sum64Uint64(coloring[v])
	}

	triples := make([]neighborTriple, len(edges))
	for i, e := range edges {
		triples[i] = neighborTriple{direction: e.Direction, relation: e.Relation, color: coloring[e.Neighbor]}
	}
	sort.Slice(triples, func(a, b int) bool {
		ta, tb := triples[a], triples[b]
		if ta.direction != tb.direction {
			return ta.direction < tb.direction
		}
		if ta.relation != tb.relation {
			return ta.relation < tb.relation
		}
		return ta.color < tb.color
	})

	buf := make([]byte, 8*(1+3*len(triples)))
	off := 0
	binary.LittleEndian.PutUint64(buf[off:], coloring[v])
	off += 8
	for _, tr := range triples {
		binary.LittleEndian.PutUint64(buf[off:], uint64(tr.direction))
		off += 8
		binary.LittleEndian.PutUint64(buf[off:], tr.relation)
		off += 8
		binary.LittleEndian.PutUint64(buf[off:], tr.color)
		off += 8
	}
	return khash.Sum64(buf)
}

// RefineToFixedPoint repeatedly applies Refine to every node until the
// canonical partition stops changing, or ctx is done. On cancellation it
// returns the last fully-committed coloring, never a partially built
// round.
func RefineToFixedPoint(ctx context.Context, g *graphmodel.Graph, seed []uint64) []uint64 {
	current := seed
	currentPartition := compliance.Partition(current)

	for {
		newColoring := make([]uint64, g.N)
		for v := 0; v < g.N; v++ {
			select {
			case <-ctx.Done():
				return current
			default:
			}
			newColoring[v] = Refine(v, g, current)
		}

		newPartition := compliance.Partition(newColoring)
		if newPartition == currentPartition {
			return newColoring
		}
		current = newColoring
		currentPartition = newPartition
	}
}
