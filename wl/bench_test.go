package wl_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/kwl/graphmodel"
	"github.com/katalvlaran/kwl/wl"
)

// chainGraphN builds a symmetric 0-1-...-(n-1) chain with n nodes and
// n-1 edges, plus n matching feature records alternating between two
// concept labels so refinement has real work to do.
func chainGraphN(n int) (*graphmodel.Graph, []*graphmodel.Record) {
	adj := make([][]graphmodel.EdgeTriple, n)
	records := make([]*graphmodel.Record, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			adj[i] = append(adj[i], graphmodel.EdgeTriple{Direction: graphmodel.DirIncoming, Relation: 1, Neighbor: i - 1})
		}
		if i < n-1 {
			adj[i] = append(adj[i], graphmodel.EdgeTriple{Direction: graphmodel.DirOutgoing, Relation: 1, Neighbor: i + 1})
		}
		records[i] = &graphmodel.Record{C: []uint64{uint64(i % 2)}}
		records[i].SetType(0)
	}
	return &graphmodel.Graph{N: n, Adj: adj}, records
}

// BenchmarkRefineToFixedPoint_Chain measures WL refinement to a fixed
// point on a linear chain of N nodes.
func BenchmarkRefineToFixedPoint_Chain(b *testing.B) {
	const n = 5000
	g, records := chainGraphN(n)
	seed := wl.Initial(records)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = wl.RefineToFixedPoint(context.Background(), g, seed)
	}
}

// starGraphN builds a hub connected to n-1 leaves, all sharing one
// concept label, exercising the high-fanout case of Refine's
// neighbor-triple sort.
func starGraphN(n int) (*graphmodel.Graph, []*graphmodel.Record) {
	adj := make([][]graphmodel.EdgeTriple, n)
	records := make([]*graphmodel.Record, n)
	records[0] = &graphmodel.Record{C: []uint64{99}}
	records[0].SetType(0)
	for i := 1; i < n; i++ {
		adj[0] = append(adj[0], graphmodel.EdgeTriple{Direction: graphmodel.DirOutgoing, Relation: 1, Neighbor: i})
		adj[i] = append(adj[i], graphmodel.EdgeTriple{Direction: graphmodel.DirIncoming, Relation: 1, Neighbor: 0})
		records[i] = &graphmodel.Record{C: []uint64{1}}
		records[i].SetType(0)
	}
	return &graphmodel.Graph{N: n, Adj: adj}, records
}

// BenchmarkRefine_HighFanoutHub measures a single Refine call at the hub
// of a star with N-1 leaves, dominated by the neighbor-triple sort.
func BenchmarkRefine_HighFanoutHub(b *testing.B) {
	const n = 5000
	g, records := starGraphN(n)
	coloring := wl.Initial(records)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = wl.Refine(0, g, coloring)
	}
}
