package anonymize_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/kwl/anonymize"
	"github.com/katalvlaran/kwl/graphmodel"
)

// starInputN builds a hub (index 0) connected to n-1 leaves sharing one
// concept label, with leaf 1 as the subject, the shape exercised by the
// scaling benchmarks below.
func starInputN(n int) anonymize.Input {
	adj := make([][]graphmodel.EdgeTriple, n)
	raw := make([]graphmodel.RawNode, n)
	ids := make([]string, n)
	raw[0] = graphmodel.RawNode{Concepts: []string{"Hub"}}
	ids[0] = "node0"
	for i := 1; i < n; i++ {
		adj[0] = append(adj[0], graphmodel.EdgeTriple{Direction: graphmodel.DirOutgoing, Relation: 1, Neighbor: i})
		adj[i] = append(adj[i], graphmodel.EdgeTriple{Direction: graphmodel.DirIncoming, Relation: 1, Neighbor: 0})
		raw[i] = graphmodel.RawNode{Concepts: []string{"Leaf"}}
		ids[i] = fmt.Sprintf("node%d", i)
	}
	return anonymize.Input{N: n, Adjacency: adj, Raw: raw, IndexToIdentifier: ids, Subjects: []int{1}}
}

// BenchmarkRun_Sequential measures the full pipeline, full-mode
// verification, on a star of N nodes.
func BenchmarkRun_Sequential(b *testing.B) {
	const n = 2000
	in := starInputN(n)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = anonymize.Run(context.Background(), in, anonymize.WithK(2))
	}
}

// BenchmarkRun_Parallel measures the same pipeline with parallel
// candidate verification dispatched across runtime.NumCPU() workers.
func BenchmarkRun_Parallel(b *testing.B) {
	const n = 2000
	in := starInputN(n)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = anonymize.Run(context.Background(), in, anonymize.WithK(2), anonymize.WithParallel())
	}
}

// BenchmarkRun_Incremental measures the pipeline using the bounded
// incremental engine instead of full fixed-point re-refinement per trial.
func BenchmarkRun_Incremental(b *testing.B) {
	const n = 2000
	in := starInputN(n)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = anonymize.Run(context.Background(), in, anonymize.WithK(2), anonymize.WithIncremental(), anonymize.WithEarlyStop())
	}
}
