package backend

import (
	"context"

	"github.com/katalvlaran/kwl/graphmodel"
	"github.com/katalvlaran/kwl/incremental"
	"github.com/katalvlaran/kwl/wl"
)

// Engine performs the three WL coloring operations a verifier trial and
// a full anonymization run both need.
type Engine interface {
	Refine(v int, g *graphmodel.Graph, coloring []uint64) uint64
	RefineToFixedPoint(ctx context.Context, g *graphmodel.Graph, seed []uint64) []uint64
	Incremental(ctx context.Context, g *graphmodel.Graph, records []*graphmodel.Record, changed int, seed []uint64, counts map[uint64]int, distanceLimit *int) []uint64
}

type pureEngine struct{}

func (pureEngine) Refine(v int, g *graphmodel.Graph, coloring []uint64) uint64 {
	return wl.Refine(v, g, coloring)
}

func (pureEngine) RefineToFixedPoint(ctx context.Context, g *graphmodel.Graph, seed []uint64) []uint64 {
	return wl.RefineToFixedPoint(ctx, g, seed)
}

func (pureEngine) Incremental(ctx context.Context, g *graphmodel.Graph, records []*graphmodel.Record, changed int, seed []uint64, counts map[uint64]int, distanceLimit *int) []uint64 {
	return incremental.Propagate(ctx, g, records, changed, seed, counts, distanceLimit)
}

// Default is the process-wide WL engine.
var Default Engine = pureEngine{}
