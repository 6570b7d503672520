package verify

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kwl/backend"
	"github.com/katalvlaran/kwl/compliance"
	"github.com/katalvlaran/kwl/distance"
	"github.com/katalvlaran/kwl/graphmodel"
	"github.com/katalvlaran/kwl/khash"
)

// trial blanks node b (flips its record to type 1), recolors under mode,
// checks whether the result is k-compliant, then restores b's record to
// type 0. It reports whether b is necessary: true iff flipping b to a
// constant breaks k-compliance for some subject. Every trial clones the
// coloring and counts it mutates, so concurrent trials over different
// candidates never share state.
func trial(ctx context.Context, g *graphmodel.Graph, records []*graphmodel.Record, baseline []uint64, baseCounts map[uint64]int, b int, dist []int, subjects map[int]struct{}, k int, mode Mode, eng backend.Engine) bool {
	records[b].SetType(1)
	defer records[b].SetType(0)

	var trialColoring []uint64
	var trialCounts map[uint64]int

	if mode.Incremental {
		trialCounts = compliance.CloneCounts(baseCounts)
		var distanceLimit *int
		if mode.EarlyStop && dist[b] != distance.Unreachable {
			limit := dist[b]
			distanceLimit = &limit
		}
		trialColoring = eng.Incremental(ctx, g, records, b, baseline, trialCounts, distanceLimit)
	} else {
		trialColoring = compliance.CloneColoring(baseline)
		trialCounts = compliance.CloneCounts(baseCounts)
		trialCounts[trialColoring[b]]--
		flipped := khash.Sum64(records[b].F)
		trialColoring[b] = flipped
		trialCounts[flipped]++

		trialColoring = eng.RefineToFixedPoint(ctx, g, trialColoring)
		trialCounts, _ = compliance.BuildCountsAndMembers(trialColoring)
	}

	return !compliance.CheckCompliance(trialColoring, trialCounts, subjects, k)
}

// Sequential trials each candidate in order, returning the subset whose
// trial blanking breaks k-compliance for some subject -- these are the
// candidates that must join necessary.
func Sequential(ctx context.Context, g *graphmodel.Graph, records []*graphmodel.Record, baseline []uint64, baseCounts map[uint64]int, candidates []int, dist []int, subjects map[int]struct{}, k int, mode Mode, eng backend.Engine) map[int]struct{} {
	necessary := make(map[int]struct{})
	for _, b := range candidates {
		select {
		case <-ctx.Done():
			return necessary
		default:
		}
		if trial(ctx, g, records, baseline, baseCounts, b, dist, subjects, k, mode, eng) {
			necessary[b] = struct{}{}
		}
	}
	return necessary
}

// Parallel partitions candidates into at most workers contiguous batches
// of ceil(len(candidates)/workers) and trials each batch on its own
// goroutine, preserving per-candidate order within a batch. Each batch's
// results are merged under a mutex as that batch finishes.
func Parallel(ctx context.Context, g *graphmodel.Graph, records []*graphmodel.Record, baseline []uint64, baseCounts map[uint64]int, candidates []int, dist []int, subjects map[int]struct{}, k int, mode Mode, eng backend.Engine, workers int) map[int]struct{} {
	necessary := make(map[int]struct{})
	if len(candidates) == 0 {
		return necessary
	}
	if workers < 1 {
		workers = 1
	}

	batches := batchify(candidates, workers)

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	for _, batch := range batches {
		batch := batch
		eg.Go(func() error {
			found := Sequential(egCtx, g, records, baseline, baseCounts, batch, dist, subjects, k, mode, eng)
			mu.Lock()
			for b := range found {
				necessary[b] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	return necessary
}

// batchify splits items into at most n contiguous, roughly equal batches.
func batchify(items []int, n int) [][]int {
	if n > len(items) {
		n = len(items)
	}
	if n <= 1 {
		return [][]int{items}
	}

	size := (len(items) + n - 1) / n
	batches := make([][]int, 0, n)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
