package anonymize

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/katalvlaran/kwl/backend"
	"github.com/katalvlaran/kwl/compliance"
	"github.com/katalvlaran/kwl/distance"
	"github.com/katalvlaran/kwl/graphmodel"
	"github.com/katalvlaran/kwl/verify"
	"github.com/katalvlaran/kwl/wl"
)

// Run executes the full blanking pipeline against in, honoring ctx and,
// if WithMaxSeconds set a positive deadline, an additional timeout
// derived from it. Options are applied in order; an invalid one (e.g.
// a non-positive k, or EarlyStop without Incremental) is reported
// immediately and the pipeline never starts.
func Run(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.K <= 0 {
		return nil, ErrInvalidK
	}
	mode := verify.Mode{Incremental: o.Incremental, EarlyStop: o.EarlyStop, Parallel: o.Parallel}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	if len(in.Subjects) == 0 {
		return &Result{NothingToDo: true}, nil
	}

	if o.MaxSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(o.MaxSeconds*float64(time.Second)))
		defer cancel()
	}

	g, records, err := graphmodel.New(in.N, in.Adjacency, in.Raw, in.IndexToIdentifier, in.Subjects)
	if err != nil {
		return nil, fmt.Errorf("anonymize: building graph: %w", err)
	}

	seed := wl.Initial(records)
	baseline := backend.Default.RefineToFixedPoint(ctx, g, seed)
	baseCounts, baseMembers := compliance.BuildCountsAndMembers(baseline)

	if !compliance.CheckCompliance(baseline, baseCounts, g.Subjects, o.K) {
		short := make(map[int]struct{})
		for s := range g.Subjects {
			if baseCounts[baseline[s]] < o.K {
				short[s] = struct{}{}
			}
		}
		return &Result{Feasible: false, InfeasibleSubjects: identifiers(g, short)}, nil
	}

	// Seed necessary with every subject, then saturate: if a subject's
	// color class has exactly k members, every member of that class must
	// stay blank, since removing any one collapses the class below k.
	necessary := make(map[int]struct{}, len(g.Subjects))
	for s := range g.Subjects {
		necessary[s] = struct{}{}
		if baseCounts[baseline[s]] == o.K {
			for _, member := range baseMembers[baseline[s]] {
				necessary[member] = struct{}{}
			}
		}
	}

	// Singletons are nodes alone in their color class, irrespective of
	// whether they are subjects: they can never satisfy k>1 compliance
	// by being blanked, so verification skips them entirely.
	singletons := make(map[int]struct{})
	for v := 0; v < g.N; v++ {
		if baseCounts[baseline[v]] == 1 {
			singletons[v] = struct{}{}
		}
	}

	dist := distance.Compute(ctx, g, g.Subjects)

	candidates := make([]int, 0, g.N)
	for v := 0; v < g.N; v++ {
		if _, isNecessary := necessary[v]; isNecessary {
			continue
		}
		if _, isSingleton := singletons[v]; isSingleton {
			continue
		}
		candidates = append(candidates, v)
	}
	sort.SliceStable(candidates, func(i, j int) bool { return dist[candidates[i]] < dist[candidates[j]] })

	var verified map[int]struct{}
	if mode.Parallel {
		workers := o.Workers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		verified = verify.Parallel(ctx, g, records, baseline, baseCounts, candidates, dist, g.Subjects, o.K, mode, backend.Default, workers)
	} else {
		verified = verify.Sequential(ctx, g, records, baseline, baseCounts, candidates, dist, g.Subjects, o.K, mode, backend.Default)
	}
	for b := range verified {
		necessary[b] = struct{}{}
	}

	return &Result{
		Feasible:   true,
		Necessary:  identifiers(g, necessary),
		Singletons: identifiers(g, singletons),
		TimedOut:   ctx.Err() != nil,
	}, nil
}

// identifiers translates a set of node indices to their sorted identifiers.
func identifiers(g *graphmodel.Graph, nodes map[int]struct{}) []string {
	out := make([]string, 0, len(nodes))
	for v := range nodes {
		out = append(out, g.IndexToIdentifier[v])
	}
	sort.Strings(out)
	return out
}
