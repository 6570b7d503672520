package anonymize

import (
	"fmt"

	"github.com/katalvlaran/kwl/graphmodel"
)

// Input is the raw, textual description of one graph to anonymize.
type Input struct {
	N                 int
	Adjacency         [][]graphmodel.EdgeTriple
	Raw               []graphmodel.RawNode
	IndexToIdentifier []string
	Subjects          []int
}

// Option configures a Run via functional arguments. An invalid Option
// (e.g. a non-positive K or a negative worker count) is recorded internally and
// surfaced as its sentinel error when Run applies it.
type Option func(*Options)

// Options holds the k-anonymity target and verification strategy for one
// Run. K has no sane default; it must be set with WithK or Run reports
// ErrInvalidK.
type Options struct {
	K int
	// MaxSeconds bounds the whole run; zero or negative means no limit,
	// matching this codebase's existing "0 means unbounded" convention.
	MaxSeconds  float64
	Incremental bool
	EarlyStop   bool
	Parallel    bool
	// Workers is the parallel worker count. Zero defaults to runtime.NumCPU().
	Workers int

	err error
}

// DefaultOptions returns an Options with sane defaults: no k target set
// (the caller must supply WithK), no deadline, sequential full-mode
// verification, and runtime.NumCPU() workers if Parallel is later enabled.
func DefaultOptions() Options {
	return Options{}
}

// WithK sets the minimum color-class size every subject must reach.
// A non-positive k is recorded as ErrInvalidK.
func WithK(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrInvalidK, k)
			return
		}
		o.K = k
	}
}

// WithMaxSeconds bounds the whole run; non-positive means unbounded.
func WithMaxSeconds(s float64) Option {
	return func(o *Options) { o.MaxSeconds = s }
}

// WithIncremental uses the bounded incremental WL engine for each
// candidate trial instead of a full fixed-point re-refinement.
func WithIncremental() Option {
	return func(o *Options) { o.Incremental = true }
}

// WithEarlyStop caps incremental propagation at the candidate's distance
// from the nearest subject. Requires WithIncremental; Run rejects the
// combination otherwise.
func WithEarlyStop() Option {
	return func(o *Options) { o.EarlyStop = true }
}

// WithParallel dispatches candidate verification across contiguous
// worker batches instead of one candidate at a time.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithWorkers sets the parallel worker count; a negative value is
// recorded as ErrInvalidWorkers. Zero defaults to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
			return
		}
		o.Workers = n
	}
}

// Result is the outcome of one anonymization run.
type Result struct {
	// NothingToDo is true when there were no subjects to protect.
	NothingToDo bool
	// Feasible is false when a subject is already in a color class
	// smaller than k before any blanking is attempted.
	Feasible bool
	// Necessary holds the identifiers of nodes whose blanking is
	// required for k-WL compliance.
	Necessary []string
	// Singletons holds the identifiers of nodes alone in their own color
	// class at the initial fixed point -- irrelevant to protect, since
	// blanking them can never satisfy a k>1 target.
	Singletons []string
	// InfeasibleSubjects holds the identifiers of subjects already
	// short of k when Feasible is false; nil when Feasible is true.
	InfeasibleSubjects []string
	// TimedOut is true if the global deadline elapsed before
	// verification finished; Necessary then reflects a partial result.
	TimedOut bool
}
