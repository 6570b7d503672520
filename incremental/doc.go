// Package incremental propagates a single node's feature change outward
// through a bounded breadth-first walk, re-running WL's refinement
// formula only where the change can plausibly reach, instead of
// recomputing the whole graph's coloring from scratch.
package incremental
