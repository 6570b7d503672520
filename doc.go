// Package kwl implements Weisfeiler-Lehman k-anonymity blanking for
// directed labeled multigraphs.
//
// Given a graph, a set of subject nodes to protect, and a target k, the
// pipeline refines an initial per-node coloring to a fixed point and
// checks whether every subject's color class already has at least k
// members. If one does not, the run reports it as infeasible. Otherwise
// it verifies which nodes must stay blank: a candidate is necessary when
// turning it into a constant would drop some subject's class below k.
//
// The pipeline is organized under:
//
//	graphmodel/  — frozen dense-index graph and mutable per-node feature records
//	khash/       — the 64-bit color hash
//	compliance/  — color-class bookkeeping and the canonical partition key
//	distance/    — multi-source BFS ranking for candidate nodes
//	wl/          — color refinement to a fixed point
//	incremental/ — bounded recoloring after a single node's feature changes
//	backend/     — the WL engine seam
//	verify/      — per-candidate trial blanking, sequential or parallel
//	anonymize/   — the end-to-end driver tying the above together
package kwl
