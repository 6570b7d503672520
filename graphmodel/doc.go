// Package graphmodel defines the frozen, dense-index graph representation
// that the WL coloring pipeline operates over, and the mutable per-node
// feature record that feeds the canonical encoder.
//
// A Graph's topology (node count, adjacency, subject set) and its concept
// and relation rank maps are fixed once New returns; only a Record's type
// code changes afterward, during candidate verification, and every such
// mutation rebuilds the record's cached feature buffer immediately.
//
// Errors:
//
//	ErrDimensionMismatch - adjacency, raw features, or identifiers disagree on node count.
//	ErrSubjectOutOfRange - a subject index falls outside [0, n).
//	ErrBadRelationEntry  - a "relname:out,in" descriptor fails to parse.
package graphmodel

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrDimensionMismatch indicates adjacency, raw features, or identifiers
	// disagree on node count with n.
	ErrDimensionMismatch = errors.New("graphmodel: dimension mismatch")

	// ErrSubjectOutOfRange indicates a subject index outside [0, n).
	ErrSubjectOutOfRange = errors.New("graphmodel: subject index out of range")

	// ErrBadRelationEntry indicates a malformed "relname:out,in" descriptor.
	ErrBadRelationEntry = errors.New("graphmodel: malformed relation entry")
)
