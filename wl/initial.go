package wl

import (
	"github.com/katalvlaran/kwl/graphmodel"
	"github.com/katalvlaran/kwl/khash"
)

// Initial computes the 0th-round coloring: each node's color is the hash
// of its own feature buffer, independent of the graph's topology.
func Initial(records []*graphmodel.Record) []uint64 {
	coloring := make([]uint64, len(records))
	for i, rec := range records {
		coloring[i] = khash.Sum64(rec.F)
	}
	return coloring
}
