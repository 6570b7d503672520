package graphmodel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// New builds a frozen Graph and its per-node feature records from raw
// textual input. Concept IDs and relation ranks are assigned by
// lexicographic order over the union of all nodes' concept labels and
// relation names, starting at 1 (0 is reserved as an absent-relation
// sentinel in degree triples, matching the original preprocessing's
// 1-based rank assignment). Every record starts blank (T=0).
func New(n int, adj [][]EdgeTriple, raw []RawNode, indexToIdentifier []string, subjects []int) (*Graph, []*Record, error) {
	if n < 0 || len(adj) != n || len(raw) != n || len(indexToIdentifier) != n {
		return nil, nil, fmt.Errorf("%w: n=%d adj=%d raw=%d ids=%d", ErrDimensionMismatch, n, len(adj), len(raw), len(indexToIdentifier))
	}

	conceptSet := make(map[string]struct{})
	relNameSet := make(map[string]struct{})
	for i := 0; i < n; i++ {
		for _, c := range raw[i].Concepts {
			conceptSet[c] = struct{}{}
		}
		for _, entry := range raw[i].Relations {
			name, _, _, err := parseRelationEntry(entry)
			if err != nil {
				return nil, nil, err
			}
			relNameSet[name] = struct{}{}
		}
	}
	conceptID := assignRanks(conceptSet)
	relRank := assignRanks(relNameSet)

	records := make([]*Record, n)
	for i := 0; i < n; i++ {
		rec := &Record{T: 0}

		cids := make([]uint64, 0, len(raw[i].Concepts))
		for _, c := range raw[i].Concepts {
			cids = append(cids, conceptID[c])
		}
		sort.Slice(cids, func(a, b int) bool { return cids[a] < cids[b] })
		rec.C = dedupSortedUint64(cids)

		rdegs := make([]RelDegree, 0, len(raw[i].Relations))
		for _, entry := range raw[i].Relations {
			name, out, in, err := parseRelationEntry(entry)
			if err != nil {
				return nil, nil, err
			}
			rdegs = append(rdegs, RelDegree{RelationRank: relRank[name], Out: out, In: in})
		}
		sort.Slice(rdegs, func(a, b int) bool { return rdegs[a].RelationRank < rdegs[b].RelationRank })
		rec.R = rdegs

		rec.rebuild()
		records[i] = rec
	}

	subjSet := make(map[int]struct{}, len(subjects))
	for _, s := range subjects {
		if s < 0 || s >= n {
			return nil, nil, fmt.Errorf("%w: %d", ErrSubjectOutOfRange, s)
		}
		subjSet[s] = struct{}{}
	}

	g := &Graph{
		N:                 n,
		Adj:               adj,
		Subjects:          subjSet,
		ConceptID:         conceptID,
		RelationRank:      relRank,
		IndexToIdentifier: indexToIdentifier,
	}
	return g, records, nil
}

// assignRanks assigns 1-based ranks to the members of set, in lexicographic order.
func assignRanks(set map[string]struct{}) map[string]uint64 {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	ranks := make(map[string]uint64, len(names))
	for i, name := range names {
		ranks[name] = uint64(i + 1)
	}
	return ranks
}

// parseRelationEntry splits a "relname:out,in" descriptor, splitting on the
// last colon so relation IRIs containing colons are tolerated.
func parseRelationEntry(entry string) (name string, out, in uint64, err error) {
	idx := strings.LastIndex(entry, ":")
	if idx < 0 {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrBadRelationEntry, entry)
	}
	name = entry[:idx]
	degs := entry[idx+1:]

	parts := strings.SplitN(degs, ",", 2)
	if len(parts) != 2 {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrBadRelationEntry, entry)
	}
	outVal, errOut := strconv.ParseUint(parts[0], 10, 64)
	inVal, errIn := strconv.ParseUint(parts[1], 10, 64)
	if errOut != nil || errIn != nil {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrBadRelationEntry, entry)
	}
	return name, outVal, inVal, nil
}

func dedupSortedUint64(s []uint64) []uint64 {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
