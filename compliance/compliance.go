package compliance

import (
	"sort"
	"strconv"
	"strings"
)

// BuildCountsAndMembers groups node indices by color, returning the size
// of each color class and the (unsorted) members of each class.
func BuildCountsAndMembers(coloring []uint64) (counts map[uint64]int, members map[uint64][]int) {
	counts = make(map[uint64]int)
	members = make(map[uint64][]int)
	for v, c := range coloring {
		counts[c]++
		members[c] = append(members[c], v)
	}
	return counts, members
}

// CheckCompliance reports whether every subject's color class has at
// least k members.
func CheckCompliance(coloring []uint64, counts map[uint64]int, subjects map[int]struct{}, k int) bool {
	for s := range subjects {
		if counts[coloring[s]] < k {
			return false
		}
	}
	return true
}

// Partition returns a canonical, value-independent key for the current
// color partition: nodes are grouped by color, each group sorted
// ascending, and the groups themselves sorted by their smallest member.
// Two colorings induce the same partition of the node set iff their
// Partition keys are equal, regardless of the actual color values used.
func Partition(coloring []uint64) string {
	_, members := BuildCountsAndMembers(coloring)

	groups := make([][]int, 0, len(members))
	for _, group := range members {
		sorted := append([]int(nil), group...)
		sort.Ints(sorted)
		groups = append(groups, sorted)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	var b strings.Builder
	for i, group := range groups {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteByte('[')
		for j, v := range group {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// CloneCounts returns an independent copy of a color-class size map, used
// to isolate a candidate trial from the baseline.
func CloneCounts(counts map[uint64]int) map[uint64]int {
	out := make(map[uint64]int, len(counts))
	for c, n := range counts {
		out[c] = n
	}
	return out
}

// CloneColoring returns an independent copy of a coloring, used to isolate
// a candidate trial from the baseline.
func CloneColoring(coloring []uint64) []uint64 {
	out := make([]uint64, len(coloring))
	copy(out, coloring)
	return out
}
