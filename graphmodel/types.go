package graphmodel

// Direction tags an edge triple as incoming to or outgoing from the node
// whose adjacency list it lives in.
type Direction uint8

const (
	// DirIncoming marks a reverse-image edge (an edge that points at this node).
	DirIncoming Direction = 0
	// DirOutgoing marks a forward edge (an edge this node points out along).
	DirOutgoing Direction = 1
)

// EdgeTriple is one entry in a node's adjacency: the edge's direction
// relative to the owning node, the relation's stable rank, and the
// neighbor's node index.
type EdgeTriple struct {
	Direction Direction
	Relation  uint64 // relation rank, 1-based
	Neighbor  int    // node index
}

// RawNode is the raw, textual per-node feature input: a set of concept
// labels and a list of "relname:out,in" degree descriptors already sorted
// lexicographically by relation name.
type RawNode struct {
	Concepts  []string
	Relations []string
}

// Graph is the frozen topology a WL run operates over. Adjacency, the
// subject set, and the concept/relation rank maps never change after New
// returns.
type Graph struct {
	N                 int
	Adj               [][]EdgeTriple
	Subjects          map[int]struct{}
	ConceptID         map[string]uint64
	RelationRank      map[string]uint64
	IndexToIdentifier []string
}

// RelDegree is one per-relation degree entry in a feature record: the
// relation's rank and its observed out/in degree at the owning node.
type RelDegree struct {
	RelationRank uint64
	Out          uint64
	In           uint64
}

// Record is the mutable per-node feature record. T is the only field
// mutated after construction (during candidate verification); C and R are
// fixed once New builds them. F is the canonical byte buffer Encode
// produces from (T, C, R) and must never be read stale — every setter
// here rebuilds it before returning.
type Record struct {
	T uint8 // 0 = blank, 1 = constant
	C []uint64
	R []RelDegree
	F []byte
}

// SetType flips the record's type code and immediately rebuilds F, keeping
// the cached buffer consistent with (T, C, R).
func (rec *Record) SetType(t uint8) {
	rec.T = t
	rec.rebuild()
}

func (rec *Record) rebuild() {
	rec.F = Encode(rec)
}
