package graphmodel

import "encoding/binary"

// Encode produces the canonical little-endian buffer for a feature record:
//
//	[ t         : u64 LE ]
//	[ |c|       : u64 LE ]
//	[ |r|       : u64 LE ]
//	[ c[0..|c|] : u64 LE each ]
//	[ r[0..|r|] : (rel_rank u64, out u64, in u64) LE triples ]
//
// Equal (t, c, r) always produces an equal buffer: this is a binding format
// contract, not an implementation detail.
func Encode(rec *Record) []byte {
	size := 8 * (3 + len(rec.C) + 3*len(rec.R))
	buf := make([]byte, size)

	off := 0
	binary.LittleEndian.PutUint64(buf[off:], uint64(rec.T))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], uint64(len(rec.C)))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], uint64(len(rec.R)))
	off += 8

	for _, c := range rec.C {
		binary.LittleEndian.PutUint64(buf[off:], c)
		off += 8
	}
	for _, r := range rec.R {
		binary.LittleEndian.PutUint64(buf[off:], r.RelationRank)
		off += 8
		binary.LittleEndian.PutUint64(buf[off:], r.Out)
		off += 8
		binary.LittleEndian.PutUint64(buf[off:], r.In)
		off += 8
	}

	return buf
}
