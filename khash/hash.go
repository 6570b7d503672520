package khash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum64 hashes an arbitrary byte buffer.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64Uint64 hashes a single packed word, used to rehash a node's own
// color in the empty-adjacency WL case.
func Sum64Uint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}
