package khash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kwl/khash"
)

func TestSum64_Deterministic(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	require.Equal(t, khash.Sum64(data), khash.Sum64(append([]byte(nil), data...)))
}

func TestSum64_DiffersOnInput(t *testing.T) {
	require.NotEqual(t, khash.Sum64([]byte{1}), khash.Sum64([]byte{2}))
}

func TestSum64Uint64_Deterministic(t *testing.T) {
	require.Equal(t, khash.Sum64Uint64(42), khash.Sum64Uint64(42))
	require.NotEqual(t, khash.Sum64Uint64(42), khash.Sum64Uint64(43))
}

func TestSum64Uint64_MatchesByteEncoding(t *testing.T) {
	// Sum64Uint64(v) must equal hashing v's little-endian encoding directly.
	v := uint64(0x0102030405060708)
	buf := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	require.Equal(t, khash.Sum64(buf), khash.Sum64Uint64(v))
}
