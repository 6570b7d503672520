package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kwl/graphmodel"
)

func TestEncode_DeterministicForEqualRecords(t *testing.T) {
	rec1 := &graphmodel.Record{T: 0, C: []uint64{1, 3}, R: []graphmodel.RelDegree{{RelationRank: 2, Out: 1, In: 0}}}
	rec2 := &graphmodel.Record{T: 0, C: []uint64{1, 3}, R: []graphmodel.RelDegree{{RelationRank: 2, Out: 1, In: 0}}}
	require.Equal(t, graphmodel.Encode(rec1), graphmodel.Encode(rec2))
}

func TestEncode_DiffersOnType(t *testing.T) {
	rec1 := &graphmodel.Record{T: 0, C: []uint64{1}, R: nil}
	rec2 := &graphmodel.Record{T: 1, C: []uint64{1}, R: nil}
	require.NotEqual(t, graphmodel.Encode(rec1), graphmodel.Encode(rec2))
}

func TestEncode_Length(t *testing.T) {
	rec := &graphmodel.Record{
		T: 0,
		C: []uint64{1, 2, 3},
		R: []graphmodel.RelDegree{{RelationRank: 1, Out: 1, In: 2}, {RelationRank: 2, Out: 0, In: 1}},
	}
	buf := graphmodel.Encode(rec)
	require.Len(t, buf, 8*(3+3+3*2))
}

func TestEncode_EmptyRecord(t *testing.T) {
	rec := &graphmodel.Record{}
	buf := graphmodel.Encode(rec)
	require.Len(t, buf, 24)
}
