package exclusiverange

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRangeFromExclusiveToExclusive_Contains tests if the membership check of RangeFromExclusiveToExclusive works
// correctly.
func TestRangeFromExclusiveToExclusive_Contains(t *testing.T) {
	intRange := NewRangeFromExclusiveToExclusive(1, 4)
	require.False(t, intRange.Contains(0))
	require.False(t, intRange.Contains(1))
	require.True(t, intRange.Contains(2))
	require.True(t, intRange.Contains(3))
	require.False(t, intRange.Contains(4))
	require.False(t, intRange.Contains(5))

	stringRange := NewRangeFromExclusiveToExclusive("apple", "cherry")
	require.False(t, stringRange.Contains("apple"))
	require.True(t, stringRange.Contains("banana"))
	require.False(t, stringRange.Contains("cherry"))
}

// TestRangeFromExclusiveToExclusive_ContainsNothing tests if ranges without any contained values behave like empty
// sets instead of failing.
func TestRangeFromExclusiveToExclusive_ContainsNothing(t *testing.T) {
	invertedRange := NewRangeFromExclusiveToExclusive(4, 1)
	for value := 0; value <= 5; value++ {
		require.False(t, invertedRange.Contains(value))
	}

	degenerateRange := NewRangeFromExclusiveToExclusive(1, 1)
	require.False(t, degenerateRange.Contains(1))

	gapRange := NewRangeFromExclusiveToExclusive(1, 2)
	require.False(t, gapRange.Contains(1))
	require.False(t, gapRange.Contains(2))
}

// TestRangeFromExclusiveToExclusive_Empty tests if the emptiness check of RangeFromExclusiveToExclusive works
// correctly.
func TestRangeFromExclusiveToExclusive_Empty(t *testing.T) {
	require.False(t, NewRangeFromExclusiveToExclusive(1, 4).Empty())
	require.True(t, NewRangeFromExclusiveToExclusive(1, 1).Empty())
	require.True(t, NewRangeFromExclusiveToExclusive(4, 1).Empty())
}

// TestRangeFromExclusiveToExclusive_Compare tests if ranges are ordered by their Start first and their End second.
func TestRangeFromExclusiveToExclusive_Compare(t *testing.T) {
	require.Equal(t, 0, NewRangeFromExclusiveToExclusive(1, 4).Compare(NewRangeFromExclusiveToExclusive(1, 4)))
	require.Equal(t, -1, NewRangeFromExclusiveToExclusive(1, 4).Compare(NewRangeFromExclusiveToExclusive(1, 5)))
	require.Equal(t, 1, NewRangeFromExclusiveToExclusive(2, 0).Compare(NewRangeFromExclusiveToExclusive(1, 9)))
}

// TestRangeFromExclusiveToExclusive_Equal tests if the structural equality of RangeFromExclusiveToExclusive works
// correctly.
func TestRangeFromExclusiveToExclusive_Equal(t *testing.T) {
	require.True(t, NewRangeFromExclusiveToExclusive(1, 4).Equal(NewRangeFromExclusiveToExclusive(1, 4)))
	require.False(t, NewRangeFromExclusiveToExclusive(1, 4).Equal(NewRangeFromExclusiveToExclusive(1, 5)))
	require.False(t, NewRangeFromExclusiveToExclusive(1, 4).Equal(NewRangeFromExclusiveToExclusive(2, 4)))
	require.True(t, NewRangeFromExclusiveToExclusive(1, 4) == NewRangeFromExclusiveToExclusive(1, 4))
}

// TestRangeFromExclusiveToExclusive_EndPoints tests if the EndPoint accessors of RangeFromExclusiveToExclusive work
// correctly.
func TestRangeFromExclusiveToExclusive_EndPoints(t *testing.T) {
	boundedRange := NewRangeFromExclusiveToExclusive(1, 4)
	require.True(t, boundedRange.HasLowerBound())
	require.True(t, boundedRange.HasUpperBound())
	require.Equal(t, BoundTypeOpen, boundedRange.LowerBoundType())
	require.Equal(t, BoundTypeOpen, boundedRange.UpperBoundType())
	require.Equal(t, NewEndPoint(1, BoundTypeOpen), boundedRange.LowerEndPoint())
	require.Equal(t, NewEndPoint(4, BoundTypeOpen), boundedRange.UpperEndPoint())
}

// TestRangeFromExclusiveToExclusive_MarshalUnmarshal tests if marshaling and unmarshalling of
// RangeFromExclusiveToExclusive works correctly.
func TestRangeFromExclusiveToExclusive_MarshalUnmarshal(t *testing.T) {
	boundedRange := NewRangeFromExclusiveToExclusive(1, 4)
	marshaledRange := boundedRange.Bytes()
	unmarshaledRange, consumedBytes, err := RangeFromExclusiveToExclusiveFromBytes[int](marshaledRange)
	require.NoError(t, err)
	require.Equal(t, len(marshaledRange), consumedBytes)
	require.Equal(t, boundedRange, unmarshaledRange)

	_, _, err = RangeFromExclusiveToExclusiveFromBytes[int](NewRangeFromExclusiveToInclusive(1, 4).Bytes())
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

// TestRangeFromExclusiveToExclusive_String tests if the human-readable version of RangeFromExclusiveToExclusive looks
// as expected.
func TestRangeFromExclusiveToExclusive_String(t *testing.T) {
	require.Equal(t, "(1..4)", NewRangeFromExclusiveToExclusive(1, 4).String())
	require.Equal(t, "(4..1)", NewRangeFromExclusiveToExclusive(4, 1).String())
}

// TestRangeFromExclusiveToExclusive_JSON tests if RangeFromExclusiveToExclusive marshals to the expected JSON
// document and back.
func TestRangeFromExclusiveToExclusive_JSON(t *testing.T) {
	boundedRange := NewRangeFromExclusiveToExclusive(1, 4)
	marshaledRange, err := json.Marshal(boundedRange)
	require.NoError(t, err)
	require.JSONEq(t, `{"start":1,"end":4}`, string(marshaledRange))

	var unmarshaledRange RangeFromExclusiveToExclusive[int]
	require.NoError(t, json.Unmarshal(marshaledRange, &unmarshaledRange))
	require.Equal(t, boundedRange, unmarshaledRange)
}
