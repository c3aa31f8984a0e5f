package exclusiverange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// epoch is a named element type that is used to test if values of user-defined types marshal like their underlying
// kind.
type epoch uint16

// TestValueMarshalUnmarshal tests if values of the supported element kinds survive a marshal - unmarshal round trip.
func TestValueMarshalUnmarshal(t *testing.T) {
	unmarshaledInt, consumedBytes, err := ValueFromBytes[int](ValueBytes(-1337))
	require.NoError(t, err)
	require.Equal(t, 8, consumedBytes)
	require.Equal(t, -1337, unmarshaledInt)

	unmarshaledFloat, consumedBytes, err := ValueFromBytes[float64](ValueBytes(3.25))
	require.NoError(t, err)
	require.Equal(t, 8, consumedBytes)
	require.Equal(t, 3.25, unmarshaledFloat)

	unmarshaledFloat32, consumedBytes, err := ValueFromBytes[float32](ValueBytes(float32(1.5)))
	require.NoError(t, err)
	require.Equal(t, 4, consumedBytes)
	require.Equal(t, float32(1.5), unmarshaledFloat32)

	unmarshaledString, consumedBytes, err := ValueFromBytes[string](ValueBytes("hello"))
	require.NoError(t, err)
	require.Equal(t, 9, consumedBytes)
	require.Equal(t, "hello", unmarshaledString)

	unmarshaledRawString, consumedBytes, err := ValueFromBytes[string](ValueBytes("\xff\x00\xfe"))
	require.NoError(t, err)
	require.Equal(t, 7, consumedBytes)
	require.Equal(t, "\xff\x00\xfe", unmarshaledRawString)

	unmarshaledEpoch, consumedBytes, err := ValueFromBytes[epoch](ValueBytes(epoch(42)))
	require.NoError(t, err)
	require.Equal(t, 2, consumedBytes)
	require.Equal(t, epoch(42), unmarshaledEpoch)
}

// TestValueFromBytesTooShort tests if unmarshalling a value from a truncated sequence of bytes fails with the correct
// error.
func TestValueFromBytesTooShort(t *testing.T) {
	_, consumedBytes, err := ValueFromBytes[uint64]([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrParseBytesFailed)
	require.Equal(t, 0, consumedBytes)

	_, _, err = ValueFromBytes[string]([]byte{10, 0, 0, 0, 'a', 'b'})
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

// TestValueFromBytesOversizedLength tests if a string length prefix beyond the supported maximum is rejected as a
// parse error on every platform.
func TestValueFromBytesOversizedLength(t *testing.T) {
	_, consumedBytes, err := ValueFromBytes[string]([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	require.ErrorIs(t, err, ErrParseBytesFailed)
	require.Equal(t, 0, consumedBytes)
}
