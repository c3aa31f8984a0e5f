package exclusiverange

import (
	"math"
	"reflect"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// ValueBytes returns a marshaled version of the given value. Fixed size values are written in little endian byte
// order, ints and uints are widened to 64 bit and strings are prefixed with their length (uint32).
func ValueBytes[T constraints.Ordered](value T) []byte {
	marshalUtil := marshalutil.New()
	writeValue(marshalUtil, value)

	return marshalUtil.Bytes()
}

// ValueFromBytes unmarshals a value from a sequence of bytes.
func ValueFromBytes[T constraints.Ordered](valueBytes []byte) (value T, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(valueBytes)
	if value, err = ValueFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse value from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ValueFromMarshalUtil unmarshals a value using a MarshalUtil (for easier unmarshalling).
func ValueFromMarshalUtil[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (value T, err error) {
	untypedValue := reflect.ValueOf(&value).Elem()

	switch untypedValue.Kind() {
	case reflect.Int8:
		readValue, readErr := marshalUtil.ReadInt8()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read int8: %w", readErr)

			return
		}
		untypedValue.SetInt(int64(readValue))
	case reflect.Int16:
		readValue, readErr := marshalUtil.ReadInt16()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read int16: %w", readErr)

			return
		}
		untypedValue.SetInt(int64(readValue))
	case reflect.Int32:
		readValue, readErr := marshalUtil.ReadInt32()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read int32: %w", readErr)

			return
		}
		untypedValue.SetInt(int64(readValue))
	case reflect.Int, reflect.Int64:
		readValue, readErr := marshalUtil.ReadInt64()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read int64: %w", readErr)

			return
		}
		untypedValue.SetInt(readValue)
	case reflect.Uint8:
		readValue, readErr := marshalUtil.ReadUint8()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read uint8: %w", readErr)

			return
		}
		untypedValue.SetUint(uint64(readValue))
	case reflect.Uint16:
		readValue, readErr := marshalUtil.ReadUint16()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read uint16: %w", readErr)

			return
		}
		untypedValue.SetUint(uint64(readValue))
	case reflect.Uint32:
		readValue, readErr := marshalUtil.ReadUint32()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read uint32: %w", readErr)

			return
		}
		untypedValue.SetUint(uint64(readValue))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		readValue, readErr := marshalUtil.ReadUint64()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read uint64: %w", readErr)

			return
		}
		untypedValue.SetUint(readValue)
	case reflect.Float32:
		readValue, readErr := marshalUtil.ReadUint32()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read float32: %w", readErr)

			return
		}
		untypedValue.SetFloat(float64(math.Float32frombits(readValue)))
	case reflect.Float64:
		readValue, readErr := marshalUtil.ReadFloat64()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read float64: %w", readErr)

			return
		}
		untypedValue.SetFloat(readValue)
	case reflect.String:
		stringLength, readErr := marshalUtil.ReadUint32()
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read string length: %w", readErr)

			return
		}
		// lengths beyond MaxInt32 would turn negative on 32 bit platforms and change the meaning of ReadBytes
		if stringLength > math.MaxInt32 {
			err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported string length (%d)", stringLength)

			return
		}
		stringBytes, readErr := marshalUtil.ReadBytes(int(stringLength))
		if readErr != nil {
			err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read string: %w", readErr)

			return
		}
		untypedValue.SetString(string(stringBytes))
	default:
		panic("unsupported value kind: " + untypedValue.Kind().String())
	}

	return
}

// writeValue writes the given value to the MarshalUtil using the same layout that ValueFromMarshalUtil reads.
func writeValue[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil, value T) {
	switch untypedValue := reflect.ValueOf(value); untypedValue.Kind() {
	case reflect.Int8:
		marshalUtil.WriteInt8(int8(untypedValue.Int()))
	case reflect.Int16:
		marshalUtil.WriteInt16(int16(untypedValue.Int()))
	case reflect.Int32:
		marshalUtil.WriteInt32(int32(untypedValue.Int()))
	case reflect.Int, reflect.Int64:
		marshalUtil.WriteInt64(untypedValue.Int())
	case reflect.Uint8:
		marshalUtil.WriteUint8(uint8(untypedValue.Uint()))
	case reflect.Uint16:
		marshalUtil.WriteUint16(uint16(untypedValue.Uint()))
	case reflect.Uint32:
		marshalUtil.WriteUint32(uint32(untypedValue.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		marshalUtil.WriteUint64(untypedValue.Uint())
	case reflect.Float32:
		// the MarshalUtil only offers accessors for float64, so float32 values are stored as their IEEE 754 bits
		marshalUtil.WriteUint32(math.Float32bits(float32(untypedValue.Float())))
	case reflect.Float64:
		marshalUtil.WriteFloat64(untypedValue.Float())
	case reflect.String:
		marshalUtil.WriteUint32(uint32(untypedValue.Len()))
		marshalUtil.WriteBytes([]byte(untypedValue.String()))
	default:
		panic("unsupported value kind: " + untypedValue.Kind().String())
	}
}
