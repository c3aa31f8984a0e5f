package exclusiverange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// EndPoint is a boundary of a range that combines a value with a BoundType that expresses if the value itself is
// contained in the range or not.
type EndPoint[T constraints.Ordered] struct {
	value     T
	boundType BoundType
}

// NewEndPoint creates a new EndPoint from the given value and BoundType.
func NewEndPoint[T constraints.Ordered](value T, boundType BoundType) EndPoint[T] {
	return EndPoint[T]{
		value:     value,
		boundType: boundType,
	}
}

// EndPointFromBytes unmarshals an EndPoint from a sequence of bytes.
func EndPointFromBytes[T constraints.Ordered](endPointBytes []byte) (endPoint EndPoint[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(endPointBytes)
	if endPoint, err = EndPointFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse EndPoint from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// EndPointFromMarshalUtil unmarshals an EndPoint using a MarshalUtil (for easier unmarshalling).
func EndPointFromMarshalUtil[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (endPoint EndPoint[T], err error) {
	if endPoint.value, err = ValueFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse value from MarshalUtil")

		return
	}
	if endPoint.boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")

		return
	}

	return
}

// Value returns the value of the EndPoint.
func (e EndPoint[T]) Value() T {
	return e.value
}

// BoundType returns the BoundType of the EndPoint.
func (e EndPoint[T]) BoundType() BoundType {
	return e.boundType
}

// Bytes returns a marshaled version of the EndPoint.
func (e EndPoint[T]) Bytes() []byte {
	return marshalutil.New().
		WriteBytes(ValueBytes(e.value)).
		Write(e.boundType).
		Bytes()
}

// String returns a human-readable version of the EndPoint.
func (e EndPoint[T]) String() string {
	return stringify.Struct("EndPoint",
		stringify.NewStructField("value", fmt.Sprintf("%v", e.value)),
		stringify.NewStructField("boundType", e.boundType),
	)
}
