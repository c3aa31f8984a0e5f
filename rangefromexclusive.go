package exclusiverange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// RangeFromExclusive is a range that contains all values larger than its Start. It is bounded below and unbounded
// above, so it is never empty.
type RangeFromExclusive[T constraints.Ordered] struct {
	// Start is the lower bound of the range (exclusive).
	Start T `json:"start"`
}

// NewRangeFromExclusive creates a new RangeFromExclusive from the given lower bound.
func NewRangeFromExclusive[T constraints.Ordered](start T) RangeFromExclusive[T] {
	return RangeFromExclusive[T]{
		Start: start,
	}
}

// RangeFromExclusiveFromBytes unmarshals a RangeFromExclusive from a sequence of bytes.
func RangeFromExclusiveFromBytes[T constraints.Ordered](rangeBytes []byte) (r RangeFromExclusive[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeBytes)
	if r, err = RangeFromExclusiveFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse RangeFromExclusive from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// RangeFromExclusiveFromMarshalUtil unmarshals a RangeFromExclusive using a MarshalUtil (for easier unmarshalling).
func RangeFromExclusiveFromMarshalUtil[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (r RangeFromExclusive[T], err error) {
	lowerEndPoint, err := EndPointFromMarshalUtil[T](marshalUtil)
	if err != nil {
		err = ierrors.Wrap(err, "failed to parse lower EndPoint from MarshalUtil")

		return
	}
	if lowerEndPoint.BoundType() != BoundTypeOpen {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unexpected BoundType (%s) of lower EndPoint", lowerEndPoint.BoundType())

		return
	}
	r.Start = lowerEndPoint.Value()

	return
}

// Compare returns 0 if the range is identical to the given other range, -1 if its Start is smaller and 1 if its Start
// is larger.
func (r RangeFromExclusive[T]) Compare(other RangeFromExclusive[T]) int {
	return lo.Comparator(r.Start, other.Start)
}

// Contains returns true if the given value lies within the bounds of the range.
func (r RangeFromExclusive[T]) Contains(value T) bool {
	return value > r.Start
}

// Equal returns true if the range is identical to the given other range.
func (r RangeFromExclusive[T]) Equal(other RangeFromExclusive[T]) bool {
	return r == other
}

// HasLowerBound returns true if the range has a lower EndPoint. It always does.
func (r RangeFromExclusive[T]) HasLowerBound() bool {
	return true
}

// HasUpperBound returns true if the range has an upper EndPoint. It never does.
func (r RangeFromExclusive[T]) HasUpperBound() bool {
	return false
}

// LowerBoundType returns the type of the lower bound of the range, which is always BoundTypeOpen.
func (r RangeFromExclusive[T]) LowerBoundType() BoundType {
	return BoundTypeOpen
}

// LowerEndPoint returns the lower EndPoint of the range.
func (r RangeFromExclusive[T]) LowerEndPoint() EndPoint[T] {
	return NewEndPoint(r.Start, BoundTypeOpen)
}

// UpperBoundType always panics since a RangeFromExclusive has no upper bound.
func (r RangeFromExclusive[T]) UpperBoundType() BoundType {
	panic("RangeFromExclusive has no upper bound - check HasUpperBound() before calling this method")
}

// UpperEndPoint always panics since a RangeFromExclusive has no upper EndPoint.
func (r RangeFromExclusive[T]) UpperEndPoint() EndPoint[T] {
	panic("RangeFromExclusive has no upper EndPoint - check HasUpperBound() before calling this method")
}

// Bytes returns a marshaled version of the range.
func (r RangeFromExclusive[T]) Bytes() []byte {
	return r.LowerEndPoint().Bytes()
}

// String returns a human-readable version of the range.
func (r RangeFromExclusive[T]) String() string {
	return fmt.Sprintf("(%v..)", r.Start)
}

// code contract (make sure the type implements all required methods).
var (
	_ RangeBounds[int]                                = RangeFromExclusive[int]{}
	_ constraints.Comparable[RangeFromExclusive[int]] = RangeFromExclusive[int]{}
	_ constraints.Equalable[RangeFromExclusive[int]]  = RangeFromExclusive[int]{}
)
