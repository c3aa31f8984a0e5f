package exclusiverange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// RangeFromExclusiveToExclusive is a range that contains all values larger than its Start and smaller than its End.
// It is bounded on both sides with neither bound being part of the range.
type RangeFromExclusiveToExclusive[T constraints.Ordered] struct {
	// Start is the lower bound of the range (exclusive).
	Start T `json:"start"`

	// End is the upper bound of the range (exclusive).
	End T `json:"end"`
}

// NewRangeFromExclusiveToExclusive creates a new RangeFromExclusiveToExclusive from the given bounds. The bounds are
// not validated: if End does not exceed Start, the resulting range contains no values.
func NewRangeFromExclusiveToExclusive[T constraints.Ordered](start T, end T) RangeFromExclusiveToExclusive[T] {
	return RangeFromExclusiveToExclusive[T]{
		Start: start,
		End:   end,
	}
}

// RangeFromExclusiveToExclusiveFromBytes unmarshals a RangeFromExclusiveToExclusive from a sequence of bytes.
func RangeFromExclusiveToExclusiveFromBytes[T constraints.Ordered](rangeBytes []byte) (r RangeFromExclusiveToExclusive[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeBytes)
	if r, err = RangeFromExclusiveToExclusiveFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse RangeFromExclusiveToExclusive from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// RangeFromExclusiveToExclusiveFromMarshalUtil unmarshals a RangeFromExclusiveToExclusive using a MarshalUtil (for
// easier unmarshalling).
func RangeFromExclusiveToExclusiveFromMarshalUtil[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (r RangeFromExclusiveToExclusive[T], err error) {
	lowerEndPoint, err := EndPointFromMarshalUtil[T](marshalUtil)
	if err != nil {
		err = ierrors.Wrap(err, "failed to parse lower EndPoint from MarshalUtil")

		return
	}
	if lowerEndPoint.BoundType() != BoundTypeOpen {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unexpected BoundType (%s) of lower EndPoint", lowerEndPoint.BoundType())

		return
	}

	upperEndPoint, err := EndPointFromMarshalUtil[T](marshalUtil)
	if err != nil {
		err = ierrors.Wrap(err, "failed to parse upper EndPoint from MarshalUtil")

		return
	}
	if upperEndPoint.BoundType() != BoundTypeOpen {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unexpected BoundType (%s) of upper EndPoint", upperEndPoint.BoundType())

		return
	}

	r.Start = lowerEndPoint.Value()
	r.End = upperEndPoint.Value()

	return
}

// Compare returns 0 if the range is identical to the given other range, -1 if it is smaller and 1 if it is larger.
// Ranges are ordered by their Start first and by their End second.
func (r RangeFromExclusiveToExclusive[T]) Compare(other RangeFromExclusiveToExclusive[T]) int {
	if startComparison := lo.Comparator(r.Start, other.Start); startComparison != 0 {
		return startComparison
	}

	return lo.Comparator(r.End, other.End)
}

// Contains returns true if the given value lies within the bounds of the range.
func (r RangeFromExclusiveToExclusive[T]) Contains(value T) bool {
	return value > r.Start && value < r.End
}

// Empty returns true if the range contains no values, which is the case whenever End does not exceed Start. Discrete
// ranges like (3..4) over the integers hold no values either, but are not considered empty.
func (r RangeFromExclusiveToExclusive[T]) Empty() bool {
	return r.End <= r.Start
}

// Equal returns true if the range is identical to the given other range.
func (r RangeFromExclusiveToExclusive[T]) Equal(other RangeFromExclusiveToExclusive[T]) bool {
	return r == other
}

// HasLowerBound returns true if the range has a lower EndPoint. It always does.
func (r RangeFromExclusiveToExclusive[T]) HasLowerBound() bool {
	return true
}

// HasUpperBound returns true if the range has an upper EndPoint. It always does.
func (r RangeFromExclusiveToExclusive[T]) HasUpperBound() bool {
	return true
}

// LowerBoundType returns the type of the lower bound of the range, which is always BoundTypeOpen.
func (r RangeFromExclusiveToExclusive[T]) LowerBoundType() BoundType {
	return BoundTypeOpen
}

// LowerEndPoint returns the lower EndPoint of the range.
func (r RangeFromExclusiveToExclusive[T]) LowerEndPoint() EndPoint[T] {
	return NewEndPoint(r.Start, BoundTypeOpen)
}

// UpperBoundType returns the type of the upper bound of the range, which is always BoundTypeOpen.
func (r RangeFromExclusiveToExclusive[T]) UpperBoundType() BoundType {
	return BoundTypeOpen
}

// UpperEndPoint returns the upper EndPoint of the range.
func (r RangeFromExclusiveToExclusive[T]) UpperEndPoint() EndPoint[T] {
	return NewEndPoint(r.End, BoundTypeOpen)
}

// Bytes returns a marshaled version of the range.
func (r RangeFromExclusiveToExclusive[T]) Bytes() []byte {
	return marshalutil.New().
		Write(r.LowerEndPoint()).
		Write(r.UpperEndPoint()).
		Bytes()
}

// String returns a human-readable version of the range.
func (r RangeFromExclusiveToExclusive[T]) String() string {
	return fmt.Sprintf("(%v..%v)", r.Start, r.End)
}

// code contract (make sure the type implements all required methods).
var (
	_ RangeBounds[int]                                           = RangeFromExclusiveToExclusive[int]{}
	_ constraints.Comparable[RangeFromExclusiveToExclusive[int]] = RangeFromExclusiveToExclusive[int]{}
	_ constraints.Equalable[RangeFromExclusiveToExclusive[int]]  = RangeFromExclusiveToExclusive[int]{}
)
