package exclusiverange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// RangeFromExclusiveToInclusive is a range that contains all values larger than its Start up to and including its
// End. It is bounded on both sides with only the upper bound being part of the range.
type RangeFromExclusiveToInclusive[T constraints.Ordered] struct {
	// Start is the lower bound of the range (exclusive).
	Start T `json:"start"`

	// End is the upper bound of the range (inclusive).
	End T `json:"end"`
}

// NewRangeFromExclusiveToInclusive creates a new RangeFromExclusiveToInclusive from the given bounds. The bounds are
// not validated: if End does not exceed Start, the resulting range contains no values.
func NewRangeFromExclusiveToInclusive[T constraints.Ordered](start T, end T) RangeFromExclusiveToInclusive[T] {
	return RangeFromExclusiveToInclusive[T]{
		Start: start,
		End:   end,
	}
}

// RangeFromExclusiveToInclusiveFromBytes unmarshals a RangeFromExclusiveToInclusive from a sequence of bytes.
func RangeFromExclusiveToInclusiveFromBytes[T constraints.Ordered](rangeBytes []byte) (r RangeFromExclusiveToInclusive[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeBytes)
	if r, err = RangeFromExclusiveToInclusiveFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse RangeFromExclusiveToInclusive from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// RangeFromExclusiveToInclusiveFromMarshalUtil unmarshals a RangeFromExclusiveToInclusive using a MarshalUtil (for
// easier unmarshalling).
func RangeFromExclusiveToInclusiveFromMarshalUtil[T constraints.Ordered](marshalUtil *marshalutil.MarshalUtil) (r RangeFromExclusiveToInclusive[T], err error) {
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
	if upperEndPoint.BoundType() != BoundTypeClosed {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unexpected BoundType (%s) of upper EndPoint", upperEndPoint.BoundType())

		return
	}

	r.Start = lowerEndPoint.Value()
	r.End = upperEndPoint.Value()

	return
}

// Compare returns 0 if the range is identical to the given other range, -1 if it is smaller and 1 if it is larger.
// Ranges are ordered by their Start first and by their End second.
func (r RangeFromExclusiveToInclusive[T]) Compare(other RangeFromExclusiveToInclusive[T]) int {
	if startComparison := lo.Comparator(r.Start, other.Start); startComparison != 0 {
		return startComparison
	}

	return lo.Comparator(r.End, other.End)
}

// Contains returns true if the given value lies within the bounds of the range.
func (r RangeFromExclusiveToInclusive[T]) Contains(value T) bool {
	return value > r.Start && value <= r.End
}

// Empty returns true if the range contains no values, which is the case whenever End does not exceed Start. The
// single value of (a..=a] would be its excluded Start, so equal bounds yield an empty range here as well.
func (r RangeFromExclusiveToInclusive[T]) Empty() bool {
	return r.End <= r.Start
}

// Equal returns true if the range is identical to the given other range.
func (r RangeFromExclusiveToInclusive[T]) Equal(other RangeFromExclusiveToInclusive[T]) bool {
	return r == other
}

// HasLowerBound returns true if the range has a lower EndPoint. It always does.
func (r RangeFromExclusiveToInclusive[T]) HasLowerBound() bool {
	return true
}

// HasUpperBound returns true if the range has an upper EndPoint. It always does.
func (r RangeFromExclusiveToInclusive[T]) HasUpperBound() bool {
	return true
}

// LowerBoundType returns the type of the lower bound of the range, which is always BoundTypeOpen.
func (r RangeFromExclusiveToInclusive[T]) LowerBoundType() BoundType {
	return BoundTypeOpen
}

// LowerEndPoint returns the lower EndPoint of the range.
func (r RangeFromExclusiveToInclusive[T]) LowerEndPoint() EndPoint[T] {
	return NewEndPoint(r.Start, BoundTypeOpen)
}

// UpperBoundType returns the type of the upper bound of the range, which is always BoundTypeClosed.
func (r RangeFromExclusiveToInclusive[T]) UpperBoundType() BoundType {
	return BoundTypeClosed
}

// UpperEndPoint returns the upper EndPoint of the range.
func (r RangeFromExclusiveToInclusive[T]) UpperEndPoint() EndPoint[T] {
	return NewEndPoint(r.End, BoundTypeClosed)
}

// Bytes returns a marshaled version of the range.
func (r RangeFromExclusiveToInclusive[T]) Bytes() []byte {
	return marshalutil.New().
		Write(r.LowerEndPoint()).
		Write(r.UpperEndPoint()).
		Bytes()
}

// String returns a human-readable version of the range.
func (r RangeFromExclusiveToInclusive[T]) String() string {
	return fmt.Sprintf("(%v..=%v)", r.Start, r.End)
}

// code contract (make sure the type implements all required methods).
var (
	_ RangeBounds[int]                                           = RangeFromExclusiveToInclusive[int]{}
	_ constraints.Comparable[RangeFromExclusiveToInclusive[int]] = RangeFromExclusiveToInclusive[int]{}
	_ constraints.Equalable[RangeFromExclusiveToInclusive[int]]  = RangeFromExclusiveToInclusive[int]{}
)
