// Package exclusiverange provides value types for ranges that exclude their own lower bound (i.e. "everything above
// 3").
//
// It is not possible to iterate over the contained values. Each range has a lower EndPoint value that is never
// considered part of the range itself. The upper side may be bounded or unbounded. If bounded, there is an associated
// upper EndPoint value, and the range is considered to be either open (does not include the EndPoint value) or closed
// (includes the EndPoint value) on that side. This yields three basic types of ranges, enumerated below.
//
// Notation   Definition          Type
// (a..)      {x | x > a}         RangeFromExclusive
// (a..b)     {x | a < x < b}     RangeFromExclusiveToExclusive
// (a..=b)    {x | a < x <= b}    RangeFromExclusiveToInclusive
//
// The fields of a range are public and are not validated on construction: a range whose End does not exceed its Start
// is a valid value that simply contains nothing.
package exclusiverange

import (
	"github.com/iotaledger/hive.go/constraints"
)

// RangeBounds is implemented by all range types of this package. It provides a uniform way to inspect the EndPoints
// of the different range shapes without knowing their concrete type.
type RangeBounds[T constraints.Ordered] interface {
	// Contains returns true if the given value lies within the bounds of the range.
	Contains(value T) bool

	// HasLowerBound returns true if the range has a lower EndPoint.
	HasLowerBound() bool

	// HasUpperBound returns true if the range has an upper EndPoint.
	HasUpperBound() bool

	// LowerBoundType returns the type of the lower bound of the range.
	LowerBoundType() BoundType

	// LowerEndPoint returns the lower EndPoint of the range.
	LowerEndPoint() EndPoint[T]

	// UpperBoundType returns the type of the upper bound of the range. It panics if the range has no upper bound.
	UpperBoundType() BoundType

	// UpperEndPoint returns the upper EndPoint of the range. It panics if the range has no upper bound.
	UpperEndPoint() EndPoint[T]

	// Bytes returns a marshaled version of the range.
	Bytes() []byte

	// String returns a human-readable version of the range.
	String() string
}
