package fract

import "golang.org/x/image/math/fixed"

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One Unit = 64 // fract.One.ToInt() == 1
	MaxInt int = +33554431
	MinInt int = -33554432
	MaxFloat64 float64 = +33554431.984375
	MinFloat64 float64 = -33554432
)

// Fixed point type used for text widths and pen positions.
//
// 26 bits represent the integer part of the value, while the remaining 6
// bits represent the decimal part. So, var width Unit = 64 means 1 pixel,
// and 96 would be 1.5 pixels.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
type Unit int32

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined. If you
// want to account for overflows, check [MinInt] <= value <= [MaxInt].
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a [fixed.Int26_6] to a [Unit]. No precision is lost.
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Converts a float64 to the closest Unit, rounding up in case
// of ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64Up(value float64) Unit {
	unitApprox := Unit(value*64)
	fp64Approx := unitApprox.ToFloat64()
	if fp64Approx == value { return unitApprox }
	if fp64Approx > value {
		unitApprox -= 1
		fp64Approx = unitApprox.ToFloat64()
	}

	if value - fp64Approx >= 1./128.0 { unitApprox += 1 }
	return unitApprox
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

// Converts the unit back to the golang.org/x/image representation.
func (self Unit) ToFixed() fixed.Int26_6 {
	return fixed.Int26_6(self)
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

// Splits the unit in n parts, truncating toward zero like
// integer division. Used for column widths. Panics if n <= 0.
func (self Unit) Div(n int) Unit {
	if n <= 0 { panic("fract.Unit.Div() requires n > 0") }
	return self / Unit(n)
}
