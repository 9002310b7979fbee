package fix

import (
	"math"
	"strconv"
)

// Fixed is a 16.16 fixed-point number: a signed 32-bit integer
// interpreted as value / 65536.
//
// Range: approximately -32768 to +32768 with 1/65536 precision.
// Faulting operations saturate to MaxFixed or MinFixed.
type Fixed int32

// Fixed-point constants.
const (
	// Shift is the number of fractional bits.
	Shift = 16

	// One is 1.0 in Fixed representation (2^16 = 65536).
	One Fixed = 1 << Shift

	// Half is 0.5 in Fixed representation.
	Half Fixed = 1 << (Shift - 1)

	// Mask selects the fractional bits.
	Mask Fixed = One - 1

	// Scale is One as a float64, the conversion factor to and from floats.
	Scale = 65536.0

	// MaxFixed is the positive saturation sentinel.
	MaxFixed Fixed = 0x7FFFFFFF

	// MinFixed is the negative saturation sentinel. It is -0x7FFFFFFF,
	// not the most negative int32.
	MinFixed Fixed = -0x7FFFFFFF

	// maxFloat bounds the float inputs accepted by FromFloat.
	maxFloat = 32767.0
)

// FromInt converts an integer to Fixed by shifting it left 16 bits.
// No range check is made; n must lie in [-32768, 32767].
func FromInt(n int) Fixed {
	//nolint:gosec // Unchecked by contract
	return Fixed(int32(n) << Shift)
}

// FromFloat converts a float64 to the nearest Fixed, rounding half away
// from zero.
//
// Values above 32767.0 return MaxFixed and ErrRange; values below -32767.0
// return MinFixed and ErrRange. NaN returns 0 and ErrDomain.
func FromFloat(x float64) (Fixed, error) {
	if math.IsNaN(x) {
		return 0, ErrDomain
	}
	if x > maxFloat {
		return MaxFixed, ErrRange
	}
	if x < -maxFloat {
		return MinFixed, ErrRange
	}
	if x < 0 {
		return Fixed(int32(x*Scale - 0.5)), nil
	}
	return Fixed(int32(x*Scale + 0.5)), nil
}

// ToInt converts f to an int, rounding to nearest with a fractional part
// of exactly 0.5 rounding up (toward positive infinity).
func ToInt(f Fixed) int {
	return int(f>>Shift) + int((f&Half)>>(Shift-1))
}

// ToFloat converts f to float64. The conversion is exact.
func ToFloat(f Fixed) float64 {
	return float64(f) / Scale
}

// Add returns a + b.
//
// Overflow is detected from the operand and result signs: two negative
// operands giving a non-negative sum return MinFixed, two positive operands
// giving a negative sum return MaxFixed, both with ErrRange.
func Add(a, b Fixed) (Fixed, error) {
	r := a + b
	if r >= 0 {
		if a < 0 && b < 0 {
			return MinFixed, ErrRange
		}
		return r, nil
	}
	if a > 0 && b > 0 {
		return MaxFixed, ErrRange
	}
	return r, nil
}

// Sub returns a - b, saturating with ErrRange on overflow like Add.
func Sub(a, b Fixed) (Fixed, error) {
	r := a - b
	if r >= 0 {
		if a < 0 && b > 0 {
			return MinFixed, ErrRange
		}
		return r, nil
	}
	if a > 0 && b < 0 {
		return MaxFixed, ErrRange
	}
	return r, nil
}

// Floor returns the largest integer not greater than f.
func Floor(f Fixed) int {
	return int(f >> Shift)
}

// Ceil returns the smallest integer not less than f.
// When f is above 32767.0 it returns 0x7FFF and ErrRange.
func Ceil(f Fixed) (int, error) {
	x := int64(f) + int64(Mask)
	if x >= 1<<31 {
		return 0x7FFF, ErrRange
	}
	return int(x >> Shift), nil
}

// Int is shorthand for ToInt(f).
func (f Fixed) Int() int { return ToInt(f) }

// Float is shorthand for ToFloat(f).
func (f Fixed) Float() float64 { return ToFloat(f) }

// Floor is shorthand for Floor(f).
func (f Fixed) Floor() int { return Floor(f) }

// Ceil is shorthand for Ceil(f).
func (f Fixed) Ceil() (int, error) { return Ceil(f) }

// Shl shifts the raw value left by n bits without a range check.
func (f Fixed) Shl(n uint) Fixed { return f << n }

// Shr shifts the raw value right (arithmetic) by n bits.
func (f Fixed) Shr(n uint) Fixed { return f >> n }

// Neg returns -f. The sentinels negate into each other.
func (f Fixed) Neg() Fixed { return -f }

// Abs returns |f|.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// IsSaturated reports whether f equals one of the saturation sentinels.
func (f Fixed) IsSaturated() bool {
	return f == MaxFixed || f == MinFixed
}

// String formats f as a decimal number with five fractional digits.
func (f Fixed) String() string {
	return strconv.FormatFloat(ToFloat(f), 'f', 5, 64)
}
