package fix

import "golang.org/x/image/math/fixed"

// Conversions between Fixed and the fixed-point types of
// golang.org/x/image/math/fixed used by font rasterizers.
//
// Type Reference:
//   - fixed.Int26_6:  26.6 (6 fractional bits), 1/64 pixel precision
//   - fixed.Int52_12: 52.12 (12 fractional bits)
//   - Fixed:          16.16 (16 fractional bits)

// Shift distances between the formats.
const (
	int26_6Shift  = Shift - 6
	int52_12Shift = Shift - 12
)

// Int26_6 converts f to 26.6, rounding to the nearest 1/64.
// The conversion cannot overflow.
func (f Fixed) Int26_6() fixed.Int26_6 {
	const half = 1 << (int26_6Shift - 1)
	//nolint:gosec // |f| >> 10 fits in int32
	return fixed.Int26_6((int64(f) + half) >> int26_6Shift)
}

// FromInt26_6 converts a 26.6 value to Fixed. Values beyond the Fixed
// range saturate with ErrRange.
func FromInt26_6(v fixed.Int26_6) (Fixed, error) {
	return saturate(int64(v) << int26_6Shift)
}

// Int52_12 converts f to 52.12, rounding to the nearest 1/4096.
func (f Fixed) Int52_12() fixed.Int52_12 {
	const half = 1 << (int52_12Shift - 1)
	return fixed.Int52_12((int64(f) + half) >> int52_12Shift)
}

// FromInt52_12 converts a 52.12 value to Fixed. Values beyond the Fixed
// range saturate with ErrRange.
func FromInt52_12(v fixed.Int52_12) (Fixed, error) {
	const limit = int64(MaxFixed) >> int52_12Shift
	if int64(v) > limit {
		return MaxFixed, ErrRange
	}
	if int64(v) < -limit {
		return MinFixed, ErrRange
	}
	return saturate(int64(v) << int52_12Shift)
}

// Point26_6 converts the pair (x, y) to a fixed.Point26_6.
func Point26_6(x, y Fixed) fixed.Point26_6 {
	return fixed.Point26_6{X: x.Int26_6(), Y: y.Int26_6()}
}

// FromPoint26_6 converts p to a pair of Fixed values, reporting the first
// coordinate that saturated.
func FromPoint26_6(p fixed.Point26_6) (x, y Fixed, err error) {
	x, errX := FromInt26_6(p.X)
	y, errY := FromInt26_6(p.Y)
	if errX != nil {
		return x, y, errX
	}
	return x, y, errY
}

// saturate clamps v to the sentinel range.
func saturate(v int64) (Fixed, error) {
	if v > int64(MaxFixed) {
		return MaxFixed, ErrRange
	}
	if v < int64(MinFixed) {
		return MinFixed, ErrRange
	}
	//nolint:gosec // Range checked above
	return Fixed(v), nil
}
