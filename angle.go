package fix

import "math"

// Angles are measured in binary degrees: 256 to the full turn, so that a
// right angle is 64.0 and the table lookups reduce to shifts and masks.
const (
	// FullTurn is 2π: 256.0 in Fixed.
	FullTurn Fixed = 256 << Shift

	// HalfTurn is π: 128.0 in Fixed.
	HalfTurn Fixed = 128 << Shift

	// QuarterTurn is π/2: 64.0 (0x00400000) in Fixed.
	QuarterTurn Fixed = 0x00400000

	// AngleToRadians multiplies a binary angle into radians (2π/256).
	AngleToRadians Fixed = 1608

	// RadiansToAngle multiplies radians into a binary angle (256/2π).
	RadiansToAngle Fixed = 2670177
)

const (
	radToAngle = 128 / math.Pi
	angleToRad = math.Pi / 128
)

// FromRadians converts an angle in radians to binary angle units.
func FromRadians(r float64) (Fixed, error) {
	return FromFloat(r * radToAngle)
}

// Radians converts f, a binary angle, to radians.
func (f Fixed) Radians() float64 {
	return ToFloat(f) * angleToRad
}
