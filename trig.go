package fix

import "math"

// Cos returns the cosine of the binary angle x, looked up in the cosine
// table at the nearest half-degree. Any x is valid; the table wraps every
// FullTurn.
func Cos(x Fixed) Fixed {
	return loadTables().cos[angleIndex(int64(x), CosTableSize)]
}

// Sin returns the sine of the binary angle x as Cos(x - QuarterTurn).
func Sin(x Fixed) Fixed {
	return loadTables().cos[angleIndex(int64(x)-int64(QuarterTurn), CosTableSize)]
}

// Tan returns the tangent of the binary angle x from the tangent table,
// which repeats every HalfTurn. Angles rounding to a right angle return
// MaxFixed.
func Tan(x Fixed) Fixed {
	return loadTables().tan[angleIndex(int64(x), TanTableSize)]
}

// Acos returns the arccosine of x as a binary angle in [0, 128].
// Arguments outside [-One, One] return 0 and ErrDomain.
func Acos(x Fixed) (Fixed, error) {
	if x < -One || x > One {
		return 0, ErrDomain
	}
	return loadTables().acos[acosIndex(x)], nil
}

// Asin returns the arcsine of x as a binary angle in [-64, 64], computed
// as QuarterTurn minus the arccosine table entry.
// Arguments outside [-One, One] return 0 and ErrDomain.
func Asin(x Fixed) (Fixed, error) {
	if x < -One || x > One {
		return 0, ErrDomain
	}
	return QuarterTurn - loadTables().acos[acosIndex(x)], nil
}

// Atan returns the arctangent of x as a binary angle in (-64, 64).
func Atan(x Fixed) (Fixed, error) {
	return FromFloat(math.Atan(ToFloat(x)) * radToAngle)
}

// Atan2 returns the binary angle of the point (x, y) in (-128, 128],
// with the usual quadrant rules. Atan2(0, 0) is 0.
func Atan2(y, x Fixed) (Fixed, error) {
	if x == 0 && y == 0 {
		return 0, nil
	}
	return FromFloat(math.Atan2(ToFloat(y), ToFloat(x)) * radToAngle)
}

// Sqrt returns the square root of x. Negative x returns 0 and ErrDomain.
func Sqrt(x Fixed) (Fixed, error) {
	if x < 0 {
		return 0, ErrDomain
	}
	return FromFloat(math.Sqrt(ToFloat(x)))
}

// Hypot returns sqrt(x*x + y*y), formed in float64 so the squares
// cannot overflow. A result beyond 32767.0 saturates with ErrRange.
func Hypot(x, y Fixed) (Fixed, error) {
	return FromFloat(math.Hypot(ToFloat(x), ToFloat(y)))
}
