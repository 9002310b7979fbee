// Package num wraps fix.Fixed in a value type with arithmetic methods and
// generic construction from any Go integer or float type.
//
// Every method delegates to the matching function of package fix. Faults
// are recorded on the process-global errno state (fix.Errno), so a chain
// such as
//
//	fix.ResetErrno()
//	r := num.Of(3).Mul(num.Of(2.5)).Add(num.Of(1))
//	if fix.Errno() != fix.NoError {
//	    // some step saturated
//	}
//
// behaves like the equivalent sequence of core calls wrapped in fix.Check.
package num

import (
	"golang.org/x/exp/constraints"

	"github.com/gogpu/fix"
)

// Number is the set of Go types Of accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Num is a fixed-point number with method-based arithmetic.
// The zero value is 0.
type Num struct {
	v fix.Fixed
}

// Of converts x to a Num. Integer kinds go through fix.FromInt (unchecked);
// float kinds go through fix.FromFloat (range checked, rounded).
func Of[T Number](x T) Num {
	// Only float kinds keep the fraction of a converted 0.5.
	half := 0.5
	if T(half) != 0 {
		return Num{fix.Check(fix.FromFloat(float64(x)))}
	}
	return Num{fix.FromInt(int(x))}
}

// FromFixed wraps a raw fixed-point value.
func FromFixed(f fix.Fixed) Num { return Num{f} }

// Fixed returns the raw fixed-point value.
func (n Num) Fixed() fix.Fixed { return n.v }

// Int converts n to int with fix.ToInt rounding.
func (n Num) Int() int { return fix.ToInt(n.v) }

// Float converts n to float64.
func (n Num) Float() float64 { return fix.ToFloat(n.v) }

func (n Num) String() string { return n.v.String() }

// Add returns n + o.
func (n Num) Add(o Num) Num { return Num{fix.Check(fix.Add(n.v, o.v))} }

// Sub returns n - o.
func (n Num) Sub(o Num) Num { return Num{fix.Check(fix.Sub(n.v, o.v))} }

// Mul returns n * o.
func (n Num) Mul(o Num) Num { return Num{fix.Check(fix.Mul(n.v, o.v))} }

// Div returns n / o.
func (n Num) Div(o Num) Num { return Num{fix.Check(fix.Div(n.v, o.v))} }

// Neg returns -n.
func (n Num) Neg() Num { return Num{n.v.Neg()} }

// Shl shifts the raw value left by k bits.
func (n Num) Shl(k uint) Num { return Num{n.v.Shl(k)} }

// Shr shifts the raw value right by k bits.
func (n Num) Shr(k uint) Num { return Num{n.v.Shr(k)} }

// Inc returns n + 1.
func (n Num) Inc() Num { return n.Add(Num{fix.One}) }

// Dec returns n - 1.
func (n Num) Dec() Num { return n.Sub(Num{fix.One}) }

// Cmp compares n and o, returning -1, 0 or +1.
func (n Num) Cmp(o Num) int {
	switch {
	case n.v < o.v:
		return -1
	case n.v > o.v:
		return 1
	default:
		return 0
	}
}

// Eq reports whether n == o.
func (n Num) Eq(o Num) bool { return n.v == o.v }

// Less reports whether n < o.
func (n Num) Less(o Num) bool { return n.v < o.v }

// Sqrt returns the square root of n.
func (n Num) Sqrt() Num { return Num{fix.Check(fix.Sqrt(n.v))} }

// Cos returns the cosine of the binary angle n.
func (n Num) Cos() Num { return Num{fix.Cos(n.v)} }

// Sin returns the sine of the binary angle n.
func (n Num) Sin() Num { return Num{fix.Sin(n.v)} }

// Tan returns the tangent of the binary angle n.
func (n Num) Tan() Num { return Num{fix.Tan(n.v)} }

// Acos returns the arccosine of n as a binary angle.
func (n Num) Acos() Num { return Num{fix.Check(fix.Acos(n.v))} }

// Asin returns the arcsine of n as a binary angle.
func (n Num) Asin() Num { return Num{fix.Check(fix.Asin(n.v))} }

// Atan returns the arctangent of n as a binary angle.
func (n Num) Atan() Num { return Num{fix.Check(fix.Atan(n.v))} }

// Atan2 returns the binary angle of the point (x, y).
func Atan2(y, x Num) Num { return Num{fix.Check(fix.Atan2(y.v, x.v))} }

// Hypot returns sqrt(x*x + y*y).
func Hypot(x, y Num) Num { return Num{fix.Check(fix.Hypot(x.v, y.v))} }
