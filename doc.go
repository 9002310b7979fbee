// Package fix provides 16.16 fixed-point arithmetic and table-driven
// trigonometry.
//
// # Overview
//
// A [Fixed] is an int32 read as value/65536, covering roughly ±32768 with
// 1/65536 precision. Conversions, addition and subtraction work on the
// integer directly; multiplication, division and the computed functions
// go through float64 and back through [FromFloat].
//
// # Quick Start
//
//	import "github.com/gogpu/fix"
//
//	a := fix.FromInt(3)
//	b, _ := fix.FromFloat(2.5)
//
//	p, err := fix.Mul(a, b) // 7.5
//	if errors.Is(err, fix.ErrRange) {
//	    // p is saturated
//	}
//
//	s := fix.Sin(fix.FromInt(64)) // sine of a right angle: fix.One
//
// # Saturation
//
// Results beyond ±32767.0 are replaced by the sentinels [MaxFixed]
// (0x7FFFFFFF) and [MinFixed] (-0x7FFFFFFF). Note the negative sentinel is
// not math.MinInt32.
//
// # Errors
//
// Faulting operations return the saturated (or zero) value together with
// [ErrRange] or [ErrDomain]. Nothing panics.
//
// For errno-style code, a [Signal] records the last fault and is never
// cleared by a successful call:
//
//	sig := fix.NewSignal()
//	x := sig.Check(fix.Add(a, b))
//	y := sig.Check(fix.Div(x, c))
//	if err := sig.Err(); err != nil {
//	    // one of the two faulted
//	}
//
// [Errno], [SetErrno], [ResetErrno] and [Check] do the same on one
// process-wide Signal. Give each goroutine its own Signal instead when
// faults must not leak between callers.
//
// # Angles
//
// Angles are binary degrees: [FullTurn] (256.0) is 2π and [QuarterTurn]
// (64.0) is π/2. [Cos], [Sin] and [Tan] read precomputed tables at the
// nearest half degree and wrap over any input. [Acos], [Asin], [Atan] and
// [Atan2] return binary angles. Use [FromRadians] and [Fixed.Radians] to
// convert.
//
// # Tables
//
// The cosine (512 entries), tangent (256) and arccosine (513) tables are
// built once on first use and shared read-only afterwards.
//
// # Architecture
//
// The module is organized into:
//   - fix: Fixed, arithmetic, tables, transcendental functions, Matrix
//   - fix/num: Num, a method-based wrapper recording faults on Errno
//   - cmd/fixtool: command-line evaluator and table exporter
package fix
