package fix

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Code identifies the kind of fault raised by an operation.
// Code implements error, so the exported constants can be compared
// with errors.Is.
type Code uint8

const (
	// NoError is the zero state of a Signal.
	NoError Code = iota

	// ErrRange reports a result or operand magnitude outside the
	// representable fixed-point span.
	ErrRange

	// ErrDomain reports an argument outside the function's valid input
	// interval (Acos, Asin, Sqrt).
	ErrDomain
)

// Error implements the error interface.
func (c Code) Error() string {
	switch c {
	case NoError:
		return "fix: no error"
	case ErrRange:
		return "fix: result out of range"
	case ErrDomain:
		return "fix: argument out of domain"
	default:
		return "fix: unknown error"
	}
}

// String returns the short code name.
func (c Code) String() string {
	switch c {
	case NoError:
		return "OK"
	case ErrRange:
		return "RANGE"
	case ErrDomain:
		return "DOMAIN"
	default:
		return "UNKNOWN"
	}
}

// codeOf maps an error returned by this package to its Code.
func codeOf(err error) Code {
	if err == nil {
		return NoError
	}
	if c, ok := err.(Code); ok {
		return c
	}
	return ErrRange
}

// Signal is an error cell in the errno style: it holds the most recent
// fault recorded on it and is never cleared by a successful operation.
//
// A Signal is safe for concurrent use, but a fault recorded by one
// goroutine is visible to every other user of the same Signal. Give each
// goroutine its own Signal when faults must be attributed to a caller.
type Signal struct {
	code atomic.Uint32
	opts signalOptions
}

// NewSignal creates a Signal in the NoError state.
//
// Example:
//
//	sig := fix.NewSignal(fix.WithLogger(slog.Default()))
//	v := sig.Check(fix.Mul(a, b))
//	if sig.Code() == fix.ErrRange {
//	    // v is saturated
//	}
func NewSignal(opts ...SignalOption) *Signal {
	s := &Signal{opts: defaultSignalOptions()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Code returns the most recently recorded fault.
func (s *Signal) Code() Code {
	return Code(s.code.Load())
}

// Err returns the recorded fault as an error, or nil in the NoError state.
func (s *Signal) Err() error {
	if c := s.Code(); c != NoError {
		return c
	}
	return nil
}

// Set stores c unconditionally.
func (s *Signal) Set(c Code) {
	s.code.Store(uint32(c))
}

// Reset returns the Signal to the NoError state.
func (s *Signal) Reset() {
	s.Set(NoError)
}

// Check records err, if any, and returns v unchanged.
// It accepts the result of any faulting operation directly:
//
//	sum := sig.Check(fix.Add(a, b))
func (s *Signal) Check(v Fixed, err error) Fixed {
	if err == nil {
		return v
	}
	c := codeOf(err)
	s.Set(c)

	l := s.opts.logger
	if l == nil {
		l = Logger()
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("fix: fault recorded", "code", c.String(), "value", v.String())
	}
	if s.opts.hook != nil {
		s.opts.hook(c, v)
	}
	return v
}

// std backs the process-global errno shim.
var std = NewSignal()

// Errno returns the fault last recorded through the package-level Check
// (or SetErrno). The state is shared by the whole process.
func Errno() Code {
	return std.Code()
}

// SetErrno overwrites the process-global fault state.
func SetErrno(c Code) {
	std.Set(c)
}

// ResetErrno clears the process-global fault state.
// Successful operations never do this on their own.
func ResetErrno() {
	std.Reset()
}

// Check records err on the process-global fault state and returns v.
func Check(v Fixed, err error) Fixed {
	return std.Check(v, err)
}
