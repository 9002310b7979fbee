package fix

import "log/slog"

// SignalOption configures a Signal during creation.
// Use functional options to customize how faults are reported.
//
// Example:
//
//	sig := fix.NewSignal(
//	    fix.WithLogger(logger),
//	    fix.WithHook(func(c fix.Code, v fix.Fixed) { faults.Add(1) }),
//	)
type SignalOption func(*signalOptions)

// signalOptions holds optional configuration for Signal creation.
type signalOptions struct {
	logger *slog.Logger
	hook   func(Code, Fixed)
}

// defaultSignalOptions returns the default signal options.
func defaultSignalOptions() signalOptions {
	return signalOptions{
		logger: nil, // Falls back to the package Logger at record time
		hook:   nil,
	}
}

// WithLogger sets a logger used only by this Signal.
// Faults are logged at debug level. Without this option the Signal uses
// the logger configured through SetLogger.
func WithLogger(l *slog.Logger) SignalOption {
	return func(o *signalOptions) {
		o.logger = l
	}
}

// WithHook registers a function called synchronously each time the
// Signal records a fault, with the fault code and the saturated or zero
// value the operation returned.
func WithHook(fn func(Code, Fixed)) SignalOption {
	return func(o *signalOptions) {
		o.hook = fn
	}
}
