package builder

import "log"

// Logger receives diagnostics from a Builder: cluster-finder iteration
// counts, splice-fixed-point passes, assembly backtracking, and
// validate-time loop rejections. NewOptions installs noopLogger when no
// Logger is supplied, so a caller that never asks for diagnostics pays
// nothing.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Warnf(string, ...interface{})  {}

// StdLogger adapts the standard library's log.Logger to the Logger
// interface, for callers who want diagnostics without pulling in a
// structured logging framework.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger wraps l, or log.Default() if l is nil.
func NewStdLogger(l *log.Logger) StdLogger {
	if l == nil {
		l = log.Default()
	}
	return StdLogger{Logger: l}
}

func (s StdLogger) Debugf(format string, args ...interface{}) {
	s.Printf("DEBUG "+format, args...)
}

func (s StdLogger) Warnf(format string, args ...interface{}) {
	s.Printf("WARN "+format, args...)
}
