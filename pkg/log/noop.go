package log

import "context"

// noopLogger discards all log output. Used in tests.
type noopLogger struct{}

// NewNoop returns a Logger that discards everything.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(context.Context, ...interface{})          {}
func (noopLogger) Debugf(context.Context, string, ...interface{}) {}
func (noopLogger) Info(context.Context, ...interface{})           {}
func (noopLogger) Infof(context.Context, string, ...interface{})  {}
func (noopLogger) Warn(context.Context, ...interface{})           {}
func (noopLogger) Warnf(context.Context, string, ...interface{})  {}
func (noopLogger) Error(context.Context, ...interface{})          {}
func (noopLogger) Errorf(context.Context, string, ...interface{}) {}
func (noopLogger) Fatal(context.Context, ...interface{})          {}
func (noopLogger) Fatalf(context.Context, string, ...interface{}) {}
