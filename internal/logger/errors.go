package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// WrappedError carries a message, its cause and the file:line it was wrapped at.
type WrappedError struct {
	msg    string
	cause  error
	caller string
}

func (e *WrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *WrappedError) Unwrap() error {
	return e.cause
}

// Caller returns the wrap site as dir/file.go:line.
func (e *WrappedError) Caller() string {
	return e.caller
}

// WrapError wraps err with msg and the caller location. A nil err stays nil.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}

	caller := "unknown"
	if _, file, line, ok := runtime.Caller(1); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file)), line)
	}

	return &WrappedError{msg: msg, cause: err, caller: caller}
}

// WithError returns an "error" group attribute with the message, the
// concrete type, the unwrap chain and the wrap site when known.
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	attrs := []any{
		slog.String("message", err.Error()),
		slog.String("type", fmt.Sprintf("%T", err)),
	}

	var chain []string
	for e := errors.Unwrap(err); e != nil; e = errors.Unwrap(e) {
		chain = append(chain, e.Error())
	}
	if len(chain) > 0 {
		attrs = append(attrs, slog.Any("chain", chain))
	}

	var we *WrappedError
	if errors.As(err, &we) {
		attrs = append(attrs, slog.String("caller", we.Caller()))
	}

	return slog.Group("error", attrs...)
}
