// Package errors is the single import for error handling: stdlib matching plus pkg/errors
// wrapping, so every wrapped error carries the stack of its first wrap.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and construction, straight from the standard library.

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	return stderrors.AsType[T](err)
}

// Annotation, from pkg/errors. Wrap, Wrapf, WithStack and Errorf record a stack trace;
// WithMessage only prefixes the message.

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func WithMessage(err error, message string) error { return pkgerrors.WithMessage(err, message) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// Cause unwraps pkg/errors annotations down to the original error.
//
//nolint:wrapcheck // passthrough
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
