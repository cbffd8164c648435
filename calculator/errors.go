package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError names the rejected argument and why.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidArgument, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(arg, format string, a ...any) error {
	return &ArgumentError{Arg: arg, Reason: fmt.Sprintf(format, a...)}
}
