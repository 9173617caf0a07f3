package errors

import "github.com/mavenreposs/component-error/errorbag"

// ErrorCode represents a unique identifier for each error type
type ErrorCode string

// BagCode converts the code into the key used by errorbag.Bag
func (c ErrorCode) BagCode() errorbag.Code {
	return errorbag.CodeOf(c)
}

// Error represents a domain-specific error with context
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory defines methods for creating domain errors
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
