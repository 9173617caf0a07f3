package errors

import (
	"errors"
	"fmt"

	"github.com/mavenreposs/component-error/errorbag"
)

// Basic error check functions from standard library
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// appError implements the Error interface
type appError struct {
	code    ErrorCode
	message string
	err     error
	data    any
}

func (e *appError) Error() string {
	msg := e.Message()

	if e.err != nil {
		return fmt.Sprintf("%s: %v", msg, e.err)
	}

	if e.data != nil {
		return fmt.Sprintf("%s: %v", msg, e.data)
	}

	return msg
}

// Message returns the explicit message, or the default one for the code
func (e *appError) Message() string {
	if e.message == "" {
		return GetErrorMessage(e.code)
	}
	return e.message
}

func (e *appError) Code() ErrorCode {
	return e.code
}

// WithMessage returns a copy of e carrying msg; e is left unchanged
func (e *appError) WithMessage(msg string) Error {
	c := *e
	c.message = msg
	return &c
}

// WithData returns a copy of e carrying data; e is left unchanged
func (e *appError) WithData(data any) Error {
	c := *e
	c.data = data
	return &c
}

func (e *appError) GetData() any { return e.data }

func (e *appError) Unwrap() error { return e.err }

type defaultFactory struct{}

func (*defaultFactory) New(code ErrorCode) Error {
	return &appError{code: code}
}

func (*defaultFactory) Wrap(code ErrorCode, err error) Error {
	return &appError{code: code, err: err}
}

func (f *defaultFactory) WithMessage(code ErrorCode, msg string) Error {
	return f.New(code).WithMessage(msg)
}

func (f *defaultFactory) WithData(code ErrorCode, data any) Error {
	return f.New(code).WithData(data)
}

// New creates a Factory instance for error creation
func New() Factory {
	return &defaultFactory{}
}

// Collect records err in b under its code. Errors without a code are
// recorded as ErrInternal. Data carried by err replaces the code's data.
func Collect(b *errorbag.Bag, err error) {
	if err == nil {
		return
	}

	var coded Error
	if !As(err, &coded) {
		b.Add(ErrInternal.BagCode(), err.Error())
		return
	}

	b.Add(coded.Code().BagCode(), coded.Error())
	if data := coded.GetData(); data != nil {
		b.AddDataFor(coded.Code().BagCode(), data)
	}
}

// ToBag returns err as a bag. A bag anywhere in err's chain is returned
// as is; any other error becomes a single-code bag.
func ToBag(err error) *errorbag.Bag {
	if b, ok := errorbag.As(err); ok {
		return b
	}

	b := errorbag.New()
	Collect(b, err)
	return b
}
