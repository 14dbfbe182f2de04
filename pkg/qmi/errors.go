package qmi

import (
	"fmt"
)

// ErrorKind classifies codec failures.
type ErrorKind int

const (
	// KindTruncatedInput indicates fewer bytes were available than a value requires.
	KindTruncatedInput ErrorKind = iota + 1
	// KindMalformedLength indicates a declared length exceeds the buffer or a declared maximum.
	KindMalformedLength
	// KindFieldNotFound indicates a missing mandatory TLV or a get before set.
	KindFieldNotFound
	// KindInvalidArgument indicates a write-side constraint violation.
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindTruncatedInput:
		return "truncated input"
	case KindMalformedLength:
		return "malformed length"
	case KindFieldNotFound:
		return "field not found"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is a typed codec error.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("qmi: %s: %v", e.Msg, e.Err)
	}
	return "qmi: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrTruncatedInput  = &Error{Kind: KindTruncatedInput, Msg: KindTruncatedInput.String()}
	ErrMalformedLength = &Error{Kind: KindMalformedLength, Msg: KindMalformedLength.String()}
	ErrFieldNotFound   = &Error{Kind: KindFieldNotFound, Msg: KindFieldNotFound.String()}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Msg: KindInvalidArgument.String()}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}

// FieldNotFound reports a get on a field that was never read or set.
func FieldNotFound(field string) error {
	return newError(KindFieldNotFound, "field '%s' was not found in the message", field)
}

// MissingMandatory reports an absent mandatory TLV while decoding.
func MissingMandatory(field string) error {
	return newError(KindFieldNotFound, "couldn't get the mandatory %s TLV", field)
}

// MissingMandatoryInput reports a mandatory TLV that was never set before encoding.
func MissingMandatoryInput(field, message string) error {
	return newError(KindInvalidArgument, "missing mandatory TLV '%s' in message '%s'", field, message)
}

// InvalidArgumentf reports a setter constraint violation.
func InvalidArgumentf(format string, args ...any) error {
	return newError(KindInvalidArgument, format, args...)
}

// ReadError prefixes a decode failure with the TLV name.
func ReadError(field string, err error) error {
	return fmt.Errorf("couldn't read the '%s' TLV: %w", field, err)
}

// WriteError prefixes an encode failure with the TLV name.
func WriteError(field string, err error) error {
	return fmt.Errorf("cannot write TLV '%s': %w", field, err)
}

// UnexpectedMessage reports a parse of a message carrying another id.
func UnexpectedMessage(want, got uint16) error {
	return newError(KindInvalidArgument, "unexpected message id 0x%04x, want 0x%04x", got, want)
}
