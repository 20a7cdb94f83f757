// Package apperr carries the failure taxonomy shared by repositories, the
// dispatch proxy and the HTTP layer. A failure is classified once, where it
// happens, and travels as data from then on.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindTransient
	KindValidation
	KindConflict
	KindNotFound
)

var kindNames = map[Kind]string{
	KindInternal:   "internal",
	KindTransient:  "transient",
	KindValidation: "validation",
	KindConflict:   "conflict",
	KindNotFound:   "not_found",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindInternal]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText maps unknown names to KindInternal so that a newer peer can
// never produce a failure this side cannot classify.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	*k = KindInternal
	return nil
}

type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

func Transient(message string, err error) *Error {
	return Wrap(KindTransient, message, err)
}

// KindOf reports the kind of the first *Error in err's chain. Anything
// unclassified is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// From returns err as an *Error, wrapping unclassified errors as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err.Error(), err)
}

// Detach strips the cause so the failure can cross a process boundary.
// The result is identical whichever side of the boundary produced it.
func Detach(err error) *Error {
	e := From(err)
	if e == nil {
		return nil
	}
	message := e.Message
	if message == "" {
		message = e.Error()
	}
	return &Error{Kind: e.Kind, Message: message}
}
