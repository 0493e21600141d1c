package reg2ps

import (
	"errors"
	"fmt"
)

// ErrKind classifies conversion errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindEmptyInput             ErrKind = iota // input is blank or whitespace-only
	ErrKindMalformedSectionHeader                // "[" without a closing "]"
	ErrKindUnknownHive                           // section path outside the five known hives
	ErrKindValueOutsideSection                   // value line before any section header
	ErrKindMissingEquals                         // value line without "="
	ErrKindInvalidDword                          // dword: payload is not a hex integer
)

// String returns the kind's name, e.g. "UnknownHive".
func (k ErrKind) String() string {
	switch k {
	case ErrKindEmptyInput:
		return "EmptyInput"
	case ErrKindMalformedSectionHeader:
		return "MalformedSectionHeader"
	case ErrKindUnknownHive:
		return "UnknownHive"
	case ErrKindValueOutsideSection:
		return "ValueOutsideSection"
	case ErrKindMissingEquals:
		return "MissingEquals"
	case ErrKindInvalidDword:
		return "InvalidDword"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a conversion failure tied to the line that caused it.
type Error struct {
	Kind ErrKind
	Line int    // 1-based line number; 0 for ErrKindEmptyInput
	Text string // offending trimmed line, if any
	Err  error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrKindEmptyInput:
		return "Input field is empty. Please provide REG file content."
	case ErrKindMalformedSectionHeader:
		return fmt.Sprintf("Invalid registry key format on line %d", e.Line)
	case ErrKindUnknownHive:
		return fmt.Sprintf("Unknown registry hive on line %d", e.Line)
	case ErrKindValueOutsideSection:
		return fmt.Sprintf("Value outside of registry path on line %d", e.Line)
	case ErrKindMissingEquals:
		return fmt.Sprintf("Missing '=' on line %d", e.Line)
	case ErrKindInvalidDword:
		return fmt.Sprintf("Invalid DWORD value on line %d", e.Line)
	default:
		return fmt.Sprintf("%s on line %d", e.Kind, e.Line)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is whatever line the failure was on.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrEmptyInput             = &Error{Kind: ErrKindEmptyInput}
	ErrMalformedSectionHeader = &Error{Kind: ErrKindMalformedSectionHeader}
	ErrUnknownHive            = &Error{Kind: ErrKindUnknownHive}
	ErrValueOutsideSection    = &Error{Kind: ErrKindValueOutsideSection}
	ErrMissingEquals          = &Error{Kind: ErrKindMissingEquals}
	ErrInvalidDword           = &Error{Kind: ErrKindInvalidDword}
)

// LineOf returns the line number carried by a conversion error.
func LineOf(err error) (int, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Kind == ErrKindEmptyInput {
		return 0, false
	}
	return e.Line, true
}

func newLineError(kind ErrKind, line int, text string, cause error) *Error {
	return &Error{Kind: kind, Line: line, Text: text, Err: cause}
}
