package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a conversion failure.
type ErrorKind string

const (
	// KindFileNotFound means the input path does not exist.
	KindFileNotFound ErrorKind = "file not found"

	// KindParse means the input is not valid delimited text or a readable workbook.
	KindParse ErrorKind = "parse error"

	// KindWrite means the output could not be written.
	KindWrite ErrorKind = "write error"
)

// Sentinel errors for errors.Is checks against a kind.
var (
	ErrFileNotFound = errors.New(string(KindFileNotFound))
	ErrParse        = errors.New(string(KindParse))
	ErrWrite        = errors.New(string(KindWrite))
)

// Error is a classified conversion failure tied to a file path.
type Error struct {
	// Kind is the failure class.
	Kind ErrorKind

	// Path is the file the failure relates to.
	Path string

	// Line is the 1-based input line for parse errors, or 0 if unknown.
	Line int

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, location, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, location)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == KindFileNotFound
	case ErrParse:
		return e.Kind == KindParse
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}

// NewFileNotFoundError builds a KindFileNotFound error.
func NewFileNotFoundError(path string, err error) *Error {
	return &Error{Kind: KindFileNotFound, Path: path, Err: err}
}

// NewParseError builds a KindParse error. line may be 0.
func NewParseError(path string, line int, err error) *Error {
	return &Error{Kind: KindParse, Path: path, Line: line, Err: err}
}

// NewWriteError builds a KindWrite error.
func NewWriteError(path string, err error) *Error {
	return &Error{Kind: KindWrite, Path: path, Err: err}
}
