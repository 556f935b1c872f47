// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decode failure.
// An ErrorKind is also an error, so errors.Is(err, InvalidFormat) works
// for any error returned from this package.
//
//go:generate stringer -type=ErrorKind
type ErrorKind int

const (
	// ReadError is a failure reading the PNG bytes.
	ReadError ErrorKind = iota + 1
	// InvalidFormat is a signature or IHDR field mismatch.
	InvalidFormat
	// TruncatedStream means the data ended before a chunk or scanline did.
	TruncatedStream
	// InvalidChunkOrder means IHDR is not the first chunk or IEND is not the last.
	InvalidChunkOrder
	// NoCompressedData means there are no IDAT chunks.
	NoCompressedData
	// SizeLimitExceeded means a buffer would grow beyond the configured limits.
	SizeLimitExceeded
	// CorruptCompressedData is a zlib/DEFLATE failure.
	CorruptCompressedData
	// InvalidFilterType is a scanline filter type outside 0-4.
	InvalidFilterType
	// NotLoaded means the File has not been successfully parsed.
	NotLoaded
)

func (k ErrorKind) Error() string {
	return "pngdecode: " + k.String()
}

// Error is the error type returned by all functions in this package.
type Error struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pngdecode: %s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("pngdecode: %s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorKind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// IsInvalidFormat reports whether err is an InvalidFormat error.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, InvalidFormat)
}

// KindOf returns the ErrorKind of err, or 0 if err was not created by this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newErrorf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func wrapErrorf(kind ErrorKind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...), Err: err}
}

func newInvalidFormatErrorf(format string, args ...any) error {
	return newErrorf(InvalidFormat, format, args...)
}
