/*
DESCRIPTION
  errors.go defines the mic error taxonomy: InputError, FormatError and
  InternalError. Every failure this package and container/mic detect in
  an image, a header or a bitstream is one of these three (possibly
  wrapped with context), so callers can classify it with errors.As
  without parsing message text. Errors from the underlying io.Reader or
  io.Writer, including a header cut short, are returned wrapped with
  context but are not converted into one of these types.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import "fmt"

// InputError reports a problem with the caller-supplied image or file
// before any codec work has begun: an unreadable source, a malformed PPM
// header, or dimensions that are not a multiple of 16.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return "mic: input error: " + e.Msg }

// NewInputError returns an InputError built from a format string.
func NewInputError(format string, args ...any) *InputError {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

// FormatError reports a problem with the MIC bitstream itself: a bad
// magic, a truncated stream, an unknown entropy tag, or a coefficient
// decoded outside [-256,255].
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "mic: format error: " + e.Msg }

// NewFormatError returns a FormatError built from a format string.
func NewFormatError(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// InternalError reports a condition the codec's own invariants should
// make impossible (e.g. an out-of-range quantized coefficient produced by
// this package's own quantizer). It exists as an assertion, not a
// recoverable condition.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return "mic: internal error: " + e.Msg }

// NewInternalError returns an InternalError built from a format string.
func NewInternalError(format string, args ...any) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
