// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies the kind of a sticky decode error. Once a Decoder's
// error is non-zero it never changes and ProcessInput becomes a no-op.
type ErrorCode uint8

const (
	// ErrNoError means no error has occurred.
	ErrNoError ErrorCode = iota

	// ErrFrameError is a generic framing violation; ErrorDetail carries a
	// human-readable, type-specific message.
	ErrFrameError

	// ErrFrameTooLarge means the declared payload length exceeded the
	// configured maximum frame size.
	ErrFrameTooLarge

	// ErrDuplicateSettingIdentifier means a SETTINGS frame carried the same
	// identifier twice.
	ErrDuplicateSettingIdentifier

	// ErrReceivedSpdyFrame means an HTTP/2-only frame type arrived on the
	// HTTP/3 stream.
	ErrReceivedSpdyFrame

	// ErrInternal marks an implementation-contract violation, such as
	// calling ProcessInput again after an indefinite-length frame.
	ErrInternal
)

var errorCodeName = map[ErrorCode]string{
	ErrNoError:                    "NO_ERROR",
	ErrFrameError:                 "FRAME_ERROR",
	ErrFrameTooLarge:              "FRAME_TOO_LARGE",
	ErrDuplicateSettingIdentifier: "DUPLICATE_SETTING_IDENTIFIER",
	ErrReceivedSpdyFrame:          "RECEIVED_SPDY_FRAME",
	ErrInternal:                   "INTERNAL_ERROR",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeName[c]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_ERROR_CODE_%d", uint8(c))
}

// DecodeError is the sticky error state of a Decoder. It is returned to the
// caller through Decoder.Error/Decoder.ErrorDetail rather than as a Go
// error return value from ProcessInput, matching the spec's external
// interface; it still satisfies the error interface for convenience in
// tests and logging.
type DecodeError struct {
	code   ErrorCode
	detail string
	cause  error
}

func newFrameError(detail string) *DecodeError {
	return &DecodeError{code: ErrFrameError, detail: detail}
}

func newFrameTooLarge(detail string) *DecodeError {
	return &DecodeError{code: ErrFrameTooLarge, detail: detail}
}

func newDuplicateSettingIdentifier() *DecodeError {
	return &DecodeError{code: ErrDuplicateSettingIdentifier, detail: "Duplicate setting identifier."}
}

func newReceivedSpdyFrame(frameType uint64) *DecodeError {
	return &DecodeError{
		code:   ErrReceivedSpdyFrame,
		detail: fmt.Sprintf("HTTP/2 frame received in a HTTP/3 connection: %d", frameType),
	}
}

// newInternalError wraps msg with a stack trace: unlike the four wire-level
// error kinds, Internal indicates a programmer/contract error worth
// capturing a trace for.
func newInternalError(msg string) *DecodeError {
	return &DecodeError{code: ErrInternal, detail: msg, cause: errors.New(msg)}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "h3frame: no error"
	}
	return fmt.Sprintf("h3frame: %s: %s", e.code, e.detail)
}

// Cause exposes the wrapped stack-carrying error for ErrInternal, so callers
// using github.com/pkg/errors can print "%+v" to get a trace. Returns nil
// for the other error kinds, which never carry a stack.
func (e *DecodeError) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}
