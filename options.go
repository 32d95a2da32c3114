// Copyright 2025 Hayabusa Cloud Co., Ltd. (original pattern)
// Adapted under the MIT-style terms of that source.

package h3frame

// defaultMaxFrameSize caps declared frame payload lengths absent an
// explicit WithMaxFrameSize override. Frames whose declared length exceeds
// this cap fail with ErrFrameTooLarge.
const defaultMaxFrameSize = 1 << 24

// options configures a Decoder's behavior. Constructed via functional
// Option values rather than exposed directly; see NewDecoder.
type options struct {
	allowWebTransportStream bool
	errorOnHTTP3Push        bool
	currentPriorityUpdate   bool
	maxFrameSize            uint64
}

var defaultOptions = options{
	allowWebTransportStream: false,
	errorOnHTTP3Push:        false,
	currentPriorityUpdate:   false,
	maxFrameSize:            defaultMaxFrameSize,
}

// Option configures a Decoder constructed by NewDecoder.
type Option func(*options)

// WithAllowWebTransportStream makes the decoder treat frame type 0x41 as a
// WebTransport stream preface: the decoder reads the type, then one more
// varint62 (the session ID), invokes Visitor.OnWebTransportStreamFrameType,
// and refuses all further input.
func WithAllowWebTransportStream() Option {
	return func(o *options) { o.allowWebTransportStream = true }
}

// WithHTTP3PushErrors makes CANCEL_PUSH and PUSH_PROMISE frames fail with a
// FrameError instead of being decoded, for deployments that reject server
// push entirely.
func WithHTTP3PushErrors() Option {
	return func(o *options) { o.errorOnHTTP3Push = true }
}

// WithCurrentPriorityUpdate switches PRIORITY_UPDATE decoding from the
// obsolete encoding (type 0x0f, explicit element type byte) to the current
// encoding (type 0x800f0700, implicit REQUEST_STREAM element type). Only
// one encoding is ever recognized by a given Decoder; under this option,
// type 0x0f is treated as an ordinary unknown (streaming) frame.
func WithCurrentPriorityUpdate() Option {
	return func(o *options) { o.currentPriorityUpdate = true }
}

// WithMaxFrameSize overrides the cap used to reject frames whose declared
// length is implausibly large. The default is 16 MiB.
func WithMaxFrameSize(n uint64) Option {
	return func(o *options) { o.maxFrameSize = n }
}
