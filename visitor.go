// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame

// Visitor receives frame-boundary and payload events from a Decoder as it
// consumes input. Every method that returns bool is a potential pause
// point: returning false tells the Decoder to stop processing and return
// from ProcessInput at exactly the byte range that produced this callback.
// Returning true lets the Decoder continue.
//
// Callbacks for a single frame are strictly ordered: OnXFrameStart, zero or
// more OnXFramePayload (streaming frames), then OnXFrameEnd; or
// OnXFrameStart followed by the single OnXFrame value callback (atomic
// frames; CANCEL_PUSH, GOAWAY and MAX_PUSH_ID have no start callback and
// deliver only the value callback). Payload slices borrow the Decoder's input buffer and must not be
// retained past the callback unless copied.
type Visitor interface {
	// OnError is invoked exactly once, when the Decoder's error becomes
	// sticky. No further callbacks occur afterwards.
	OnError(d *Decoder)

	OnSettingsFrameStart(headerLength uint64) bool
	OnSettingsFrame(settings Settings) bool

	OnDataFrameStart(headerLength, payloadLength uint64) bool
	OnDataFramePayload(b []byte) bool
	OnDataFrameEnd() bool

	OnHeadersFrameStart(headerLength, payloadLength uint64) bool
	OnHeadersFramePayload(b []byte) bool
	OnHeadersFrameEnd() bool

	OnCancelPushFrame(f CancelPushFrame) bool
	OnGoAwayFrame(f GoAwayFrame) bool
	OnMaxPushIDFrame(f MaxPushIDFrame) bool

	OnPushPromiseFrameStart(headerLength uint64) bool
	OnPushPromiseFramePushID(pushID, pushIDLength, headerBlockLength uint64) bool
	OnPushPromiseFramePayload(b []byte) bool
	OnPushPromiseFrameEnd() bool

	OnPriorityUpdateFrameStart(headerLength uint64) bool
	OnPriorityUpdateFrame(f PriorityUpdateFrame) bool

	OnAcceptChFrameStart(headerLength uint64) bool
	OnAcceptChFrame(f AcceptChFrame) bool

	// OnWebTransportStreamFrameType announces an indefinite-length
	// WebTransport stream preface. No further decoding of this stream
	// happens; the Decoder transitions to IndefiniteFrameDone.
	OnWebTransportStreamFrameType(headerLength, sessionID uint64)

	OnUnknownFrameStart(frameType FrameType, headerLength, payloadLength uint64) bool
	OnUnknownFramePayload(b []byte) bool
	OnUnknownFrameEnd() bool
}
