// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame

import "fmt"

// FrameType is an HTTP/3 frame type as carried by the frame header's type
// varint62. See https://www.rfc-editor.org/rfc/rfc9114#section-7.2
type FrameType uint64

const (
	FrameTypeData                  FrameType = 0x00
	FrameTypeHeaders                FrameType = 0x01
	FrameTypeCancelPush             FrameType = 0x03
	FrameTypeSettings               FrameType = 0x04
	FrameTypePushPromise             FrameType = 0x05
	FrameTypeGoAway                  FrameType = 0x07
	FrameTypeMaxPushID               FrameType = 0x0d
	FrameTypePriorityUpdateObsolete  FrameType = 0x0f
	FrameTypeAcceptCh                FrameType = 0x4089
	FrameTypeWebTransportStream      FrameType = 0x41
	FrameTypePriorityUpdateCurrent   FrameType = 0x800f0700
)

var frameTypeName = map[FrameType]string{
	FrameTypeData:                  "DATA",
	FrameTypeHeaders:                "HEADERS",
	FrameTypeCancelPush:             "CANCEL_PUSH",
	FrameTypeSettings:               "SETTINGS",
	FrameTypePushPromise:             "PUSH_PROMISE",
	FrameTypeGoAway:                  "GOAWAY",
	FrameTypeMaxPushID:               "MAX_PUSH_ID",
	FrameTypePriorityUpdateObsolete:  "PRIORITY_UPDATE (obsolete)",
	FrameTypeAcceptCh:                "ACCEPT_CH",
	FrameTypeWebTransportStream:      "WEBTRANSPORT_STREAM",
	FrameTypePriorityUpdateCurrent:   "PRIORITY_UPDATE",
}

func (t FrameType) String() string {
	if s, ok := frameTypeName[t]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_FRAME_TYPE_0x%x", uint64(t))
}

// forbiddenH2FrameTypes are HTTP/2-only ("SPDY") frame types that must never
// appear on an HTTP/3 stream. Receiving one is a ReceivedSpdyFrame error.
var forbiddenH2FrameTypes = map[FrameType]bool{
	0x02: true, // PRIORITY (HTTP/2)
	0x06: true, // PING (HTTP/2)
	0x08: true, // WINDOW_UPDATE (HTTP/2)
	0x09: true, // CONTINUATION (HTTP/2)
}

// frameMode classifies how a recognized frame's payload is delivered to the
// Visitor once its length is known.
type frameMode uint8

const (
	modeStreaming frameMode = iota // payload forwarded as it arrives
	modeAtomic                     // payload buffered, parsed once complete
	modeHybrid                     // push_id parsed eagerly, remainder streamed
	modeIndefinite                 // WebTransport stream preface
	modeUnknown                    // unrecognized type, treated as streaming
)

// frameModeFor classifies t under the current decoder configuration. Types
// whose mode depends on options (PRIORITY_UPDATE gated by
// currentPriorityUpdate, WEBTRANSPORT_STREAM gated by
// allowWebTransportStream) are resolved here. Rejection of CANCEL_PUSH and
// PUSH_PROMISE under errorOnHTTP3Push is not decided here; ProcessInput
// checks it once the frame length has been read.
func (d *Decoder) frameModeFor(t FrameType) frameMode {
	switch t {
	case FrameTypeData, FrameTypeHeaders:
		return modeStreaming
	case FrameTypeCancelPush:
		return modeAtomic
	case FrameTypeSettings:
		return modeAtomic
	case FrameTypePushPromise:
		return modeHybrid
	case FrameTypeGoAway, FrameTypeMaxPushID:
		return modeAtomic
	case FrameTypePriorityUpdateObsolete:
		if d.opts.currentPriorityUpdate {
			return modeUnknown
		}
		return modeAtomic
	case FrameTypePriorityUpdateCurrent:
		if d.opts.currentPriorityUpdate {
			return modeAtomic
		}
		return modeUnknown
	case FrameTypeAcceptCh:
		return modeAtomic
	case FrameTypeWebTransportStream:
		if d.opts.allowWebTransportStream {
			return modeIndefinite
		}
		return modeUnknown
	default:
		return modeUnknown
	}
}

// requiresNonZeroLength reports whether t's payload length must be non-zero,
// per spec §4.2's ReadFrameLength validation.
func requiresNonZeroLength(t FrameType) bool {
	switch t {
	case FrameTypeGoAway, FrameTypeMaxPushID, FrameTypePushPromise, FrameTypeCancelPush:
		return true
	default:
		return false
	}
}
