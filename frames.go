// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame

// Settings is the parsed payload of a SETTINGS frame: identifier -> value.
// An empty payload parses to an empty, non-nil map.
type Settings map[uint64]uint64

// CancelPushFrame is the parsed payload of a CANCEL_PUSH frame.
type CancelPushFrame struct {
	PushID uint64
}

// GoAwayFrame is the parsed payload of a GOAWAY frame.
type GoAwayFrame struct {
	ID uint64
}

// MaxPushIDFrame is the parsed payload of a MAX_PUSH_ID frame.
type MaxPushIDFrame struct {
	PushID uint64
}

// PrioritizedElementType identifies what a PRIORITY_UPDATE frame's element
// ID refers to. Only meaningful for the obsolete (type 0x0f) encoding; the
// current encoding (type 0x800f0700) always targets a request stream.
type PrioritizedElementType uint8

const (
	ElementRequestStream PrioritizedElementType = 0x00
	ElementPushStream    PrioritizedElementType = 0x80
)

// PriorityUpdateFrame is the parsed payload of a PRIORITY_UPDATE frame, in
// either its obsolete or current wire encoding.
type PriorityUpdateFrame struct {
	ElementType PrioritizedElementType
	ElementID   uint64
	FieldValue  []byte
}

// AcceptChEntry is one origin/value pair carried by an ACCEPT_CH frame.
type AcceptChEntry struct {
	Origin string
	Value  string
}

// AcceptChFrame is the parsed payload of an ACCEPT_CH frame.
type AcceptChFrame struct {
	Entries []AcceptChEntry
}
