package h3frame

import "github.com/imdario/mergo"

// FuncVisitor implements Visitor by dispatching to individual function
// fields, so callers that only care about a few callbacks don't have to
// implement the whole interface. Fields left nil are filled in by
// NewFuncVisitor with no-ops that accept and continue.
//
//nolint:golint
type FuncVisitor struct {
	Error func(d *Decoder)

	SettingsFrameStart func(headerLength uint64) bool
	SettingsFrame      func(s Settings) bool

	DataFrameStart   func(headerLength, payloadLength uint64) bool
	DataFramePayload func(b []byte) bool
	DataFrameEnd     func() bool

	HeadersFrameStart   func(headerLength, payloadLength uint64) bool
	HeadersFramePayload func(b []byte) bool
	HeadersFrameEnd     func() bool

	CancelPushFrame func(f CancelPushFrame) bool
	GoAwayFrame     func(f GoAwayFrame) bool
	MaxPushIDFrame  func(f MaxPushIDFrame) bool

	PushPromiseFrameStart  func(headerLength uint64) bool
	PushPromiseFramePushID func(pushID, pushIDLength, headerBlockLength uint64) bool
	PushPromiseFramePayload func(b []byte) bool
	PushPromiseFrameEnd    func() bool

	PriorityUpdateFrameStart func(headerLength uint64) bool
	PriorityUpdateFrame      func(f PriorityUpdateFrame) bool

	AcceptChFrameStart func(headerLength uint64) bool
	AcceptChFrame      func(f AcceptChFrame) bool

	WebTransportStreamFrameType func(headerLength, sessionID uint64)

	UnknownFrameStart   func(frameType FrameType, headerLength, payloadLength uint64) bool
	UnknownFramePayload func(b []byte) bool
	UnknownFrameEnd     func() bool
}

// noopFuncVisitor supplies a do-nothing, keep-going implementation for
// every FuncVisitor field. NewFuncVisitor merges a caller's partially
// populated FuncVisitor against this so unset fields never nil-panic.
var noopFuncVisitor = &FuncVisitor{
	Error:                       func(*Decoder) {},
	SettingsFrameStart:          func(uint64) bool { return true },
	SettingsFrame:               func(Settings) bool { return true },
	DataFrameStart:              func(uint64, uint64) bool { return true },
	DataFramePayload:            func([]byte) bool { return true },
	DataFrameEnd:                func() bool { return true },
	HeadersFrameStart:           func(uint64, uint64) bool { return true },
	HeadersFramePayload:         func([]byte) bool { return true },
	HeadersFrameEnd:             func() bool { return true },
	CancelPushFrame:             func(CancelPushFrame) bool { return true },
	GoAwayFrame:                 func(GoAwayFrame) bool { return true },
	MaxPushIDFrame:              func(MaxPushIDFrame) bool { return true },
	PushPromiseFrameStart:       func(uint64) bool { return true },
	PushPromiseFramePushID:      func(uint64, uint64, uint64) bool { return true },
	PushPromiseFramePayload:     func([]byte) bool { return true },
	PushPromiseFrameEnd:         func() bool { return true },
	PriorityUpdateFrameStart:    func(uint64) bool { return true },
	PriorityUpdateFrame:         func(PriorityUpdateFrame) bool { return true },
	AcceptChFrameStart:          func(uint64) bool { return true },
	AcceptChFrame:               func(AcceptChFrame) bool { return true },
	WebTransportStreamFrameType: func(uint64, uint64) {},
	UnknownFrameStart:           func(FrameType, uint64, uint64) bool { return true },
	UnknownFramePayload:         func([]byte) bool { return true },
	UnknownFrameEnd:             func() bool { return true },
}

// NewFuncVisitor returns v with every nil callback field filled in from
// noopFuncVisitor, ready to pass to NewDecoder. v may be nil, in which case
// a Visitor of all no-ops is returned.
func NewFuncVisitor(v *FuncVisitor) *FuncVisitor {
	if v == nil {
		v = &FuncVisitor{}
	}
	_ = mergo.Merge(v, noopFuncVisitor)
	return v
}

func (v *FuncVisitor) OnError(d *Decoder) { v.Error(d) }

func (v *FuncVisitor) OnSettingsFrameStart(headerLength uint64) bool {
	return v.SettingsFrameStart(headerLength)
}
func (v *FuncVisitor) OnSettingsFrame(s Settings) bool { return v.SettingsFrame(s) }

func (v *FuncVisitor) OnDataFrameStart(headerLength, payloadLength uint64) bool {
	return v.DataFrameStart(headerLength, payloadLength)
}
func (v *FuncVisitor) OnDataFramePayload(b []byte) bool { return v.DataFramePayload(b) }
func (v *FuncVisitor) OnDataFrameEnd() bool              { return v.DataFrameEnd() }

func (v *FuncVisitor) OnHeadersFrameStart(headerLength, payloadLength uint64) bool {
	return v.HeadersFrameStart(headerLength, payloadLength)
}
func (v *FuncVisitor) OnHeadersFramePayload(b []byte) bool { return v.HeadersFramePayload(b) }
func (v *FuncVisitor) OnHeadersFrameEnd() bool              { return v.HeadersFrameEnd() }

func (v *FuncVisitor) OnCancelPushFrame(f CancelPushFrame) bool { return v.CancelPushFrame(f) }
func (v *FuncVisitor) OnGoAwayFrame(f GoAwayFrame) bool         { return v.GoAwayFrame(f) }
func (v *FuncVisitor) OnMaxPushIDFrame(f MaxPushIDFrame) bool   { return v.MaxPushIDFrame(f) }

func (v *FuncVisitor) OnPushPromiseFrameStart(headerLength uint64) bool {
	return v.PushPromiseFrameStart(headerLength)
}
func (v *FuncVisitor) OnPushPromiseFramePushID(pushID, pushIDLength, headerBlockLength uint64) bool {
	return v.PushPromiseFramePushID(pushID, pushIDLength, headerBlockLength)
}
func (v *FuncVisitor) OnPushPromiseFramePayload(b []byte) bool { return v.PushPromiseFramePayload(b) }
func (v *FuncVisitor) OnPushPromiseFrameEnd() bool              { return v.PushPromiseFrameEnd() }

func (v *FuncVisitor) OnPriorityUpdateFrameStart(headerLength uint64) bool {
	return v.PriorityUpdateFrameStart(headerLength)
}
func (v *FuncVisitor) OnPriorityUpdateFrame(f PriorityUpdateFrame) bool {
	return v.PriorityUpdateFrame(f)
}

func (v *FuncVisitor) OnAcceptChFrameStart(headerLength uint64) bool {
	return v.AcceptChFrameStart(headerLength)
}
func (v *FuncVisitor) OnAcceptChFrame(f AcceptChFrame) bool { return v.AcceptChFrame(f) }

func (v *FuncVisitor) OnWebTransportStreamFrameType(headerLength, sessionID uint64) {
	v.WebTransportStreamFrameType(headerLength, sessionID)
}

func (v *FuncVisitor) OnUnknownFrameStart(frameType FrameType, headerLength, payloadLength uint64) bool {
	return v.UnknownFrameStart(frameType, headerLength, payloadLength)
}
func (v *FuncVisitor) OnUnknownFramePayload(b []byte) bool { return v.UnknownFramePayload(b) }
func (v *FuncVisitor) OnUnknownFrameEnd() bool              { return v.UnknownFrameEnd() }
