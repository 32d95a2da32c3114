// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame

import "fmt"

// phase is a state in the Decoder's frame state machine. Unlike Framer in
// the HTTP/2 predecessor of this package, a Decoder never blocks waiting for
// bytes: every phase either makes progress with what ProcessInput was given
// or returns, to be resumed by the next call.
type phase uint8

const (
	phaseReadFrameType phase = iota
	phaseReadWebTransportSessionID
	phaseReadFrameLength
	phaseFrameStart
	phaseStreamPayload
	phaseStreamEnd
	phaseAtomicAccumulate
	phaseAtomicDeliver
	phaseHybridPushID
	phaseHybridPushIDDeliver
	phaseIndefiniteFrameDone
	phaseError
)

// Decoder incrementally parses a sequence of HTTP/3 frames from a byte
// stream, dispatching parsed structure to a Visitor as soon as it is known.
// It never reads ahead of what ProcessInput is given and never blocks.
//
// A Decoder is not safe for concurrent use; callers own the surrounding
// stream's read loop.
type Decoder struct {
	visitor Visitor
	opts    options

	phase phase

	typeVarint    varintReader
	lengthVarint  varintReader
	sessionVarint varintReader
	idVarint      varintReader

	currentFrameType         FrameType
	currentTypeFieldLength   uint64
	currentLengthFieldLength uint64
	currentFrameLength       uint64
	remainingFrameLength     uint64
	currentMode              frameMode

	buffer []byte

	pushID       uint64
	pushIDLength uint64

	atomicValue any

	err *DecodeError
}

// NewDecoder constructs a Decoder that reports parsed frames to visitor.
// visitor must not be nil; use NewFuncVisitor to build one from individual
// callback functions when only a subset of events matters.
func NewDecoder(visitor Visitor, opts ...Option) *Decoder {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{visitor: visitor, opts: o, phase: phaseReadFrameType}
}

// Error reports the Decoder's sticky error, or ErrNoError if none has
// occurred.
func (d *Decoder) Error() ErrorCode {
	if d.err == nil {
		return ErrNoError
	}
	return d.err.code
}

// ErrorDetail reports a human-readable detail for the current error, or the
// empty string if none has occurred.
func (d *Decoder) ErrorDetail() string {
	if d.err == nil {
		return ""
	}
	return d.err.detail
}

// TestCurrentFrameType exposes the in-progress frame's type for tests. It is
// not meaningful between frames.
func (d *Decoder) TestCurrentFrameType() uint64 {
	return uint64(d.currentFrameType)
}

func (d *Decoder) setError(e *DecodeError) {
	if d.err != nil {
		return
	}
	d.err = e
	d.phase = phaseError
	d.visitor.OnError(d)
}

// ProcessInput feeds p to the Decoder and returns how many leading bytes of
// p were fully processed. Bytes beyond the returned count were not
// consumed and must be resubmitted, prefixed to whatever new bytes arrive,
// on the next call. Once Error() is non-zero, ProcessInput is a no-op that
// always returns 0.
func (d *Decoder) ProcessInput(p []byte) uint64 {
	if d.err != nil {
		return 0
	}
	if d.phase == phaseIndefiniteFrameDone {
		d.setError(newInternalError("HttpDecoder called after an indefinite-length frame"))
		return 0
	}

	pos := 0
	for {
		switch d.phase {
		case phaseReadFrameType:
			consumed, done, value, _ := d.typeVarint.step(p[pos:])
			pos += consumed
			if !done {
				return uint64(pos)
			}
			d.currentFrameType = FrameType(value)
			d.currentTypeFieldLength = uint64(d.typeVarint.length)
			d.typeVarint.reset()

			if forbiddenH2FrameTypes[d.currentFrameType] {
				d.setError(newReceivedSpdyFrame(uint64(d.currentFrameType)))
				return uint64(pos)
			}

			d.currentMode = d.frameModeFor(d.currentFrameType)
			if d.currentMode == modeIndefinite {
				d.phase = phaseReadWebTransportSessionID
				continue
			}
			d.phase = phaseReadFrameLength
			continue

		case phaseReadWebTransportSessionID:
			consumed, done, value, _ := d.sessionVarint.step(p[pos:])
			pos += consumed
			if !done {
				return uint64(pos)
			}
			headerLength := d.currentTypeFieldLength + uint64(d.sessionVarint.length)
			d.sessionVarint.reset()
			d.visitor.OnWebTransportStreamFrameType(headerLength, value)
			d.phase = phaseIndefiniteFrameDone
			return uint64(pos)

		case phaseReadFrameLength:
			consumed, done, value, _ := d.lengthVarint.step(p[pos:])
			pos += consumed
			if !done {
				return uint64(pos)
			}
			d.currentFrameLength = value
			d.currentLengthFieldLength = uint64(d.lengthVarint.length)
			d.lengthVarint.reset()
			d.remainingFrameLength = value

			if requiresNonZeroLength(d.currentFrameType) && value == 0 {
				d.setError(newFrameError(fmt.Sprintf("%s frame with empty payload.", d.currentFrameType)))
				return uint64(pos)
			}
			if value > d.opts.maxFrameSize {
				d.setError(newFrameTooLarge(fmt.Sprintf(
					"%s frame with length %d exceeds maximum frame size of %d",
					d.currentFrameType, value, d.opts.maxFrameSize)))
				return uint64(pos)
			}
			if d.opts.errorOnHTTP3Push &&
				(d.currentFrameType == FrameTypeCancelPush || d.currentFrameType == FrameTypePushPromise) {
				d.setError(newFrameError(fmt.Sprintf(
					"%s frame received with HTTP/3 server push disabled", d.currentFrameType)))
				return uint64(pos)
			}

			d.phase = phaseFrameStart
			continue

		case phaseFrameStart:
			headerLength := d.currentTypeFieldLength + d.currentLengthFieldLength
			switch d.currentMode {
			case modeStreaming, modeUnknown:
				if !d.fireFrameStart(headerLength) {
					return uint64(pos)
				}
				if d.currentFrameLength == 0 {
					d.phase = phaseStreamEnd
				} else {
					d.phase = phaseStreamPayload
				}
				continue

			case modeAtomic:
				switch d.currentFrameType {
				case FrameTypeSettings:
					if !d.visitor.OnSettingsFrameStart(headerLength) {
						return uint64(pos)
					}
				case FrameTypePriorityUpdateObsolete, FrameTypePriorityUpdateCurrent:
					if !d.visitor.OnPriorityUpdateFrameStart(headerLength) {
						return uint64(pos)
					}
				case FrameTypeAcceptCh:
					if !d.visitor.OnAcceptChFrameStart(headerLength) {
						return uint64(pos)
					}
				}
				d.buffer = make([]byte, 0, d.currentFrameLength)
				d.phase = phaseAtomicAccumulate
				continue

			case modeHybrid:
				if !d.visitor.OnPushPromiseFrameStart(headerLength) {
					return uint64(pos)
				}
				d.phase = phaseHybridPushID
				continue
			}

		case phaseStreamPayload:
			avail := p[pos:]
			n := len(avail)
			if uint64(n) > d.remainingFrameLength {
				n = int(d.remainingFrameLength)
			}
			if n > 0 {
				chunk := avail[:n]
				pos += n
				d.remainingFrameLength -= uint64(n)
				if !d.firePayload(chunk) {
					return uint64(pos)
				}
			}
			if d.remainingFrameLength == 0 {
				d.phase = phaseStreamEnd
				continue
			}
			return uint64(pos)

		case phaseStreamEnd:
			if !d.fireFrameEnd() {
				return uint64(pos)
			}
			d.resetFrameState()
			d.phase = phaseReadFrameType
			continue

		case phaseAtomicAccumulate:
			avail := p[pos:]
			n := len(avail)
			if uint64(n) > d.remainingFrameLength {
				n = int(d.remainingFrameLength)
			}
			if n > 0 {
				d.buffer = append(d.buffer, avail[:n]...)
				pos += n
				d.remainingFrameLength -= uint64(n)
			}
			if d.remainingFrameLength > 0 {
				return uint64(pos)
			}
			if err := d.parseAtomicBuffer(); err != nil {
				d.setError(err)
				return uint64(pos)
			}
			d.phase = phaseAtomicDeliver
			continue

		case phaseAtomicDeliver:
			if !d.deliverAtomicValue() {
				return uint64(pos)
			}
			d.resetFrameState()
			d.phase = phaseReadFrameType
			continue

		case phaseHybridPushID:
			avail := p[pos:]
			n := len(avail)
			if uint64(n) > d.remainingFrameLength {
				n = int(d.remainingFrameLength)
			}
			sub := avail[:n]
			consumed, done, value, idLen := d.idVarint.step(sub)
			pos += consumed
			d.remainingFrameLength -= uint64(consumed)
			if !done {
				if d.remainingFrameLength == 0 {
					d.setError(newFrameError("Unable to read PUSH_PROMISE push_id."))
					return uint64(pos)
				}
				return uint64(pos)
			}
			d.pushID = value
			d.pushIDLength = uint64(idLen)
			d.idVarint.reset()
			d.phase = phaseHybridPushIDDeliver
			continue

		case phaseHybridPushIDDeliver:
			headerBlockLength := d.remainingFrameLength
			if !d.visitor.OnPushPromiseFramePushID(d.pushID, d.pushIDLength, headerBlockLength) {
				return uint64(pos)
			}
			if d.remainingFrameLength == 0 {
				d.phase = phaseStreamEnd
			} else {
				d.phase = phaseStreamPayload
			}
			continue

		case phaseError:
			return 0
		}
	}
}

func (d *Decoder) fireFrameStart(headerLength uint64) bool {
	switch d.currentFrameType {
	case FrameTypeData:
		return d.visitor.OnDataFrameStart(headerLength, d.currentFrameLength)
	case FrameTypeHeaders:
		return d.visitor.OnHeadersFrameStart(headerLength, d.currentFrameLength)
	default:
		return d.visitor.OnUnknownFrameStart(d.currentFrameType, headerLength, d.currentFrameLength)
	}
}

func (d *Decoder) firePayload(b []byte) bool {
	switch d.currentFrameType {
	case FrameTypeData:
		return d.visitor.OnDataFramePayload(b)
	case FrameTypeHeaders:
		return d.visitor.OnHeadersFramePayload(b)
	case FrameTypePushPromise:
		return d.visitor.OnPushPromiseFramePayload(b)
	default:
		return d.visitor.OnUnknownFramePayload(b)
	}
}

func (d *Decoder) fireFrameEnd() bool {
	switch d.currentFrameType {
	case FrameTypeData:
		return d.visitor.OnDataFrameEnd()
	case FrameTypeHeaders:
		return d.visitor.OnHeadersFrameEnd()
	case FrameTypePushPromise:
		return d.visitor.OnPushPromiseFrameEnd()
	default:
		return d.visitor.OnUnknownFrameEnd()
	}
}

func (d *Decoder) deliverAtomicValue() bool {
	switch v := d.atomicValue.(type) {
	case Settings:
		return d.visitor.OnSettingsFrame(v)
	case CancelPushFrame:
		return d.visitor.OnCancelPushFrame(v)
	case GoAwayFrame:
		return d.visitor.OnGoAwayFrame(v)
	case MaxPushIDFrame:
		return d.visitor.OnMaxPushIDFrame(v)
	case PriorityUpdateFrame:
		return d.visitor.OnPriorityUpdateFrame(v)
	case AcceptChFrame:
		return d.visitor.OnAcceptChFrame(v)
	default:
		panic("h3frame: no atomic value staged for delivery")
	}
}

func (d *Decoder) resetFrameState() {
	d.currentFrameType = 0
	d.currentTypeFieldLength = 0
	d.currentLengthFieldLength = 0
	d.currentFrameLength = 0
	d.remainingFrameLength = 0
	d.currentMode = 0
	d.buffer = nil
	d.pushID = 0
	d.pushIDLength = 0
	d.atomicValue = nil
}
