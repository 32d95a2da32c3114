// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame

// readFullVarint parses one varint62 from a buffer known to hold the entire
// encoded value (or a truncated prefix of it). Unlike varintReader, it
// never needs to be resumed: atomic frames are only parsed once their whole
// declared-length payload has been buffered.
func readFullVarint(buf []byte) (value uint64, n int, ok bool) {
	if len(buf) == 0 {
		return 0, 0, false
	}
	length := varintLength(buf[0])
	if len(buf) < length {
		return 0, 0, false
	}
	v := uint64(buf[0] & 0x3f)
	for i := 1; i < length; i++ {
		v = (v << 8) | uint64(buf[i])
	}
	return v, length, true
}

// parseAtomicBuffer parses d.buffer, a complete atomic-frame payload, into
// d.atomicValue. d.buffer is always exactly d.currentFrameLength bytes by
// the time this runs.
func (d *Decoder) parseAtomicBuffer() *DecodeError {
	switch d.currentFrameType {
	case FrameTypeSettings:
		s, err := parseSettings(d.buffer)
		if err != nil {
			return err
		}
		d.atomicValue = s

	case FrameTypeCancelPush:
		id, n, ok := readFullVarint(d.buffer)
		if !ok {
			return newFrameError("Unable to read CANCEL_PUSH push_id.")
		}
		if n < len(d.buffer) {
			return newFrameError("Superfluous data in CANCEL_PUSH frame.")
		}
		d.atomicValue = CancelPushFrame{PushID: id}

	case FrameTypeGoAway:
		id, n, ok := readFullVarint(d.buffer)
		if !ok {
			return newFrameError("Unable to read GOAWAY ID.")
		}
		if n < len(d.buffer) {
			return newFrameError("Superfluous data in GOAWAY frame.")
		}
		d.atomicValue = GoAwayFrame{ID: id}

	case FrameTypeMaxPushID:
		id, n, ok := readFullVarint(d.buffer)
		if !ok {
			return newFrameError("Unable to read MAX_PUSH_ID push_id.")
		}
		if n < len(d.buffer) {
			return newFrameError("Superfluous data in MAX_PUSH_ID frame.")
		}
		d.atomicValue = MaxPushIDFrame{PushID: id}

	case FrameTypePriorityUpdateObsolete:
		f, err := parsePriorityUpdateObsolete(d.buffer)
		if err != nil {
			return err
		}
		d.atomicValue = f

	case FrameTypePriorityUpdateCurrent:
		f, err := parsePriorityUpdateCurrent(d.buffer)
		if err != nil {
			return err
		}
		d.atomicValue = f

	case FrameTypeAcceptCh:
		f, err := parseAcceptCh(d.buffer)
		if err != nil {
			return err
		}
		d.atomicValue = f
	}
	return nil
}

// parseSettings parses a SETTINGS frame payload: zero or more (identifier,
// value) varint62 pairs. An empty payload yields an empty, non-nil map.
func parseSettings(buf []byte) (Settings, *DecodeError) {
	out := make(Settings)
	for len(buf) > 0 {
		id, n, ok := readFullVarint(buf)
		if !ok {
			return nil, newFrameError("Unable to read setting identifier.")
		}
		buf = buf[n:]
		val, n, ok := readFullVarint(buf)
		if !ok {
			return nil, newFrameError("Unable to read setting value.")
		}
		buf = buf[n:]
		if _, dup := out[id]; dup {
			return nil, newDuplicateSettingIdentifier()
		}
		out[id] = val
	}
	return out, nil
}

// DecodeSettings is a stateless convenience wrapper around parseSettings
// for callers that already have a complete SETTINGS payload in hand, such
// as one parsed out of a QPACK encoder/decoder stream's initial frame.
func DecodeSettings(payload []byte) (Settings, error) {
	s, err := parseSettings(payload)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parsePriorityUpdateObsolete(buf []byte) (PriorityUpdateFrame, *DecodeError) {
	if len(buf) < 1 {
		return PriorityUpdateFrame{}, newFrameError("Unable to read prioritized element type.")
	}
	et := PrioritizedElementType(buf[0])
	if et != ElementRequestStream && et != ElementPushStream {
		return PriorityUpdateFrame{}, newFrameError("Invalid prioritized element type.")
	}
	id, n, ok := readFullVarint(buf[1:])
	if !ok {
		return PriorityUpdateFrame{}, newFrameError("Unable to read prioritized element id.")
	}
	rest := buf[1+n:]
	fieldValue := append([]byte(nil), rest...)
	return PriorityUpdateFrame{ElementType: et, ElementID: id, FieldValue: fieldValue}, nil
}

func parsePriorityUpdateCurrent(buf []byte) (PriorityUpdateFrame, *DecodeError) {
	id, n, ok := readFullVarint(buf)
	if !ok {
		return PriorityUpdateFrame{}, newFrameError("Unable to read prioritized element id.")
	}
	rest := buf[n:]
	fieldValue := append([]byte(nil), rest...)
	return PriorityUpdateFrame{ElementType: ElementRequestStream, ElementID: id, FieldValue: fieldValue}, nil
}

func parseAcceptCh(buf []byte) (AcceptChFrame, *DecodeError) {
	var out AcceptChFrame
	for len(buf) > 0 {
		originLen, n, ok := readFullVarint(buf)
		if !ok {
			return AcceptChFrame{}, newFrameError("Unable to read ACCEPT_CH origin.")
		}
		buf = buf[n:]
		if uint64(len(buf)) < originLen {
			return AcceptChFrame{}, newFrameError("Unable to read ACCEPT_CH origin.")
		}
		origin := string(buf[:originLen])
		buf = buf[originLen:]

		valueLen, n, ok := readFullVarint(buf)
		if !ok {
			return AcceptChFrame{}, newFrameError("Unable to read ACCEPT_CH value.")
		}
		buf = buf[n:]
		if uint64(len(buf)) < valueLen {
			return AcceptChFrame{}, newFrameError("Unable to read ACCEPT_CH value.")
		}
		value := string(buf[:valueLen])
		buf = buf[valueLen:]

		out.Entries = append(out.Entries, AcceptChEntry{Origin: origin, Value: value})
	}
	return out, nil
}
