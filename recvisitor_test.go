package h3frame

// event is one recorded visitor callback, used by tests to assert an exact
// callback sequence regardless of how the input was chunked.
type event struct {
	name string
	args []any
}

// recVisitor implements Visitor and records every callback it receives. All
// boolean-returning callbacks return true, except the first invocation of
// the callback named by pauseAt, which returns false; this lets tests
// exercise pause/resume without a bespoke Visitor per scenario.
type recVisitor struct {
	events []event
	errD   *Decoder

	// pauseAt, if non-empty, names a callback that should return false the
	// first time it is seen; subsequent invocations return true.
	pauseAt  string
	paused   bool
}

func (v *recVisitor) record(name string, args ...any) {
	v.events = append(v.events, event{name: name, args: args})
}

func (v *recVisitor) decide(name string) bool {
	if v.pauseAt != "" && name == v.pauseAt && !v.paused {
		v.paused = true
		return false
	}
	return true
}

func (v *recVisitor) OnError(d *Decoder) {
	v.errD = d
	v.record("error", d.Error(), d.ErrorDetail())
}

func (v *recVisitor) OnSettingsFrameStart(headerLength uint64) bool {
	v.record("settings_frame_start", headerLength)
	return v.decide("settings_frame_start")
}
func (v *recVisitor) OnSettingsFrame(s Settings) bool {
	v.record("settings_frame", s)
	return v.decide("settings_frame")
}

func (v *recVisitor) OnDataFrameStart(headerLength, payloadLength uint64) bool {
	v.record("data_frame_start", headerLength, payloadLength)
	return v.decide("data_frame_start")
}
func (v *recVisitor) OnDataFramePayload(b []byte) bool {
	v.record("data_frame_payload", string(b))
	return v.decide("data_frame_payload")
}
func (v *recVisitor) OnDataFrameEnd() bool {
	v.record("data_frame_end")
	return v.decide("data_frame_end")
}

func (v *recVisitor) OnHeadersFrameStart(headerLength, payloadLength uint64) bool {
	v.record("headers_frame_start", headerLength, payloadLength)
	return v.decide("headers_frame_start")
}
func (v *recVisitor) OnHeadersFramePayload(b []byte) bool {
	v.record("headers_frame_payload", string(b))
	return v.decide("headers_frame_payload")
}
func (v *recVisitor) OnHeadersFrameEnd() bool {
	v.record("headers_frame_end")
	return v.decide("headers_frame_end")
}

func (v *recVisitor) OnCancelPushFrame(f CancelPushFrame) bool {
	v.record("cancel_push_frame", f)
	return v.decide("cancel_push_frame")
}
func (v *recVisitor) OnGoAwayFrame(f GoAwayFrame) bool {
	v.record("goaway_frame", f)
	return v.decide("goaway_frame")
}
func (v *recVisitor) OnMaxPushIDFrame(f MaxPushIDFrame) bool {
	v.record("max_push_id_frame", f)
	return v.decide("max_push_id_frame")
}

func (v *recVisitor) OnPushPromiseFrameStart(headerLength uint64) bool {
	v.record("push_promise_frame_start", headerLength)
	return v.decide("push_promise_frame_start")
}
func (v *recVisitor) OnPushPromiseFramePushID(pushID, pushIDLength, headerBlockLength uint64) bool {
	v.record("push_promise_frame_push_id", pushID, pushIDLength, headerBlockLength)
	return v.decide("push_promise_frame_push_id")
}
func (v *recVisitor) OnPushPromiseFramePayload(b []byte) bool {
	v.record("push_promise_frame_payload", string(b))
	return v.decide("push_promise_frame_payload")
}
func (v *recVisitor) OnPushPromiseFrameEnd() bool {
	v.record("push_promise_frame_end")
	return v.decide("push_promise_frame_end")
}

func (v *recVisitor) OnPriorityUpdateFrameStart(headerLength uint64) bool {
	v.record("priority_update_frame_start", headerLength)
	return v.decide("priority_update_frame_start")
}
func (v *recVisitor) OnPriorityUpdateFrame(f PriorityUpdateFrame) bool {
	v.record("priority_update_frame", f)
	return v.decide("priority_update_frame")
}

func (v *recVisitor) OnAcceptChFrameStart(headerLength uint64) bool {
	v.record("accept_ch_frame_start", headerLength)
	return v.decide("accept_ch_frame_start")
}
func (v *recVisitor) OnAcceptChFrame(f AcceptChFrame) bool {
	v.record("accept_ch_frame", f)
	return v.decide("accept_ch_frame")
}

func (v *recVisitor) OnWebTransportStreamFrameType(headerLength, sessionID uint64) {
	v.record("web_transport_stream_frame_type", headerLength, sessionID)
}

func (v *recVisitor) OnUnknownFrameStart(frameType FrameType, headerLength, payloadLength uint64) bool {
	v.record("unknown_frame_start", frameType, headerLength, payloadLength)
	return v.decide("unknown_frame_start")
}
func (v *recVisitor) OnUnknownFramePayload(b []byte) bool {
	v.record("unknown_frame_payload", string(b))
	return v.decide("unknown_frame_payload")
}
func (v *recVisitor) OnUnknownFrameEnd() bool {
	v.record("unknown_frame_end")
	return v.decide("unknown_frame_end")
}

// names extracts just the callback names from a recorded event list, for
// quick sequence comparisons.
func (v *recVisitor) names() []string {
	out := make([]string, len(v.events))
	for i, e := range v.events {
		out[i] = e.name
	}
	return out
}
