package h3frame

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestFuncVisitorDefaultsToNoOps(t *testing.T) {
	v := NewFuncVisitor(nil)
	d := NewDecoder(v)

	consumed := d.ProcessInput(append([]byte{0x00, 0x05}, "Data!"...))
	assert.Equal(t, uint64(7), consumed)
	assert.Equal(t, ErrNoError, d.Error())
}

func TestFuncVisitorOnlyOverridesGivenCallbacks(t *testing.T) {
	var gotPayload string
	v := NewFuncVisitor(&FuncVisitor{
		DataFramePayload: func(b []byte) bool {
			gotPayload = string(b)
			return true
		},
	})
	d := NewDecoder(v)

	d.ProcessInput(append([]byte{0x00, 0x05}, "Data!"...))
	assert.Equal(t, "Data!", gotPayload)
	assert.Equal(t, ErrNoError, d.Error())
}

func TestFuncVisitorErrorCallback(t *testing.T) {
	var gotCode ErrorCode
	v := NewFuncVisitor(&FuncVisitor{
		Error: func(d *Decoder) { gotCode = d.Error() },
	})
	d := NewDecoder(v)

	d.ProcessInput([]byte{0x06, 0x05, 0x15})
	assert.Equal(t, ErrReceivedSpdyFrame, gotCode)
}
