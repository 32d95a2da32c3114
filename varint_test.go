package h3frame

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestVarintReaderWholeValue(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"1byte", []byte{0x25}, 0x25},
		{"2byte", []byte{0x41, 0x00}, 0x100},
		{"4byte", []byte{0x9d, 0x7f, 0x3e, 0x7d}, 0x1d7f3e7d},
		{"8byte", []byte{0xc2, 0x19, 0x7c, 0x5e, 0xff, 0x14, 0xe8, 0x8c}, 0x2197c5eff14e88c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r varintReader
			consumed, done, value, _ := r.step(tt.in)
			assert.True(t, done)
			assert.Equal(t, len(tt.in), consumed)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestVarintReaderResumesByteAtATime(t *testing.T) {
	in := []byte{0x9d, 0x7f, 0x3e, 0x7d}
	var r varintReader
	total := 0
	for i, b := range in {
		consumed, done, value, _ := r.step([]byte{b})
		assert.Equal(t, 1, consumed)
		total++
		if i < len(in)-1 {
			assert.False(t, done)
		} else {
			assert.True(t, done)
			assert.Equal(t, uint64(0x1d7f3e7d), value)
		}
	}
	assert.Equal(t, len(in), total)
}

func TestVarintReaderNeverOverreads(t *testing.T) {
	// A 4-byte varint followed by unrelated trailing bytes must consume
	// exactly 4 bytes, leaving the rest untouched.
	in := []byte{0x9d, 0x7f, 0x3e, 0x7d, 0xff, 0xff}
	var r varintReader
	consumed, done, value, _ := r.step(in)
	assert.True(t, done)
	assert.Equal(t, 4, consumed)
	assert.Equal(t, uint64(0x1d7f3e7d), value)
}

func TestVarintReaderEmptyInputDoesNotBlock(t *testing.T) {
	var r varintReader
	consumed, done, _, _ := r.step(nil)
	assert.Equal(t, 0, consumed)
	assert.False(t, done)
}

func TestAppendVarintRoundTrips(t *testing.T) {
	for _, v := range []uint64{0, 0x3f, 0x40, 0x3fff, 0x4000, 0x3fffffff, 0x40000000, 0x2197c5eff14e88c} {
		b := appendVarint(nil, v)
		assert.Equal(t, varintLen(v), len(b))
		var r varintReader
		_, done, got, _ := r.step(b)
		assert.True(t, done)
		assert.Equal(t, v, got)
	}
}
