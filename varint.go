// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame

// varintReader incrementally decodes a QUIC variable-length integer
// (RFC 9000 §16). The top two bits of the first byte select the total
// encoded length L in {1, 2, 4, 8}; the remaining 6 bits of the first byte,
// concatenated with the following L*8-2 bits, form the unsigned value.
//
// It is resumable: step may be called repeatedly with whatever prefix of
// the encoded bytes is currently available, and never consumes a byte it
// has not been given. Malformed varints do not exist at this layer -- every
// byte sequence is a valid prefix of some varint -- so step never fails.
type varintReader struct {
	started bool   // first byte has been consumed
	length  int    // total encoded length, known once started
	have    int    // bytes consumed so far
	acc     uint64 // accumulated value
}

func (r *varintReader) reset() {
	*r = varintReader{}
}

// step consumes a prefix of b (as many bytes as available, up to what's
// still needed) and reports how many bytes it used. If the varint is fully
// decoded, done is true and value/bytesUsedTotal are valid.
func (r *varintReader) step(b []byte) (consumed int, done bool, value uint64, bytesUsedTotal int) {
	if !r.started {
		if len(b) == 0 {
			return 0, false, 0, 0
		}
		first := b[0]
		r.length = varintLength(first)
		r.acc = uint64(first & 0x3f)
		r.have = 1
		r.started = true
		consumed = 1
		b = b[1:]
		if r.have == r.length {
			return consumed, true, r.acc, r.have
		}
	}
	for len(b) > 0 && r.have < r.length {
		r.acc = (r.acc << 8) | uint64(b[0])
		r.have++
		consumed++
		b = b[1:]
	}
	if r.have == r.length {
		return consumed, true, r.acc, r.have
	}
	return consumed, false, 0, 0
}

// varintLength returns the total encoded length implied by a varint's first
// byte, per the top two bits: 00->1, 01->2, 10->4, 11->8.
func varintLength(first byte) int {
	switch first >> 6 {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 4
	default:
		return 8
	}
}

// appendVarint encodes v as a QUIC varint62 into the smallest width that
// fits, appending it to b. Used only by tests to build wire fixtures.
func appendVarint(b []byte, v uint64) []byte {
	switch {
	case v <= 0x3f:
		return append(b, byte(v))
	case v <= 0x3fff:
		return append(b, byte(v>>8)|0x40, byte(v))
	case v <= 0x3fffffff:
		return append(b, byte(v>>24)|0x80, byte(v>>16), byte(v>>8), byte(v))
	default:
		return append(b, byte(v>>56)|0xc0, byte(v>>48), byte(v>>40), byte(v>>32),
			byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
}

// varintLen returns the number of bytes appendVarint would use to encode v.
func varintLen(v uint64) int {
	switch {
	case v <= 0x3f:
		return 1
	case v <= 0x3fff:
		return 2
	case v <= 0x3fffffff:
		return 4
	default:
		return 8
	}
}
