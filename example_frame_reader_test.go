// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// See https://code.google.com/p/go/source/browse/CONTRIBUTORS
// Licensed under the same terms as Go itself:
// https://code.google.com/p/go/source/browse/LICENSE

package h3frame_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/h3wire/h3frame"
)

// readLoop feeds chunks read from r into d until r is exhausted or d's
// error becomes sticky, the way a QUIC stream reader would push bytes to
// the decoder as they arrive off the wire.
func readLoop(d *h3frame.Decoder, r io.Reader) {
	buf := make([]byte, 4096)
	var pending []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			consumed := d.ProcessInput(pending)
			pending = pending[consumed:]
			if d.Error() != h3frame.ErrNoError {
				log.Printf("h3frame: %s: %s", d.Error(), d.ErrorDetail())
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("stream read error: %v", err)
			}
			return
		}
	}
}

func ExampleDecoder_ProcessInput() {
	var wire bytes.Buffer
	wire.Write([]byte{0x00, 0x05})
	wire.WriteString("Data!")

	v := h3frame.NewFuncVisitor(&h3frame.FuncVisitor{
		DataFramePayload: func(b []byte) bool {
			fmt.Printf("payload: %s\n", b)
			return true
		},
	})
	d := h3frame.NewDecoder(v)

	readLoop(d, &wire)

	// Output:
	// payload: Data!
}
