// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package bmt

import (
	"time"

	"github.com/holisticode/baotree/metrics"
)

// Encode builds the tree encoding of input entirely in memory: component C
// (encodePostOrder) writes chunks and parents into a buffer sized exactly
// to EncodedSize(len(input)), with the length trailer at the tail, and
// component D (FlipperState) then rewrites that buffer in place into the
// pre-order layout verifiers expect. It returns the root hash and the
// encoded bytes.
func Encode(input []byte) (Hash, []byte) {
	defer metrics.TimeEncode(time.Now())
	s := defaultPool.reserve()
	defer defaultPool.release(s)
	return encodeWithScratch(input, s)
}

func encodeWithScratch(input []byte, s *scratch) (Hash, []byte) {
	length := uint64(len(input))
	out := make([]byte, EncodedSize(length))

	w := &sliceWriter{buf: out}
	root, err := encodePostOrder(w, input, &s.tree)
	if err != nil {
		// sliceWriter never errors: its backing buffer is always
		// exactly the right size.
		panic("bmt: Encode: " + err.Error())
	}
	assertf(w.off == len(out), "post-order write filled %d of %d bytes", w.off, len(out))

	flipInPlace(out, length, &s.flipper)
	return root, out
}

// sliceWriter is an io.Writer over a fixed, pre-sized slice, appending at
// an internal offset. It never grows or reallocates: encodePostOrder is
// called with a buffer already sized to EncodedSize, so every write lands
// within bounds.
type sliceWriter struct {
	buf []byte
	off int
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.off:], p)
	w.off += n
	return n, nil
}

// flipInPlace rewrites a finished post-order buffer into pre-order,
// driving FlipperState with plain slice reads and writes. The read cursor
// starts just before the trailer and the write cursor starts at the very
// end; both move downward, and the central correctness property of the
// flip (spec.md §4.D) guarantees the read cursor always reaches a byte
// before the write cursor overwrites it.
func flipInPlace(encoded []byte, contentLen uint64, flipper *FlipperState) {
	var header [HeaderSize]byte
	copy(header[:], encoded[len(encoded)-HeaderSize:])

	*flipper = NewFlipperState(contentLen)
	readCursor := len(encoded) - HeaderSize
	writeCursor := len(encoded)

	for {
		switch ev := flipper.Next(); ev.kind {
		case eventFeedParent:
			var p ParentNode
			copy(p[:], encoded[readCursor-ParentSize:readCursor])
			readCursor -= ParentSize
			flipper.FeedParent(p)
		case eventTakeParent:
			p := flipper.TakeParent()
			copy(encoded[writeCursor-ParentSize:writeCursor], p[:])
			writeCursor -= ParentSize
		case eventChunk:
			size := ev.chunkSize
			var chunk [ChunkSize]byte
			copy(chunk[:size], encoded[readCursor-size:readCursor])
			readCursor -= size
			copy(encoded[writeCursor-size:writeCursor], chunk[:size])
			writeCursor -= size
			flipper.ChunkMoved()
		case eventDone:
			assertf(writeCursor == HeaderSize, "flip finished with write cursor at %d, want %d", writeCursor, HeaderSize)
			copy(encoded[:HeaderSize], header[:])
			return
		}
	}
}
