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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pborman/uuid"

	"github.com/holisticode/baotree/metrics"
)

// Sink is the capability set the incremental Writer needs of its backing
// store: sequential writes, explicit seeks, and reads at an absolute
// offset. This is the only polymorphism point in this package (spec.md
// §9) — everything else is value-typed and linear.
type Sink interface {
	io.Writer
	// ReadAt reads len(p) bytes starting at the given absolute offset.
	// Unlike io.ReaderAt, the sink is also being written through the
	// same handle, so implementations must reflect bytes written
	// earlier at that offset even if they haven't been flushed to any
	// underlying medium.
	ReadAt(p []byte, offset int64) (int, error)
	// Seek repositions the shared write/read cursor, as io.Seeker.
	Seek(offset int64, whence int) (int64, error)
}

// FileSink adapts an *os.File to Sink. Any seekable OS file already
// satisfies read/write/seek; this is the one concrete Sink this package
// ships, since building a bespoke storage engine is explicitly out of
// scope (spec.md §1) — os.File already is one.
type FileSink struct {
	*os.File
}

// ReadAt satisfies Sink by delegating to the embedded file's ReadAt.
func (f FileSink) ReadAt(p []byte, offset int64) (int, error) {
	return f.File.ReadAt(p, offset)
}

// Writer incrementally encodes input written to it via Write, finishing
// the post-order stream and then flipping it to pre-order in place over
// the same Sink, using only bounded auxiliary state plus one chunk-sized
// and one parent-sized scratch buffer (spec.md §4.F, §5).
//
// A Writer is single-shot: any I/O error during Finish leaves it invalid,
// and callers must discard it and start over with a fresh Writer rather
// than attempt to resume (spec.md §7).
type Writer struct {
	id    uuid.UUID
	inner Sink

	chunkData []byte // up to ChunkSize bytes of the chunk being accumulated
	chunkLen  int
	totalLen  uint64

	s *scratch // drawn from defaultPool, released by Finish
}

// NewWriter wraps sink in an incremental tree-hash Writer, drawing its
// subtree stack and flipper state from the package-level pool (component
// H) the same way Encode does via encodeWithScratch, so that repeated
// Writer use amortises allocation exactly like repeated Encode calls. The
// returned Writer owns sink for its entire lifetime.
func NewWriter(sink Sink) *Writer {
	return &Writer{
		id:        uuid.NewRandom(),
		inner:     sink,
		chunkData: make([]byte, 0, ChunkSize),
		s:         defaultPool.reserve(),
	}
}

// Write accumulates up to ChunkSize bytes per chunk, hashing and flushing
// a completed chunk's parent nodes to the sink as soon as the next chunk
// begins; buf may span any number of chunks. It honors Go's io.Writer
// short-write contract: on a short inner write, only the accepted bytes are
// reflected in the hash state, and the accepted count is returned with an
// error (io.ErrShortWrite if the sink reported none) so a retrying caller
// can resume with the unwritten suffix. An empty buf returns 0 without
// touching any state, since with no more bytes coming there is no way to
// know whether this chunk is complete.
func (w *Writer) Write(buf []byte) (int, error) {
	written := 0
	for written < len(buf) {
		if w.chunkLen == ChunkSize {
			if err := w.flushChunk(notRoot()); err != nil {
				return written, err
			}
		}

		want := ChunkSize - w.chunkLen
		take := len(buf) - written
		if take > want {
			take = want
		}
		n, err := w.inner.Write(buf[written : written+take])
		w.chunkData = append(w.chunkData[:w.chunkLen], buf[written:written+n]...)
		w.chunkLen += n
		w.totalLen += uint64(n)
		written += n
		if err != nil {
			return written, err
		}
		if n < take {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}

// flushChunk hashes the accumulated chunk under fin, pushes it onto the
// subtree stack, drains any parents that merge become available, and
// resets the accumulator for the next chunk.
func (w *Writer) flushChunk(fin finalization) error {
	h := hashChunk(w.chunkData[:w.chunkLen], fin)
	w.s.tree.pushSubtree(h)
	metrics.EncodeChunks.Inc(1)
	w.chunkData = w.chunkData[:0]
	w.chunkLen = 0
	for {
		payload, ok := w.s.tree.mergeParent()
		if !ok {
			return nil
		}
		if _, err := w.inner.Write(payload[:]); err != nil {
			return fmt.Errorf("bmt: writer: flush parent: %w", err)
		}
	}
}

// Finish finalizes the post-order stream, appends the length trailer, and
// flips the whole thing to pre-order in place over the sink, returning the
// root hash. No error recovery is attempted: on any I/O error, w must be
// discarded (spec.md §4.F, §7).
func (w *Writer) Finish() (Hash, error) {
	defer metrics.TimeEncode(time.Now())
	defer defaultPool.release(w.s)

	var root Hash
	fin := rootFinalization(w.totalLen)

	if w.totalLen <= ChunkSize {
		root = hashChunk(w.chunkData[:w.chunkLen], fin)
		metrics.EncodeChunks.Inc(1)
	} else {
		h := hashChunk(w.chunkData[:w.chunkLen], notRoot())
		w.s.tree.pushSubtree(h)
		metrics.EncodeChunks.Inc(1)
		for {
			payload, r, done := w.s.tree.mergeFinish(fin)
			if _, err := w.inner.Write(payload[:]); err != nil {
				return Hash{}, fmt.Errorf("bmt: writer: finish: write parent: %w", err)
			}
			if done {
				root = r
				break
			}
		}
	}

	trailer := encodeLen(w.totalLen)
	if _, err := w.inner.Write(trailer[:]); err != nil {
		return Hash{}, fmt.Errorf("bmt: writer: finish: write trailer: %w", err)
	}

	if err := w.flip(); err != nil {
		return Hash{}, err
	}

	log.Debug("bmt: writer finished", "id", w.id, "length", w.totalLen, "root", root)
	return root, nil
}

// flip performs the tail-to-head rewrite of the post-order stream now
// sitting in the sink into pre-order, using FlipperState to decide each
// move and translating its events into seek/read/write calls against the
// sink.
func (w *Writer) flip() error {
	defer metrics.FlipDuration.UpdateSince(time.Now())

	writeCursor, err := w.inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("bmt: writer: flip: seek current: %w", err)
	}
	readCursor := writeCursor - HeaderSize

	var header [HeaderSize]byte
	if _, err := w.inner.ReadAt(header[:], readCursor); err != nil {
		return fmt.Errorf("bmt: writer: flip: read header: %w", err)
	}

	w.s.flipper = NewFlipperState(w.totalLen)
	flipper := &w.s.flipper
	var parentBuf [ParentSize]byte
	var chunkBuf [ChunkSize]byte

	for {
		switch ev := flipper.Next(); ev.kind {
		case eventFeedParent:
			readCursor -= ParentSize
			if _, err := w.inner.ReadAt(parentBuf[:], readCursor); err != nil {
				return fmt.Errorf("bmt: writer: flip: read parent: %w", err)
			}
			var p ParentNode
			copy(p[:], parentBuf[:])
			flipper.FeedParent(p)
		case eventTakeParent:
			p := flipper.TakeParent()
			writeCursor -= ParentSize
			if _, err := w.inner.Seek(writeCursor, io.SeekStart); err != nil {
				return fmt.Errorf("bmt: writer: flip: seek write: %w", err)
			}
			if _, err := w.inner.Write(p[:]); err != nil {
				return fmt.Errorf("bmt: writer: flip: write parent: %w", err)
			}
		case eventChunk:
			size := ev.chunkSize
			readCursor -= int64(size)
			if _, err := w.inner.ReadAt(chunkBuf[:size], readCursor); err != nil {
				return fmt.Errorf("bmt: writer: flip: read chunk: %w", err)
			}
			writeCursor -= int64(size)
			if _, err := w.inner.Seek(writeCursor, io.SeekStart); err != nil {
				return fmt.Errorf("bmt: writer: flip: seek write: %w", err)
			}
			if _, err := w.inner.Write(chunkBuf[:size]); err != nil {
				return fmt.Errorf("bmt: writer: flip: write chunk: %w", err)
			}
			flipper.ChunkMoved()
		case eventDone:
			assertf(writeCursor == HeaderSize, "flip finished with write cursor at %d, want %d", writeCursor, HeaderSize)
			if _, err := w.inner.Seek(0, io.SeekStart); err != nil {
				return fmt.Errorf("bmt: writer: flip: seek start: %w", err)
			}
			if _, err := w.inner.Write(header[:]); err != nil {
				return fmt.Errorf("bmt: writer: flip: write header: %w", err)
			}
			return nil
		}
	}
}
