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

// flipperEventKind enumerates the four moves the flip driver loop can be
// told to perform next.
type flipperEventKind int

const (
	// eventTakeParent means emit one buffered parent payload at the
	// current pre-order write position.
	eventTakeParent flipperEventKind = iota
	// eventFeedParent means read one parent payload from the source at
	// the current post-order read position and buffer it.
	eventFeedParent
	// eventChunk means move one chunk of the given size from the
	// source's post-order position to the destination's pre-order
	// position.
	eventChunk
	// eventDone means the flip is complete.
	eventDone
)

// flipperEvent is the state machine's output: a move for the driver loop
// to perform, with the chunk size filled in only for eventChunk.
type flipperEvent struct {
	kind      flipperEventKind
	chunkSize int
}

// FlipperState drives the post-order-to-pre-order rewrite without owning
// any I/O itself: Next reports what move to make, and the three mutating
// methods record that the driver made it. This lets the same state
// machine drive both the in-memory copy loop (component E) and the
// seeking I/O loop (component F) without duplicating the walk logic
// (spec.md §9).
//
// As chunks move from the tail of the post-order buffer to the tail of
// the (growing backwards) pre-order buffer, parent payloads encountered
// along the way have to be parked on parents: the post-order traversal of
// a subtree is (left, right, parent), so read tail-to-head it arrives as
// (parent, right, left) — exactly backwards from the (parent, left,
// right) pre-order needs. Routing parents through a LIFO flips that order
// back.
type FlipperState struct {
	contentLen       uint64
	chunkMoved       uint64
	parentsNeeded    int
	parentsAvailable int
	parents          [MaxDepth]ParentNode
	parentsLen       int
}

// NewFlipperState initializes a flipper for an input of the given content
// length. CountChunks(contentLen) is always >= 1, so the
// PostOrderParentNodesFinal(n-1) call below never underflows.
func NewFlipperState(contentLen uint64) FlipperState {
	n := CountChunks(contentLen)
	return FlipperState{
		contentLen:    contentLen,
		chunkMoved:    n,
		parentsNeeded: PostOrderParentNodesFinal(n - 1),
	}
}

// Next reports the next move, in strict priority order: emit any buffered
// parent before reading another; read a needed parent before moving a
// chunk; move a chunk before declaring Done.
func (f *FlipperState) Next() flipperEvent {
	switch {
	case f.parentsAvailable > 0:
		return flipperEvent{kind: eventTakeParent}
	case f.parentsNeeded > 0:
		return flipperEvent{kind: eventFeedParent}
	case f.chunkMoved > 0:
		return flipperEvent{kind: eventChunk, chunkSize: chunkSize(f.chunkMoved-1, f.contentLen)}
	default:
		return flipperEvent{kind: eventDone}
	}
}

// FeedParent records that the driver read parent p from the source at the
// current read cursor and pushes it onto the LIFO.
func (f *FlipperState) FeedParent(p ParentNode) {
	assertf(f.parentsNeeded > 0, "FeedParent with parentsNeeded == 0")
	assertf(f.parentsAvailable == 0, "FeedParent with parentsAvailable > 0")
	f.parents[f.parentsLen] = p
	f.parentsLen++
	f.parentsNeeded--
}

// TakeParent pops the next parent to emit at the current write cursor.
// The LIFO discipline here is what reverses (parent, right, left) back
// into (parent, left, right).
func (f *FlipperState) TakeParent() ParentNode {
	assertf(f.parentsAvailable > 0, "TakeParent with parentsAvailable == 0")
	f.parentsLen--
	f.parentsAvailable--
	return f.parents[f.parentsLen]
}

// ChunkMoved records that the driver moved the next chunk (from the right)
// and advances the state: it computes how many parents must now be
// emitted before this chunk (pre-order) and, if another chunk remains to
// its left, how many parents must be pulled from the source before
// reaching it (post-order).
func (f *FlipperState) ChunkMoved() {
	assertf(f.chunkMoved > 0, "ChunkMoved with chunkMoved == 0")
	assertf(f.parentsAvailable == 0, "ChunkMoved with parentsAvailable > 0")
	assertf(f.parentsNeeded == 0, "ChunkMoved with parentsNeeded > 0")
	f.chunkMoved--
	f.parentsAvailable = PreOrderParentNodes(f.chunkMoved, f.contentLen)
	if f.chunkMoved > 0 {
		f.parentsNeeded = PostOrderParentNodesNonFinal(f.chunkMoved - 1)
	}
}
