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

// treeState is the bounded subtree stack driving the post-order tree
// build. It holds the hash of each complete subtree pending a merge with
// its sibling, one per set bit of the number of chunks pushed so far,
// largest at the bottom. It is value-typed and fixed-capacity so that it
// can be reused across encodes via statePool (component H) without
// allocation.
type treeState struct {
	stack [MaxDepth]Hash
	sizes [MaxDepth]uint64 // chunk count each stack entry's subtree covers
	len   int
	count uint64 // number of chunks pushed so far
}

func (s *treeState) reset() {
	s.len = 0
	s.count = 0
}

// pushSubtree pushes the hash of a newly finished chunk (or already-merged
// subtree of size 1) onto the stack.
func (s *treeState) pushSubtree(h Hash) {
	s.stack[s.len] = h
	s.sizes[s.len] = 1
	s.len++
	s.count++
}

// mergeParent merges the top two stack entries if they cover equal-sized
// subtrees, returning the parent payload and true. If the top two entries
// differ in size (or fewer than two remain), it returns false and leaves
// the stack untouched.
//
// Driven by the same bit arithmetic as the Rust original's needs_merge:
// after pushing chunk index c (0-based, so count = c+1 chunks pushed), a
// merge is needed exactly PostOrderParentNodesNonFinal(c) times before the
// stack again matches the popcount pattern of count.
func (s *treeState) mergeParent() (ParentNode, bool) {
	if s.len < 2 || s.sizes[s.len-1] != s.sizes[s.len-2] {
		return ParentNode{}, false
	}
	return s.merge(notRoot()), true
}

// mergeFinish pops the top two stack entries unconditionally — the right
// one may be a partial tail smaller than its left sibling — and emits
// their parent payload. If the popped pair were the last two entries on the
// stack, their parent is the root: the pair is hashed under fin (expected
// to be Root) and returned as the final root hash with done = true. Otherwise
// the merged subtree is pushed back as NotRoot and done is false; callers
// must loop until done.
func (s *treeState) mergeFinish(fin finalization) (payload ParentNode, root Hash, done bool) {
	left, right := s.stack[s.len-2], s.stack[s.len-1]
	copy(payload[:HashSize], left[:])
	copy(payload[HashSize:], right[:])
	leftSize, rightSize := s.sizes[s.len-2], s.sizes[s.len-1]
	s.len -= 2

	if s.len == 0 {
		root = hashParent(payload, fin)
		return payload, root, true
	}
	s.stack[s.len] = hashParent(payload, notRoot())
	s.sizes[s.len] = leftSize + rightSize
	s.len++
	return payload, Hash{}, false
}

// merge performs the unconditional pop-hash-push step shared by
// mergeParent (once the equal-size precondition holds).
func (s *treeState) merge(fin finalization) ParentNode {
	var payload ParentNode
	left, right := s.stack[s.len-2], s.stack[s.len-1]
	copy(payload[:HashSize], left[:])
	copy(payload[HashSize:], right[:])
	mergedSize := s.sizes[s.len-2] + s.sizes[s.len-1]
	s.len -= 2
	s.stack[s.len] = hashParent(payload, fin)
	s.sizes[s.len] = mergedSize
	s.len++
	return payload
}
